package content

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func validBlogEnvelope() frontMatterEnvelope {
	return frontMatterEnvelope{
		Title:       "Designing a Signup Flow",
		Description: "Notes on account-signup plumbing",
		Date:        "2024-07-16",
		Tags:        []string{"go", "grpc"},
	}
}

func TestValidateFrontMatter_RoundTrip(t *testing.T) {
	env := validBlogEnvelope()

	fm, err := ValidateFrontMatter(CollectionBlog, "blog/signup-flow.md", env)
	if err != nil {
		t.Fatalf("ValidateFrontMatter: %v", err)
	}

	if fm.Title != env.Title {
		t.Fatalf("Title mismatch: got %q want %q", fm.Title, env.Title)
	}
	if fm.Description != env.Description {
		t.Fatalf("Description mismatch: got %q want %q", fm.Description, env.Description)
	}
	want := time.Date(2024, 7, 16, 0, 0, 0, 0, time.UTC)
	if !fm.Date.Equal(want) {
		t.Fatalf("Date mismatch: got %v want %v", fm.Date, want)
	}
	if fm.Draft {
		t.Fatalf("Draft should default to false")
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "go" {
		t.Fatalf("Tags mismatch: %#v", fm.Tags)
	}
}

func TestValidateFrontMatter_MissingRequiredFieldNamesField(t *testing.T) {
	tests := []struct {
		name  string
		field string
		strip func(*frontMatterEnvelope)
	}{
		{name: "missing title", field: "title", strip: func(e *frontMatterEnvelope) { e.Title = "" }},
		{name: "missing description", field: "description", strip: func(e *frontMatterEnvelope) { e.Description = "" }},
		{name: "missing date", field: "date", strip: func(e *frontMatterEnvelope) { e.Date = "" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := validBlogEnvelope()
			tc.strip(&env)

			_, err := ValidateFrontMatter(CollectionBlog, "blog/post.md", env)
			if !errors.Is(err, ErrSchemaViolation) {
				t.Fatalf("expected ErrSchemaViolation, got %v", err)
			}

			var violation *SchemaViolationError
			if !errors.As(err, &violation) {
				t.Fatalf("expected *SchemaViolationError, got %T", err)
			}
			if violation.Field != tc.field {
				t.Fatalf("violation names field %q, want %q", violation.Field, tc.field)
			}
			if !strings.Contains(err.Error(), "blog/post.md") {
				t.Fatalf("error should name the offending file: %v", err)
			}
		})
	}
}

func TestValidateFrontMatter_UnparseableDate(t *testing.T) {
	env := validBlogEnvelope()
	env.Date = "July the 16th"

	_, err := ValidateFrontMatter(CollectionBlog, "blog/post.md", env)
	if !errors.Is(err, ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
	var violation *SchemaViolationError
	if !errors.As(err, &violation) || violation.Field != "date" {
		t.Fatalf("expected date violation, got %v", err)
	}
}

func TestValidateFrontMatter_DateFormats(t *testing.T) {
	for _, raw := range []string{"2024-07-16", "2024-07-16T08:30:00Z", "2024-07-16T08:30:00", "2024-07-16 08:30:00"} {
		env := validBlogEnvelope()
		env.Date = raw
		if _, err := ValidateFrontMatter(CollectionBlog, "blog/post.md", env); err != nil {
			t.Fatalf("date %q should parse: %v", raw, err)
		}
	}
}

func TestValidateFrontMatter_ProjectURLs(t *testing.T) {
	env := frontMatterEnvelope{
		Title:       "gsd",
		Description: "A task tool",
		Date:        "2024-06-23",
		RepoURL:     "https://github.com/example/gsd",
		DemoURL:     "https://gsd.example.com",
	}

	fm, err := ValidateFrontMatter(CollectionProjects, "projects/gsd/index.md", env)
	if err != nil {
		t.Fatalf("ValidateFrontMatter: %v", err)
	}
	if fm.RepoURL != env.RepoURL || fm.DemoURL != env.DemoURL {
		t.Fatalf("project URLs not carried through: %#v", fm)
	}

	env.RepoURL = "not a url"
	_, err = ValidateFrontMatter(CollectionProjects, "projects/gsd/index.md", env)
	var violation *SchemaViolationError
	if !errors.As(err, &violation) || violation.Field != "repoURL" {
		t.Fatalf("expected repoURL violation, got %v", err)
	}
}

func TestValidateFrontMatter_ProjectFieldsRejectedOnBlog(t *testing.T) {
	env := validBlogEnvelope()
	env.RepoURL = "https://github.com/example/thing"

	_, err := ValidateFrontMatter(CollectionBlog, "blog/post.md", env)
	var violation *SchemaViolationError
	if !errors.As(err, &violation) || violation.Field != "repoURL" {
		t.Fatalf("expected repoURL schema violation on blog entry, got %v", err)
	}
}

func TestValidateFrontMatter_ReportsAllViolations(t *testing.T) {
	env := frontMatterEnvelope{}

	_, err := ValidateFrontMatter(CollectionBlog, "blog/post.md", env)
	if err == nil {
		t.Fatalf("expected violations for empty frontmatter")
	}
	msg := err.Error()
	for _, field := range []string{"title", "description", "date"} {
		if !strings.Contains(msg, field) {
			t.Fatalf("expected all violations reported, %q missing from: %s", field, msg)
		}
	}
}
