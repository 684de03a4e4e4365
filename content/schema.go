package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// dateLayouts are the frontmatter date formats accepted, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// frontMatterEnvelope is the raw YAML shape of a frontmatter block before
// validation. Dates stay strings here so a malformed value surfaces as a
// schema violation naming the field instead of a generic decode error.
type frontMatterEnvelope struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Date        string   `yaml:"date" json:"date"`
	Draft       bool     `yaml:"draft" json:"draft"`
	Tags        []string `yaml:"tags" json:"tags"`
	RepoURL     string   `yaml:"repoURL" json:"repoURL"`
	DemoURL     string   `yaml:"demoURL" json:"demoURL"`
}

// ValidateFrontMatter checks a raw frontmatter envelope against the schema
// of the given collection and returns the typed FrontMatter. Validation
// order: required-field presence first, then per-field format checks. Every
// violation is reported, each as a SchemaViolationError naming the field;
// multiple violations are joined.
func ValidateFrontMatter(col Collection, path string, env frontMatterEnvelope) (FrontMatter, error) {
	rules := []*validation.FieldRules{
		validation.Field(&env.Title,
			validation.Required.Error("is required and must be non-empty")),
		validation.Field(&env.Description,
			validation.Required.Error("is required")),
		validation.Field(&env.Date,
			validation.Required.Error("is required"),
			validation.By(dateParses)),
	}

	switch col {
	case CollectionProjects:
		rules = append(rules,
			validation.Field(&env.RepoURL, is.URL.Error("must be a well-formed URL")),
			validation.Field(&env.DemoURL, is.URL.Error("must be a well-formed URL")),
		)
	default:
		rules = append(rules,
			validation.Field(&env.RepoURL,
				validation.Empty.Error(fmt.Sprintf("is not part of the %s schema", col))),
			validation.Field(&env.DemoURL,
				validation.Empty.Error(fmt.Sprintf("is not part of the %s schema", col))),
		)
	}

	if err := validation.ValidateStruct(&env, rules...); err != nil {
		return FrontMatter{}, schemaViolations(col, path, err)
	}

	date, err := parseDate(env.Date)
	if err != nil {
		return FrontMatter{}, &SchemaViolationError{
			Collection: col,
			Path:       path,
			Field:      "date",
			Reason:     err.Error(),
		}
	}

	fm := FrontMatter{
		Title:       strings.TrimSpace(env.Title),
		Description: env.Description,
		Date:        date,
		Draft:       env.Draft,
		RepoURL:     env.RepoURL,
		DemoURL:     env.DemoURL,
	}
	for _, tag := range env.Tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			fm.Tags = append(fm.Tags, tag)
		}
	}
	return fm, nil
}

// schemaViolations converts an ozzo validation result into one
// SchemaViolationError per offending field, joined in field order so the
// build output is deterministic.
func schemaViolations(col Collection, path string, err error) error {
	verrs, ok := err.(validation.Errors)
	if !ok {
		return &SchemaViolationError{Collection: col, Path: path, Reason: err.Error()}
	}

	fields := make([]string, 0, len(verrs))
	for field := range verrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	violations := make([]error, 0, len(fields))
	for _, field := range fields {
		violations = append(violations, &SchemaViolationError{
			Collection: col,
			Path:       path,
			Field:      field,
			Reason:     verrs[field].Error(),
		})
	}
	return errors.Join(violations...)
}

func dateParses(value any) error {
	raw, _ := value.(string)
	if strings.TrimSpace(raw) == "" {
		// Presence is handled by the Required rule.
		return nil
	}
	if _, err := parseDate(raw); err != nil {
		return err
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("must be a parseable date (got %q)", raw)
}
