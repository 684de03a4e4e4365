package content

import (
	"errors"
	"testing"
)

func TestSlugFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "plain file", path: "my-first-post.md", want: "my-first-post"},
		{name: "mdx extension", path: "my-first-post.mdx", want: "my-first-post"},
		{name: "nested file", path: "2024/my-first-post.md", want: "2024/my-first-post"},
		{name: "index inside directory", path: "gsd-tool/index.md", want: "gsd-tool"},
		{name: "index inside nested directory", path: "tools/gsd/index.mdx", want: "tools/gsd"},
		{name: "uppercase is normalized", path: "Hello-World.md", want: "hello-world"},
		{name: "windows separators", path: `2024\my-post.md`, want: "2024/my-post"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SlugFromPath(tc.path)
			if err != nil {
				t.Fatalf("SlugFromPath(%q): %v", tc.path, err)
			}
			if got != tc.want {
				t.Fatalf("SlugFromPath(%q) = %q, want %q", tc.path, got, tc.want)
			}
		})
	}
}

func TestSlugFromPath_Deterministic(t *testing.T) {
	first, err := SlugFromPath("2024/some-post.md")
	if err != nil {
		t.Fatalf("SlugFromPath: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := SlugFromPath("2024/some-post.md")
		if err != nil {
			t.Fatalf("SlugFromPath: %v", err)
		}
		if again != first {
			t.Fatalf("slug derivation not deterministic: %q vs %q", first, again)
		}
	}
}

func TestSlugFromPath_Empty(t *testing.T) {
	for _, path := range []string{"", ".", "index.md"} {
		if _, err := SlugFromPath(path); !errors.Is(err, ErrSlugEmpty) {
			t.Fatalf("SlugFromPath(%q): expected ErrSlugEmpty, got %v", path, err)
		}
	}
}

func TestNormalizeSlug(t *testing.T) {
	got, err := NormalizeSlug("Hello World")
	if err != nil {
		t.Fatalf("NormalizeSlug: %v", err)
	}
	if got != "hello-world" {
		t.Fatalf("NormalizeSlug(\"Hello World\") = %q, want \"hello-world\"", got)
	}
}

func TestIsValidSlug(t *testing.T) {
	if !IsValidSlug("hello-world") {
		t.Fatalf("expected canonical slug to be valid")
	}
	if IsValidSlug("Hello World") {
		t.Fatalf("expected non-canonical value to be invalid")
	}
}

func TestSlugFromPath_KeepsCanonicalSegments(t *testing.T) {
	// segments already in canonical form must pass through unchanged
	got, err := SlugFromPath("tools/gsd-tracker.md")
	if err != nil {
		t.Fatalf("SlugFromPath: %v", err)
	}
	if got != "tools/gsd-tracker" {
		t.Fatalf("SlugFromPath = %q, want \"tools/gsd-tracker\"", got)
	}
}

func TestIsMarkdownPath(t *testing.T) {
	if !IsMarkdownPath("blog/post.md") || !IsMarkdownPath("blog/post.MDX") {
		t.Fatalf("expected markdown extensions to be recognized")
	}
	if IsMarkdownPath("blog/image.png") || IsMarkdownPath("blog/notes.txt") {
		t.Fatalf("expected non-markdown extensions to be rejected")
	}
}
