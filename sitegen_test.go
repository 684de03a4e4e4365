package sitegen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-sitegen/content"
)

func writeContentFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func scaffoldSite(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()
	contentDir := filepath.Join(dir, "content")

	writeContentFile(t, contentDir, "blog/hello-world.md", `---
title: Hello World
description: The first post.
date: 2024-06-01
---
# Hello

First post body.
`)
	writeContentFile(t, contentDir, "blog/drafts-note.md", `---
title: Drafts Note
description: Not ready yet.
date: 2024-07-01
draft: true
---
Draft body.
`)
	writeContentFile(t, contentDir, "projects/gsd.md", `---
title: GSD
description: A task tracker.
date: 2024-03-01
repoURL: https://github.com/example/gsd
---
Project body.
`)

	return Config{
		Title:      "Example Site",
		BaseURL:    "https://example.com",
		ContentDir: contentDir,
		OutputDir:  filepath.Join(dir, "public"),
		AssetsDir:  filepath.Join(dir, "static"),
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{Title: "x", Mode: "staging"})
	if err == nil {
		t.Fatal("expected config validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Errorf("error category = %v, want validation", err)
	}
}

func TestSiteBuildEndToEnd(t *testing.T) {
	cfg := scaffoldSite(t)
	site, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	result, err := site.Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.PagesBuilt == 0 {
		t.Error("expected pages to be built")
	}

	for _, rel := range []string{
		"index.html",
		"blog/hello-world/index.html",
		"blog/index.html",
		"projects/gsd/index.html",
		"projects/index.html",
		"sitemap.xml",
		"robots.txt",
		"blog/feed.xml",
		"search-index.json",
	} {
		if _, err := os.Stat(filepath.Join(cfg.OutputDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}

	// production build: drafts stay out
	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "blog", "drafts-note", "index.html")); !os.IsNotExist(err) {
		t.Errorf("draft should not be built in production, stat err = %v", err)
	}
}

func TestSiteBuildPreviewIncludesDrafts(t *testing.T) {
	cfg := scaffoldSite(t)
	cfg.Mode = ModePreview
	site, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := site.Build(context.Background()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.OutputDir, "blog", "drafts-note", "index.html")); err != nil {
		t.Errorf("draft should be built in preview: %v", err)
	}
}

func TestSiteBuildReportsSchemaViolations(t *testing.T) {
	cfg := scaffoldSite(t)
	writeContentFile(t, cfg.ContentDir, "blog/broken.md", `---
title: Broken
date: not-a-date
---
Body.
`)

	site, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = site.Build(context.Background())
	if err == nil {
		t.Fatal("expected schema violation to fail the build")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Errorf("error category = %v, want validation", err)
	}
	if !errors.Is(err, content.ErrSchemaViolation) {
		t.Errorf("expected schema violation in chain, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken.md") {
		t.Errorf("error %q does not name the broken file", err)
	}
}

func TestSiteBuildMissingContentDir(t *testing.T) {
	cfg := scaffoldSite(t)
	cfg.ContentDir = filepath.Join(cfg.ContentDir, "nope")

	site, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := site.Build(context.Background()); err == nil {
		t.Fatal("expected error for missing content directory")
	}
}
