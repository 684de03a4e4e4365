package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-sitegen/content"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		route string
		want  string
	}{
		{"/", "index.html"},
		{"", "index.html"},
		{"/blog/", "blog/index.html"},
		{"/blog/first-post/", "blog/first-post/index.html"},
		{"/projects/page/2/", "projects/page/2/index.html"},
	}
	for _, tc := range cases {
		if got := outputPath(tc.route); got != tc.want {
			t.Errorf("outputPath(%q) = %q, want %q", tc.route, got, tc.want)
		}
	}
}

func TestCollectionRoute(t *testing.T) {
	if got := collectionRoute(content.CollectionBlog, 1); got != "/blog/" {
		t.Errorf("page 1 route = %q", got)
	}
	if got := collectionRoute(content.CollectionProjects, 3); got != "/projects/page/3/" {
		t.Errorf("page 3 route = %q", got)
	}
}

func TestAbsoluteURL(t *testing.T) {
	if got := absoluteURL("https://example.com/", "/blog/"); got != "https://example.com/blog/" {
		t.Errorf("absoluteURL = %q", got)
	}
	if got := absoluteURL("", "/blog/"); got != "http://localhost/blog/" {
		t.Errorf("absoluteURL with empty base = %q", got)
	}
}

func TestBuildSitemapDedupesAndSorts(t *testing.T) {
	mod := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	pages := []renderedPage{
		{Route: "/blog/b/", LastModified: mod},
		{Route: "/blog/a/"},
		{Route: "/blog/b/", LastModified: mod},
		{Route: "/"},
	}
	fallback := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	sitemap := buildSitemap("https://example.com", pages, fallback)

	if strings.Count(sitemap, "<loc>https://example.com/blog/b/</loc>") != 1 {
		t.Errorf("duplicate routes should collapse:\n%s", sitemap)
	}
	a := strings.Index(sitemap, "https://example.com/blog/a/")
	b := strings.Index(sitemap, "https://example.com/blog/b/")
	if a == -1 || b == -1 || a > b {
		t.Errorf("locations not sorted:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<lastmod>2024-07-01T00:00:00Z</lastmod>") {
		t.Errorf("missing lastmod from page:\n%s", sitemap)
	}
	if !strings.Contains(sitemap, "<lastmod>2024-08-01T00:00:00Z</lastmod>") {
		t.Errorf("missing fallback lastmod:\n%s", sitemap)
	}
}

func TestBuildRSSEscapesContent(t *testing.T) {
	feed := buildRSS("A & B", "desc", "https://example.com/blog/", []feedItem{
		{Title: "<script>", Link: "https://example.com/blog/x/", GUID: "https://example.com/blog/x/"},
	})
	if !strings.Contains(feed, "<title>A &amp; B</title>") {
		t.Errorf("channel title not escaped:\n%s", feed)
	}
	if !strings.Contains(feed, "&lt;script&gt;") {
		t.Errorf("item title not escaped:\n%s", feed)
	}
}
