package content

import (
	"time"
)

// Collection partitions the entry namespace. Each collection owns its own
// frontmatter schema and slug space.
type Collection string

const (
	// CollectionBlog holds dated blog posts.
	CollectionBlog Collection = "blog"
	// CollectionProjects holds portfolio project entries.
	CollectionProjects Collection = "projects"
)

// Collections enumerates the known collections in a stable order.
func Collections() []Collection {
	return []Collection{CollectionBlog, CollectionProjects}
}

// String implements fmt.Stringer.
func (c Collection) String() string { return string(c) }

// FrontMatter is the schema-validated metadata block of an entry. Optional
// fields are zero-valued when absent; required fields are guaranteed
// non-zero once an entry has passed validation.
type FrontMatter struct {
	Title       string
	Description string
	Date        time.Time
	Draft       bool
	Tags        []string

	// Project-specific optional fields.
	RepoURL string
	DemoURL string
}

// Entry is one markdown document bound to a collection. Entries are
// constructed once per build by the loader and are immutable afterwards.
type Entry struct {
	Collection  Collection
	Slug        string
	FrontMatter FrontMatter

	// Body is the raw markdown source with the frontmatter block stripped.
	// Rendering to HTML is deferred to the render adapter.
	Body []byte

	// FilePath is the source path relative to the collection root, kept for
	// error reporting and sitemap last-modified dates.
	FilePath     string
	LastModified time.Time
	Checksum     []byte
}

// Route returns the canonical URL path for the entry.
func (e *Entry) Route() string {
	return "/" + string(e.Collection) + "/" + e.Slug + "/"
}

// ID identifies the entry within the whole site, e.g. "blog/my-post".
func (e *Entry) ID() string {
	return string(e.Collection) + "/" + e.Slug
}
