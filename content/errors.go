package content

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSchemaViolation = errors.New("content: frontmatter schema violation")
	ErrSlugCollision   = errors.New("content: slug collision")
	ErrNotFound        = errors.New("content: entry not found")
	ErrPageOutOfRange  = errors.New("content: page out of range")
	ErrSlugEmpty       = errors.New("content: derived slug is empty")
	ErrPageSizeInvalid = errors.New("content: page size must be positive")
)

// SchemaViolationError reports an invalid or missing frontmatter field. The
// build fails as a whole on the first collection scan that produces one.
type SchemaViolationError struct {
	Collection Collection
	Path       string
	Field      string
	Reason     string
}

func (e *SchemaViolationError) Error() string {
	if e == nil {
		return ErrSchemaViolation.Error()
	}
	var sb strings.Builder
	sb.WriteString(ErrSchemaViolation.Error())
	if path := strings.TrimSpace(e.Path); path != "" {
		fmt.Fprintf(&sb, ": %s", path)
	}
	if field := strings.TrimSpace(e.Field); field != "" {
		fmt.Fprintf(&sb, ": field %q", field)
	}
	if reason := strings.TrimSpace(e.Reason); reason != "" {
		fmt.Fprintf(&sb, ": %s", reason)
	}
	return sb.String()
}

func (e *SchemaViolationError) Unwrap() error {
	return ErrSchemaViolation
}

// SlugCollisionError reports two source paths resolving to the same
// (collection, slug) pair. Both paths are named so the author can decide
// which file to rename.
type SlugCollisionError struct {
	Collection Collection
	Slug       string
	Path       string
	Existing   string
}

func (e *SlugCollisionError) Error() string {
	if e == nil {
		return ErrSlugCollision.Error()
	}
	return fmt.Sprintf("%s: %s/%s claimed by both %s and %s",
		ErrSlugCollision.Error(), e.Collection, e.Slug, e.Existing, e.Path)
}

func (e *SlugCollisionError) Unwrap() error {
	return ErrSlugCollision
}

// NotFoundError reports a query for a nonexistent slug.
type NotFoundError struct {
	Collection Collection
	Slug       string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ErrNotFound.Error()
	}
	return fmt.Sprintf("%s: %s/%s", ErrNotFound.Error(), e.Collection, e.Slug)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// PageOutOfRangeError reports a pagination request past the last available
// page. Callers render a proper not-found state instead of an empty page.
type PageOutOfRangeError struct {
	Collection Collection
	Page       int
	TotalPages int
}

func (e *PageOutOfRangeError) Error() string {
	if e == nil {
		return ErrPageOutOfRange.Error()
	}
	return fmt.Sprintf("%s: %s page %d of %d",
		ErrPageOutOfRange.Error(), e.Collection, e.Page, e.TotalPages)
}

func (e *PageOutOfRangeError) Unwrap() error {
	return ErrPageOutOfRange
}
