package content

import (
	"fmt"
	"iter"
)

// SortKey selects the listing order. The default is descending by date with
// ties broken by ascending slug, so listings never reorder between builds.
type SortKey string

const (
	SortDateDesc SortKey = "date desc"
	SortDateAsc  SortKey = "date asc"
	SortTitleAsc SortKey = "title asc"
)

// ListOptions filter and shape a listing. The zero value lists published
// entries in default order without a limit.
type ListOptions struct {
	// IncludeDrafts keeps draft entries in the listing. Production builds
	// leave this false; preview mode sets it.
	IncludeDrafts bool
	// Sort overrides the default date-descending order.
	Sort SortKey
	// Limit truncates the sequence when positive.
	Limit int
	// Filter keeps only entries the predicate accepts. Applied after the
	// draft check.
	Filter func(*Entry) bool
}

func (o ListOptions) accepts(e *Entry) bool {
	if e.FrontMatter.Draft && !o.IncludeDrafts {
		return false
	}
	if o.Filter != nil && !o.Filter(e) {
		return false
	}
	return true
}

// Page is one slice of a paginated listing. Numbers are 1-indexed.
type Page struct {
	Items      []*Entry
	Number     int
	Size       int
	TotalItems int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

// List returns a lazy, restartable sequence over the collection. Iteration
// can stop early and restart; each traversal observes the same immutable
// snapshot.
func (s *Store) List(col Collection, opts ListOptions) iter.Seq[*Entry] {
	entries := s.sorted[col]
	if opts.Sort != "" && opts.Sort != SortDateDesc {
		resorted := make([]*Entry, len(entries))
		copy(resorted, entries)
		sortEntries(resorted, opts.Sort)
		entries = resorted
	}

	return func(yield func(*Entry) bool) {
		emitted := 0
		for _, entry := range entries {
			if !opts.accepts(entry) {
				continue
			}
			if opts.Limit > 0 && emitted >= opts.Limit {
				return
			}
			if !yield(entry) {
				return
			}
			emitted++
		}
	}
}

// GetBySlug returns the single entry for (collection, slug) or a
// NotFoundError. Draft status does not affect lookup; callers decide
// whether a draft is renderable.
func (s *Store) GetBySlug(col Collection, slug string) (*Entry, error) {
	bucket, ok := s.index[col]
	if !ok {
		return nil, &NotFoundError{Collection: col, Slug: slug}
	}
	entry, ok := bucket[slug]
	if !ok {
		return nil, &NotFoundError{Collection: col, Slug: slug}
	}
	return entry, nil
}

// Paginate slices the filtered, sorted listing into 1-indexed pages. A
// request past the last page fails with PageOutOfRangeError so templates
// can render a proper not-found state instead of an empty page. Page 1 of
// an empty collection is valid and empty, so index pages always exist.
func (s *Store) Paginate(col Collection, pageSize, pageNumber int, opts ListOptions) (*Page, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrPageSizeInvalid, pageSize)
	}
	if pageNumber < 1 {
		return nil, &PageOutOfRangeError{Collection: col, Page: pageNumber, TotalPages: 0}
	}

	var items []*Entry
	for entry := range s.List(col, opts) {
		items = append(items, entry)
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if pageNumber > totalPages {
		return nil, &PageOutOfRangeError{Collection: col, Page: pageNumber, TotalPages: totalPages}
	}

	start := (pageNumber - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	return &Page{
		Items:      items[start:end],
		Number:     pageNumber,
		Size:       pageSize,
		TotalItems: total,
		TotalPages: totalPages,
		HasNext:    pageNumber < totalPages,
		HasPrev:    pageNumber > 1,
	}, nil
}
