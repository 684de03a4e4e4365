package content

import (
	"errors"
	"sort"
)

// Store is the immutable in-memory index of all entries, keyed by
// (collection, slug). It is built once per build invocation and is safe for
// concurrent reads; there are no writes after construction.
type Store struct {
	index  map[Collection]map[string]*Entry
	sorted map[Collection][]*Entry
}

// NewStore indexes the given entries. Slug uniqueness within a collection
// is enforced here, at merge time: a collision is a build-fatal error
// naming both source paths, never a silently-dropped entry. Entries are
// pre-sorted by descending date, ties broken by ascending slug, so default
// listings are deterministic.
func NewStore(entries []*Entry) (*Store, error) {
	s := &Store{
		index:  make(map[Collection]map[string]*Entry),
		sorted: make(map[Collection][]*Entry),
	}
	for _, col := range Collections() {
		s.index[col] = make(map[string]*Entry)
	}

	var collisions []error
	for _, entry := range entries {
		bucket, ok := s.index[entry.Collection]
		if !ok {
			bucket = make(map[string]*Entry)
			s.index[entry.Collection] = bucket
		}
		if existing, ok := bucket[entry.Slug]; ok {
			collisions = append(collisions, &SlugCollisionError{
				Collection: entry.Collection,
				Slug:       entry.Slug,
				Path:       entry.FilePath,
				Existing:   existing.FilePath,
			})
			continue
		}
		bucket[entry.Slug] = entry
		s.sorted[entry.Collection] = append(s.sorted[entry.Collection], entry)
	}

	if len(collisions) > 0 {
		return nil, errors.Join(collisions...)
	}

	for col := range s.sorted {
		sortEntries(s.sorted[col], SortDateDesc)
	}

	return s, nil
}

// Count returns the number of entries in a collection, drafts included.
func (s *Store) Count(col Collection) int {
	return len(s.sorted[col])
}

func sortEntries(entries []*Entry, key SortKey) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		switch key {
		case SortDateAsc:
			if !a.FrontMatter.Date.Equal(b.FrontMatter.Date) {
				return a.FrontMatter.Date.Before(b.FrontMatter.Date)
			}
		case SortTitleAsc:
			if a.FrontMatter.Title != b.FrontMatter.Title {
				return a.FrontMatter.Title < b.FrontMatter.Title
			}
		default: // SortDateDesc
			if !a.FrontMatter.Date.Equal(b.FrontMatter.Date) {
				return a.FrontMatter.Date.After(b.FrontMatter.Date)
			}
		}
		return a.Slug < b.Slug
	})
}
