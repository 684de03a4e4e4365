package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goliatone/go-sitegen/content"
)

// searchDocument is one record of the client-side search index. The actual
// indexing and querying happens in the browser; the build only emits the
// corpus.
type searchDocument struct {
	ID          string   `json:"id"`
	Collection  string   `json:"collection"`
	Slug        string   `json:"slug"`
	Route       string   `json:"route"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags,omitempty"`
	Date        string   `json:"date"`
}

// writeSearchIndex emits search-index.json covering every published entry
// across all collections. Drafts stay out of the index regardless of build
// mode so a preview build never leaks unpublished titles into a deployable
// artifact.
func (s *Service) writeSearchIndex(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var docs []searchDocument
	for _, col := range content.Collections() {
		for entry := range s.store.List(col, content.ListOptions{}) {
			docs = append(docs, searchDocument{
				ID:          entry.ID(),
				Collection:  string(entry.Collection),
				Slug:        entry.Slug,
				Route:       entry.Route(),
				Title:       entry.FrontMatter.Title,
				Description: entry.FrontMatter.Description,
				Tags:        entry.FrontMatter.Tags,
				Date:        entry.FrontMatter.Date.Format("2006-01-02"),
			})
		}
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Route < docs[j].Route })

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("generator: marshal search index: %w", err)
	}
	return s.writeFile("search-index.json", data)
}
