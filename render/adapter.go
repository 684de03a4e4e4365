package render

import (
	"html/template"
	"sync"
	"time"

	"github.com/goliatone/go-sitegen/content"
)

// displayDateLayout is the locale-fixed listing date, e.g. "16 Jul 2024".
const displayDateLayout = "02 Jan 2006"

// EntryView is the view-model presentation templates consume. Scalar
// metadata is resolved eagerly; the rendered body stays behind a thunk so
// listing pages that only need titles and dates never pay for a full
// markdown render.
type EntryView struct {
	Collection  string
	Slug        string
	Route       string
	Title       string
	Description string
	Date        time.Time
	DisplayDate string
	Draft       bool
	Tags        []string
	RepoURL     string
	DemoURL     string

	once sync.Once
	html template.HTML
	err  error
	body func() ([]byte, error)
}

// NewEntryView adapts an entry for templates. The markdown engine is only
// invoked the first time Body is called; the result is cached for the rest
// of the build.
func NewEntryView(entry *content.Entry, md *Markdown) *EntryView {
	fm := entry.FrontMatter
	return &EntryView{
		Collection:  string(entry.Collection),
		Slug:        entry.Slug,
		Route:       entry.Route(),
		Title:       fm.Title,
		Description: fm.Description,
		Date:        fm.Date,
		DisplayDate: fm.Date.Format(displayDateLayout),
		Draft:       fm.Draft,
		Tags:        fm.Tags,
		RepoURL:     fm.RepoURL,
		DemoURL:     fm.DemoURL,
		body: func() ([]byte, error) {
			return md.Render(entry.Body)
		},
	}
}

// Body resolves the rendered markdown on first use. Safe to call from
// templates; the error return makes template execution fail loudly instead
// of emitting a blank article.
func (v *EntryView) Body() (template.HTML, error) {
	v.once.Do(func() {
		out, err := v.body()
		if err != nil {
			v.err = err
			return
		}
		v.html = template.HTML(out)
	})
	return v.html, v.err
}

// Views adapts a slice of entries in order.
func Views(entries []*content.Entry, md *Markdown) []*EntryView {
	views := make([]*EntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, NewEntryView(entry, md))
	}
	return views
}
