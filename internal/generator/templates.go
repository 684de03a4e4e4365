package generator

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/render"
)

//go:embed templates/*.html
var templateFS embed.FS

// templateSet holds one parsed set per page kind. Each set shares the base
// layout but defines its own "main" block, so the sets are parsed
// separately to keep the block names from clashing.
type templateSet struct {
	home  *template.Template
	list  *template.Template
	entry *template.Template
}

func loadTemplates() (*templateSet, error) {
	parse := func(page string) (*template.Template, error) {
		t, err := template.New("base.html").ParseFS(templateFS, "templates/base.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("generator: parse template %s: %w", page, err)
		}
		return t, nil
	}

	home, err := parse("home.html")
	if err != nil {
		return nil, err
	}
	list, err := parse("list.html")
	if err != nil {
		return nil, err
	}
	entry, err := parse("entry.html")
	if err != nil {
		return nil, err
	}

	return &templateSet{home: home, list: list, entry: entry}, nil
}

// SiteData is the chrome every page shares: identity, social links, and the
// per-page meta tags.
type SiteData struct {
	Site            siteIdentity
	PageTitle       string
	PageDescription string
	Year            int
}

type siteIdentity struct {
	Title        string
	Description  string
	BaseURL      string
	ContactEmail string
	Social       []SocialLink
}

func (s *Service) siteData(pageTitle, pageDescription string) SiteData {
	return SiteData{
		Site: siteIdentity{
			Title:        s.cfg.Title,
			Description:  s.cfg.Description,
			BaseURL:      s.cfg.BaseURL,
			ContactEmail: s.cfg.ContactEmail,
			Social:       s.cfg.Social,
		},
		PageTitle:       pageTitle,
		PageDescription: pageDescription,
		Year:            time.Now().Year(),
	}
}

type homeData struct {
	SiteData
	RecentPosts    []*render.EntryView
	RecentProjects []*render.EntryView
}

type listData struct {
	SiteData
	Collection string
	Entries    []*render.EntryView
	Pagination pagination
}

type entryData struct {
	SiteData
	Entry *render.EntryView
}

// pagination is the navigation state for a listing page.
type pagination struct {
	Number     int
	TotalPages int
	TotalItems int
	HasNext    bool
	HasPrev    bool
	NextRoute  string
	PrevRoute  string
}

func paginationData(col content.Collection, page *content.Page) pagination {
	p := pagination{
		Number:     page.Number,
		TotalPages: page.TotalPages,
		TotalItems: page.TotalItems,
		HasNext:    page.HasNext,
		HasPrev:    page.HasPrev,
	}
	if page.HasNext {
		p.NextRoute = collectionRoute(col, page.Number+1)
	}
	if page.HasPrev {
		p.PrevRoute = collectionRoute(col, page.Number-1)
	}
	return p
}

func listTitle(col content.Collection) string {
	switch col {
	case content.CollectionProjects:
		return "Projects"
	default:
		return "Blog"
	}
}

// renderToFile executes a template set against data and writes the result.
// Rendering goes through a buffer so a template error never leaves a
// half-written page on disk.
func (s *Service) renderToFile(t *template.Template, rel string, data any) error {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return err
	}
	return s.writeFile(rel, buf.Bytes())
}
