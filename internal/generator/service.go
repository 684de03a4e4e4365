package generator

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/google/uuid"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/render"
)

// SocialLink mirrors the site configuration's social entries for templates.
type SocialLink struct {
	Name string
	URL  string
}

// Config carries the slice of site configuration the generator needs. It is
// immutable for the duration of a build.
type Config struct {
	Title        string
	Description  string
	BaseURL      string
	ContactEmail string
	Social       []SocialLink

	OutputDir string
	AssetsDir string

	BlogPageSize     int
	ProjectsPageSize int
	HomeRecent       int

	// IncludeDrafts keeps draft entries in listings and entry pages
	// (preview builds).
	IncludeDrafts bool
}

// Dependencies lists the collaborators required by the generator.
type Dependencies struct {
	Store    *content.Store
	Markdown *render.Markdown
	Logger   glog.Logger
}

// BuildResult summarizes one build invocation.
type BuildResult struct {
	ID          uuid.UUID
	PagesBuilt  int
	AssetsBuilt int
	OutputDir   string
	Duration    time.Duration
}

// Service renders the whole static site: one page per entry, paginated
// collection indexes, the homepage, sitemap, robots, RSS feed, and the
// client-side search index.
type Service struct {
	cfg       Config
	store     *content.Store
	markdown  *render.Markdown
	logger    glog.Logger
	templates *templateSet
}

// NewService builds a generator from configuration and dependencies.
func NewService(cfg Config, deps Dependencies) (*Service, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("generator: content store is required")
	}
	// page sizes are defaulted by the site configuration, not here
	if cfg.BlogPageSize < 1 || cfg.ProjectsPageSize < 1 {
		return nil, fmt.Errorf("generator: page sizes must be positive (blog %d, projects %d)",
			cfg.BlogPageSize, cfg.ProjectsPageSize)
	}
	if deps.Markdown == nil {
		deps.Markdown = render.NewMarkdown(render.MarkdownOptions{})
	}
	logger := deps.Logger
	if logger == nil {
		logger = glog.NewLogger(glog.WithLoggerTypeConsole())
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:       cfg,
		store:     deps.Store,
		markdown:  deps.Markdown,
		logger:    logger,
		templates: templates,
	}, nil
}

func (s *Service) listOptions() content.ListOptions {
	return content.ListOptions{IncludeDrafts: s.cfg.IncludeDrafts}
}

func (s *Service) pageSize(col content.Collection) int {
	if col == content.CollectionProjects {
		return s.cfg.ProjectsPageSize
	}
	return s.cfg.BlogPageSize
}

// Build generates the full site into the configured output directory. The
// directory is recreated from scratch so removed entries never leave stale
// pages behind.
func (s *Service) Build(ctx context.Context) (*BuildResult, error) {
	start := time.Now()
	result := &BuildResult{
		ID:        uuid.New(),
		OutputDir: s.cfg.OutputDir,
	}

	s.logger.Info("starting site build", "build_id", result.ID.String(), "output", s.cfg.OutputDir)

	if err := s.resetOutputDir(); err != nil {
		return nil, err
	}

	assets, err := s.copyAssets(ctx)
	if err != nil {
		return nil, err
	}
	result.AssetsBuilt = assets

	var rendered []renderedPage

	for _, col := range content.Collections() {
		pages, err := s.buildCollection(ctx, col)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, pages...)
	}

	home, err := s.buildHomepage(ctx)
	if err != nil {
		return nil, err
	}
	rendered = append(rendered, home)

	if err := s.writeFeed(ctx); err != nil {
		return nil, err
	}
	if err := s.writeSearchIndex(ctx); err != nil {
		return nil, err
	}
	if err := s.writeSitemap(ctx, rendered); err != nil {
		return nil, err
	}
	if err := s.writeRobots(ctx); err != nil {
		return nil, err
	}

	result.PagesBuilt = len(rendered)
	result.Duration = time.Since(start)

	s.logger.Info("site build complete",
		"build_id", result.ID.String(),
		"pages", result.PagesBuilt,
		"assets", result.AssetsBuilt,
		"duration", result.Duration.String(),
	)
	return result, nil
}

// buildCollection renders every entry page plus the paginated index pages
// for one collection.
func (s *Service) buildCollection(ctx context.Context, col content.Collection) ([]renderedPage, error) {
	var rendered []renderedPage
	opts := s.listOptions()

	for entry := range s.store.List(col, opts) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := s.buildEntryPage(entry)
		if err != nil {
			return nil, err
		}
		rendered = append(rendered, page)
	}

	indexPages, err := s.buildCollectionIndexes(ctx, col)
	if err != nil {
		return nil, err
	}
	return append(rendered, indexPages...), nil
}

func (s *Service) buildEntryPage(entry *content.Entry) (renderedPage, error) {
	view := render.NewEntryView(entry, s.markdown)
	data := entryData{
		SiteData: s.siteData(view.Title, view.Description),
		Entry:    view,
	}

	out := outputPath(view.Route)
	if err := s.renderToFile(s.templates.entry, out, data); err != nil {
		return renderedPage{}, fmt.Errorf("generator: render %s: %w", view.Route, err)
	}

	s.logger.Debug("rendered entry page", "route", view.Route)
	return renderedPage{Route: view.Route, LastModified: entry.LastModified}, nil
}

func (s *Service) buildCollectionIndexes(ctx context.Context, col content.Collection) ([]renderedPage, error) {
	size := s.pageSize(col)
	opts := s.listOptions()

	first, err := s.store.Paginate(col, size, 1, opts)
	if err != nil {
		return nil, fmt.Errorf("generator: paginate %s: %w", col, err)
	}

	var rendered []renderedPage
	for number := 1; number <= first.TotalPages; number++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := first
		if number > 1 {
			page, err = s.store.Paginate(col, size, number, opts)
			if err != nil {
				return nil, fmt.Errorf("generator: paginate %s page %d: %w", col, number, err)
			}
		}

		route := collectionRoute(col, number)
		data := listData{
			SiteData:   s.siteData(listTitle(col), s.cfg.Description),
			Collection: string(col),
			Entries:    render.Views(page.Items, s.markdown),
			Pagination: paginationData(col, page),
		}
		if err := s.renderToFile(s.templates.list, outputPath(route), data); err != nil {
			return nil, fmt.Errorf("generator: render %s: %w", route, err)
		}
		rendered = append(rendered, renderedPage{Route: route})

		s.logger.Debug("rendered collection index",
			"collection", col, "page", number, "entries", len(page.Items))
	}
	return rendered, nil
}

func (s *Service) buildHomepage(ctx context.Context) (renderedPage, error) {
	if err := ctx.Err(); err != nil {
		return renderedPage{}, err
	}

	recent := s.cfg.HomeRecent
	if recent <= 0 {
		recent = 5
	}
	opts := s.listOptions()
	opts.Limit = recent

	data := homeData{
		SiteData: s.siteData(s.cfg.Title, s.cfg.Description),
	}
	for entry := range s.store.List(content.CollectionBlog, opts) {
		data.RecentPosts = append(data.RecentPosts, render.NewEntryView(entry, s.markdown))
	}
	for entry := range s.store.List(content.CollectionProjects, opts) {
		data.RecentProjects = append(data.RecentProjects, render.NewEntryView(entry, s.markdown))
	}

	if err := s.renderToFile(s.templates.home, outputPath("/"), data); err != nil {
		return renderedPage{}, fmt.Errorf("generator: render homepage: %w", err)
	}
	return renderedPage{Route: "/"}, nil
}

func (s *Service) resetOutputDir() error {
	if err := os.RemoveAll(s.cfg.OutputDir); err != nil {
		return fmt.Errorf("generator: clean output dir %s: %w", s.cfg.OutputDir, err)
	}
	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("generator: create output dir %s: %w", s.cfg.OutputDir, err)
	}
	return nil
}

// writeFile writes one artifact under the output directory, creating parent
// directories as needed.
func (s *Service) writeFile(rel string, data []byte) error {
	target := filepath.Join(s.cfg.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("generator: ensure dir for %s: %w", rel, err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("generator: write %s: %w", rel, err)
	}
	return nil
}

// renderedPage feeds the sitemap.
type renderedPage struct {
	Route        string
	LastModified time.Time
}
