// Package sitegen builds a static blog and portfolio site from directories
// of markdown files with YAML frontmatter. Content is loaded and validated
// into an immutable in-memory store, queried through list and pagination
// operations, rendered to HTML lazily, and written out as a complete static
// site: entry pages, paginated indexes, homepage, RSS feed, sitemap, robots
// directives, and a client-side search index.
package sitegen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	goerrors "github.com/goliatone/go-errors"
	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-sitegen/content"
	"github.com/goliatone/go-sitegen/internal/generator"
	"github.com/goliatone/go-sitegen/render"
)

// Error text codes surfaced to CLI consumers.
const (
	configInvalidCode  = "CONFIG_INVALID"
	contentInvalidCode = "CONTENT_INVALID"
	buildFailedCode    = "BUILD_FAILED"
)

// BuildResult is re-exported so callers don't import internal packages.
type BuildResult = generator.BuildResult

// Site is the top-level handle: configuration plus the collaborators a
// build needs. Construct it once with New and reuse it across builds; each
// Build call reloads content from disk.
type Site struct {
	cfg      Config
	logger   *glog.BaseLogger
	markdown *render.Markdown
}

// New validates the configuration and assembles a Site.
func New(cfg Config) (*Site, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid site configuration").
			WithTextCode(configInvalidCode)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid logging configuration").
			WithTextCode(configInvalidCode)
	}

	return &Site{
		cfg:      cfg,
		logger:   logger,
		markdown: render.NewMarkdown(render.MarkdownOptions{}),
	}, nil
}

// Config returns the effective configuration, defaults applied.
func (s *Site) Config() Config {
	return s.cfg
}

// Load reads and validates every entry under the content directory and
// returns the queryable store. One invalid entry fails the load; all
// violations are reported together.
func (s *Site) Load(ctx context.Context) (*content.Store, error) {
	if _, err := os.Stat(s.cfg.ContentDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, goerrors.Wrap(err, goerrors.CategoryValidation,
				fmt.Sprintf("content directory %s does not exist", s.cfg.ContentDir)).
				WithTextCode(contentInvalidCode)
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "content directory is not readable").
			WithTextCode(buildFailedCode)
	}

	loader := content.NewLoader(os.DirFS(s.cfg.ContentDir), content.LoaderConfig{
		Logger: s.logger.GetLogger("content"),
	})
	entries, err := loader.Load(ctx)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "content validation failed").
			WithTextCode(contentInvalidCode)
	}

	store, err := content.NewStore(entries)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "content validation failed").
			WithTextCode(contentInvalidCode)
	}
	return store, nil
}

// Build loads content from disk and generates the full site into the
// configured output directory.
func (s *Site) Build(ctx context.Context) (*BuildResult, error) {
	store, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	svc, err := generator.NewService(s.generatorConfig(), generator.Dependencies{
		Store:    store,
		Markdown: s.markdown,
		Logger:   s.logger.GetLogger("generator"),
	})
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "site build failed").
			WithTextCode(buildFailedCode)
	}

	result, err := svc.Build(ctx)
	if err != nil {
		if goerrors.IsWrapped(err) {
			return nil, err
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryCommand, "site build failed").
			WithTextCode(buildFailedCode)
	}
	return result, nil
}

func (s *Site) generatorConfig() generator.Config {
	social := make([]generator.SocialLink, 0, len(s.cfg.Social))
	for _, link := range s.cfg.Social {
		social = append(social, generator.SocialLink{Name: link.Name, URL: link.URL})
	}

	return generator.Config{
		Title:            s.cfg.Title,
		Description:      s.cfg.Description,
		BaseURL:          s.cfg.BaseURL,
		ContactEmail:     s.cfg.ContactEmail,
		Social:           social,
		OutputDir:        s.cfg.OutputDir,
		AssetsDir:        s.cfg.AssetsDir,
		BlogPageSize:     s.cfg.Pagination.PageSize(content.CollectionBlog),
		ProjectsPageSize: s.cfg.Pagination.PageSize(content.CollectionProjects),
		HomeRecent:       s.cfg.Pagination.HomeRecent,
		IncludeDrafts:    s.cfg.IncludeDrafts(),
	}
}
