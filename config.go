package sitegen

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/goliatone/go-sitegen/content"
)

// Build modes. Production excludes drafts; preview includes them.
const (
	ModeProduction = "production"
	ModePreview    = "preview"
)

// SocialLink is one name + URL pair rendered in the site chrome.
type SocialLink struct {
	Name string `mapstructure:"name" yaml:"name"`
	URL  string `mapstructure:"url" yaml:"url"`
}

// Validate implements validation for a single social link.
func (l SocialLink) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name, validation.Required),
		validation.Field(&l.URL, validation.Required, is.URL),
	)
}

// PaginationConfig fixes the per-listing-page item counts.
type PaginationConfig struct {
	BlogPageSize     int `mapstructure:"blog_page_size" yaml:"blog_page_size"`
	ProjectsPageSize int `mapstructure:"projects_page_size" yaml:"projects_page_size"`
	// HomeRecent is how many recent entries per collection the homepage shows.
	HomeRecent int `mapstructure:"home_recent" yaml:"home_recent"`
}

// PageSize returns the configured page size for a collection.
func (p PaginationConfig) PageSize(col content.Collection) int {
	switch col {
	case content.CollectionProjects:
		return p.ProjectsPageSize
	default:
		return p.BlogPageSize
	}
}

// Config is the process-wide site identity record. It is constructed once
// at build start, validated, and passed by value into rendering calls;
// nothing mutates it afterwards.
type Config struct {
	Title        string       `mapstructure:"title" yaml:"title"`
	Description  string       `mapstructure:"description" yaml:"description"`
	BaseURL      string       `mapstructure:"base_url" yaml:"base_url"`
	ContactEmail string       `mapstructure:"contact_email" yaml:"contact_email"`
	Social       []SocialLink `mapstructure:"social" yaml:"social"`

	ContentDir string `mapstructure:"content_dir" yaml:"content_dir"`
	OutputDir  string `mapstructure:"output_dir" yaml:"output_dir"`
	AssetsDir  string `mapstructure:"assets_dir" yaml:"assets_dir"`

	Pagination PaginationConfig `mapstructure:"pagination" yaml:"pagination"`

	// Mode selects production (drafts excluded) or preview (drafts kept).
	Mode string `mapstructure:"mode" yaml:"mode"`

	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig mirrors the go-logger options the CLI exposes.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns the baseline configuration a site starts from.
func DefaultConfig() Config {
	return Config{
		Title:      "My Site",
		ContentDir: "content",
		OutputDir:  "public",
		AssetsDir:  "static",
		Pagination: PaginationConfig{
			BlogPageSize:     10,
			ProjectsPageSize: 12,
			HomeRecent:       5,
		},
		Mode: ModeProduction,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "pretty",
		},
	}
}

// WithDefaults fills zero-valued fields from DefaultConfig.
func (c Config) WithDefaults() Config {
	defaults := DefaultConfig()
	if c.Title == "" {
		c.Title = defaults.Title
	}
	if c.ContentDir == "" {
		c.ContentDir = defaults.ContentDir
	}
	if c.OutputDir == "" {
		c.OutputDir = defaults.OutputDir
	}
	if c.AssetsDir == "" {
		c.AssetsDir = defaults.AssetsDir
	}
	if c.Pagination.BlogPageSize == 0 {
		c.Pagination.BlogPageSize = defaults.Pagination.BlogPageSize
	}
	if c.Pagination.ProjectsPageSize == 0 {
		c.Pagination.ProjectsPageSize = defaults.Pagination.ProjectsPageSize
	}
	if c.Pagination.HomeRecent == 0 {
		c.Pagination.HomeRecent = defaults.Pagination.HomeRecent
	}
	if c.Mode == "" {
		c.Mode = defaults.Mode
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaults.Logging.Format
	}
	return c
}

// Validate checks the configuration before a build starts.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Title, validation.Required),
		validation.Field(&c.BaseURL, is.URL),
		validation.Field(&c.ContactEmail, is.Email),
		validation.Field(&c.Social),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Mode, validation.In(ModeProduction, ModePreview)),
		validation.Field(&c.Pagination, validation.By(func(any) error {
			return c.Pagination.validate()
		})),
	)
}

func (p PaginationConfig) validate() error {
	errs := validation.Errors{}
	if p.BlogPageSize < 1 {
		errs["blog_page_size"] = validation.NewError(
			"sitegen.pagination.blog_page_size", "must be a positive item count")
	}
	if p.ProjectsPageSize < 1 {
		errs["projects_page_size"] = validation.NewError(
			"sitegen.pagination.projects_page_size", "must be a positive item count")
	}
	if p.HomeRecent < 1 {
		errs["home_recent"] = validation.NewError(
			"sitegen.pagination.home_recent", "must be a positive item count")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IncludeDrafts reports whether queries for this build keep draft entries.
func (c Config) IncludeDrafts() bool {
	return c.Mode == ModePreview
}
