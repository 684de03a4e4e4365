package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	sitegen "github.com/goliatone/go-sitegen"
)

var (
	cfgFile    string
	previewRun bool
	siteConfig sitegen.Config
)

var rootCmd = &cobra.Command{
	Use:   "sitegen",
	Short: "Static blog and portfolio site generator",
	Long: `sitegen builds a static site from markdown files with YAML frontmatter.
Content lives in collection directories (content/blog, content/projects); the
output is plain HTML plus an RSS feed, sitemap, and search index.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadConfig()
	},
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&previewRun, "preview", false, "include draft entries in the build")
}

func loadConfig() error {
	v := viper.New()

	defaults := sitegen.DefaultConfig()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("content_dir", defaults.ContentDir)
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("assets_dir", defaults.AssetsDir)
	v.SetDefault("mode", defaults.Mode)
	v.SetDefault("pagination.blog_page_size", defaults.Pagination.BlogPageSize)
	v.SetDefault("pagination.projects_page_size", defaults.Pagination.ProjectsPageSize)
	v.SetDefault("pagination.home_recent", defaults.Pagination.HomeRecent)
	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("SITEGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config: %w", err)
		}
		// no config file found; defaults and environment variables apply
	}

	if err := v.Unmarshal(&siteConfig); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}

	if previewRun {
		siteConfig.Mode = sitegen.ModePreview
	}
	return nil
}
