package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	sitegen "github.com/goliatone/go-sitegen"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long: `Build loads every markdown entry under the content directory, validates
frontmatter against the collection schema, and writes the finished site to
the output directory. One invalid entry fails the build; every violation is
reported together.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return runBuild(ctx, siteConfig)
	},
}

func runBuild(ctx context.Context, cfg sitegen.Config) error {
	site, err := sitegen.New(cfg)
	if err != nil {
		return err
	}

	result, err := site.Build(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("built %d pages and %d assets into %s in %s\n",
		result.PagesBuilt, result.AssetsBuilt, result.OutputDir, result.Duration)
	return nil
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
