package generator

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

type sitemapEntry struct {
	Location string
	LastMod  time.Time
}

func buildSitemap(baseURL string, pages []renderedPage, fallback time.Time) string {
	entries := make([]sitemapEntry, 0, len(pages))
	seen := map[string]struct{}{}
	for _, page := range pages {
		route := strings.TrimSpace(page.Route)
		if route == "" {
			route = "/"
		}
		location := absoluteURL(baseURL, route)
		if _, ok := seen[location]; ok {
			continue
		}
		seen[location] = struct{}{}

		lastMod := page.LastModified
		if lastMod.IsZero() {
			lastMod = fallback
		}
		entries = append(entries, sitemapEntry{Location: location, LastMod: lastMod})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Location < entries[j].Location
	})

	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range entries {
		builder.WriteString("  <url>\n")
		builder.WriteString(fmt.Sprintf("    <loc>%s</loc>\n", entry.Location))
		if !entry.LastMod.IsZero() {
			builder.WriteString(fmt.Sprintf("    <lastmod>%s</lastmod>\n", entry.LastMod.UTC().Format(time.RFC3339)))
		}
		builder.WriteString("  </url>\n")
	}
	builder.WriteString(`</urlset>` + "\n")
	return builder.String()
}

func buildRobots(baseURL string) string {
	var builder strings.Builder
	builder.WriteString("User-agent: *\n")
	builder.WriteString("Allow: /\n")
	builder.WriteString("\n")
	builder.WriteString(fmt.Sprintf("Sitemap: %s\n", absoluteURL(baseURL, "/sitemap.xml")))
	return builder.String()
}

func (s *Service) writeSitemap(ctx context.Context, pages []renderedPage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sitemap := buildSitemap(s.cfg.BaseURL, pages, time.Now().UTC())
	return s.writeFile("sitemap.xml", []byte(sitemap))
}

func (s *Service) writeRobots(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writeFile("robots.txt", []byte(buildRobots(s.cfg.BaseURL)))
}
