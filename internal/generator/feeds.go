package generator

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/goliatone/go-sitegen/content"
)

const maxFeedItems = 100

type feedItem struct {
	Title       string
	Description string
	Link        string
	GUID        string
	PublishedAt time.Time
}

// writeFeed emits the blog RSS feed at /blog/feed.xml. Drafts never appear
// in the feed, even in preview builds; feed readers have no preview mode.
func (s *Service) writeFeed(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var items []feedItem
	for entry := range s.store.List(content.CollectionBlog, content.ListOptions{Limit: maxFeedItems}) {
		link := absoluteURL(s.cfg.BaseURL, entry.Route())
		items = append(items, feedItem{
			Title:       entry.FrontMatter.Title,
			Description: entry.FrontMatter.Description,
			Link:        link,
			GUID:        link,
			PublishedAt: entry.FrontMatter.Date,
		})
	}

	feed := buildRSS(s.cfg.Title, s.cfg.Description, absoluteURL(s.cfg.BaseURL, "/blog/"), items)
	return s.writeFile("blog/feed.xml", []byte(feed))
}

func buildRSS(title, description, link string, items []feedItem) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	builder.WriteString(`<rss version="2.0">` + "\n")
	builder.WriteString("  <channel>\n")
	builder.WriteString(fmt.Sprintf("    <title>%s</title>\n", html.EscapeString(title)))
	builder.WriteString(fmt.Sprintf("    <link>%s</link>\n", html.EscapeString(link)))
	builder.WriteString(fmt.Sprintf("    <description>%s</description>\n", html.EscapeString(description)))
	for _, item := range items {
		builder.WriteString("    <item>\n")
		builder.WriteString(fmt.Sprintf("      <title>%s</title>\n", html.EscapeString(item.Title)))
		builder.WriteString(fmt.Sprintf("      <link>%s</link>\n", html.EscapeString(item.Link)))
		builder.WriteString(fmt.Sprintf("      <guid>%s</guid>\n", html.EscapeString(item.GUID)))
		builder.WriteString(fmt.Sprintf("      <description>%s</description>\n", html.EscapeString(item.Description)))
		if !item.PublishedAt.IsZero() {
			builder.WriteString(fmt.Sprintf("      <pubDate>%s</pubDate>\n", item.PublishedAt.UTC().Format(time.RFC1123Z)))
		}
		builder.WriteString("    </item>\n")
	}
	builder.WriteString("  </channel>\n")
	builder.WriteString("</rss>\n")
	return builder.String()
}
