package generator

import (
	"fmt"
	"path"
	"strings"

	"github.com/goliatone/go-sitegen/content"
)

// outputPath maps a site route to its file under the output directory.
// Routes are directory-style, so every page lands in an index.html.
func outputPath(route string) string {
	clean := strings.Trim(strings.TrimSpace(route), "/")
	if clean == "" {
		return "index.html"
	}
	return path.Join(clean, "index.html")
}

// collectionRoute returns the listing route for a collection page. Page 1
// is the bare collection index; later pages live under /page/<n>/.
func collectionRoute(col content.Collection, number int) string {
	if number <= 1 {
		return fmt.Sprintf("/%s/", col)
	}
	return fmt.Sprintf("/%s/page/%d/", col, number)
}

// absoluteURL joins the configured base URL with a route.
func absoluteURL(baseURL, route string) string {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = "http://localhost"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	return base + route
}
