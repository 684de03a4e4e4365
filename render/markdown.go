package render

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownOptions tune the markdown engine. The zero value matches how the
// site is built: GFM, footnotes, class-based syntax highlighting, and
// sanitized output.
type MarkdownOptions struct {
	// HardWraps renders single newlines as <br>.
	HardWraps bool
	// Unsafe passes raw HTML blocks through instead of sanitizing. Only
	// preview builds should consider this.
	Unsafe bool
}

// Markdown renders markdown bodies to sanitized HTML. The engine is
// stateless after construction, so one instance is shared across the whole
// build without locking.
type Markdown struct {
	engine goldmark.Markdown
	policy *bluemonday.Policy
}

// NewMarkdown constructs the site's markdown engine: GFM extensions,
// autolinks, task lists, footnotes, auto heading IDs, and chroma syntax
// highlighting emitting CSS classes so the stylesheet stays in control of
// the theme.
func NewMarkdown(opts MarkdownOptions) *Markdown {
	var rendererOptions []renderer.Option
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
			extension.TaskList,
			extension.Footnote,
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	engine := goldmark.New(engineOptions...)

	var policy *bluemonday.Policy
	if !opts.Unsafe {
		policy = sanitizePolicy()
	}

	return &Markdown{engine: engine, policy: policy}
}

// Render converts a markdown body to HTML, sanitizing the result unless
// the engine was built unsafe.
func (m *Markdown) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("render: markdown convert: %w", err)
	}
	out := buf.Bytes()
	if m.policy != nil {
		out = m.policy.SanitizeBytes(out)
	}
	return out, nil
}

// sanitizePolicy is the UGC policy extended to keep the class attributes
// chroma emits for syntax highlighting and the ids goldmark assigns to
// headings.
func sanitizePolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").OnElements("pre", "code", "span", "div")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.AllowAttrs("class", "type", "checked", "disabled").OnElements("input", "li", "ul")
	return policy
}
