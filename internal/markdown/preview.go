package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// PreviewRenderer converts the generated tags page into HTML so the CLI can
// show what the host build will produce. The renderer is stateless and safe
// to reuse.
type PreviewRenderer struct {
	engine goldmark.Markdown
}

// NewPreviewRenderer constructs a renderer with GFM extensions and raw HTML
// enabled; the built-in tags template emits span elements for tag headings.
func NewPreviewRenderer() *PreviewRenderer {
	return &PreviewRenderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// Render converts markdown into HTML.
func (r *PreviewRenderer) Render(source []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown preview: %w", err)
	}
	return buf.Bytes(), nil
}
