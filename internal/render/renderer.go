package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/goliatone/go-slug"

	"github.com/goliatone/go-tags/internal/frontmatter"
	"github.com/goliatone/go-tags/internal/logging"
	"github.com/goliatone/go-tags/internal/tagindex"
	"github.com/goliatone/go-tags/pkg/interfaces"
)

// ErrTemplate marks a configured template that does not exist or fails to
// parse. Fatal for the whole build.
var ErrTemplate = errors.New("render: template resolution")

// TagGroup is one (tag, pages) pair handed to the template, with the tag's
// original casing preserved for display.
type TagGroup struct {
	Name   string
	Anchor string
	Pages  []*frontmatter.PageMetadata
}

// Config controls template resolution and link construction.
type Config struct {
	// TemplatePath overrides the built-in template when non-empty.
	TemplatePath string
	// BaseURL switches page links from relative filenames to absolute URLs.
	BaseURL string
	// PageRoute is the urlkit route rendered per page when BaseURL is set.
	PageRoute string
}

// Renderer expands the sorted tag groups through a text template. The
// template owns the layout; the renderer only supplies the grouped data and
// the link/slug helpers.
type Renderer struct {
	tmpl   *template.Template
	links  *linkBuilder
	logger interfaces.Logger
}

// NewRenderer resolves the template once up front so a bad configuration
// fails the build before any scanning happens.
func NewRenderer(cfg Config, logger interfaces.Logger) (*Renderer, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	links, err := newLinkBuilder(cfg.BaseURL, cfg.PageRoute)
	if err != nil {
		return nil, err
	}

	r := &Renderer{links: links, logger: logger}

	funcs := template.FuncMap{
		"slugify": anchorFor,
		"pageurl": links.PageURL,
	}

	if cfg.TemplatePath == "" {
		tmpl, err := template.New("tags").Funcs(funcs).Parse(builtinTemplate)
		if err != nil {
			return nil, fmt.Errorf("%w: built-in template: %v", ErrTemplate, err)
		}
		r.tmpl = tmpl
		return r, nil
	}

	data, err := os.ReadFile(cfg.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrTemplate, cfg.TemplatePath, err)
	}
	name := filepath.Base(cfg.TemplatePath)
	tmpl, err := template.New(name).Funcs(funcs).Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrTemplate, cfg.TemplatePath, err)
	}

	logger.Debug("render.template.resolved", "path", cfg.TemplatePath)
	r.tmpl = tmpl
	return r, nil
}

// Render expands the index into the generated page text.
func (r *Renderer) Render(idx *tagindex.Index) (string, error) {
	groups := Groups(idx)

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, groups); err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}

	r.logger.Debug("render.page.generated", "tags", len(groups))
	return buf.String(), nil
}

// Groups returns the (tag, pages) pairs sorted by tag name ascending, using
// a case-insensitive comparison key while preserving original casing for
// display. Ties between tags differing only in case keep the index's
// first-insertion order, so the output stays deterministic.
func Groups(idx *tagindex.Index) []TagGroup {
	names := idx.Tags()
	sort.SliceStable(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	groups := make([]TagGroup, 0, len(names))
	for _, name := range names {
		groups = append(groups, TagGroup{
			Name:   name,
			Anchor: anchorFor(name),
			Pages:  idx.Pages(name),
		})
	}
	return groups
}

// anchorFor produces a URL-safe anchor for a tag heading. Normalisation
// failures fall back to the lower-cased tag so rendering never aborts over
// an anchor.
func anchorFor(tag string) string {
	normalized, err := slug.Normalize(tag)
	if err != nil || normalized == "" {
		return strings.ToLower(strings.TrimSpace(tag))
	}
	return normalized
}
