// Package tags aggregates front-matter tags from a markdown documentation
// tree and renders a generated page grouping every page by tag. It plugs
// into a host static-site build through three lifecycle events; see Plugin.
package tags

import (
	"errors"

	"github.com/goliatone/go-tags/internal/frontmatter"
	"github.com/goliatone/go-tags/internal/render"
	"github.com/goliatone/go-tags/internal/tagindex"
)

// MetaKeyAllTags is the page-metadata key OnPage populates with the full tag
// index.
const MetaKeyAllTags = "all_tags"

// ErrLifecycleOrder reports lifecycle events invoked out of order.
var ErrLifecycleOrder = errors.New("tags: lifecycle events invoked out of order")

// Sentinel errors surfaced by the pipeline, re-exported for hosts that need
// to branch on the failure kind.
var (
	ErrMalformedFrontMatter = frontmatter.ErrMalformed
	ErrFileAccess           = frontmatter.ErrFileAccess
	ErrTemplateResolution   = render.ErrTemplate
)

type (
	// PageMetadata is the structured record extracted from one page.
	PageMetadata = frontmatter.PageMetadata
	// TagIndex maps tag names to their ordered page buckets.
	TagIndex = tagindex.Index
	// IndexStats summarises one scan for diagnostics.
	IndexStats = tagindex.Stats
	// TagGroup is one sorted (tag, pages) pair handed to templates.
	TagGroup = render.TagGroup
)

// Groups returns the render-ready, case-insensitively sorted (tag, pages)
// sequence for an index. Exposed so hosts driving their own templates can
// reuse the plugin's sort rules.
func Groups(idx *TagIndex) []TagGroup {
	return render.Groups(idx)
}
