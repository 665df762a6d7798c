package tagindex

import "github.com/goliatone/go-tags/internal/frontmatter"

// Stats summarises one index build for diagnostics. The counts never gate
// success.
type Stats struct {
	// Scanned counts pages that produced metadata.
	Scanned int
	// WithTags counts pages carrying a non-empty tag list.
	WithTags int
	// DistinctTags counts bucket names.
	DistinctTags int
}

// Build folds the pages, in the order given, into tag buckets. A page with N
// tags lands in N buckets, each time as the same reference; repeated
// identical tags append the page repeatedly. Nil placeholders and untagged
// pages are skipped.
//
// Callers choose the input ordering: discovery order for the per-page
// exposure index, year-sorted for the generated tags page. The two passes
// stay separate on purpose, so bucket-internal ordering may differ between
// them.
func Build(pages []*frontmatter.PageMetadata) (*Index, Stats) {
	idx := NewIndex()
	var stats Stats

	for _, page := range pages {
		if page == nil {
			continue
		}
		stats.Scanned++
		if !page.HasTags() {
			continue
		}
		stats.WithTags++
		for _, tag := range page.Tags {
			idx.add(tag, page)
		}
	}

	stats.DistinctTags = idx.Len()
	return idx, stats
}
