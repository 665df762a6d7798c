package tagindex

import (
	"sort"

	"github.com/goliatone/go-tags/internal/frontmatter"
)

// Store is the ordered collection of metadata records accumulated during
// file discovery. Pages without front matter are kept as nil placeholders so
// downstream passes can report accurate scan counts while preserving
// discovery order.
type Store struct {
	pages []*frontmatter.PageMetadata
}

// NewStore returns an empty metadata store.
func NewStore() *Store {
	return &Store{}
}

// Append records the extraction result for the next discovered page. A nil
// meta is a placeholder for a page without front matter.
func (s *Store) Append(meta *frontmatter.PageMetadata) {
	s.pages = append(s.pages, meta)
}

// Len reports how many pages were appended, placeholders included.
func (s *Store) Len() int {
	return len(s.pages)
}

// Pages returns the records in raw discovery order. The slice is a copy so
// callers cannot disturb the store.
func (s *Store) Pages() []*frontmatter.PageMetadata {
	out := make([]*frontmatter.PageMetadata, len(s.pages))
	copy(out, s.pages)
	return out
}

// SortedByYear returns the records stably sorted by their year sort key
// ascending. Placeholders sort first, pages without a year last; ties keep
// discovery order.
func (s *Store) SortedByYear() []*frontmatter.PageMetadata {
	out := s.Pages()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortYear() < out[j].SortYear()
	})
	return out
}
