package tagindex

import "github.com/goliatone/go-tags/internal/frontmatter"

// Index maps tag names to the ordered pages carrying them. Bucket keys keep
// first-insertion order so renderers can break sort ties deterministically;
// no sorting is applied here.
type Index struct {
	order   []string
	buckets map[string][]*frontmatter.PageMetadata
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{buckets: map[string][]*frontmatter.PageMetadata{}}
}

func (i *Index) add(tag string, page *frontmatter.PageMetadata) {
	if _, ok := i.buckets[tag]; !ok {
		i.order = append(i.order, tag)
	}
	i.buckets[tag] = append(i.buckets[tag], page)
}

// Tags returns the bucket names in first-insertion order.
func (i *Index) Tags() []string {
	if i == nil {
		return nil
	}
	out := make([]string, len(i.order))
	copy(out, i.order)
	return out
}

// Pages returns the bucket for tag in insertion order, or nil when the tag
// is unknown.
func (i *Index) Pages(tag string) []*frontmatter.PageMetadata {
	if i == nil {
		return nil
	}
	bucket := i.buckets[tag]
	out := make([]*frontmatter.PageMetadata, len(bucket))
	copy(out, bucket)
	return out
}

// Len reports the number of distinct tags.
func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.order)
}
