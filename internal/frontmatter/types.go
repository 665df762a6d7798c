package frontmatter

// yearSentinel is the sort key assigned to pages that declare no year, so
// they order after every dated page.
const yearSentinel = 5000

// DefaultTitle is used when neither front matter, a leading H1, nor the
// filename yields a usable title.
const DefaultTitle = "Untitled"

// PageMetadata is the structured record extracted from one markdown page.
// Known fields are promoted to struct members; every other front-matter key
// is preserved opaquely in Extra and passed through to rendering untouched.
type PageMetadata struct {
	// Filename is the page path relative to the documentation source root.
	Filename string
	// Title is never empty once extraction has run.
	Title string
	// Tags is the ordered tag list exactly as declared, duplicates included.
	Tags []string
	// Year is an optional sort key; nil means the page sorts last.
	Year *int
	// Extra holds the remaining front-matter fields.
	Extra map[string]any
}

// SortYear returns the year used when ordering pages for the generated tags
// page. Absent metadata sorts first, absent year sorts last.
func (m *PageMetadata) SortYear() int {
	if m == nil {
		return 0
	}
	if m.Year == nil {
		return yearSentinel
	}
	return *m.Year
}

// HasTags reports whether the page should participate in any tag bucket.
func (m *PageMetadata) HasTags() bool {
	return m != nil && len(m.Tags) > 0
}

// envelope decodes the captured front-matter block. The inline map collects
// every key not promoted to a known field.
type envelope struct {
	Title string         `yaml:"title"`
	Tags  []string       `yaml:"tags"`
	Year  *int           `yaml:"year"`
	Extra map[string]any `yaml:",inline"`
}
