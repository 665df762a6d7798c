package tagindex

import (
	"testing"

	"github.com/goliatone/go-tags/internal/frontmatter"
)

func page(name string, year int, tags ...string) *frontmatter.PageMetadata {
	meta := &frontmatter.PageMetadata{
		Filename: name,
		Title:    name,
		Tags:     tags,
		Extra:    map[string]any{},
	}
	if year != 0 {
		meta.Year = &year
	}
	return meta
}

func TestBuildBucketMultiplicity(t *testing.T) {
	a := page("a.md", 0, "go", "testing")
	b := page("b.md", 0, "go")

	idx, stats := Build([]*frontmatter.PageMetadata{a, b})

	if stats.Scanned != 2 || stats.WithTags != 2 || stats.DistinctTags != 2 {
		t.Fatalf("unexpected stats: %#v", stats)
	}
	if got := idx.Pages("go"); len(got) != 2 || got[0] != a || got[1] != b {
		t.Fatalf("unexpected go bucket: %#v", got)
	}
	if got := idx.Pages("testing"); len(got) != 1 || got[0] != a {
		t.Fatalf("unexpected testing bucket: %#v", got)
	}
}

func TestBuildRepeatedTagAppendsTwice(t *testing.T) {
	a := page("a.md", 0, "dup", "dup")

	idx, _ := Build([]*frontmatter.PageMetadata{a})

	if got := idx.Pages("dup"); len(got) != 2 || got[0] != a || got[1] != a {
		t.Fatalf("expected page twice in bucket, got %#v", got)
	}
}

func TestBuildSkipsUntaggedAndPlaceholders(t *testing.T) {
	tagged := page("tagged.md", 0, "x")
	untagged := page("untagged.md", 0)

	idx, stats := Build([]*frontmatter.PageMetadata{nil, untagged, tagged})

	if stats.Scanned != 2 {
		t.Fatalf("expected 2 scanned, got %d", stats.Scanned)
	}
	if stats.WithTags != 1 {
		t.Fatalf("expected 1 with tags, got %d", stats.WithTags)
	}
	for _, tag := range idx.Tags() {
		for _, p := range idx.Pages(tag) {
			if p == untagged {
				t.Fatal("untagged page must not appear in any bucket")
			}
		}
	}
}

func TestBuildKeepsFirstSeenTagOrder(t *testing.T) {
	first := page("first.md", 0, "x")
	second := page("second.md", 0, "X")

	idx, _ := Build([]*frontmatter.PageMetadata{first, second})

	tagOrder := idx.Tags()
	if len(tagOrder) != 2 || tagOrder[0] != "x" || tagOrder[1] != "X" {
		t.Fatalf("expected first-seen tag order [x X], got %#v", tagOrder)
	}
}

func TestStoreSortedByYear(t *testing.T) {
	dated := page("dated.md", 2019, "x")
	older := page("older.md", 2005, "x")
	undated := page("undated.md", 0, "x")

	store := NewStore()
	store.Append(undated)
	store.Append(nil)
	store.Append(dated)
	store.Append(older)

	sorted := store.SortedByYear()
	if len(sorted) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(sorted))
	}
	// Placeholders first, then dated ascending, undated last.
	if sorted[0] != nil || sorted[1] != older || sorted[2] != dated || sorted[3] != undated {
		t.Fatalf("unexpected sort order: %#v", sorted)
	}
}

func TestStoreSortedByYearIsStable(t *testing.T) {
	a := page("a.md", 2019, "x")
	b := page("b.md", 2019, "x")

	store := NewStore()
	store.Append(a)
	store.Append(b)

	sorted := store.SortedByYear()
	if sorted[0] != a || sorted[1] != b {
		t.Fatalf("equal years must keep discovery order, got %#v", sorted)
	}
}

func TestDualPassOrderingDiverges(t *testing.T) {
	// The raw-order pass and the year-sorted pass intentionally remain
	// separate computations; pages inside one bucket may order differently.
	newer := page("newer.md", 2020, "x")
	older := page("older.md", 2010, "x")

	store := NewStore()
	store.Append(newer)
	store.Append(older)

	raw, _ := Build(store.Pages())
	sorted, _ := Build(store.SortedByYear())

	rawBucket := raw.Pages("x")
	sortedBucket := sorted.Pages("x")

	if rawBucket[0] != newer || rawBucket[1] != older {
		t.Fatalf("raw pass must keep discovery order, got %#v", rawBucket)
	}
	if sortedBucket[0] != older || sortedBucket[1] != newer {
		t.Fatalf("year pass must order by year, got %#v", sortedBucket)
	}
}
