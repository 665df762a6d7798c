package frontmatter

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"
)

var titleReplacer = strings.NewReplacer("-", " ", "_", " ")

// TitleFromFilename derives a human-readable title from a page path: the
// base name loses its extension, dashes and underscores become spaces, and
// the result is capitalised only when it was already all-lowercase. Mixed
// case names (e.g. acronyms) are left untouched.
func TitleFromFilename(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	title := titleReplacer.Replace(stem)
	if strings.TrimSpace(title) == "" {
		return ""
	}

	if title == strings.ToLower(title) {
		title = capitalize(title)
	}
	return title
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError && size <= 1 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
