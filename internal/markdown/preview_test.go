package markdown

import (
	"strings"
	"testing"
)

func TestPreviewRendersHeadingsAndRawHTML(t *testing.T) {
	r := NewPreviewRenderer()

	out, err := r.Render([]byte("# Contents grouped by tag\n\n## <span class=\"tag\">go</span>\n\n* [A](a.md)\n"))
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "<h1") {
		t.Fatalf("expected h1, got: %s", html)
	}
	if !strings.Contains(html, `<span class="tag">go</span>`) {
		t.Fatalf("expected raw span preserved, got: %s", html)
	}
	if !strings.Contains(html, `<a href="a.md">A</a>`) {
		t.Fatalf("expected link, got: %s", html)
	}
}
