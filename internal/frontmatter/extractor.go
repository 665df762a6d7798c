package frontmatter

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// delimiter is the marker line that opens and closes a front-matter block,
// compared after trimming surrounding whitespace.
const delimiter = "---"

// scanState tracks the delimiter state machine while reading a page line by
// line.
type scanState int

const (
	// stateBeforeBlock runs until the first delimiter line.
	stateBeforeBlock scanState = iota
	// stateInBlock captures every line verbatim until the second delimiter.
	stateInBlock
	// stateTitleCheck inspects the first non-blank line after the block for
	// a markdown H1 to use as a candidate title.
	stateTitleCheck
	// stateDone stops all scanning.
	stateDone
)

// Extractor reads pages from a filesystem rooted at the documentation source
// directory and turns their front matter into PageMetadata records.
type Extractor struct {
	fsys fs.FS
}

// NewExtractor constructs an extractor bound to the provided filesystem.
func NewExtractor(fsys fs.FS) *Extractor {
	return &Extractor{fsys: fsys}
}

// Extract parses the front matter of the page at path. The path doubles as
// the Filename recorded on the returned metadata.
//
// A page without a complete front-matter block yields (nil, nil): it is
// absent from the index, not an error. A block that fails YAML parsing or a
// file that cannot be read aborts with an error.
func (e *Extractor) Extract(path string) (*PageMetadata, error) {
	data, err := fs.ReadFile(e.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrFileAccess, path, err)
	}
	return Parse(data, path)
}

// Parse runs the extraction state machine over raw page content. It is split
// from Extract so callers holding content in memory can reuse it.
func Parse(source []byte, path string) (*PageMetadata, error) {
	captured, h1, err := scanBlock(source)
	if err != nil {
		return nil, fmt.Errorf("%w: scan %s: %v", ErrFileAccess, path, err)
	}
	if captured == nil {
		return nil, nil
	}

	var env envelope
	if err := yaml.Unmarshal(captured, &env); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformed, path, err)
	}

	meta := &PageMetadata{
		Filename: path,
		Title:    env.Title,
		Tags:     env.Tags,
		Year:     env.Year,
		Extra:    env.Extra,
	}
	if meta.Extra == nil {
		meta.Extra = map[string]any{}
	}

	if meta.Title == "" {
		meta.Title = h1
	}
	if meta.Title == "" {
		meta.Title = TitleFromFilename(path)
	}
	if meta.Title == "" {
		meta.Title = DefaultTitle
	}

	return meta, nil
}

// scanBlock walks the source line by line and returns the captured
// front-matter text plus the candidate H1 title, if any. A nil captured
// slice means no complete block was found.
func scanBlock(source []byte) ([]byte, string, error) {
	var (
		lines []string
		h1    string
	)

	state := stateBeforeBlock
	scanner := bufio.NewScanner(bytes.NewReader(source))
	for scanner.Scan() && state != stateDone {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		switch state {
		case stateBeforeBlock:
			if trimmed == delimiter {
				state = stateInBlock
			}
		case stateInBlock:
			if trimmed == delimiter {
				state = stateTitleCheck
				continue
			}
			// Blank lines inside the block are part of the captured text.
			lines = append(lines, line)
		case stateTitleCheck:
			if trimmed == "" {
				continue
			}
			// Matched against the raw line: an indented "# ..." is a code
			// block in markdown, not a heading.
			if rest, ok := strings.CutPrefix(line, "# "); ok {
				h1 = strings.TrimSpace(rest)
			}
			state = stateDone
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, "", err
	}

	// The block never closed, or it opened and closed without content.
	if state == stateBeforeBlock || state == stateInBlock || len(lines) == 0 {
		return nil, "", nil
	}

	return []byte(strings.Join(lines, "\n")), h1, nil
}
