package frontmatter

import "errors"

var (
	// ErrMalformed marks a captured front-matter block that failed YAML
	// parsing. Fatal for the whole build.
	ErrMalformed = errors.New("frontmatter: malformed block")
	// ErrFileAccess marks a declared source file that could not be read.
	ErrFileAccess = errors.New("frontmatter: file access")
)
