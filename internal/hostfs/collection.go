// Package hostfs provides a filesystem-backed stand-in for the host build's
// file collection, used by the CLI and by tests to run the plugin lifecycle
// without a real site generator.
package hostfs

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/goliatone/go-tags/pkg/interfaces"
)

// File is a discovered source file identified by its path relative to the
// documentation root.
type File struct {
	path string
}

// NewFile wraps a relative source path.
func NewFile(path string) File {
	return File{path: filepath.ToSlash(path)}
}

// SrcPath satisfies interfaces.SourceFile.
func (f File) SrcPath() string {
	return f.path
}

// Collection is an ordered, in-memory file list implementing
// interfaces.FileCollection. Appended artifacts are tracked separately so
// callers can inspect what the plugin registered.
type Collection struct {
	files []interfaces.SourceFile
	added []interfaces.FileSpec
}

// NewCollection builds a collection from relative paths, preserving order.
func NewCollection(paths ...string) *Collection {
	c := &Collection{}
	for _, path := range paths {
		c.files = append(c.files, NewFile(path))
	}
	return c
}

// Files returns the known source files in discovery order.
func (c *Collection) Files() []interfaces.SourceFile {
	out := make([]interfaces.SourceFile, len(c.files))
	copy(out, c.files)
	return out
}

// Append registers a generated artifact at the end of the collection.
func (c *Collection) Append(spec interfaces.FileSpec) {
	c.added = append(c.added, spec)
	c.files = append(c.files, NewFile(spec.Path))
}

// Added returns the artifacts registered through Append.
func (c *Collection) Added() []interfaces.FileSpec {
	out := make([]interfaces.FileSpec, len(c.added))
	copy(out, c.added)
	return out
}

// Discover walks docsDir and returns every regular file as a collection
// entry, paths relative to docsDir in lexical walk order. Filtering by
// extension is left to the plugin, mirroring how a host build hands over its
// complete file list.
func Discover(docsDir string) (*Collection, error) {
	c := &Collection{}
	root := filepath.Clean(docsDir)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		c.files = append(c.files, NewFile(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("hostfs: discover %s: %w", docsDir, err)
	}

	return c, nil
}
