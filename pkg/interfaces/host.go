package interfaces

// SourceFile is a single file the host build already knows about. The plugin
// only needs the path relative to the documentation source root.
type SourceFile interface {
	SrcPath() string
}

// FileSpec describes a generated artifact the plugin hands back to the host
// so downstream build stages treat it like any other page.
type FileSpec struct {
	// Path is the artifact filename relative to SrcDir.
	Path string
	// SrcDir is the local folder the artifact was written to.
	SrcDir string
	// DestDir is the absolute destination under the host's site output root.
	DestDir string
	// UseDirectoryURLs mirrors the host's pretty-URL toggle. Generated pages
	// always disable it so the file keeps its literal name.
	UseDirectoryURLs bool
}

// FileCollection is the host's ordered list of known source files. Append
// registers a new build artifact at the end of the collection.
type FileCollection interface {
	Files() []SourceFile
	Append(spec FileSpec)
}

// PageContext exposes the mutable metadata mapping of a single page while the
// host renders it. The plugin augments it with the aggregated tag index.
type PageContext interface {
	Meta() map[string]any
}

// BuildContext carries the host paths the plugin needs during the file
// discovery event.
type BuildContext struct {
	// DocsDir is the root of the markdown source tree.
	DocsDir string
	// SiteDir is the root of the host's site output directory.
	SiteDir string
}
