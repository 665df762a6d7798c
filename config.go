package tags

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Defaults applied when the host configuration leaves an option empty.
const (
	DefaultFilename     = "tags.md"
	DefaultFolder       = "generated"
	DefaultTargetFolder = "."
)

// LoggingConfig configures the go-logger provider used by the CLI. Hosts
// embedding the plugin usually inject their own provider instead.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// Config carries the plugin options. Zero values fall back to the documented
// defaults during OnConfig; the boolean toggles use pointers so "unset"
// and "false" stay distinguishable (both default to true).
type Config struct {
	// Verbose enables extra diagnostic output during scanning.
	Verbose bool
	// Filename is the name of the generated output file.
	Filename string
	// Folder is the local working folder the generated file is written to.
	Folder string
	// Template optionally overrides the built-in rendering template.
	Template string
	// TargetFolder is the destination subfolder under the host output root.
	TargetFolder string
	// AddTarget registers the generated file as a build artifact.
	AddTarget *bool
	// CreateTarget generates the file at all.
	CreateTarget *bool
	// BaseURL switches rendered page links to absolute URLs.
	BaseURL string
	// PageRoute is the urlkit route used with BaseURL (defaults to "/:path").
	PageRoute string
	// Logging configures the bundled go-logger provider.
	Logging LoggingConfig
}

// DefaultConfig returns the configuration the plugin runs with when the host
// provides nothing.
func DefaultConfig() Config {
	return Config{
		Filename:     DefaultFilename,
		Folder:       DefaultFolder,
		TargetFolder: DefaultTargetFolder,
	}
}

// Validate checks the normalized configuration. It runs after defaults are
// applied, so the required checks only guard programmatic misuse.
func (c Config) Validate() error {
	errs := validation.Errors{}

	if strings.TrimSpace(c.Filename) == "" {
		errs["tags_filename"] = validation.NewError("tags.config.filename_required", "tags_filename must not be empty")
	} else if strings.ContainsAny(c.Filename, `/\`) {
		errs["tags_filename"] = validation.NewError("tags.config.filename_invalid", "tags_filename must be a bare file name")
	}

	if strings.TrimSpace(c.Folder) == "" {
		errs["tags_folder"] = validation.NewError("tags.config.folder_required", "tags_folder must not be empty")
	}

	if strings.TrimSpace(c.TargetFolder) == "" {
		errs["tags_target_folder"] = validation.NewError("tags.config.target_folder_required", "tags_target_folder must not be empty")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// withDefaults fills unset options without touching explicit values.
func (c Config) withDefaults() Config {
	if strings.TrimSpace(c.Filename) == "" {
		c.Filename = DefaultFilename
	}
	if strings.TrimSpace(c.Folder) == "" {
		c.Folder = DefaultFolder
	}
	if strings.TrimSpace(c.TargetFolder) == "" {
		c.TargetFolder = DefaultTargetFolder
	}
	return c
}

func (c Config) addTarget() bool {
	return c.AddTarget == nil || *c.AddTarget
}

func (c Config) createTarget() bool {
	return c.CreateTarget == nil || *c.CreateTarget
}

// Bool is a convenience for populating the pointer toggles in literals.
func Bool(v bool) *bool {
	return &v
}
