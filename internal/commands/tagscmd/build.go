package tagscmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	tags "github.com/goliatone/go-tags"
	"github.com/goliatone/go-tags/internal/commands"
	"github.com/goliatone/go-tags/internal/hostfs"
	"github.com/goliatone/go-tags/internal/markdown"
	"github.com/goliatone/go-tags/pkg/interfaces"
)

const buildMessageType = "tags.build"

// ResultCallback receives the build outcome. The callback is optional and is
// invoked synchronously from the handler.
type ResultCallback func(BuildResult)

// BuildResult captures what one standalone build produced.
type BuildResult struct {
	// OutputPath is where the generated tags page was written.
	OutputPath string
	// PreviewPath is the HTML preview location, empty unless requested.
	PreviewPath string
	// Artifacts lists the file specs the plugin registered with the host
	// collection.
	Artifacts []interfaces.FileSpec
	// Stats summarises the scan. (Scanned is zero when nothing matched.)
	Stats tags.IndexStats
}

// BuildCommand runs the full plugin lifecycle against a documentation tree
// on disk, standing in for a host build.
type BuildCommand struct {
	DocsDir        string         `json:"docs_dir"`
	SiteDir        string         `json:"site_dir,omitempty"`
	RenderHTML     bool           `json:"render_html,omitempty"`
	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildCommand) Type() string { return buildMessageType }

// Validate ensures the documentation root is provided.
func (m BuildCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.DocsDir) == "" {
		errs["docs_dir"] = validation.NewError("tags.build.docs_dir_required", "docs_dir must not be empty")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BuildHandler executes BuildCommand through the shared handler foundation.
type BuildHandler struct {
	inner *commands.Handler[BuildCommand]
}

// NewBuildHandler wires the handler to a plugin instance. The plugin must be
// freshly constructed per build; lifecycle state is not reusable.
func NewBuildHandler(plugin *tags.Plugin, logger interfaces.Logger, opts ...commands.HandlerOption[BuildCommand]) *BuildHandler {
	exec := func(ctx context.Context, msg BuildCommand) error {
		if plugin == nil {
			return errors.New("tagscmd: plugin not configured")
		}

		collection, err := hostfs.Discover(msg.DocsDir)
		if err != nil {
			return err
		}

		if err := plugin.OnConfig(ctx); err != nil {
			return err
		}

		siteDir := msg.SiteDir
		if siteDir == "" {
			siteDir = "site"
		}
		build := interfaces.BuildContext{DocsDir: msg.DocsDir, SiteDir: siteDir}
		if err := plugin.OnFiles(ctx, build, collection); err != nil {
			return err
		}

		result := BuildResult{
			OutputPath: plugin.OutputPath(),
			Artifacts:  collection.Added(),
			Stats:      plugin.Stats(),
		}

		if msg.RenderHTML {
			previewPath, err := writePreview(plugin.OutputPath())
			if err != nil {
				return err
			}
			result.PreviewPath = previewPath
		}

		if msg.ResultCallback != nil {
			msg.ResultCallback(result)
		}
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[BuildCommand]{
		commands.WithLogger[BuildCommand](logger),
		commands.WithOperation[BuildCommand]("tags.build"),
	}, opts...)

	return &BuildHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[BuildCommand].
func (h *BuildHandler) Execute(ctx context.Context, msg BuildCommand) error {
	return h.inner.Execute(ctx, msg)
}

// writePreview renders the generated page to HTML next to the markdown
// output. When generation was disabled there is nothing to preview.
func writePreview(outputPath string) (string, error) {
	source, err := os.ReadFile(outputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}

	html, err := markdown.NewPreviewRenderer().Render(source)
	if err != nil {
		return "", err
	}

	previewPath := strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".html"
	if err := os.WriteFile(previewPath, html, 0o644); err != nil {
		return "", err
	}
	return previewPath, nil
}
