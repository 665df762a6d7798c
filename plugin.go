package tags

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-tags/internal/frontmatter"
	"github.com/goliatone/go-tags/internal/logging"
	"github.com/goliatone/go-tags/internal/render"
	"github.com/goliatone/go-tags/internal/tagindex"
	"github.com/goliatone/go-tags/pkg/interfaces"
)

// markdownExt filters the host file list down to pages the plugin scans.
const markdownExt = ".md"

// Plugin orchestrates the tag pipeline across the host's build lifecycle.
// The three events run strictly in order, once per build: OnConfig, OnFiles,
// then OnPage for each page the host renders. All state accumulated between
// events is owned here; components only ever receive read-only views.
type Plugin struct {
	cfg      Config
	provider interfaces.LoggerProvider
	logger   interfaces.Logger

	renderer *render.Renderer
	store    *tagindex.Store
	pageTags *tagindex.Index
	stats    tagindex.Stats

	configured bool
}

// Option customises plugin construction.
type Option func(*Plugin)

// WithLoggerProvider injects the host's logger provider. Without it the
// plugin stays silent.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(p *Plugin) {
		p.provider = provider
	}
}

// New constructs a plugin. Configuration is validated and resolved during
// OnConfig so construction itself never fails.
func New(cfg Config, opts ...Option) *Plugin {
	p := &Plugin{cfg: cfg}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = logging.PluginLogger(p.provider)
	return p
}

// OnConfig validates and normalizes the configuration, ensures the working
// folder exists, and resolves the rendering template. A meaningless toggle
// combination (add a target without generating it) is a warning, not an
// error: generation-skip wins and no artifact is registered.
func (p *Plugin) OnConfig(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.cfg = p.cfg.withDefaults()
	if err := p.cfg.Validate(); err != nil {
		return fmt.Errorf("tags: invalid configuration: %w", err)
	}

	if err := os.MkdirAll(p.cfg.Folder, 0o755); err != nil {
		return fmt.Errorf("tags: create folder %s: %w", p.cfg.Folder, err)
	}

	renderer, err := render.NewRenderer(render.Config{
		TemplatePath: p.cfg.Template,
		BaseURL:      p.cfg.BaseURL,
		PageRoute:    p.cfg.PageRoute,
	}, logging.RenderLogger(p.provider))
	if err != nil {
		return err
	}

	if p.cfg.addTarget() && !p.cfg.createTarget() {
		p.logger.Warn("tags.config.meaningless_target",
			"reason", "requested to add a target without generating it")
	}

	p.renderer = renderer
	p.store = tagindex.NewStore()
	p.configured = true
	return nil
}

// OnFiles scans the host's file list, populates the metadata store in
// discovery order, builds both tag indices, and, when enabled, writes the
// generated tags page and registers it as a build artifact.
func (p *Plugin) OnFiles(ctx context.Context, build interfaces.BuildContext, files interfaces.FileCollection) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.configured {
		return ErrLifecycleOrder
	}

	extractor := frontmatter.NewExtractor(os.DirFS(build.DocsDir))

	for _, f := range files.Files() {
		path := f.SrcPath()
		if !strings.HasSuffix(path, markdownExt) {
			continue
		}
		meta, err := extractor.Extract(path)
		if err != nil {
			logging.WithPageContext(p.logger, path).Error("tags.scan.failed", "error", err)
			return err
		}
		p.store.Append(meta)
	}

	rawIndex, stats := tagindex.Build(p.store.Pages())
	p.pageTags = rawIndex
	p.stats = stats

	p.logger.Info("tags.scan.summary",
		"pages_scanned", stats.Scanned,
		"pages_with_tags", stats.WithTags,
		"total_tags", stats.DistinctTags)
	if p.cfg.Verbose {
		for _, tag := range rawIndex.Tags() {
			p.logger.Debug("tags.scan.bucket", "tag", tag, "pages", len(rawIndex.Pages(tag)))
		}
	}

	if !p.cfg.createTarget() {
		return nil
	}

	// The generated page uses its own pass over year-sorted metadata; bucket
	// ordering may differ from the per-page index above.
	sortedIndex, _ := tagindex.Build(p.store.SortedByYear())
	output, err := p.renderer.Render(sortedIndex)
	if err != nil {
		return err
	}

	outPath := filepath.Join(p.cfg.Folder, p.cfg.Filename)
	if err := os.WriteFile(outPath, []byte(output), 0o644); err != nil {
		return fmt.Errorf("tags: write %s: %w", outPath, err)
	}
	p.logger.Info("tags.page.generated", "path", outPath)

	if p.cfg.addTarget() {
		files.Append(interfaces.FileSpec{
			Path:             p.cfg.Filename,
			SrcDir:           p.cfg.Folder,
			DestDir:          filepath.Join(build.SiteDir, p.cfg.TargetFolder),
			UseDirectoryURLs: false,
		})
	}

	return nil
}

// OnPage attaches the per-page tag index to the page's metadata under
// MetaKeyAllTags, so whatever template renders the page can show a tag
// cloud or related tags.
func (p *Plugin) OnPage(ctx context.Context, page interfaces.PageContext) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.pageTags == nil {
		return ErrLifecycleOrder
	}

	meta := page.Meta()
	if meta == nil {
		return nil
	}
	meta[MetaKeyAllTags] = p.pageTags
	return nil
}

// TagIndex exposes the per-page tag index built during OnFiles, in raw
// discovery order. Nil before OnFiles runs.
func (p *Plugin) TagIndex() *tagindex.Index {
	return p.pageTags
}

// Stats reports the scan summary from the last OnFiles run.
func (p *Plugin) Stats() tagindex.Stats {
	return p.stats
}

// OutputPath reports where the generated page is written.
func (p *Plugin) OutputPath() string {
	cfg := p.cfg.withDefaults()
	return filepath.Join(cfg.Folder, cfg.Filename)
}
