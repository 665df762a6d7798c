package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tags "github.com/goliatone/go-tags"
	"github.com/goliatone/go-tags/internal/commands/tagscmd"
	"github.com/goliatone/go-tags/internal/logging"
	"github.com/goliatone/go-tags/internal/logging/gologger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("tags: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tags", flag.ExitOnError)
	docsDir := fs.String("docs-dir", "docs", "Path to the markdown documentation root")
	siteDir := fs.String("site-dir", "site", "Site output directory used for artifact destinations")
	filename := fs.String("filename", tags.DefaultFilename, "Name of the generated tags page")
	folder := fs.String("folder", tags.DefaultFolder, "Working folder the generated page is written to")
	templatePath := fs.String("template", "", "Template file overriding the built-in layout")
	targetFolder := fs.String("target-folder", tags.DefaultTargetFolder, "Destination subfolder under the site output root")
	baseURL := fs.String("base-url", "", "Absolute base URL for rendered page links")
	renderHTML := fs.Bool("render-html", false, "Also render an HTML preview of the generated page")
	skipArtifact := fs.Bool("skip-artifact", false, "Do not register the generated page as a build artifact")
	verbose := fs.Bool("verbose", false, "Enable extra diagnostic output")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	level := *logLevel
	if *verbose && level == "info" {
		level = "debug"
	}
	provider, err := gologger.NewProvider(gologger.Config{
		Level:  level,
		Format: *logFormat,
	})
	if err != nil {
		return err
	}

	plugin := tags.New(tags.Config{
		Verbose:      *verbose,
		Filename:     *filename,
		Folder:       *folder,
		Template:     *templatePath,
		TargetFolder: *targetFolder,
		BaseURL:      *baseURL,
		AddTarget:    tags.Bool(!*skipArtifact),
	}, tags.WithLoggerProvider(provider))

	var result tagscmd.BuildResult
	handler := tagscmd.NewBuildHandler(plugin, logging.CommandsLogger(provider))
	cmd := tagscmd.BuildCommand{
		DocsDir:        *docsDir,
		SiteDir:        *siteDir,
		RenderHTML:     *renderHTML,
		ResultCallback: func(r tagscmd.BuildResult) { result = r },
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "tags page generated at %s\n", result.OutputPath)
	if result.PreviewPath != "" {
		fmt.Fprintf(stdout, "html preview written to %s\n", result.PreviewPath)
	}
	return nil
}
