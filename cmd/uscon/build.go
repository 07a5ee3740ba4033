package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/build"
	"github.com/fwojciec/uscon/fs"
	"github.com/fwojciec/uscon/goldmark"
	"github.com/fwojciec/uscon/htmltomarkdown"
	usconjson "github.com/fwojciec/uscon/json"
	"github.com/fwojciec/uscon/site"
	usconslog "github.com/fwojciec/uscon/slog"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	page := site.DefaultTemplate
	if c.Template != "" {
		data, err := os.ReadFile(c.Template)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot read template %q\n", c.Template)
			return err
		}
		page = string(data)
	}

	store := fs.NewSiteStore(filepath.Dir(c.Out), filepath.Base(c.Out))

	b := &build.Builder{
		Loader:   usconslog.NewLoggingCorpusLoader(usconjson.NewLoader(goldmark.NewRenderer()), deps.Logger),
		Renderer: site.NewRenderer(),
		Splicer:  site.NewSplicer(),
		Exporter: htmltomarkdown.NewExporter(),
		Sitemaps: site.NewSitemapWriter(),
		Store:    store,
		Entries:  deps.Entries,
		BaseURL:  c.BaseURL,
	}

	result, err := b.Build(deps.Ctx, c.Data, page, func(e build.ProgressEvent) {
		switch e.Type {
		case build.ProgressLoaded:
			fmt.Fprintf(deps.Stdout, "Loaded %d entries from %s\n", e.Entries, c.Data)
		case build.ProgressFileWritten:
			fmt.Fprintf(deps.Stdout, "  wrote %s\n", e.File)
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uscon.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Built %s (%d files, %d bytes, build %s)\n", store.Dir(), len(result.Files), result.Bytes, result.BuildID)
	return nil
}
