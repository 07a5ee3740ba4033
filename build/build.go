// Package build orchestrates site generation. It coordinates loading,
// rendering, index and export generation, and atomic storage of the
// generated site.
package build

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/fs"
	"golang.org/x/sync/errgroup"
)

// Builder orchestrates one build of the static site.
type Builder struct {
	Loader   uscon.CorpusLoader
	Renderer uscon.Renderer
	Splicer  uscon.Splicer
	Exporter uscon.Exporter
	Sitemaps uscon.SitemapWriter
	Store    uscon.SiteStore

	// Entries, when set, also persists the generation to the
	// persistent index.
	Entries uscon.EntryService

	// BaseURL is the public URL the sitemap points at.
	BaseURL string
}

// Result holds the outcome of a build.
type Result struct {
	BuildID string
	Entries int
	Files   []string
	Bytes   int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types in build order.
const (
	ProgressStarted ProgressType = iota
	ProgressLoaded
	ProgressFileWritten
	ProgressFinished
)

// ProgressEvent reports progress during a build.
type ProgressEvent struct {
	Type    ProgressType
	File    string
	Entries int
}

// ProgressFunc is a callback for reporting build progress.
type ProgressFunc func(event ProgressEvent)

// Build generates the site from the canonical data file and the page
// template, then commits it atomically. On any error the pending
// output is discarded and the previous generation stays in place.
func (b *Builder) Build(ctx context.Context, dataPath, page string, progress ProgressFunc) (*Result, error) {
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted})
	}

	corpus, err := b.Loader.Load(ctx, dataPath)
	if err != nil {
		return nil, fmt.Errorf("load corpus: %w", err)
	}
	toc := uscon.BuildTOC(corpus)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressLoaded, Entries: len(corpus.Entries)})
	}

	// The outputs are independent of each other, so generate them
	// concurrently.
	var pageHTML, indexJSON, export, sitemap string

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		entriesHTML, err := b.Renderer.RenderEntries(corpus)
		if err != nil {
			return fmt.Errorf("render entries: %w", err)
		}
		tocHTML, err := b.Renderer.RenderTOC(toc)
		if err != nil {
			return fmt.Errorf("render toc: %w", err)
		}
		pageHTML, err = b.Splicer.Splice(page, map[string]string{
			"toc":     tocHTML,
			"entries": entriesHTML,
		})
		if err != nil {
			return fmt.Errorf("splice page: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		data, err := json.MarshalIndent(uscon.BuildIndex(corpus), "", "  ")
		if err != nil {
			return fmt.Errorf("encode index: %w", err)
		}
		indexJSON = string(data)
		return nil
	})
	g.Go(func() error {
		md, err := b.Exporter.Export(corpus)
		if err != nil {
			return fmt.Errorf("export markdown: %w", err)
		}
		export = md
		return nil
	})
	g.Go(func() error {
		xml, err := b.Sitemaps.WriteSitemap(b.BaseURL, toc)
		if err != nil {
			return fmt.Errorf("write sitemap: %w", err)
		}
		sitemap = xml
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := []*uscon.SiteFile{
		{Path: uscon.SitePageFile, Content: []byte(pageHTML)},
		{Path: uscon.SiteIndexFile, Content: []byte(indexJSON)},
		{Path: uscon.SiteExportFile, Content: []byte(export)},
		{Path: uscon.SiteSitemapFile, Content: []byte(sitemap)},
	}

	manifest := fs.NewManifest(corpus.Name, len(corpus.Entries))
	result := &Result{BuildID: manifest.BuildID, Entries: len(corpus.Entries)}

	for _, file := range files {
		if err := b.Store.Save(ctx, file); err != nil {
			_ = b.Store.Abort()
			return nil, fmt.Errorf("save %s: %w", file.Path, err)
		}
		manifest.AddFile(file)
		result.Files = append(result.Files, file.Path)
		result.Bytes += len(file.Content)
		if progress != nil {
			progress(ProgressEvent{Type: ProgressFileWritten, File: file.Path})
		}
	}

	manifestData, err := manifest.Encode()
	if err != nil {
		_ = b.Store.Abort()
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	manifestFile := &uscon.SiteFile{Path: uscon.SiteManifestFile, Content: manifestData}
	if err := b.Store.Save(ctx, manifestFile); err != nil {
		_ = b.Store.Abort()
		return nil, fmt.Errorf("save %s: %w", manifestFile.Path, err)
	}
	result.Files = append(result.Files, manifestFile.Path)
	result.Bytes += len(manifestData)

	if b.Entries != nil {
		if err := b.Entries.CreateEntries(ctx, corpus.Entries); err != nil {
			_ = b.Store.Abort()
			return nil, fmt.Errorf("persist entries: %w", err)
		}
	}

	if err := b.Store.Commit(); err != nil {
		_ = b.Store.Abort()
		return nil, fmt.Errorf("commit site: %w", err)
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Entries: len(corpus.Entries)})
	}

	return result, nil
}
