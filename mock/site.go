package mock

import (
	"context"

	"github.com/fwojciec/uscon"
)

var _ uscon.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of uscon.Renderer.
type Renderer struct {
	RenderEntriesFn func(c *uscon.Corpus) (string, error)
	RenderTOCFn     func(toc *uscon.TOC) (string, error)
}

func (r *Renderer) RenderEntries(c *uscon.Corpus) (string, error) {
	return r.RenderEntriesFn(c)
}

func (r *Renderer) RenderTOC(toc *uscon.TOC) (string, error) {
	return r.RenderTOCFn(toc)
}

var _ uscon.Splicer = (*Splicer)(nil)

// Splicer is a mock implementation of uscon.Splicer.
type Splicer struct {
	SpliceFn func(page string, sections map[string]string) (string, error)
}

func (s *Splicer) Splice(page string, sections map[string]string) (string, error) {
	return s.SpliceFn(page, sections)
}

var _ uscon.Exporter = (*Exporter)(nil)

// Exporter is a mock implementation of uscon.Exporter.
type Exporter struct {
	ExportFn func(c *uscon.Corpus) (string, error)
}

func (e *Exporter) Export(c *uscon.Corpus) (string, error) {
	return e.ExportFn(c)
}

var _ uscon.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter is a mock implementation of uscon.SitemapWriter.
type SitemapWriter struct {
	WriteSitemapFn func(baseURL string, toc *uscon.TOC) (string, error)
}

func (w *SitemapWriter) WriteSitemap(baseURL string, toc *uscon.TOC) (string, error) {
	return w.WriteSitemapFn(baseURL, toc)
}

var _ uscon.SiteStore = (*SiteStore)(nil)

// SiteStore is a mock implementation of uscon.SiteStore.
type SiteStore struct {
	SaveFn   func(ctx context.Context, file *uscon.SiteFile) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *SiteStore) Save(ctx context.Context, file *uscon.SiteFile) error {
	return s.SaveFn(ctx, file)
}

func (s *SiteStore) Commit() error {
	return s.CommitFn()
}

func (s *SiteStore) Abort() error {
	return s.AbortFn()
}
