package site

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/uscon"
)

// Ensure SitemapWriter implements uscon.SitemapWriter at compile time.
var _ uscon.SitemapWriter = (*SitemapWriter)(nil)

// SitemapWriter produces the sitemap.xml for a generated site. The
// site is a single page, so the sitemap lists the page itself plus one
// fragment URL per part heading.
type SitemapWriter struct{}

// NewSitemapWriter creates a new SitemapWriter.
func NewSitemapWriter() *SitemapWriter {
	return &SitemapWriter{}
}

// WriteSitemap returns the sitemap XML document as a string.
func (w *SitemapWriter) WriteSitemap(baseURL string, toc *uscon.TOC) (string, error) {
	if baseURL == "" {
		return "", uscon.Errorf(uscon.EINVALID, "sitemap base URL required")
	}
	base := strings.TrimSuffix(baseURL, "/")

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", "http://www.sitemaps.org/schemas/sitemap/0.9")

	addURL := func(loc string) {
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(loc)
	}

	addURL(base + "/")
	if toc != nil {
		for _, g := range toc.Articles {
			addURL(base + "/#" + g.Anchor)
		}
		for _, g := range toc.Amendments {
			addURL(base + "/#" + g.Anchor)
		}
	}

	doc.Indent(2)
	return doc.WriteToString()
}
