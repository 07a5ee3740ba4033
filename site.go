package uscon

import "context"

// Well-known output file names within a generated site.
const (
	SitePageFile     = "index.html"
	SiteIndexFile    = "search-index.json"
	SiteExportFile   = "llms.txt"
	SiteSitemapFile  = "sitemap.xml"
	SiteManifestFile = "manifest.json"
)

// SiteFile is one generated output file.
type SiteFile struct {
	// Path relative to the site root, e.g. "index.html".
	Path    string
	Content []byte
}

// SiteStore persists generated site files with atomic semantics.
// Save writes to a temporary location; Commit makes the new generation
// visible in one step; Abort discards pending output.
type SiteStore interface {
	Save(ctx context.Context, file *SiteFile) error
	Commit() error
	Abort() error
}

// MarkdownRenderer renders an entry's markdown source to HTML.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// Renderer generates the document HTML fragments from a loaded corpus.
type Renderer interface {
	// RenderEntries produces the article/section/amendment HTML: one
	// addressable node per entry, grouped under part headings.
	RenderEntries(c *Corpus) (string, error)

	// RenderTOC produces the table-of-contents HTML.
	RenderTOC(toc *TOC) (string, error)
}

// Splicer splices generated HTML fragments into a static page template
// via textual markers.
type Splicer interface {
	// Splice replaces the content between each section's begin/end
	// markers with the generated fragment. Returns EINVALID if a
	// section's markers are missing or malformed.
	Splice(page string, sections map[string]string) (string, error)
}

// Exporter writes the corpus as an LLM-oriented markdown export.
type Exporter interface {
	Export(c *Corpus) (string, error)
}

// SitemapWriter produces the sitemap.xml for a generated site.
type SitemapWriter interface {
	WriteSitemap(baseURL string, toc *TOC) (string, error)
}
