// Package site generates the static page: document HTML, table of
// contents, marker-based template splicing, and the sitemap.
package site

import (
	"html/template"
	"strings"

	"github.com/fwojciec/uscon"
)

// Ensure Renderer implements uscon.Renderer at compile time.
var _ uscon.Renderer = (*Renderer)(nil)

// Renderer generates the document HTML fragments with html/template.
// Every entry becomes one addressable <section> carrying the data
// attributes the filter layer reads.
type Renderer struct {
	entries *template.Template
	toc     *template.Template
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{
		entries: template.Must(template.New("entries").Parse(entriesTemplate)),
		toc:     template.Must(template.New("toc").Parse(tocTemplate)),
	}
}

const entriesTemplate = `{{- range .Groups}}
<section class="part"{{if .Anchor}} aria-labelledby="{{.Anchor}}"{{end}}>
{{- if .Anchor}}
<h2 id="{{.Anchor}}">{{.Title}}</h2>
{{- end}}
{{- range .Entries}}
<section class="entry" id="{{.ID}}" data-part="{{.Part}}"{{if .Article}} data-article="{{.Article}}"{{end}}{{if .Section}} data-section="{{.Section}}"{{end}}{{if .Clause}} data-clause="{{.Clause}}"{{end}}{{if .Subclause}} data-subclause="{{.Subclause}}"{{end}}{{if .Amendment}} data-amendment="{{.Amendment}}"{{end}} data-repealed="{{.Repealed}}">
<h3 class="entry-title"><a href="#{{.ID}}">{{.Title}}</a></h3>
{{- if .Repealed}}
<p class="entry-repealed">Repealed{{if .RepealedBy}} by {{.RepealedBy}}{{end}}{{if .RepealedDate}} on {{.RepealedDate}}{{end}}.</p>
{{- end}}
<div class="entry-text">{{.HTML}}</div>
{{- if .Tags}}
<p class="entry-tags">{{range .Tags}}<span class="tag">{{.}}</span> {{end}}</p>
{{- end}}
</section>
{{- end}}
</section>
{{- end}}
`

const tocTemplate = `<nav class="toc" aria-label="Table of contents">
<ol>
{{- if .Preamble}}
<li><a href="#{{.Preamble.Anchor}}">{{.Preamble.Title}}</a></li>
{{- end}}
{{- range .Articles}}
<li><a href="#{{.Anchor}}">{{.Title}}</a>
{{- if .Items}}
<ol>
{{- range .Items}}
<li{{if .Repealed}} class="repealed"{{end}}><a href="#{{.Anchor}}">{{.Title}}</a></li>
{{- end}}
</ol>
{{- end}}
</li>
{{- end}}
{{- range .Amendments}}
<li><a href="#{{.Anchor}}">{{.Title}}</a>
{{- if .Items}}
<ol>
{{- range .Items}}
<li{{if .Repealed}} class="repealed"{{end}}><a href="#{{.Anchor}}">{{.Title}}</a></li>
{{- end}}
</ol>
{{- end}}
</li>
{{- end}}
</ol>
</nav>
`

type entryView struct {
	ID           string
	Title        string
	Part         uscon.Part
	Article      *int
	Section      *int
	Clause       *int
	Subclause    *int
	Amendment    *int
	Repealed     bool
	RepealedBy   string
	RepealedDate string
	HTML         template.HTML
	Tags         []string
}

type groupView struct {
	Title   string
	Anchor  string
	Entries []entryView
}

type entriesViewModel struct {
	Groups []groupView
}

// RenderEntries produces the article/section/amendment HTML: one
// addressable node per entry, grouped under part headings derived the
// same way the TOC is.
func (r *Renderer) RenderEntries(c *uscon.Corpus) (string, error) {
	byID := make(map[string]*uscon.Entry, len(c.Entries))
	for _, e := range c.Entries {
		byID[e.ID] = e
	}

	toc := uscon.BuildTOC(c)

	var vm entriesViewModel
	if toc.Preamble != nil {
		vm.Groups = append(vm.Groups, groupView{
			Entries: []entryView{viewFor(byID[toc.Preamble.ID])},
		})
	}
	for _, g := range append(toc.Articles, toc.Amendments...) {
		gv := groupView{Title: g.Title, Anchor: g.Anchor}
		for _, item := range g.Items {
			gv.Entries = append(gv.Entries, viewFor(byID[item.ID]))
		}
		vm.Groups = append(vm.Groups, gv)
	}

	var sb strings.Builder
	if err := r.entries.Execute(&sb, vm); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func viewFor(e *uscon.Entry) entryView {
	return entryView{
		ID:           e.ID,
		Title:        e.Title,
		Part:         e.Part,
		Article:      e.Article,
		Section:      e.Section,
		Clause:       e.Clause,
		Subclause:    e.Subclause,
		Amendment:    e.Amendment,
		Repealed:     e.IsRepealed(),
		RepealedBy:   e.RepealedBy,
		RepealedDate: e.RepealedDate,
		HTML:         template.HTML(e.HTML),
		Tags:         e.Tags,
	}
}

// RenderTOC produces the table-of-contents HTML.
func (r *Renderer) RenderTOC(toc *uscon.TOC) (string, error) {
	var sb strings.Builder
	if err := r.toc.Execute(&sb, toc); err != nil {
		return "", err
	}
	return sb.String(), nil
}
