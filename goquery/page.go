// Package goquery implements the DOM side of the enhancement layer:
// it parses the generated page, enumerates entry nodes, and toggles
// their visibility for a filter state.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/uscon"
)

// entrySelector matches the addressable entry nodes the renderer emits.
const entrySelector = "section.entry"

// Page is a parsed generated page.
type Page struct {
	doc     *goquery.Document
	entries []*uscon.IndexRecord
	nodes   []*goquery.Selection
}

// FilterResult reports the outcome of applying a filter to a page.
type FilterResult struct {
	Total      int      `json:"total"`
	VisibleIDs []string `json:"visibleIds"`
	HiddenIDs  []string `json:"hiddenIds"`
}

// ParsePage parses generated page HTML and indexes its entry nodes.
// Returns EINVALID if the page contains no entry nodes or an entry
// carries malformed data attributes.
func ParsePage(html string) (*Page, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, uscon.Errorf(uscon.EINVALID, "unparseable page: %v", err)
	}

	p := &Page{doc: doc}

	var parseErr error
	doc.Find(entrySelector).Each(func(_ int, sel *goquery.Selection) {
		if parseErr != nil {
			return
		}
		rec, err := recordFrom(sel)
		if err != nil {
			parseErr = err
			return
		}
		rec.Position = len(p.entries)
		p.entries = append(p.entries, rec)
		p.nodes = append(p.nodes, sel)
	})
	if parseErr != nil {
		return nil, parseErr
	}

	if len(p.entries) == 0 {
		return nil, uscon.Errorf(uscon.EINVALID, "page contains no entry nodes")
	}

	return p, nil
}

// recordFrom reads one entry node's data attributes and text content
// into an index record so filter matching shares one code path with
// the search layer.
func recordFrom(sel *goquery.Selection) (*uscon.IndexRecord, error) {
	id, ok := sel.Attr("id")
	if !ok || id == "" {
		return nil, uscon.Errorf(uscon.EINVALID, "entry node without an id")
	}

	rec := &uscon.IndexRecord{
		ID:   id,
		Part: uscon.Part(sel.AttrOr("data-part", "")),
	}
	if !rec.Part.Valid() {
		return nil, uscon.Errorf(uscon.EINVALID, "entry %q has unknown part %q", id, rec.Part)
	}

	var err error
	if rec.Article, err = intAttr(sel, id, "data-article"); err != nil {
		return nil, err
	}
	if rec.Section, err = intAttr(sel, id, "data-section"); err != nil {
		return nil, err
	}
	if rec.Clause, err = intAttr(sel, id, "data-clause"); err != nil {
		return nil, err
	}
	if rec.Subclause, err = intAttr(sel, id, "data-subclause"); err != nil {
		return nil, err
	}
	if rec.Amendment, err = intAttr(sel, id, "data-amendment"); err != nil {
		return nil, err
	}

	if s := sel.AttrOr("data-repealed", "false"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, uscon.Errorf(uscon.EINVALID, "entry %q has malformed data-repealed %q", id, s)
		}
		rec.Repealed = b
	}

	// The node's text content doubles as the searchable blob; the
	// renderer includes title and tags as text, so the DOM carries
	// everything the filter needs.
	rec.Blob = strings.ToLower(strings.Join(strings.Fields(sel.Text()), " "))
	rec.Title = strings.TrimSpace(sel.Find(".entry-title").First().Text())

	return rec, nil
}

func intAttr(sel *goquery.Selection, id, name string) (*int, error) {
	s, ok := sel.Attr(name)
	if !ok || s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, uscon.Errorf(uscon.EINVALID, "entry %q has malformed %s %q", id, name, s)
	}
	return &n, nil
}

// Entries returns the page's entry records in document order.
func (p *Page) Entries() []*uscon.IndexRecord {
	return p.entries
}

// Apply toggles the hidden attribute on every entry node to reflect
// the filter state and returns the updated page HTML alongside the
// visibility result.
func (p *Page) Apply(state uscon.FilterState) (string, *FilterResult, error) {
	result := &FilterResult{Total: len(p.entries)}

	for i, rec := range p.entries {
		if state.Match(rec) {
			p.nodes[i].RemoveAttr("hidden")
			result.VisibleIDs = append(result.VisibleIDs, rec.ID)
		} else {
			p.nodes[i].SetAttr("hidden", "hidden")
			result.HiddenIDs = append(result.HiddenIDs, rec.ID)
		}
	}

	html, err := p.doc.Html()
	if err != nil {
		return "", nil, err
	}
	return html, result, nil
}
