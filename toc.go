package uscon

import (
	"strings"
	"unicode"
)

// TOC is the derived table of contents: the preamble, then articles,
// then amendments, each group in numeric order.
type TOC struct {
	Preamble   *TOCItem   `json:"preamble,omitempty"`
	Articles   []TOCGroup `json:"articles,omitempty"`
	Amendments []TOCGroup `json:"amendments,omitempty"`
}

// TOCGroup is a heading with its member entries, e.g. "Article I" with
// its sections and clauses.
type TOCGroup struct {
	Number int       `json:"number"`
	Title  string    `json:"title"`
	Anchor string    `json:"anchor"`
	Items  []TOCItem `json:"items,omitempty"`
}

// TOCItem points at a single entry.
type TOCItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Anchor   string `json:"anchor"`
	Repealed bool   `json:"isRepealed,omitempty"`
}

// BuildTOC derives the table of contents from a sorted corpus.
// Entries are grouped by part, then by article or amendment number.
// No relationships beyond this grouping exist between entries.
func BuildTOC(c *Corpus) *TOC {
	b := newTOCBuilder()
	for _, e := range c.Entries {
		b.add(e.Part, e.Article, e.Amendment, TOCItem{
			ID:       e.ID,
			Title:    e.Title,
			Anchor:   e.ID,
			Repealed: e.IsRepealed(),
		})
	}
	return b.result()
}

// BuildTOCFromIndex derives the table of contents from a serialized
// search index, so a previously generated site can be served without
// the canonical data file.
func BuildTOCFromIndex(idx *Index) *TOC {
	b := newTOCBuilder()
	for _, rec := range idx.Records {
		b.add(rec.Part, rec.Article, rec.Amendment, TOCItem{
			ID:       rec.ID,
			Title:    rec.Title,
			Anchor:   rec.ID,
			Repealed: rec.Repealed,
		})
	}
	return b.result()
}

// tocBuilder accumulates items into part groups in first-seen order.
// Inputs arrive in position order, so first-seen is document order.
type tocBuilder struct {
	toc          TOC
	articleIdx   map[int]int
	amendmentIdx map[int]int
}

func newTOCBuilder() *tocBuilder {
	return &tocBuilder{
		articleIdx:   make(map[int]int),
		amendmentIdx: make(map[int]int),
	}
}

func (b *tocBuilder) add(part Part, article, amendment *int, item TOCItem) {
	switch part {
	case PartPreamble:
		if b.toc.Preamble == nil {
			b.toc.Preamble = &item
		}
	case PartArticle:
		if article == nil {
			return
		}
		n := *article
		i, ok := b.articleIdx[n]
		if !ok {
			title := "Article " + Roman(n)
			b.toc.Articles = append(b.toc.Articles, TOCGroup{
				Number: n,
				Title:  title,
				Anchor: Anchorize(title),
			})
			i = len(b.toc.Articles) - 1
			b.articleIdx[n] = i
		}
		b.toc.Articles[i].Items = append(b.toc.Articles[i].Items, item)
	case PartAmendment:
		if amendment == nil {
			return
		}
		n := *amendment
		i, ok := b.amendmentIdx[n]
		if !ok {
			title := "Amendment " + Roman(n)
			b.toc.Amendments = append(b.toc.Amendments, TOCGroup{
				Number: n,
				Title:  title,
				Anchor: Anchorize(title),
			})
			i = len(b.toc.Amendments) - 1
			b.amendmentIdx[n] = i
		}
		b.toc.Amendments[i].Items = append(b.toc.Amendments[i].Items, item)
	}
}

func (b *tocBuilder) result() *TOC {
	return &b.toc
}

// Anchorize creates a URL-safe anchor from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
func Anchorize(title string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	return strings.TrimSuffix(sb.String(), "-")
}
