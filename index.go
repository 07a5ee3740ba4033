package uscon

import "context"

// IndexRecord is what the search index stores per entry: everything
// the filter layer needs to decide visibility, nothing more.
type IndexRecord struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Part      Part     `json:"part"`
	Article   *int     `json:"article,omitempty"`
	Section   *int     `json:"section,omitempty"`
	Clause    *int     `json:"clause,omitempty"`
	Subclause *int     `json:"subclause,omitempty"`
	Amendment *int     `json:"amendmentNumber,omitempty"`
	Repealed  bool     `json:"isRepealed"`
	Tags      []string `json:"tags,omitempty"`
	Position  int      `json:"position"`

	// Blob is the lowercase searchable text: title, plain text of the
	// rendered HTML, and tags, with whitespace collapsed.
	Blob string `json:"blob"`
}

// Validate returns an error if the record cannot drive filtering or
// TOC derivation. Records written by BuildIndex always pass; this
// guards indexes read back from disk.
func (r *IndexRecord) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "index record ID required")
	}
	if !r.Part.Valid() {
		return Errorf(EINVALID, "index record %q has unknown part %q", r.ID, r.Part)
	}
	switch r.Part {
	case PartArticle:
		if r.Article == nil {
			return Errorf(EINVALID, "article record %q requires an article number", r.ID)
		}
	case PartAmendment:
		if r.Amendment == nil {
			return Errorf(EINVALID, "amendment record %q requires an amendment number", r.ID)
		}
	}
	return nil
}

// Index is the serialized search index written at build time and
// loaded by the search layer.
type Index struct {
	Name    string         `json:"name"`
	Count   int            `json:"count"`
	Records []*IndexRecord `json:"records"`
}

// BuildIndex derives the search index from a loaded corpus.
// Records come out in position order.
func BuildIndex(c *Corpus) *Index {
	records := make([]*IndexRecord, 0, len(c.Entries))
	for _, e := range c.Entries {
		records = append(records, &IndexRecord{
			ID:        e.ID,
			Title:     e.Title,
			Part:      e.Part,
			Article:   e.Article,
			Section:   e.Section,
			Clause:    e.Clause,
			Subclause: e.Subclause,
			Amendment: e.Amendment,
			Repealed:  e.IsRepealed(),
			Tags:      e.Tags,
			Position:  e.Position,
			Blob:      e.Blob,
		})
	}
	return &Index{
		Name:    c.Name,
		Count:   len(records),
		Records: records,
	}
}

// Searcher filters index records against a FilterState.
type Searcher interface {
	// Search returns the records matching all active criteria, in
	// position order.
	Search(ctx context.Context, state FilterState) ([]*IndexRecord, error)
}
