package uscon

import (
	"context"
	"sort"
)

// Corpus is the fully normalized document: all entries in position
// order plus document-level metadata. A Corpus is built once by a
// CorpusLoader and treated as immutable afterwards.
type Corpus struct {
	// Name is the document title from the canonical data file.
	Name string `json:"name"`

	// Entries in ascending position order.
	Entries []*Entry `json:"entries"`
}

// Validate returns an error if the corpus violates its invariants:
// every entry valid, IDs unique, positions unique and ascending.
func (c *Corpus) Validate() error {
	if c.Name == "" {
		return Errorf(EINVALID, "corpus name required")
	}
	if len(c.Entries) == 0 {
		return Errorf(EINVALID, "corpus has no entries")
	}

	seenIDs := make(map[string]bool, len(c.Entries))
	lastPos := -1
	for _, e := range c.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
		if seenIDs[e.ID] {
			return Errorf(EINVALID, "duplicate entry ID %q", e.ID)
		}
		seenIDs[e.ID] = true

		if e.Position == lastPos {
			return Errorf(EINVALID, "duplicate position %d on entry %q", e.Position, e.ID)
		}
		if e.Position < lastPos {
			return Errorf(EINVALID, "entries out of position order at entry %q", e.ID)
		}
		lastPos = e.Position
	}

	return nil
}

// Sort orders entries by ascending position, breaking ties by ID so
// ordering stays deterministic even for invalid input.
func (c *Corpus) Sort() {
	sort.SliceStable(c.Entries, func(i, j int) bool {
		if c.Entries[i].Position != c.Entries[j].Position {
			return c.Entries[i].Position < c.Entries[j].Position
		}
		return c.Entries[i].ID < c.Entries[j].ID
	})
}

// EntriesByPart returns the entries belonging to a part, in position order.
func (c *Corpus) EntriesByPart(p Part) []*Entry {
	var entries []*Entry
	for _, e := range c.Entries {
		if e.Part == p {
			entries = append(entries, e)
		}
	}
	return entries
}

// ArticleNumbers returns the distinct article numbers in reading order.
func (c *Corpus) ArticleNumbers() []int {
	return c.distinctNumbers(PartArticle)
}

// AmendmentNumbers returns the distinct amendment numbers in reading order.
func (c *Corpus) AmendmentNumbers() []int {
	return c.distinctNumbers(PartAmendment)
}

func (c *Corpus) distinctNumbers(p Part) []int {
	var nums []int
	seen := make(map[int]bool)
	for _, e := range c.Entries {
		if e.Part != p {
			continue
		}
		var n int
		switch p {
		case PartArticle:
			if e.Article == nil {
				continue
			}
			n = *e.Article
		case PartAmendment:
			if e.Amendment == nil {
				continue
			}
			n = *e.Amendment
		}
		if !seen[n] {
			seen[n] = true
			nums = append(nums, n)
		}
	}
	return nums
}

// CorpusLoader loads and normalizes the canonical data file.
// Implementations derive titles, rendered HTML, searchable blobs, and
// content hashes, sort by position, and validate all invariants.
type CorpusLoader interface {
	Load(ctx context.Context, path string) (*Corpus, error)
}
