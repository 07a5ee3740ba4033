// Package mem provides the in-memory search layer: a linear scan over
// index records with a per-record trigram Bloom prefilter.
package mem

import (
	"context"

	"github.com/fwojciec/uscon"
	"github.com/fwojciec/uscon/bloom"
)

// trigramFPRate keeps prefilter false positives rare enough that the
// confirming substring scan stays the exception.
const trigramFPRate = 0.01

// Ensure Searcher implements uscon.Searcher at compile time.
var _ uscon.Searcher = (*Searcher)(nil)

// Searcher filters index records in memory. The dataset is a few
// hundred records, so a linear scan is the whole algorithm; the
// trigram prefilter only lets the scan skip records that cannot
// contain a query term.
type Searcher struct {
	records []*uscon.IndexRecord
	filters []*bloom.Filter
}

// NewSearcher creates a Searcher over the records of a loaded index.
// Records are assumed to be in position order, as written at build time.
func NewSearcher(idx *uscon.Index) *Searcher {
	s := &Searcher{
		records: idx.Records,
		filters: make([]*bloom.Filter, len(idx.Records)),
	}

	for i, rec := range idx.Records {
		grams := trigrams(rec.Blob)
		f := bloom.NewFilter(uint(len(grams))+1, trigramFPRate)
		for _, g := range grams {
			f.Add(g)
		}
		s.filters[i] = f
	}

	return s
}

// Search returns the records matching all active criteria, in position
// order.
func (s *Searcher) Search(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	terms := state.Terms()

	matches := []*uscon.IndexRecord{}
	for i, rec := range s.records {
		if !s.mightContain(i, terms) {
			continue
		}
		if state.Match(rec) {
			matches = append(matches, rec)
		}
	}

	return matches, nil
}

// mightContain reports whether the record could contain every query
// term. A term shorter than a trigram bypasses the prefilter; for
// longer terms, any trigram absent from the record's filter rules the
// record out without a substring scan.
func (s *Searcher) mightContain(i int, terms []string) bool {
	for _, term := range terms {
		if len(term) < 3 {
			continue
		}
		for _, g := range trigrams(term) {
			if !s.filters[i].Test(g) {
				return false
			}
		}
	}
	return true
}

// trigrams returns all 3-byte substrings of s.
func trigrams(s string) []string {
	if len(s) < 3 {
		return nil
	}
	grams := make([]string, 0, len(s)-2)
	for i := 0; i+3 <= len(s); i++ {
		grams = append(grams, s[i:i+3])
	}
	return grams
}
