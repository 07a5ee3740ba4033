// Package json loads the canonical JSON data file and normalizes it
// into a validated, sorted corpus.
package json

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/uscon"
)

// Ensure Loader implements uscon.CorpusLoader at compile time.
var _ uscon.CorpusLoader = (*Loader)(nil)

// Loader reads the canonical data file and derives every computed
// field: titles, rendered HTML, searchable blobs, and content hashes.
type Loader struct {
	// Markdown renders entry free text to HTML.
	Markdown uscon.MarkdownRenderer
}

// NewLoader creates a new Loader.
func NewLoader(markdown uscon.MarkdownRenderer) *Loader {
	return &Loader{Markdown: markdown}
}

// Load reads, normalizes, and validates the canonical data file.
// Returns ENOTFOUND if the file does not exist and EINVALID for
// malformed or invariant-violating data.
func (l *Loader) Load(ctx context.Context, path string) (*uscon.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, uscon.Errorf(uscon.ENOTFOUND, "data file %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	var corpus uscon.Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, uscon.Errorf(uscon.EINVALID, "malformed data file %q: %v", path, err)
	}

	if err := l.normalize(&corpus); err != nil {
		return nil, err
	}

	if err := corpus.Validate(); err != nil {
		return nil, err
	}

	return &corpus, nil
}

// normalize sorts entries and populates the derived fields. Entries are
// immutable once this completes.
func (l *Loader) normalize(c *uscon.Corpus) error {
	c.Sort()

	for _, e := range c.Entries {
		if err := e.Validate(); err != nil {
			return err
		}

		e.Title = e.DeriveTitle()

		html, err := l.Markdown.Render(e.Text)
		if err != nil {
			return uscon.Errorf(uscon.EINVALID, "entry %q: %s", e.ID, uscon.ErrorMessage(err))
		}
		e.HTML = html

		e.Blob = SearchBlob(e.Title, html, e.Tags)
		e.ContentHash = hashContent(e.Text)
	}

	return nil
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}
