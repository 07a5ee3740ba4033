// Package mock provides function-field mock implementations of the
// uscon service interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/uscon"
)

var _ uscon.CorpusLoader = (*CorpusLoader)(nil)

// CorpusLoader is a mock implementation of uscon.CorpusLoader.
type CorpusLoader struct {
	LoadFn func(ctx context.Context, path string) (*uscon.Corpus, error)
}

func (l *CorpusLoader) Load(ctx context.Context, path string) (*uscon.Corpus, error) {
	return l.LoadFn(ctx, path)
}

var _ uscon.MarkdownRenderer = (*MarkdownRenderer)(nil)

// MarkdownRenderer is a mock implementation of uscon.MarkdownRenderer.
type MarkdownRenderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *MarkdownRenderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}
