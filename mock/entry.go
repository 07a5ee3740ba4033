package mock

import (
	"context"

	"github.com/fwojciec/uscon"
)

var _ uscon.EntryService = (*EntryService)(nil)

// EntryService is a mock implementation of uscon.EntryService.
type EntryService struct {
	CreateEntriesFn func(ctx context.Context, entries []*uscon.Entry) error
	FindEntryByIDFn func(ctx context.Context, id string) (*uscon.Entry, error)
	FindEntriesFn   func(ctx context.Context, filter uscon.EntryFilter) ([]*uscon.Entry, error)
	CountEntriesFn  func(ctx context.Context) (int, error)
}

func (s *EntryService) CreateEntries(ctx context.Context, entries []*uscon.Entry) error {
	return s.CreateEntriesFn(ctx, entries)
}

func (s *EntryService) FindEntryByID(ctx context.Context, id string) (*uscon.Entry, error) {
	return s.FindEntryByIDFn(ctx, id)
}

func (s *EntryService) FindEntries(ctx context.Context, filter uscon.EntryFilter) ([]*uscon.Entry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *EntryService) CountEntries(ctx context.Context) (int, error) {
	return s.CountEntriesFn(ctx)
}

var _ uscon.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of uscon.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error)
}

func (s *Searcher) Search(ctx context.Context, state uscon.FilterState) ([]*uscon.IndexRecord, error) {
	return s.SearchFn(ctx, state)
}
