package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uscon"
)

// Ensure LoggingSearcher implements uscon.Searcher.
var _ uscon.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with debug logging.
type LoggingSearcher struct {
	next   uscon.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next uscon.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, state uscon.FilterState) (matches []*uscon.IndexRecord, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", state.EncodeQuery(),
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, state)
}
