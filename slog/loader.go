package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/uscon"
)

// Ensure LoggingCorpusLoader implements uscon.CorpusLoader.
var _ uscon.CorpusLoader = (*LoggingCorpusLoader)(nil)

// LoggingCorpusLoader wraps a CorpusLoader with debug logging.
type LoggingCorpusLoader struct {
	next   uscon.CorpusLoader
	logger *slog.Logger
}

// NewLoggingCorpusLoader creates a new LoggingCorpusLoader.
func NewLoggingCorpusLoader(next uscon.CorpusLoader, logger *slog.Logger) *LoggingCorpusLoader {
	return &LoggingCorpusLoader{next: next, logger: logger}
}

// Load delegates to the wrapped loader and logs the operation.
func (l *LoggingCorpusLoader) Load(ctx context.Context, path string) (c *uscon.Corpus, err error) {
	defer func(begin time.Time) {
		entries := 0
		if c != nil {
			entries = len(c.Entries)
		}
		l.logger.Info("corpus load",
			"path", path,
			"entries", entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.Load(ctx, path)
}
