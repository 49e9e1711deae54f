package slog

import (
	"log/slog"
	"time"

	"github.com/mran/startog"
)

// Ensure LoggingIndexer implements startog.Indexer.
var _ startog.Indexer = (*LoggingIndexer)(nil)

// LoggingIndexer wraps an Indexer with debug logging.
type LoggingIndexer struct {
	next   startog.Indexer
	logger *slog.Logger
}

// NewLoggingIndexer creates a new LoggingIndexer.
func NewLoggingIndexer(next startog.Indexer, logger *slog.Logger) *LoggingIndexer {
	return &LoggingIndexer{next: next, logger: logger}
}

// Index delegates to the wrapped indexer and logs the build.
func (ix *LoggingIndexer) Index(c *startog.Collection) startog.Index {
	begin := time.Now()
	idx := ix.next.Index(c)

	id := "(none)"
	if c != nil {
		id = c.ID
	}
	ix.logger.Debug("index build",
		"collection", id,
		"count", c.Len(),
		"duration", time.Since(begin),
	)
	return idx
}
