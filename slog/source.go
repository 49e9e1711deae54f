// Package slog provides logging decorators for startog services.
package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mran/startog"
)

// Ensure LoggingSource implements startog.ProjectSource.
var _ startog.ProjectSource = (*LoggingSource)(nil)

// LoggingSource wraps a ProjectSource with logging.
type LoggingSource struct {
	next   startog.ProjectSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next startog.ProjectSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// LoadProjects delegates to the wrapped source and logs the operation.
func (s *LoggingSource) LoadProjects(ctx context.Context) (projects []*startog.Project, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("project load",
			"source", fmt.Sprint(s.next),
			"count", len(projects),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadProjects(ctx)
}
