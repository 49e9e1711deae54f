package mock

import (
	"context"

	"github.com/mran/startog"
)

var _ startog.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of startog.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, projects []*startog.Project) error
}

func (w *ReportWriter) WriteReport(ctx context.Context, projects []*startog.Project) error {
	return w.WriteReportFn(ctx, projects)
}
