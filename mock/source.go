package mock

import (
	"context"

	"github.com/mran/startog"
)

var _ startog.ProjectSource = (*ProjectSource)(nil)

// ProjectSource is a mock implementation of startog.ProjectSource.
type ProjectSource struct {
	LoadProjectsFn func(ctx context.Context) ([]*startog.Project, error)
}

func (s *ProjectSource) LoadProjects(ctx context.Context) ([]*startog.Project, error) {
	return s.LoadProjectsFn(ctx)
}
