// Package fs provides file-based project loading and report writing.
package fs

import (
	"context"
	"os"

	"github.com/mran/startog"
)

// Ensure Source implements startog.ProjectSource at compile time.
var _ startog.ProjectSource = (*Source)(nil)

// Source loads projects from a JSON file on disk.
type Source struct {
	path string
}

// NewSource creates a new Source reading path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// LoadProjects reads and decodes the project file.
func (s *Source) LoadProjects(ctx context.Context) ([]*startog.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return startog.DecodeProjects(f)
}

// String returns the path the source reads from.
func (s *Source) String() string {
	return s.path
}
