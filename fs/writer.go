package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/mran/startog"
)

// Ensure Writer implements startog.ReportWriter at compile time.
var _ startog.ReportWriter = (*Writer)(nil)

// Writer writes project reports as markdown files.
type Writer struct {
	path string
}

// NewWriter creates a new Writer that writes to path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteReport writes projects to disk as a markdown file, replacing any
// existing file.
func (w *Writer) WriteReport(ctx context.Context, projects []*startog.Project) error {
	if len(projects) == 0 {
		return startog.Errorf(startog.EINVALID, "no projects to write")
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return err
	}

	content := startog.FormatProjects(projects)
	return os.WriteFile(w.path, []byte(content), 0644)
}

// Path returns the file the writer writes to.
func (w *Writer) Path() string {
	return w.path
}
