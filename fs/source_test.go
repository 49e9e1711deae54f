package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/mran/startog"
	"github.com/mran/startog/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_LoadProjects(t *testing.T) {
	t.Parallel()

	t.Run("reads projects from file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "projects.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"full_name": "a/x", "topics": ["cli"]}]`), 0644))

		projects, err := fs.NewSource(path).LoadProjects(context.Background())

		require.NoError(t, err)
		require.Len(t, projects, 1)
		assert.Equal(t, []string{"cli"}, projects[0].Tags())
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.json")

		_, err := fs.NewSource(path).LoadProjects(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("returns EINVALID for malformed file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "projects.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"full_name": `), 0644))

		_, err := fs.NewSource(path).LoadProjects(context.Background())

		require.Error(t, err)
		assert.Equal(t, startog.EINVALID, startog.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fs.NewSource("projects.json").LoadProjects(ctx)

		require.ErrorIs(t, err, context.Canceled)
	})
}
