package startog_test

import (
	"testing"

	"github.com/mran/startog"
	"github.com/stretchr/testify/assert"
)

func TestProject_Tags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		project startog.Project
		want    []string
	}{
		{
			name: "topics then ai tags then language",
			project: startog.Project{
				Topics:   []string{"hexo", "theme"},
				AITag:    &startog.AITag{Tags: []string{"Web Development"}},
				Language: "CSS",
			},
			want: []string{"hexo", "theme", "Web Development", "CSS"},
		},
		{
			name: "keeps duplicates across sources",
			project: startog.Project{
				Topics:   []string{"Java"},
				AITag:    &startog.AITag{Tags: []string{"Java"}},
				Language: "Java",
			},
			want: []string{"Java", "Java", "Java"},
		},
		{
			name: "drops empty values",
			project: startog.Project{
				Topics: []string{"", "cli"},
				AITag:  &startog.AITag{Tags: []string{""}},
			},
			want: []string{"cli"},
		},
		{
			name:    "ai tag without tags",
			project: startog.Project{AITag: &startog.AITag{Group: "tools"}, Language: "Go"},
			want:    []string{"Go"},
		},
		{
			name:    "no tag sources",
			project: startog.Project{FullName: "a/empty"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.project.Tags())
		})
	}
}

func TestProject_HasTags(t *testing.T) {
	t.Parallel()

	p := &startog.Project{
		Topics:   []string{"android"},
		AITag:    &startog.AITag{Tags: []string{"Mobile Development"}},
		Language: "Java",
	}

	t.Run("empty selection matches", func(t *testing.T) {
		t.Parallel()

		assert.True(t, p.HasTags(nil))
	})

	t.Run("requires every tag", func(t *testing.T) {
		t.Parallel()

		assert.True(t, p.HasTags([]string{"Java", "android"}))
		assert.False(t, p.HasTags([]string{"Java", "CSS"}))
	})

	t.Run("is case sensitive", func(t *testing.T) {
		t.Parallel()

		assert.False(t, p.HasTags([]string{"java"}))
	})

	t.Run("project without tags only matches empty selection", func(t *testing.T) {
		t.Parallel()

		empty := &startog.Project{FullName: "a/empty"}
		assert.True(t, empty.HasTags(nil))
		assert.False(t, empty.HasTags([]string{"Java"}))
	})
}
