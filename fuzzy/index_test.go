package fuzzy_test

import (
	"strings"
	"testing"

	"github.com/mran/startog"
	"github.com/mran/startog/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []*startog.Project {
	return []*startog.Project{
		{FullName: "a/x", Topics: []string{"Java"}, Language: "Java"},
		{FullName: "a/y", Topics: []string{}, Language: "CSS"},
	}
}

func fullNames(projects []*startog.Project) []string {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.FullName
	}
	return names
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("no project within threshold", func(t *testing.T) {
		t.Parallel()

		idx := fuzzy.NewIndexer().Build(sampleProjects())

		assert.Empty(t, idx.Search("xqz123"))
	})

	t.Run("matches tags case-insensitively", func(t *testing.T) {
		t.Parallel()

		idx := fuzzy.NewIndexer().Build(sampleProjects())

		assert.Equal(t, []string{"a/x"}, fullNames(idx.Search("JAVA")))
		assert.Equal(t, []string{"a/y"}, fullNames(idx.Search("css")))
	})

	t.Run("tolerates a typo", func(t *testing.T) {
		t.Parallel()

		idx := fuzzy.NewIndexer().Build(sampleProjects())

		assert.Equal(t, []string{"a/x"}, fullNames(idx.Search("javs")))
	})

	t.Run("searches description and ai tags", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{
			{FullName: "a/one", Description: "Static site generator"},
			{FullName: "a/two", AITag: &startog.AITag{Tags: []string{"Mobile Development"}}},
		}
		idx := fuzzy.NewIndexer().Build(projects)

		assert.Equal(t, []string{"a/one"}, fullNames(idx.Search("static")))
		assert.Equal(t, []string{"a/two"}, fullNames(idx.Search("mobile")))
	})

	t.Run("ranks exact field match first", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{
			{FullName: "x/reactor-kit"},
			{FullName: "b/ui", Topics: []string{"react"}},
		}
		idx := fuzzy.NewIndexer().Build(projects)

		assert.Equal(t, []string{"b/ui", "x/reactor-kit"}, fullNames(idx.Search("react")))
	})

	t.Run("matches near the start of a field only", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{
			{FullName: "a/far", Description: strings.Repeat("a", 40) + " react"},
		}

		assert.Empty(t, fuzzy.NewIndexer().Build(projects).Search("react"))

		idx := fuzzy.NewIndexer(fuzzy.WithIgnoreLocation(true)).Build(projects)
		assert.Equal(t, []string{"a/far"}, fullNames(idx.Search("react")))
	})

	t.Run("equal scores keep collection order", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{
			{FullName: "a/1", Language: "Go"},
			{FullName: "a/2", Language: "Go"},
			{FullName: "a/3", Language: "Go"},
		}
		idx := fuzzy.NewIndexer().Build(projects)

		assert.Equal(t, []string{"a/1", "a/2", "a/3"}, fullNames(idx.Search("go")))
	})

	t.Run("scores are sorted ascending", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{
			{FullName: "team/static-docs", Description: "Docs"},
			{FullName: "s/static"},
			{FullName: "q/q", Topics: []string{"static"}},
		}
		idx := fuzzy.NewIndexer().Build(projects)

		results := idx.SearchResults("static")

		require.Len(t, results, 3)
		scores := make([]float64, len(results))
		for i, r := range results {
			scores[i] = r.Score
		}
		assert.IsNonDecreasing(t, scores)
	})

	t.Run("matches terms longer than one chunk", func(t *testing.T) {
		t.Parallel()

		long := "a collection of curated resources for go developers"
		projects := []*startog.Project{
			{FullName: "a/awesome", Description: long + " and friends"},
			{FullName: "a/other", Description: "Unrelated"},
		}
		idx := fuzzy.NewIndexer().Build(projects)

		assert.Equal(t, []string{"a/awesome"}, fullNames(idx.Search(long)))
	})

	t.Run("empty term matches nothing", func(t *testing.T) {
		t.Parallel()

		idx := fuzzy.NewIndexer().Build(sampleProjects())

		assert.Empty(t, idx.Search(""))
	})

	t.Run("skips absent fields", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{{FullName: "a/bare"}}
		idx := fuzzy.NewIndexer().Build(projects)

		assert.Equal(t, []string{"a/bare"}, fullNames(idx.Search("a/bare")))
		assert.Equal(t, 1, idx.Len())
	})
}

func TestWithThreshold(t *testing.T) {
	t.Parallel()

	idx := fuzzy.NewIndexer(fuzzy.WithThreshold(0)).Build(sampleProjects())

	assert.Empty(t, idx.Search("javs"))
	assert.Equal(t, []string{"a/x"}, fullNames(idx.Search("java")))
}

func TestWithIgnoreDiacritics(t *testing.T) {
	t.Parallel()

	t.Run("folds accents on both sides", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{{FullName: "a/v", Description: "àéîõü"}}

		assert.Empty(t, fuzzy.NewIndexer().Build(projects).Search("aeiou"))

		idx := fuzzy.NewIndexer(fuzzy.WithIgnoreDiacritics(true)).Build(projects)
		assert.Equal(t, []string{"a/v"}, fullNames(idx.Search("aeiou")))
	})

	t.Run("term of only combining marks matches nothing", func(t *testing.T) {
		t.Parallel()

		projects := []*startog.Project{{FullName: "a/cafe", Description: "café"}}
		idx := fuzzy.NewIndexer(fuzzy.WithIgnoreDiacritics(true)).Build(projects)

		assert.Empty(t, idx.Search("\u0301"))
		assert.Empty(t, idx.SearchResults("\u0301\u0300"))
	})
}

func TestWithKeys(t *testing.T) {
	t.Parallel()

	nameOnly := fuzzy.Key{
		Name:   "full_name",
		Weight: 1,
		Values: func(p *startog.Project) []string { return []string{p.FullName} },
	}
	idx := fuzzy.NewIndexer(fuzzy.WithKeys(nameOnly)).Build(sampleProjects())

	assert.Empty(t, idx.Search("java"))
	assert.Equal(t, []string{"a/y"}, fullNames(idx.Search("a/y")))
}

func TestIndexer_Index(t *testing.T) {
	t.Parallel()

	t.Run("indexes collection projects", func(t *testing.T) {
		t.Parallel()

		c := startog.NewCollection(sampleProjects())

		idx := fuzzy.NewIndexer().Index(c)

		assert.Equal(t, []string{"a/y"}, fullNames(idx.Search("css")))
	})

	t.Run("nil collection yields empty index", func(t *testing.T) {
		t.Parallel()

		idx := fuzzy.NewIndexer().Index(nil)

		assert.Empty(t, idx.Search("css"))
	})

	t.Run("builds a new index per call", func(t *testing.T) {
		t.Parallel()

		ix := fuzzy.NewIndexer()
		c := startog.NewCollection(sampleProjects())

		assert.NotSame(t, ix.Index(c), ix.Index(c))
	})
}
