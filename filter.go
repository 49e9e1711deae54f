package startog

import "slices"

// DefaultSearchThreshold is the fuzzy match threshold, on a scale where 0
// accepts only exact matches and 1 accepts everything.
const DefaultSearchThreshold = 0.3

// Index is an immutable fuzzy search index over a collection.
type Index interface {
	// Search returns the projects matching term, most relevant first.
	Search(term string) []*Project
}

// Indexer builds search indexes for collections.
type Indexer interface {
	// Index returns the search index for c. Implementations may return a
	// previously built index for the same collection ID.
	Index(c *Collection) Index
}

// FilterState is the search and tag selection chosen by the user.
type FilterState struct {
	SearchTerm   string
	SelectedTags []string
}

// ToggleTag returns a copy of s with tag selected if it was not selected,
// or deselected if it was.
func (s FilterState) ToggleTag(tag string) FilterState {
	if i := slices.Index(s.SelectedTags, tag); i >= 0 {
		s.SelectedTags = slices.Delete(slices.Clone(s.SelectedTags), i, i+1)
		return s
	}
	s.SelectedTags = append(slices.Clone(s.SelectedTags), tag)
	return s
}

// IsSelected reports whether tag is part of the selection.
func (s FilterState) IsSelected(tag string) bool {
	return slices.Contains(s.SelectedTags, tag)
}

// Filter returns the projects visible for searchTerm and selectedTags.
//
// A non-empty searchTerm replaces projects with the index results, in
// relevance order. A non-empty selectedTags then keeps only projects whose
// derived tags include every selected tag. With neither set, projects is
// returned unchanged.
func Filter(projects []*Project, index Index, searchTerm string, selectedTags []string) []*Project {
	result := projects
	if searchTerm != "" {
		result = nil
		if index != nil {
			result = index.Search(searchTerm)
		}
	}

	if len(selectedTags) == 0 {
		return result
	}

	filtered := make([]*Project, 0, len(result))
	for _, p := range result {
		if p.HasTags(selectedTags) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
