package main

import (
	"context"
	"log/slog"

	"github.com/mran/startog"
)

// Showcase owns the view state: the loaded collection, its tag statistics
// and the user's current filters. Everything it shows is recomputed from
// those through the pure functions of package startog.
type Showcase struct {
	Source  startog.ProjectSource
	Indexer startog.Indexer
	Logger  *slog.Logger

	collection *startog.Collection
	stats      startog.TagStats
	state      startog.FilterState
}

// Load loads the collection from Source. A failed load is logged and
// leaves the showcase with an empty collection; it is not retried.
func (s *Showcase) Load(ctx context.Context) {
	projects, err := s.Source.LoadProjects(ctx)
	if err != nil {
		s.Logger.Warn("loading projects failed, showing empty collection", "err", err)
		projects = nil
	}
	s.setCollection(startog.NewCollection(projects))
}

func (s *Showcase) setCollection(c *startog.Collection) {
	s.collection = c
	s.stats = startog.Aggregate(c.Projects)
}

// Collection returns the loaded collection.
func (s *Showcase) Collection() *startog.Collection {
	return s.collection
}

// Stats returns the tag statistics of the loaded collection.
func (s *Showcase) Stats() startog.TagStats {
	return s.stats
}

// State returns the current filters.
func (s *Showcase) State() startog.FilterState {
	return s.state
}

// SetSearchTerm replaces the search term. An empty term disables search.
func (s *Showcase) SetSearchTerm(term string) {
	s.state.SearchTerm = term
}

// ToggleTag selects tag, or deselects it if it is already selected.
func (s *Showcase) ToggleTag(tag string) {
	s.state = s.state.ToggleTag(tag)
}

// ClearTags deselects every tag.
func (s *Showcase) ClearTags() {
	s.state.SelectedTags = nil
}

// Visible returns the projects matching the current filters.
func (s *Showcase) Visible() []*startog.Project {
	if s.collection == nil {
		return nil
	}

	var index startog.Index
	if s.state.SearchTerm != "" {
		index = s.Indexer.Index(s.collection)
	}
	return startog.Filter(s.collection.Projects, index, s.state.SearchTerm, s.state.SelectedTags)
}
