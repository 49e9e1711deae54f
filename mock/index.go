package mock

import "github.com/mran/startog"

var (
	_ startog.Index   = (*Index)(nil)
	_ startog.Indexer = (*Indexer)(nil)
)

// Index is a mock implementation of startog.Index.
type Index struct {
	SearchFn func(term string) []*startog.Project
}

func (i *Index) Search(term string) []*startog.Project {
	return i.SearchFn(term)
}

// Indexer is a mock implementation of startog.Indexer.
type Indexer struct {
	IndexFn func(c *startog.Collection) startog.Index
}

func (i *Indexer) Index(c *startog.Collection) startog.Index {
	return i.IndexFn(c)
}
