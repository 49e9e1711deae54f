// Package ristretto caches search indexes in memory using dgraph-io/ristretto.
package ristretto

import (
	"github.com/dgraph-io/ristretto/v2"
	"github.com/mran/startog"
)

// DefaultMaxIndexes is the default number of indexes kept in the cache.
const DefaultMaxIndexes = 4

// Ensure Indexer implements startog.Indexer at compile time.
var _ startog.Indexer = (*Indexer)(nil)

// Indexer wraps an Indexer and reuses the index built for a collection ID.
// Collections are keyed by identity: two collections holding equal projects
// still get separate indexes.
type Indexer struct {
	next  startog.Indexer
	cache *ristretto.Cache[string, startog.Index]
}

// NewIndexer creates a caching Indexer holding up to maxIndexes indexes.
func NewIndexer(next startog.Indexer, maxIndexes int64) (*Indexer, error) {
	if maxIndexes <= 0 {
		maxIndexes = DefaultMaxIndexes
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, startog.Index]{
		NumCounters:        maxIndexes * 10,
		MaxCost:            maxIndexes,
		BufferItems:        64,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, err
	}
	return &Indexer{next: next, cache: c}, nil
}

// Index returns the cached index for c, building it on a miss.
func (ix *Indexer) Index(c *startog.Collection) startog.Index {
	if c == nil {
		return ix.next.Index(c)
	}

	if idx, ok := ix.cache.Get(c.ID); ok {
		return idx
	}

	idx := ix.next.Index(c)
	ix.cache.Set(c.ID, idx, 1)
	// Make the entry visible to the next Get.
	ix.cache.Wait()
	return idx
}

// Close releases the cache.
func (ix *Indexer) Close() {
	ix.cache.Close()
}
