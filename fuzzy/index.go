// Package fuzzy provides an approximate-match search index over projects,
// implementing startog.Indexer with Bitap scoring.
package fuzzy

import (
	"math"
	"sort"
	"strings"

	"github.com/mran/startog"
)

// Default scoring parameters.
const (
	DefaultLocation = 0
	DefaultDistance = 100
)

// Key is a searchable project field.
type Key struct {
	Name   string
	Weight float64
	Values func(p *startog.Project) []string
}

// DefaultKeys are the fields searched by default, all weighted equally.
var DefaultKeys = []Key{
	{Name: "full_name", Weight: 1, Values: func(p *startog.Project) []string { return []string{p.FullName} }},
	{Name: "description", Weight: 1, Values: func(p *startog.Project) []string { return []string{p.Description} }},
	{Name: "ai_tag.tags", Weight: 1, Values: func(p *startog.Project) []string {
		if p.AITag == nil {
			return nil
		}
		return p.AITag.Tags
	}},
	{Name: "topics", Weight: 1, Values: func(p *startog.Project) []string { return p.Topics }},
	{Name: "language", Weight: 1, Values: func(p *startog.Project) []string { return []string{p.Language} }},
}

// Ensure Indexer implements startog.Indexer at compile time.
var _ startog.Indexer = (*Indexer)(nil)

// Indexer builds a new Index on every call.
type Indexer struct {
	opts             matchOptions
	keys             []Key
	ignoreDiacritics bool
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithThreshold sets the highest per-field score that still counts as a
// match. Defaults to startog.DefaultSearchThreshold.
func WithThreshold(t float64) Option {
	return func(ix *Indexer) {
		ix.opts.threshold = t
	}
}

// WithLocation sets where in a field a match is expected to start.
func WithLocation(loc int) Option {
	return func(ix *Indexer) {
		ix.opts.location = loc
	}
}

// WithDistance sets how far from the expected location a match may start
// before it scores 1. Zero requires an exact location.
func WithDistance(d int) Option {
	return func(ix *Indexer) {
		ix.opts.distance = d
	}
}

// WithIgnoreLocation scores matches by errors only.
func WithIgnoreLocation(ignore bool) Option {
	return func(ix *Indexer) {
		ix.opts.ignoreLocation = ignore
	}
}

// WithIgnoreDiacritics folds accented characters to their base letters in
// both fields and search terms.
func WithIgnoreDiacritics(ignore bool) Option {
	return func(ix *Indexer) {
		ix.ignoreDiacritics = ignore
	}
}

// WithKeys replaces the searched fields.
func WithKeys(keys ...Key) Option {
	return func(ix *Indexer) {
		ix.keys = keys
	}
}

// NewIndexer creates a new Indexer.
func NewIndexer(opts ...Option) *Indexer {
	ix := &Indexer{
		opts: matchOptions{
			threshold: startog.DefaultSearchThreshold,
			location:  DefaultLocation,
			distance:  DefaultDistance,
		},
		keys: DefaultKeys,
	}
	for _, opt := range opts {
		opt(ix)
	}
	return ix
}

// Index builds a search index over the projects of c.
func (ix *Indexer) Index(c *startog.Collection) startog.Index {
	var projects []*startog.Project
	if c != nil {
		projects = c.Projects
	}
	return ix.Build(projects)
}

// Build builds a search index over projects.
func (ix *Indexer) Build(projects []*startog.Project) *Index {
	var total float64
	for _, k := range ix.keys {
		total += k.Weight
	}

	idx := &Index{
		opts:             ix.opts,
		ignoreDiacritics: ix.ignoreDiacritics,
		records:          make([]record, 0, len(projects)),
	}
	for _, p := range projects {
		rec := record{project: p}
		for _, k := range ix.keys {
			weight := k.Weight
			if total > 0 {
				weight /= total
			}
			for _, v := range k.Values(p) {
				if strings.TrimSpace(v) == "" {
					continue
				}
				text := idx.normalize(v)
				rec.fields = append(rec.fields, field{
					text:   text,
					runes:  []rune(text),
					norm:   fieldNorm(v),
					weight: weight,
				})
			}
		}
		idx.records = append(idx.records, rec)
	}
	return idx
}

// Ensure Index implements startog.Index at compile time.
var _ startog.Index = (*Index)(nil)

// Index is an immutable search index. It is safe for concurrent use.
type Index struct {
	opts             matchOptions
	ignoreDiacritics bool
	records          []record
}

type record struct {
	project *startog.Project
	fields  []field
}

type field struct {
	text   string
	runes  []rune
	norm   float64
	weight float64
}

// Result is a matched project with its relevance score. Lower is better.
type Result struct {
	Project *startog.Project
	Score   float64
}

// Search returns the projects matching term, most relevant first.
func (idx *Index) Search(term string) []*startog.Project {
	results := idx.SearchResults(term)
	projects := make([]*startog.Project, len(results))
	for i, r := range results {
		projects[i] = r.Project
	}
	return projects
}

// SearchResults returns the matching projects with their scores, most
// relevant first. Equal scores keep collection order. A term that is empty
// after normalization matches nothing.
func (idx *Index) SearchResults(term string) []Result {
	pattern := idx.normalize(term)
	if pattern == "" {
		return nil
	}

	m := newMatcher(pattern, idx.opts)

	var results []Result
	for _, rec := range idx.records {
		matched := false
		total := 1.0
		for _, f := range rec.fields {
			ok, score := m.match(f.text, f.runes)
			if !ok {
				continue
			}
			matched = true
			if score == 0 && f.weight != 0 {
				score = epsilon
			}
			weight := f.weight
			if weight == 0 {
				weight = 1
			}
			total *= math.Pow(score, weight*f.norm)
		}
		if matched {
			results = append(results, Result{Project: rec.project, Score: total})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})
	return results
}

// Len returns the number of indexed projects.
func (idx *Index) Len() int {
	return len(idx.records)
}

func (idx *Index) normalize(s string) string {
	s = strings.ToLower(s)
	if idx.ignoreDiacritics {
		s = stripDiacritics(s)
	}
	return s
}

// epsilon replaces a zero score so exact matches still rank by field norm.
const epsilon = 2.220446049250313e-16

// fieldNorm weighs down matches in long values: one over the square root of
// the number of space separated tokens, rounded to three decimals.
func fieldNorm(v string) float64 {
	tokens := 0
	for _, t := range strings.Split(v, " ") {
		if t != "" {
			tokens++
		}
	}
	return math.Round(1/math.Sqrt(float64(tokens))*1000) / 1000
}
