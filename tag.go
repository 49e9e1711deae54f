package startog

import "sort"

// TopTagLimit is the number of tags offered as quick filters.
const TopTagLimit = 30

// TagCount is a tag with the number of times it occurs in a collection.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagStats is the tag frequency table of a collection.
type TagStats struct {
	// Frequency maps each tag to its number of occurrences.
	Frequency map[string]int

	// Ranked lists every tag by descending count. Ties keep the order in
	// which the tags were first encountered.
	Ranked []TagCount

	// Top holds the first TopTagLimit tags of Ranked.
	Top []string
}

// Aggregate counts derived tags across projects. A tag is counted once per
// occurrence, so a project listing the same tag as a topic and an AI tag
// contributes two.
func Aggregate(projects []*Project) TagStats {
	stats := TagStats{Frequency: make(map[string]int)}

	for _, p := range projects {
		for _, tag := range p.Tags() {
			if _, ok := stats.Frequency[tag]; !ok {
				stats.Ranked = append(stats.Ranked, TagCount{Tag: tag})
			}
			stats.Frequency[tag]++
		}
	}

	for i := range stats.Ranked {
		stats.Ranked[i].Count = stats.Frequency[stats.Ranked[i].Tag]
	}
	sort.SliceStable(stats.Ranked, func(i, j int) bool {
		return stats.Ranked[i].Count > stats.Ranked[j].Count
	})

	n := min(len(stats.Ranked), TopTagLimit)
	stats.Top = make([]string, n)
	for i := range n {
		stats.Top[i] = stats.Ranked[i].Tag
	}
	return stats
}

// Count returns the number of occurrences of tag.
func (s TagStats) Count(tag string) int {
	return s.Frequency[tag]
}
