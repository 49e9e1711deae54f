package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mran/startog"
)

const noResultsMessage = "No projects found matching your search"

// renderProjects writes one line per project, or a card per project when
// full is set.
func renderProjects(w io.Writer, projects []*startog.Project, full bool) {
	if len(projects) == 0 {
		fmt.Fprintln(w, noResultsMessage)
		return
	}

	for i, p := range projects {
		if !full {
			fmt.Fprintf(w, "%s%s\n", p.FullName, stars(p))
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		renderCard(w, p)
	}
}

func renderCard(w io.Writer, p *startog.Project) {
	fmt.Fprintf(w, "%s%s\n", p.FullName, stars(p))
	if p.HTMLURL != "" {
		fmt.Fprintf(w, "  %s\n", p.HTMLURL)
	}
	if p.Description != "" {
		fmt.Fprintf(w, "  %s\n", p.Description)
	}
	if p.Homepage != "" {
		fmt.Fprintf(w, "  Homepage: %s\n", p.Homepage)
	}
	if tags := p.Tags(); len(tags) > 0 {
		fmt.Fprintf(w, "  [%s]\n", strings.Join(tags, "] ["))
	}
}

func stars(p *startog.Project) string {
	if p.StargazersCount == nil {
		return ""
	}
	return fmt.Sprintf("  ★ %d", *p.StargazersCount)
}

// renderTagBar writes the quick-filter tags with their counts, marking the
// selected ones.
func renderTagBar(w io.Writer, stats startog.TagStats, state startog.FilterState) {
	if len(stats.Top) == 0 {
		return
	}

	parts := make([]string, 0, len(stats.Top))
	for _, tag := range stats.Top {
		mark := " "
		if state.IsSelected(tag) {
			mark = "x"
		}
		parts = append(parts, fmt.Sprintf("[%s] %s (%d)", mark, tag, stats.Count(tag)))
	}
	fmt.Fprintf(w, "Tags: %s\n", strings.Join(parts, "  "))
}
