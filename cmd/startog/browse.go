package main

import (
	"bufio"
	"fmt"
	"strings"
)

// Run executes the browse command. Each input line updates the view:
// ":tag NAME" toggles a tag, ":clear" deselects all tags, ":quit" exits,
// and any other line becomes the search term.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	s := deps.Showcase
	s.Load(deps.Ctx)

	fmt.Fprintf(deps.Stdout, "Loaded %d projects. Type to search, :tag NAME to toggle a tag, :clear, :quit.\n", s.Collection().Len())
	c.render(deps)

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == ":quit":
			return nil
		case line == ":clear":
			s.ClearTags()
		case line == ":tag" || strings.HasPrefix(line, ":tag "):
			tag := strings.TrimSpace(strings.TrimPrefix(line, ":tag"))
			if tag != "" {
				s.ToggleTag(tag)
			}
		default:
			s.SetSearchTerm(line)
		}

		c.render(deps)
	}
	return scanner.Err()
}

func (c *BrowseCmd) render(deps *Dependencies) {
	s := deps.Showcase
	renderTagBar(deps.Stdout, s.Stats(), s.State())
	renderProjects(deps.Stdout, s.Visible(), false)
	fmt.Fprintln(deps.Stdout, "---")
}
