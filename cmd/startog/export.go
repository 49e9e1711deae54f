package main

import (
	"fmt"

	"github.com/mran/startog"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	s := deps.Showcase
	s.Load(deps.Ctx)

	s.SetSearchTerm(c.Query)
	for _, tag := range c.Tag {
		if !s.State().IsSelected(tag) {
			s.ToggleTag(tag)
		}
	}

	projects := s.Visible()
	if len(projects) == 0 {
		fmt.Fprintln(deps.Stderr, noResultsMessage)
		return startog.Errorf(startog.ENOTFOUND, "no projects to export")
	}

	if err := deps.Writer.WriteReport(deps.Ctx, projects); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", startog.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d projects to %s\n", len(projects), c.Output)
	return nil
}
