package main

import "fmt"

// Run executes the tags command.
func (c *TagsCmd) Run(deps *Dependencies) error {
	deps.Showcase.Load(deps.Ctx)

	ranked := deps.Showcase.Stats().Ranked
	if len(ranked) == 0 {
		fmt.Fprintln(deps.Stdout, "No tags found.")
		return nil
	}

	if c.Limit > 0 && c.Limit < len(ranked) {
		ranked = ranked[:c.Limit]
	}
	for _, tc := range ranked {
		fmt.Fprintf(deps.Stdout, "%s (%d)\n", tc.Tag, tc.Count)
	}
	return nil
}
