package main

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	s := deps.Showcase
	s.Load(deps.Ctx)

	s.SetSearchTerm(c.Query)
	for _, tag := range c.Tag {
		if !s.State().IsSelected(tag) {
			s.ToggleTag(tag)
		}
	}

	renderProjects(deps.Stdout, s.Visible(), c.Full)
	return nil
}
