package startog

import (
	"context"
	"fmt"
	"strings"
)

// FormatProjects formats projects as a markdown report, one heading per
// project linking to its repository.
func FormatProjects(projects []*Project) string {
	if len(projects) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range projects {
		fmt.Fprintf(&b, "### [%s](%s)\n", p.FullName, p.HTMLURL)
		if p.StargazersCount != nil {
			fmt.Fprintf(&b, "- **Stars:** %d\n", *p.StargazersCount)
		}
		if p.Description != "" {
			fmt.Fprintf(&b, "- **Description:** %s\n", p.Description)
		}
		if p.Homepage != "" {
			fmt.Fprintf(&b, "- **Homepage:** %s\n", p.Homepage)
		}
		if tags := p.Tags(); len(tags) > 0 {
			fmt.Fprintf(&b, "- **Tags:** %s\n", strings.Join(tags, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// ReportWriter writes a report of projects to storage.
type ReportWriter interface {
	WriteReport(ctx context.Context, projects []*Project) error
}
