package startog

import "context"

// Project represents a starred GitHub repository in the showcase.
type Project struct {
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Description     string   `json:"description"`
	Topics          []string `json:"topics"`
	Language        string   `json:"language"`
	AITag           *AITag   `json:"ai_tag,omitempty"`
	StargazersCount *int     `json:"stargazers_count,omitempty"`
	Homepage        string   `json:"homepage"`
	HTMLURL         string   `json:"html_url"`
}

// AITag holds the classification assigned to a project by a language model.
type AITag struct {
	Group string   `json:"group"`
	Tags  []string `json:"tags"`
	Desc  string   `json:"desc"`
}

// Tags returns the derived tag set of the project: topics, then AI tags,
// then the primary language. Empty values are dropped; duplicates are kept.
func (p *Project) Tags() []string {
	var aiTags []string
	if p.AITag != nil {
		aiTags = p.AITag.Tags
	}

	tags := make([]string, 0, len(p.Topics)+len(aiTags)+1)
	for _, t := range p.Topics {
		if t != "" {
			tags = append(tags, t)
		}
	}
	for _, t := range aiTags {
		if t != "" {
			tags = append(tags, t)
		}
	}
	if p.Language != "" {
		tags = append(tags, p.Language)
	}
	return tags
}

// HasTags reports whether the derived tag set contains every tag in want.
// An empty want matches every project.
func (p *Project) HasTags(want []string) bool {
	if len(want) == 0 {
		return true
	}

	have := make(map[string]struct{})
	for _, t := range p.Tags() {
		have[t] = struct{}{}
	}
	for _, t := range want {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	return true
}

// ProjectSource loads the project collection.
type ProjectSource interface {
	// LoadProjects returns every project in the source, in source order.
	// Returns EINVALID if the content cannot be decoded.
	LoadProjects(ctx context.Context) ([]*Project, error)
}
