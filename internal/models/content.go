package models

// Social is an outbound profile link shown in the contact section
type Social struct {
	Label string    `json:"label" yaml:"label"`
	Icon  IconGlyph `json:"icon" yaml:"icon"`
	URL   string    `json:"url" yaml:"url"`
}

// Profile holds the hero, contact and footer copy
type Profile struct {
	Brand          string   `json:"brand" yaml:"brand"`
	Greeting       string   `json:"greeting" yaml:"greeting"`
	Name           string   `json:"name" yaml:"name"`
	Headline       string   `json:"headline" yaml:"headline"`
	Summary        string   `json:"summary" yaml:"summary"`
	ResumePath     string   `json:"resume_path" yaml:"resume_path"`
	Email          string   `json:"email" yaml:"email"`
	ContactHeading string   `json:"contact_heading" yaml:"contact_heading"`
	ContactBlurb   string   `json:"contact_blurb" yaml:"contact_blurb"`
	Socials        []Social `json:"socials" yaml:"socials"`
	Footer         string   `json:"footer" yaml:"footer"`
}

// Layout holds the grid variants of the page
type Layout struct {
	ProjectColumns int `json:"project_columns" yaml:"project_columns"`
	SkillColumns   int `json:"skill_columns" yaml:"skill_columns"`
}

// Content is everything the page renders. It is built once and never mutated.
type Content struct {
	Profile     Profile      `json:"profile" yaml:"profile"`
	Layout      Layout       `json:"layout" yaml:"layout"`
	Projects    []Project    `json:"projects" yaml:"projects"`
	SkillGroups []SkillGroup `json:"skill_groups" yaml:"skill_groups"`
}

// Clone returns a deep copy so callers cannot reach the shared sequences
func (c Content) Clone() Content {
	out := c
	out.Profile.Socials = append([]Social(nil), c.Profile.Socials...)
	out.SkillGroups = append([]SkillGroup(nil), c.SkillGroups...)
	out.Projects = make([]Project, len(c.Projects))
	for i, p := range c.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out.Projects[i] = p
	}
	return out
}
