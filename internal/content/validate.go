package content

import (
	"bytes"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"vkarpe.dev/internal/models"
)

// Parse decodes a YAML content document. Missing layout values fall back to
// the defaults; the result is validated before it is returned.
func Parse(data []byte) (models.Content, error) {
	var c models.Content

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return models.Content{}, fmt.Errorf("decode content: %w", err)
	}

	if c.Layout.ProjectColumns == 0 {
		c.Layout.ProjectColumns = DefaultProjectColumns
	}
	if c.Layout.SkillColumns == 0 {
		c.Layout.SkillColumns = DefaultSkillColumns
	}

	if err := Validate(c); err != nil {
		return models.Content{}, err
	}
	return c, nil
}

// Validate reports every structural problem in c
func Validate(c models.Content) error {
	var errs []error

	if c.Profile.Name == "" {
		errs = append(errs, errors.New("profile: name is required"))
	}
	if c.Profile.Email == "" {
		errs = append(errs, errors.New("profile: email is required"))
	}
	if r := c.Profile.ResumePath; r != "" && !isExternalURL(r) {
		if _, ok := ResumeFile(r); !ok {
			errs = append(errs, fmt.Errorf("profile: resume_path %q must be an http(s) URL or a root path of plain file names", r))
		}
	}
	for i, s := range c.Profile.Socials {
		if s.URL == "" {
			errs = append(errs, fmt.Errorf("profile.socials[%d]: url is required", i))
		}
		if !s.Icon.IsKnown() {
			errs = append(errs, fmt.Errorf("profile.socials[%d]: unknown icon %q", i, s.Icon))
		}
	}

	if c.Layout.ProjectColumns < 1 || c.Layout.ProjectColumns > 3 {
		errs = append(errs, fmt.Errorf("layout: project_columns must be 1-3, got %d", c.Layout.ProjectColumns))
	}
	if c.Layout.SkillColumns < 1 || c.Layout.SkillColumns > 4 {
		errs = append(errs, fmt.Errorf("layout: skill_columns must be 1-4, got %d", c.Layout.SkillColumns))
	}

	for i, p := range c.Projects {
		if p.Title == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: title is required", i))
		}
	}
	for i, g := range c.SkillGroups {
		if g.Category == "" {
			errs = append(errs, fmt.Errorf("skill_groups[%d]: category is required", i))
		}
		if !g.Icon.IsKnown() {
			errs = append(errs, fmt.Errorf("skill_groups[%d]: unknown icon %q", i, g.Icon))
		}
	}

	return errors.Join(errs...)
}
