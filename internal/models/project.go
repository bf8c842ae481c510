package models

// Project represents a portfolio project
type Project struct {
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Technologies  []string `json:"technologies" yaml:"technologies"`
	ImageURL      string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	RepositoryURL string   `json:"repository_url" yaml:"repository_url"`
	LiveURL       string   `json:"live_url" yaml:"live_url"`
}

// HasImage reports whether the project carries a thumbnail reference
func (p Project) HasImage() bool {
	return p.ImageURL != ""
}
