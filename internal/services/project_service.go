package services

import (
	"errors"
	"fmt"

	"vkarpe.dev/internal/models"
)

// ErrNotFound is returned when an index falls outside a sequence
var ErrNotFound = errors.New("not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects []models.Project
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects []models.Project) *ProjectService {
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in display order
func (s *ProjectService) GetAll() []models.Project {
	out := make([]models.Project, len(s.projects))
	for i, p := range s.projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out[i] = p
	}
	return out
}

// GetByIndex returns the project at position i
func (s *ProjectService) GetByIndex(i int) (*models.Project, error) {
	if i < 0 || i >= len(s.projects) {
		return nil, fmt.Errorf("project %d: %w", i, ErrNotFound)
	}
	p := s.projects[i]
	p.Technologies = append([]string(nil), p.Technologies...)
	return &p, nil
}

// Count returns the number of projects
func (s *ProjectService) Count() int {
	return len(s.projects)
}
