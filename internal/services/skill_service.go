package services

import (
	"fmt"

	"vkarpe.dev/internal/models"
)

// SkillService handles skill-group operations
type SkillService struct {
	groups []models.SkillGroup
}

// NewSkillService creates a new SkillService
func NewSkillService(groups []models.SkillGroup) *SkillService {
	return &SkillService{groups: groups}
}

// GetAll returns all skill groups in display order
func (s *SkillService) GetAll() []models.SkillGroup {
	return append([]models.SkillGroup{}, s.groups...)
}

// GetByIndex returns the skill group at position i
func (s *SkillService) GetByIndex(i int) (*models.SkillGroup, error) {
	if i < 0 || i >= len(s.groups) {
		return nil, fmt.Errorf("skill group %d: %w", i, ErrNotFound)
	}
	g := s.groups[i]
	return &g, nil
}
