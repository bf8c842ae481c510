package services

import (
	"vkarpe.dev/internal/models"
)

// ProfileService exposes the hero and contact copy along with the layout
type ProfileService struct {
	profile models.Profile
	layout  models.Layout
}

// NewProfileService creates a new ProfileService
func NewProfileService(profile models.Profile, layout models.Layout) *ProfileService {
	return &ProfileService{profile: profile, layout: layout}
}

// Get returns the profile
func (s *ProfileService) Get() models.Profile {
	p := s.profile
	p.Socials = append([]models.Social(nil), s.profile.Socials...)
	return p
}

// Layout returns the grid layout settings
func (s *ProfileService) Layout() models.Layout {
	return s.layout
}
