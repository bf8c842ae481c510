package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"vkarpe.dev/internal/models"
	"vkarpe.dev/internal/services"
)

// SkillHandler handles skill-group endpoints
type SkillHandler struct {
	skillService *services.SkillService
}

// NewSkillHandler creates a new SkillHandler
func NewSkillHandler(ss *services.SkillService) *SkillHandler {
	return &SkillHandler{skillService: ss}
}

// ListSkills handles GET /api/skills
func (h *SkillHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.skillService.GetAll())
}

// GetSkill handles GET /api/skills/{index}
func (h *SkillHandler) GetSkill(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid skill index")
		return
	}

	group, err := h.skillService.GetByIndex(index)
	if errors.Is(err, services.ErrNotFound) {
		respondError(w, http.StatusNotFound, "Skill group not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, group)
}

// ProfileHandler serves the profile copy
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(ps *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: ps}
}

// GetProfile handles GET /api/profile
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, struct {
		Profile models.Profile `json:"profile"`
		Layout  models.Layout  `json:"layout"`
	}{
		Profile: h.profileService.Get(),
		Layout:  h.profileService.Layout(),
	})
}
