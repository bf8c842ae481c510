package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"vkarpe.dev/internal/config"
	"vkarpe.dev/internal/content"
	"vkarpe.dev/internal/metrics"
	"vkarpe.dev/internal/middleware"
	"vkarpe.dev/internal/services"
)

// newRouter returns a router with the middleware chain installed. Recovery
// sits inside Metrics so a recovered panic is still counted as a 500.
func newRouter(m *metrics.Registry) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics(m))
	r.Use(middleware.Recovery(m))
	return r
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, m *metrics.Registry) http.Handler {
	r := newRouter(m)

	// Initialize services
	projectService := services.NewProjectService(cfg.Content.Projects)
	skillService := services.NewSkillService(cfg.Content.SkillGroups)
	profileService := services.NewProfileService(cfg.Content.Profile, cfg.Content.Layout)

	// Initialize handlers
	pageHandler := NewPageHandler(cfg.Content, m)
	projectHandler := NewProjectHandler(projectService)
	skillHandler := NewSkillHandler(skillService)
	profileHandler := NewProfileHandler(profileService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)
		r.Get("/skills", skillHandler.ListSkills)
		r.Get("/skills/{index}", skillHandler.GetSkill)
		r.Get("/profile", profileHandler.GetProfile)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Page assets
	r.Get("/assets/{name}", ServeAsset)

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	if rel, ok := content.ResumeFile(cfg.Content.Profile.ResumePath); ok {
		r.Get("/"+rel, serveStaticFile(filepath.Join(cfg.StaticDir, filepath.FromSlash(rel))))
	}

	// Page
	r.Get("/", pageHandler.ServePage)

	return r
}

// serveStaticFile serves a single file, or 404 when it does not exist
func serveStaticFile(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := os.Stat(path); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
