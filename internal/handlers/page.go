package handlers

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"vkarpe.dev/internal/assets"
	"vkarpe.dev/internal/metrics"
	"vkarpe.dev/internal/models"
	"vkarpe.dev/internal/view"
)

// PageHandler renders the portfolio page
type PageHandler struct {
	content models.Content
	metrics *metrics.Registry
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(c models.Content, m *metrics.Registry) *PageHandler {
	return &PageHandler{content: c, metrics: m}
}

// ServePage handles GET /
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := view.Page(h.content).Render(r.Context(), &buf); err != nil {
		h.metrics.RenderErrors.Inc()
		log.Error().Err(err).Msg("rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.metrics.PageRenders.Inc()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// ServeAsset handles GET /assets/{name}
func ServeAsset(w http.ResponseWriter, r *http.Request) {
	f, err := assets.Lookup(chi.URLParam(r, "name"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", f.ContentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(f.Body)
}
