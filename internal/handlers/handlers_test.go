package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"vkarpe.dev/internal/config"
	"vkarpe.dev/internal/content"
	"vkarpe.dev/internal/metrics"
	"vkarpe.dev/internal/models"
	"vkarpe.dev/internal/motion"
)

func newTestRouter(t *testing.T) (http.Handler, *metrics.Registry, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		StaticDir: t.TempDir(),
		Content:   content.Default(),
	}
	m := metrics.NewRegistry()
	return SetupRoutes(cfg, m), m, cfg
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestServePage(t *testing.T) {
	h, m, _ := newTestRouter(t)

	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PageRenders))

	_, err := html.Parse(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), "Fashion-Fleet E-Commerce")
	assert.Contains(t, rec.Body.String(), `href="mailto:karpe.vinayak2001@gmail.com"`)
}

func TestListProjects(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := get(t, h, "/api/projects")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var projects []models.Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&projects))
	require.Len(t, projects, 3)
	assert.Equal(t, "Travel-Story", projects[1].Title)
	assert.Equal(t, []string{"MERN Stack", "Atlas", "Vercel", "Tailwind"}, projects[1].Technologies)
}

func TestGetProject(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := get(t, h, "/api/projects/2")
	require.Equal(t, http.StatusOK, rec.Code)
	var p models.Project
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Restaurant Reservation", p.Title)

	tests := []struct {
		path   string
		status int
		msg    string
	}{
		{"/api/projects/3", http.StatusNotFound, "Project not found"},
		{"/api/projects/-1", http.StatusNotFound, "Project not found"},
		{"/api/projects/abc", http.StatusBadRequest, "Invalid project index"},
	}
	for _, tt := range tests {
		rec := get(t, h, tt.path)
		assert.Equal(t, tt.status, rec.Code, tt.path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, tt.msg, body["error"], tt.path)
	}
}

func TestSkills(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := get(t, h, "/api/skills")
	require.Equal(t, http.StatusOK, rec.Code)
	var groups []models.SkillGroup
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&groups))
	require.Len(t, groups, 4)
	assert.Equal(t, models.IconTerminal, groups[2].Icon)

	rec = get(t, h, "/api/skills/0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"Frontend"`)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/skills/9").Code)
	assert.Equal(t, http.StatusBadRequest, get(t, h, "/api/skills/x").Code)
}

func TestProfile(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := get(t, h, "/api/profile")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Profile models.Profile `json:"profile"`
		Layout  models.Layout  `json:"layout"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "karpe.vinayak2001@gmail.com", body.Profile.Email)
	assert.Equal(t, 3, body.Layout.ProjectColumns)
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := get(t, h, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAssets(t *testing.T) {
	h, _, _ := newTestRouter(t)

	rec := get(t, h, "/assets/motion.css")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, motion.Stylesheet(), rec.Body.String())

	rec = get(t, h, "/assets/motion.js")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/javascript; charset=utf-8", rec.Header().Get("Content-Type"))

	assert.Equal(t, http.StatusOK, get(t, h, "/assets/site.css").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/assets/app.js").Code)
}

func TestResume(t *testing.T) {
	h, _, cfg := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/resume.pdf").Code)

	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "resume.pdf"), []byte("%PDF-1.4"), 0o644))
	rec := get(t, h, "/resume.pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.4", rec.Body.String())

	rec = get(t, h, "/static/resume.pdf")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResumeNestedPath(t *testing.T) {
	cfg := &config.Config{StaticDir: t.TempDir(), Content: content.Default()}
	cfg.Content.Profile.ResumePath = "/docs/cv.pdf"
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.StaticDir, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "docs", "cv.pdf"), []byte("%PDF-1.7"), 0o644))

	h := SetupRoutes(cfg, metrics.NewRegistry())
	rec := get(t, h, "/docs/cv.pdf")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "%PDF-1.7", rec.Body.String())
	assert.Equal(t, http.StatusNotFound, get(t, h, "/cv.pdf").Code)
}

func TestResumePatternNotRouted(t *testing.T) {
	for _, resume := range []string{"/files/{name}", "/files/*"} {
		cfg := &config.Config{StaticDir: t.TempDir(), Content: content.Default()}
		cfg.Content.Profile.ResumePath = resume
		require.NoError(t, os.MkdirAll(filepath.Join(cfg.StaticDir, "files"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(cfg.StaticDir, "files", "secret.txt"), []byte("nope"), 0o644))

		h := SetupRoutes(cfg, metrics.NewRegistry())
		assert.Equal(t, http.StatusNotFound, get(t, h, "/files/secret.txt").Code, resume)
	}
}

func TestPanicCountedInMetrics(t *testing.T) {
	m := metrics.NewRegistry()
	r := newRouter(m)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := get(t, r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Panics))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("/boom", http.MethodGet, "500")))
}

func TestMetricsEndpoint(t *testing.T) {
	h, _, _ := newTestRouter(t)

	get(t, h, "/api/health")
	rec := get(t, h, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `portfolio_http_requests_total{method="GET",route="/api/health",status="200"} 1`)
}

func TestEmptyContentStillServes(t *testing.T) {
	cfg := &config.Config{StaticDir: t.TempDir(), Content: content.Default()}
	cfg.Content.Projects = nil

	h := SetupRoutes(cfg, metrics.NewRegistry())
	rec := get(t, h, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Featured Projects")
	assert.NotContains(t, rec.Body.String(), "project-card")

	rec = get(t, h, "/api/projects")
	assert.JSONEq(t, `[]`, rec.Body.String())
}
