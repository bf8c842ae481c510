package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vkarpe.dev/internal/content"
	"vkarpe.dev/internal/motion"
)

func TestWrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")

	written, err := Write(context.Background(), Options{OutputDir: out}, content.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"index.html", "assets/site.css", "assets/motion.css", "assets/motion.js"}, written)

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "<!doctype html>")
	assert.Contains(t, string(index), "Vinayak Karpe")

	css, err := os.ReadFile(filepath.Join(out, "assets", "motion.css"))
	require.NoError(t, err)
	assert.Equal(t, motion.Stylesheet(), string(css))
}

func TestWriteCopiesResume(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "resume.pdf"), []byte("%PDF"), 0o644))
	out := t.TempDir()

	written, err := Write(context.Background(), Options{OutputDir: out, StaticDir: static}, content.Default())
	require.NoError(t, err)
	assert.Contains(t, written, "resume.pdf")

	data, err := os.ReadFile(filepath.Join(out, "resume.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
}

func TestWriteCopiesNestedResume(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "docs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "docs", "cv.pdf"), []byte("%PDF"), 0o644))
	out := t.TempDir()

	c := content.Default()
	c.Profile.ResumePath = "/docs/cv.pdf"
	written, err := Write(context.Background(), Options{OutputDir: out, StaticDir: static}, c)
	require.NoError(t, err)
	assert.Contains(t, written, "docs/cv.pdf")

	data, err := os.ReadFile(filepath.Join(out, "docs", "cv.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), `href="docs/cv.pdf"`)
}

func TestWriteSkipsExternalResume(t *testing.T) {
	c := content.Default()
	c.Profile.ResumePath = "https://cdn.example.com/cv.pdf"
	written, err := Write(context.Background(), Options{OutputDir: t.TempDir(), StaticDir: t.TempDir()}, c)
	require.NoError(t, err)
	assert.Len(t, written, 4)
}

func TestWriteWithoutResume(t *testing.T) {
	written, err := Write(context.Background(), Options{OutputDir: t.TempDir(), StaticDir: t.TempDir()}, content.Default())
	require.NoError(t, err)
	assert.NotContains(t, written, "resume.pdf")
}

func TestWriteRequiresOutputDir(t *testing.T) {
	_, err := Write(context.Background(), Options{}, content.Default())
	assert.Error(t, err)
}
