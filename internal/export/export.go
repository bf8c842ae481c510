// Package export writes the portfolio as plain files that any static host
// can serve.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"vkarpe.dev/internal/assets"
	"vkarpe.dev/internal/content"
	"vkarpe.dev/internal/models"
	"vkarpe.dev/internal/view"
)

// Options controls a static build
type Options struct {
	OutputDir string
	StaticDir string // copied resume source; optional
}

// Write renders the page and its assets into opts.OutputDir and returns the
// paths it wrote, relative to the output directory
func Write(ctx context.Context, opts Options, c models.Content) ([]string, error) {
	if opts.OutputDir == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string

	var page bytes.Buffer
	if err := view.Page(c).Render(ctx, &page); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	if err := writeFile(opts.OutputDir, "index.html", page.Bytes()); err != nil {
		return nil, err
	}
	written = append(written, "index.html")

	for _, f := range assets.Files() {
		if err := writeFile(opts.OutputDir, f.Path, f.Body); err != nil {
			return nil, err
		}
		written = append(written, f.Path)
	}

	resume, err := copyResume(opts, c.Profile.ResumePath)
	if err != nil {
		return nil, err
	}
	if resume != "" {
		written = append(written, resume)
	}

	return written, nil
}

// copyResume copies the resume from the static directory when both are
// configured and the file exists. The copy keeps the resume's path below the
// site root so the page link still resolves.
func copyResume(opts Options, resumePath string) (string, error) {
	if opts.StaticDir == "" {
		return "", nil
	}
	rel, ok := content.ResumeFile(resumePath)
	if !ok {
		return "", nil
	}
	src, err := os.Open(filepath.Join(opts.StaticDir, filepath.FromSlash(rel)))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open resume: %w", err)
	}
	defer src.Close()

	path := filepath.Join(opts.OutputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create resume: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("copy resume: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close resume: %w", err)
	}
	return rel, nil
}

func writeFile(root, rel string, data []byte) error {
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", rel, err)
	}
	return nil
}
