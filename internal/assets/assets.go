// Package assets bundles the files the page references next to index.html:
// the embedded site stylesheet and the generated motion stylesheet and
// script.
package assets

import (
	_ "embed"
	"fmt"
	"path"
	"strings"

	"vkarpe.dev/internal/motion"
	"vkarpe.dev/internal/view"
)

//go:embed site.css
var siteCSS []byte

const (
	typeCSS = "text/css; charset=utf-8"
	typeJS  = "text/javascript; charset=utf-8"
)

// File is one served or exported asset
type File struct {
	Path        string // relative to the site root
	ContentType string
	Body        []byte
}

// Name returns the base name of the file
func (f File) Name() string {
	return path.Base(f.Path)
}

// Files returns every asset in a stable order
func Files() []File {
	return []File{
		{Path: view.SiteStylesheet, ContentType: typeCSS, Body: siteCSS},
		{Path: view.MotionStylesheet, ContentType: typeCSS, Body: []byte(motion.Stylesheet())},
		{Path: view.MotionScript, ContentType: typeJS, Body: []byte(motion.Script())},
	}
}

// Lookup finds an asset by base name
func Lookup(name string) (File, error) {
	for _, f := range Files() {
		if f.Name() == name && !strings.Contains(name, "/") {
			return f, nil
		}
	}
	return File{}, fmt.Errorf("asset %q not found", name)
}
