// Package view renders the portfolio page as templ components. Each section
// walks its content sequence in order and emits one block per record.
//
//go:generate templ generate
package view

import (
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"vkarpe.dev/internal/content"
	"vkarpe.dev/internal/models"
	"vkarpe.dev/internal/motion"
)

// Asset paths are relative so an exported copy works from any directory.
const (
	SiteStylesheet   = "assets/site.css"
	MotionStylesheet = "assets/motion.css"
	MotionScript     = "assets/motion.js"
)

// ProjectsHeading is the title of the project showcase
const ProjectsHeading = "Featured Projects"

// NavItems are the in-page navigation labels, in display order
var NavItems = []string{"About", "Projects", "Contact"}

// SectionID derives the anchor target for a navigation label
func SectionID(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Title returns the document title for c
func Title(c models.Content) string {
	switch {
	case c.Profile.Name == "":
		return c.Profile.Brand
	case c.Profile.Brand == "":
		return c.Profile.Name
	}
	return c.Profile.Name + " | " + c.Profile.Brand
}

// ResumeHref is the link target of the resume button. A resume served by the
// site is linked relative to the page so an export works under any prefix.
func ResumeHref(resumePath string) string {
	if rel, ok := content.ResumeFile(resumePath); ok {
		return rel
	}
	return resumePath
}

// motionAttrs flattens preset attributes into a spread, keeping their order
func motionAttrs(groups ...[]motion.Attr) templ.OrderedAttributes {
	var attrs templ.OrderedAttributes
	for _, g := range groups {
		for _, a := range g {
			attrs = append(attrs, templ.KeyValue[string, any]{Key: a.Name, Value: a.Value})
		}
	}
	return attrs
}

func columns(n int) string {
	return "cols-" + strconv.Itoa(n)
}

func tint(t string) string {
	switch t {
	case "blue", "purple", "green", "yellow":
		return t
	}
	return "blue"
}
