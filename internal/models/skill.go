package models

// IconGlyph names a presentational icon. The view layer maps glyphs to SVG.
type IconGlyph string

const (
	IconLayout       IconGlyph = "layout"
	IconServer       IconGlyph = "server"
	IconTerminal     IconGlyph = "terminal"
	IconCode         IconGlyph = "code"
	IconGithub       IconGlyph = "github"
	IconLinkedin     IconGlyph = "linkedin"
	IconMail         IconGlyph = "mail"
	IconExternalLink IconGlyph = "external-link"
)

// KnownIcons lists every glyph the view can draw
var KnownIcons = []IconGlyph{
	IconLayout,
	IconServer,
	IconTerminal,
	IconCode,
	IconGithub,
	IconLinkedin,
	IconMail,
	IconExternalLink,
}

// IsKnown reports whether the glyph has a drawing
func (g IconGlyph) IsKnown() bool {
	for _, known := range KnownIcons {
		if g == known {
			return true
		}
	}
	return false
}

// SkillGroup represents one card of the skills grid
type SkillGroup struct {
	Category string    `json:"category" yaml:"category"`
	Icon     IconGlyph `json:"icon" yaml:"icon"`
	Tint     string    `json:"tint,omitempty" yaml:"tint,omitempty"` // blue, purple, green, yellow
	Summary  string    `json:"summary" yaml:"summary"`
}
