// Package motion holds the page's animation presets as plain configuration
// and renders them for the browser: a stylesheet consumed by CSS transitions
// and a script that flips elements to their visible state when they first
// scroll into view. No interpolation happens in Go or in the script.
package motion

import (
	"strconv"
	"strings"
)

// Markup contract shared by the stylesheet, the script and the view.
const (
	AttrMotion  = "data-motion"
	AttrTrigger = "data-motion-trigger"
	AttrOnce    = "data-motion-once"
	AttrStagger = "data-stagger"
	AttrHover   = "data-hover"

	DelayVar     = "--motion-delay"
	VisibleClass = "is-visible"
	ReadyClass   = "motion-ready"
)

// Ease is a CSS timing function keyword
type Ease string

const (
	EaseOut   Ease = "ease-out"
	EaseInOut Ease = "ease-in-out"
	Linear    Ease = "linear"
)

// Trigger selects what reveals an element
type Trigger string

const (
	// TriggerView reveals the element the first time it enters the viewport.
	TriggerView Trigger = "view"
	// TriggerMount reveals the element as soon as the page loads.
	TriggerMount Trigger = "mount"
)

// Frame is one visual state of an element
type Frame struct {
	Opacity float64
	Y       float64 // vertical offset in px, positive is down
	Scale   float64
}

// Tween is a fixed-duration transition
type Tween struct {
	Duration float64 // seconds
	Ease     Ease
}

// Variant is an entrance preset: an element starts Hidden and transitions
// to Visible once revealed
type Variant struct {
	Name    string
	Hidden  Frame
	Visible Frame
	Tween   Tween
	Once    bool
}

// Stagger delays each child's entrance by Step times its index
type Stagger struct {
	Step float64 // seconds
}

// Hover is a transient transform held while the pointer is over an element
type Hover struct {
	Name   string
	Active Frame
	Spring Spring
}

// FadeUp fades an element in while it rises 24px into place.
var FadeUp = Variant{
	Name:    "fade-up",
	Hidden:  Frame{Opacity: 0, Y: 24, Scale: 1},
	Visible: Frame{Opacity: 1, Y: 0, Scale: 1},
	Tween:   Tween{Duration: 0.6, Ease: EaseOut},
	Once:    true,
}

// StaggerChildren cascades a group's entrance.
var StaggerChildren = Stagger{Step: 0.12}

// HoverLift raises an element slightly under the pointer.
var HoverLift = Hover{
	Name:   "lift",
	Active: Frame{Opacity: 1, Y: -6, Scale: 1.01},
	Spring: Spring{Stiffness: 300},
}

// Attr is an HTML attribute produced by a preset
type Attr struct {
	Name  string
	Value string
}

// On attaches the variant to an element that reveals itself
func (v Variant) On(trigger Trigger) []Attr {
	attrs := []Attr{
		{Name: AttrMotion, Value: v.Name},
		{Name: AttrTrigger, Value: string(trigger)},
	}
	if !v.Once {
		attrs = append(attrs, Attr{Name: AttrOnce, Value: "false"})
	}
	return attrs
}

// Child attaches the variant to an element revealed by an ancestor
func (v Variant) Child() []Attr {
	return []Attr{{Name: AttrMotion, Value: v.Name}}
}

// Delay returns the entrance delay of the child at index i
func (s Stagger) Delay(i int) float64 {
	if i <= 0 {
		return 0
	}
	return s.Step * float64(i)
}

// Container marks a parent whose reveal cascades to its children
func (s Stagger) Container(trigger Trigger) []Attr {
	return []Attr{
		{Name: AttrStagger, Value: Seconds(s.Step)},
		{Name: AttrTrigger, Value: string(trigger)},
	}
}

// Child attaches v to the i-th child of a staggered container
func (s Stagger) Child(v Variant, i int) []Attr {
	return append(v.Child(), Attr{Name: "style", Value: DelayVar + ":" + Seconds(s.Delay(i))})
}

// Attrs attaches the hover preset to an element
func (h Hover) Attrs() []Attr {
	return []Attr{{Name: AttrHover, Value: h.Name}}
}

// Seconds formats a duration in seconds for CSS, rounded to the millisecond
func Seconds(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s + "s"
}
