package motion

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// easingSamples is the resolution of the sampled spring curve.
const easingSamples = 24

//go:embed motion.js
var script string

// Script returns the reveal script. It marks the document ready, reveals
// mount-triggered elements on load and view-triggered elements the first
// time they intersect the viewport, then stops observing them.
func Script() string {
	return script
}

var stylesheet = sync.OnceValue(func() string {
	return Render([]Variant{FadeUp}, []Hover{HoverLift})
})

// Stylesheet renders the presets used by the page
func Stylesheet() string {
	return stylesheet()
}

// Render writes the CSS for a set of entrance and hover presets. Every
// entrance/hover pair also gets a combined rule so both transitions survive
// on an element that carries the two.
func Render(variants []Variant, hovers []Hover) string {
	var b strings.Builder

	for _, v := range variants {
		sel := motionSelector(v)
		fmt.Fprintf(&b, ".%s %s {\n", ReadyClass, sel)
		fmt.Fprintf(&b, "  opacity: %s;\n", number(v.Hidden.Opacity))
		fmt.Fprintf(&b, "  transform: %s;\n", transform(v.Hidden))
		fmt.Fprintf(&b, "  transition: %s;\n", strings.Join(entranceTransitions(v), ", "))
		b.WriteString("}\n")

		fmt.Fprintf(&b, ".%s .%s%s,\n.%s .%s %s {\n", ReadyClass, VisibleClass, sel, ReadyClass, VisibleClass, sel)
		fmt.Fprintf(&b, "  opacity: %s;\n", number(v.Visible.Opacity))
		fmt.Fprintf(&b, "  transform: %s;\n", transform(v.Visible))
		b.WriteString("}\n")
	}

	for _, h := range hovers {
		sel := hoverSelector(h)
		fmt.Fprintf(&b, "%s {\n", sel)
		fmt.Fprintf(&b, "  transition: %s;\n", strings.Join(hoverTransitions(h), ", "))
		b.WriteString("}\n")

		fmt.Fprintf(&b, "%s:hover,\n%s:focus-visible {\n", sel, sel)
		fmt.Fprintf(&b, "  translate: 0 %spx;\n", number(h.Active.Y))
		fmt.Fprintf(&b, "  scale: %s;\n", number(h.Active.Scale))
		b.WriteString("}\n")
	}

	for _, v := range variants {
		for _, h := range hovers {
			transitions := append(entranceTransitions(v), hoverTransitions(h)...)
			fmt.Fprintf(&b, ".%s %s%s {\n", ReadyClass, motionSelector(v), hoverSelector(h))
			fmt.Fprintf(&b, "  transition: %s;\n", strings.Join(transitions, ", "))
			b.WriteString("}\n")
		}
	}

	b.WriteString("@media (prefers-reduced-motion: reduce) {\n")
	fmt.Fprintf(&b, "  [%s], [%s] {\n", AttrMotion, AttrHover)
	b.WriteString("    opacity: 1 !important;\n")
	b.WriteString("    transform: none !important;\n")
	b.WriteString("    translate: none !important;\n")
	b.WriteString("    scale: none !important;\n")
	b.WriteString("    transition: none !important;\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")

	return b.String()
}

func motionSelector(v Variant) string {
	return fmt.Sprintf("[%s=%q]", AttrMotion, v.Name)
}

func hoverSelector(h Hover) string {
	return fmt.Sprintf("[%s=%q]", AttrHover, h.Name)
}

func entranceTransitions(v Variant) []string {
	timing := fmt.Sprintf("%s %s var(%s, 0s)", Seconds(v.Tween.Duration), v.Tween.Ease, DelayVar)
	return []string{"opacity " + timing, "transform " + timing}
}

func hoverTransitions(h Hover) []string {
	timing := Seconds(h.Spring.SettleTime()) + " " + h.Spring.Easing(easingSamples)
	return []string{"translate " + timing, "scale " + timing}
}

func transform(f Frame) string {
	var parts []string
	if f.Y != 0 {
		parts = append(parts, fmt.Sprintf("translate3d(0, %spx, 0)", number(f.Y)))
	}
	if f.Scale != 0 && f.Scale != 1 {
		parts = append(parts, fmt.Sprintf("scale(%s)", number(f.Scale)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
