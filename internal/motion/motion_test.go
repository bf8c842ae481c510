package motion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFadeUpPreset(t *testing.T) {
	assert.Equal(t, Frame{Opacity: 0, Y: 24, Scale: 1}, FadeUp.Hidden)
	assert.Equal(t, Frame{Opacity: 1, Y: 0, Scale: 1}, FadeUp.Visible)
	assert.Equal(t, 0.6, FadeUp.Tween.Duration)
	assert.Equal(t, EaseOut, FadeUp.Tween.Ease)
	assert.True(t, FadeUp.Once)
}

func TestHoverLiftPreset(t *testing.T) {
	assert.Equal(t, -6.0, HoverLift.Active.Y)
	assert.Equal(t, 1.01, HoverLift.Active.Scale)
	assert.Equal(t, 300.0, HoverLift.Spring.Stiffness)
}

func TestStaggerDelay(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{-1, "0s"},
		{0, "0s"},
		{1, "0.12s"},
		{2, "0.24s"},
		{3, "0.36s"},
		{10, "1.2s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Seconds(StaggerChildren.Delay(tt.index)), "index %d", tt.index)
	}
}

func TestVariantAttrs(t *testing.T) {
	assert.Equal(t, []Attr{
		{Name: AttrMotion, Value: "fade-up"},
		{Name: AttrTrigger, Value: "view"},
	}, FadeUp.On(TriggerView))

	replay := FadeUp
	replay.Once = false
	attrs := replay.On(TriggerView)
	assert.Contains(t, attrs, Attr{Name: AttrOnce, Value: "false"})

	child := StaggerChildren.Child(FadeUp, 2)
	assert.Equal(t, []Attr{
		{Name: AttrMotion, Value: "fade-up"},
		{Name: "style", Value: "--motion-delay:0.24s"},
	}, child)

	assert.Equal(t, []Attr{
		{Name: AttrStagger, Value: "0.12s"},
		{Name: AttrTrigger, Value: "view"},
	}, StaggerChildren.Container(TriggerView))
}

func TestSpringProgress(t *testing.T) {
	s := HoverLift.Spring

	assert.Equal(t, 0.0, s.Progress(0))
	assert.Less(t, s.DampingRatio(), 1.0)

	peak := 0.0
	for i := 1; i < 1000; i++ {
		if v := s.Progress(float64(i) / 1000); v > peak {
			peak = v
		}
	}
	assert.Greater(t, peak, 1.0, "underdamped spring overshoots")
	assert.InDelta(t, 1.0, s.Progress(s.SettleTime()), 0.011)
}

func TestSpringDampingRegimes(t *testing.T) {
	critical := Spring{Stiffness: 25, Damping: 10}
	over := Spring{Stiffness: 25, Damping: 40}

	assert.Equal(t, 1.0, critical.DampingRatio())
	assert.Greater(t, over.DampingRatio(), 1.0)

	for _, s := range []Spring{critical, over} {
		prev := 0.0
		for i := 1; i <= 300; i++ {
			v := s.Progress(float64(i) / 100)
			assert.GreaterOrEqual(t, v, prev, "no overshoot when ζ >= 1")
			assert.LessOrEqual(t, v, 1.0)
			prev = v
		}
	}
}

func TestSpringSettleTime(t *testing.T) {
	settle := HoverLift.Spring.SettleTime()
	assert.Greater(t, settle, 0.5)
	assert.Less(t, settle, 1.5)

	damped := Spring{Stiffness: 300, Damping: 20}
	assert.Less(t, damped.SettleTime(), settle)

	assert.Equal(t, 0.0, Spring{}.SettleTime())
}

func TestSpringEasing(t *testing.T) {
	easing := HoverLift.Spring.Easing(easingSamples)

	require.True(t, strings.HasPrefix(easing, "linear(0, "))
	require.True(t, strings.HasSuffix(easing, ", 1)"))
	inner := strings.TrimSuffix(strings.TrimPrefix(easing, "linear("), ")")
	assert.Len(t, strings.Split(inner, ", "), easingSamples)

	assert.Equal(t, "linear(0, 1)", HoverLift.Spring.Easing(1))
}

func TestStylesheet(t *testing.T) {
	css := Stylesheet()

	assert.Contains(t, css, `.motion-ready [data-motion="fade-up"] {
  opacity: 0;
  transform: translate3d(0, 24px, 0);
  transition: opacity 0.6s ease-out var(--motion-delay, 0s), transform 0.6s ease-out var(--motion-delay, 0s);
}`)
	assert.Contains(t, css, `.motion-ready .is-visible[data-motion="fade-up"],
.motion-ready .is-visible [data-motion="fade-up"] {
  opacity: 1;
  transform: none;
}`)
	assert.Contains(t, css, `[data-hover="lift"]:hover,
[data-hover="lift"]:focus-visible {
  translate: 0 -6px;
  scale: 1.01;
}`)
	assert.Contains(t, css, `.motion-ready [data-motion="fade-up"][data-hover="lift"] {`)
	assert.Contains(t, css, "prefers-reduced-motion: reduce")
}

func TestScriptRevealsOnce(t *testing.T) {
	js := Script()

	assert.Contains(t, js, `classList.add("`+ReadyClass+`")`)
	assert.Contains(t, js, `classList.add("`+VisibleClass+`")`)
	assert.Contains(t, js, "observer.unobserve(el)")
	assert.Contains(t, js, `[`+AttrTrigger+`="view"]`)
	assert.Contains(t, js, `[`+AttrTrigger+`="mount"]`)
	assert.Contains(t, js, AttrOnce)
}
