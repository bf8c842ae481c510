package motion

import (
	"math"
	"strconv"
	"strings"
)

const (
	defaultMass      = 1.0
	defaultDamping   = 10.0
	defaultRestDelta = 0.01
	maxSettle        = 10.0
	settleStep       = 0.001
)

// Spring is a damped harmonic oscillator driving progress from 0 to 1.
// Zero Mass, Damping and RestDelta take the defaults 1, 10 and 0.01.
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	RestDelta float64
}

func (s Spring) withDefaults() Spring {
	if s.Mass <= 0 {
		s.Mass = defaultMass
	}
	if s.Damping <= 0 {
		s.Damping = defaultDamping
	}
	if s.RestDelta <= 0 {
		s.RestDelta = defaultRestDelta
	}
	return s
}

// DampingRatio returns ζ; below 1 the spring overshoots
func (s Spring) DampingRatio() float64 {
	s = s.withDefaults()
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

// Progress returns the displacement toward the target at t seconds
func (s Spring) Progress(t float64) float64 {
	s = s.withDefaults()
	if t <= 0 {
		return 0
	}
	if s.Stiffness <= 0 {
		return 1
	}

	w0 := math.Sqrt(s.Stiffness / s.Mass)
	zeta := s.DampingRatio()

	switch {
	case zeta < 1:
		wd := w0 * math.Sqrt(1-zeta*zeta)
		env := math.Exp(-zeta * w0 * t)
		return 1 - env*(math.Cos(wd*t)+(zeta*w0/wd)*math.Sin(wd*t))
	case zeta == 1:
		return 1 - math.Exp(-w0*t)*(1+w0*t)
	default:
		root := math.Sqrt(zeta*zeta - 1)
		r1 := -w0 * (zeta - root)
		r2 := -w0 * (zeta + root)
		return 1 + (r2*math.Exp(r1*t)-r1*math.Exp(r2*t))/(r1-r2)
	}
}

// SettleTime returns the time after which the spring stays within RestDelta
// of its target
func (s Spring) SettleTime() float64 {
	s = s.withDefaults()
	if s.Stiffness <= 0 {
		return 0
	}

	last := 0.0
	for t := settleStep; t <= maxSettle; t += settleStep {
		if math.Abs(1-s.Progress(t)) > s.RestDelta {
			last = t
		}
	}
	return math.Round((last+settleStep)*1000) / 1000
}

// Easing samples the response into a CSS linear() timing function spanning
// SettleTime
func (s Spring) Easing(samples int) string {
	if samples < 2 {
		samples = 2
	}
	settle := s.SettleTime()

	var b strings.Builder
	b.WriteString("linear(")
	for i := 0; i < samples; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		v := 1.0
		if i < samples-1 {
			v = s.Progress(settle * float64(i) / float64(samples-1))
		}
		b.WriteString(strconv.FormatFloat(math.Round(v*1000)/1000, 'f', -1, 64))
	}
	b.WriteString(")")
	return b.String()
}
