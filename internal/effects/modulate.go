package effects

import (
	"math"

	"github.com/cbegin/scopesynth-go/internal/lfo"
)

// LFORotate rotates by Base plus an LFO-driven angle in radians.
type LFORotate struct {
	Base float64
	LFO  lfo.LFO
}

func (r LFORotate) Apply(x, y, elapsed float64) (float64, float64) {
	a := r.Base + r.LFO.Value(elapsed)
	sin, cos := math.Sincos(a)
	return x*cos - y*sin, x*sin + y*cos
}

func (r LFORotate) Name() string { return "LFORotate" }

// LFOScale pulses both axes by an LFO-driven factor. Configure the
// LFO's range to the desired min and max scale.
type LFOScale struct {
	LFO lfo.LFO
}

func (s LFOScale) Apply(x, y, elapsed float64) (float64, float64) {
	f := s.LFO.Value(elapsed)
	return x * f, y * f
}

func (s LFOScale) Name() string { return "LFOScale" }

// LFOTranslate wobbles the position with independent per-axis LFOs.
// Detuning the two frequencies slightly gives a drifting orbit.
type LFOTranslate struct {
	X lfo.LFO
	Y lfo.LFO
}

func (t LFOTranslate) Apply(x, y, elapsed float64) (float64, float64) {
	return x + t.X.Value(elapsed), y + t.Y.Value(elapsed)
}

func (t LFOTranslate) Name() string { return "LFOTranslate" }
