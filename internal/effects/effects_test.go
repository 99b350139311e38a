package effects

import (
	"math"
	"testing"

	"github.com/cbegin/scopesynth-go/internal/lfo"
)

const tol = 1e-9

func TestRotateQuarterTurn(t *testing.T) {
	r := NewRotate(math.Pi / 2)
	x, y := r.Apply(1, 0, 0)
	if math.Abs(x) > tol || math.Abs(y-1) > tol {
		t.Errorf("90° of (1,0): got (%f,%f), want (0,1)", x, y)
	}
}

func TestRotateHalfTurn(t *testing.T) {
	r := NewRotate(math.Pi)
	x, y := r.Apply(0.3, -0.4, 0)
	if math.Abs(x-(-0.3)) > tol || math.Abs(y-0.4) > tol {
		t.Errorf("180° of (0.3,-0.4): got (%f,%f), want (-0.3,0.4)", x, y)
	}
}

func TestAnimatedRotateAdvances(t *testing.T) {
	r := AnimatedRotate(math.Pi) // half turn per second
	x, y := r.Apply(1, 0, 1.0)
	if math.Abs(x-(-1)) > tol || math.Abs(y) > tol {
		t.Errorf("after 1s at π rad/s: got (%f,%f), want (-1,0)", x, y)
	}
	// Same point, same instant: identical result.
	x2, y2 := r.Apply(1, 0, 1.0)
	if x != x2 || y != y2 {
		t.Error("animated rotate is not pure")
	}
}

func TestScalePerAxis(t *testing.T) {
	s := Scale{X: 2, Y: 0.5}
	x, y := s.Apply(1, 1, 0)
	if x != 2 || y != 0.5 {
		t.Errorf("got (%f,%f), want (2,0.5)", x, y)
	}
}

func TestTranslate(t *testing.T) {
	tr := Translate{DX: 0.1, DY: -0.2}
	x, y := tr.Apply(0.5, 0.5, 0)
	if math.Abs(x-0.6) > tol || math.Abs(y-0.3) > tol {
		t.Errorf("got (%f,%f), want (0.6,0.3)", x, y)
	}
}

func TestMirrorAxes(t *testing.T) {
	checks := []struct {
		axis   Axis
		wx, wy float64
	}{
		{AxisX, 0.3, -0.7},
		{AxisY, -0.3, 0.7},
		{AxisBoth, -0.3, -0.7},
	}
	for _, c := range checks {
		x, y := Mirror{Axis: c.axis}.Apply(0.3, 0.7, 0)
		if x != c.wx || y != c.wy {
			t.Errorf("axis %d: got (%f,%f), want (%f,%f)", c.axis, x, y, c.wx, c.wy)
		}
	}
}

func TestChainAppliesInOrder(t *testing.T) {
	// Scale then translate is not translate then scale.
	c := NewChain(UniformScale(2), Translate{DX: 1})
	x, _ := c.Apply(1, 0, 0)
	if x != 3 {
		t.Errorf("scale-then-translate: got %f, want 3", x)
	}

	c2 := NewChain(Translate{DX: 1}, UniformScale(2))
	x, _ = c2.Apply(1, 0, 0)
	if x != 4 {
		t.Errorf("translate-then-scale: got %f, want 4", x)
	}
}

func TestNilChainPassesThrough(t *testing.T) {
	var c *Chain
	x, y := c.Apply(0.1, 0.2, 5)
	if x != 0.1 || y != 0.2 {
		t.Errorf("nil chain altered point: (%f,%f)", x, y)
	}
	if c.Len() != 0 {
		t.Errorf("nil chain length %d, want 0", c.Len())
	}
}

func TestLFOScaleAtQuarterPeriod(t *testing.T) {
	// Sine LFO over [0.5, 1.5]: peak at a quarter period.
	s := LFOScale{LFO: lfo.WithRange(1.0, 0.5, 1.5)}
	x, y := s.Apply(1, 1, 0.25)
	if math.Abs(x-1.5) > tol || math.Abs(y-1.5) > tol {
		t.Errorf("peak scale: got (%f,%f), want (1.5,1.5)", x, y)
	}
	x, _ = s.Apply(1, 1, 0.75)
	if math.Abs(x-0.5) > tol {
		t.Errorf("trough scale: got %f, want 0.5", x)
	}
}

func TestLFORotateSweeps(t *testing.T) {
	r := LFORotate{LFO: lfo.WithRange(1.0, 0, math.Pi)}
	// At phase 0 the sine LFO sits at the range midpoint, π/2.
	x, y := r.Apply(1, 0, 0)
	if math.Abs(x) > tol || math.Abs(y-1) > tol {
		t.Errorf("midpoint rotation: got (%f,%f), want (0,1)", x, y)
	}
}

func TestLFOTranslateIndependentAxes(t *testing.T) {
	tr := LFOTranslate{
		X: lfo.WithRange(1.0, -0.2, 0.2),
		Y: lfo.LFO{Freq: 1, Min: -0.2, Max: 0.2, Waveform: lfo.Sine, PhaseOffset: 0.25},
	}
	// At elapsed 0: X LFO at midpoint 0, Y LFO a quarter cycle ahead at max.
	x, y := tr.Apply(0, 0, 0)
	if math.Abs(x) > tol || math.Abs(y-0.2) > tol {
		t.Errorf("got (%f,%f), want (0,0.2)", x, y)
	}
}
