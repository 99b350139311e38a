package lfo

import (
	"math"
	"testing"
)

func TestSineQuarterPoints(t *testing.T) {
	l := New(1.0) // 1 Hz, [-1, 1]

	checks := []struct {
		elapsed float64
		want    float64
	}{
		{0.0, 0},
		{0.25, 1},
		{0.5, 0},
		{0.75, -1},
	}
	for _, c := range checks {
		if v := l.Value(c.elapsed); math.Abs(v-c.want) > 1e-9 {
			t.Errorf("sine at %fs: got %f, want %f", c.elapsed, v, c.want)
		}
	}
}

func TestTriangleShape(t *testing.T) {
	l := LFO{Freq: 1, Min: -1, Max: 1, Waveform: Triangle}

	if v := l.Value(0); math.Abs(v-(-1)) > 1e-9 {
		t.Errorf("triangle at phase 0: got %f, want -1", v)
	}
	if v := l.Value(0.25); math.Abs(v) > 1e-9 {
		t.Errorf("triangle at phase 0.25: got %f, want 0", v)
	}
	if v := l.Value(0.5); math.Abs(v-1) > 1e-9 {
		t.Errorf("triangle at phase 0.5: got %f, want 1", v)
	}
	if v := l.Value(0.75); math.Abs(v) > 1e-9 {
		t.Errorf("triangle at phase 0.75: got %f, want 0", v)
	}
}

func TestSquareHalves(t *testing.T) {
	l := LFO{Freq: 2, Min: 0, Max: 10, Waveform: Square}

	// 2 Hz: first quarter second is the high half of the first cycle.
	if v := l.Value(0.1); v != 10 {
		t.Errorf("square high half: got %f, want 10", v)
	}
	if v := l.Value(0.35); v != 0 {
		t.Errorf("square low half: got %f, want 0", v)
	}
}

func TestSawRampsUpReverseRampsDown(t *testing.T) {
	up := LFO{Freq: 1, Min: -1, Max: 1, Waveform: Saw}
	down := LFO{Freq: 1, Min: -1, Max: 1, Waveform: ReverseSaw}

	if a, b := up.Value(0.1), up.Value(0.6); a >= b {
		t.Errorf("saw should ramp up: %f then %f", a, b)
	}
	if a, b := down.Value(0.1), down.Value(0.6); a <= b {
		t.Errorf("reverse saw should ramp down: %f then %f", a, b)
	}
	// The two are mirror images around the range midpoint.
	if s, r := up.Value(0.3), down.Value(0.3); math.Abs(s+r) > 1e-9 {
		t.Errorf("saw/reverse-saw not mirrored: %f vs %f", s, r)
	}
}

func TestRangeMapping(t *testing.T) {
	l := WithRange(1.0, 0.5, 2.0)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		v := l.Value(float64(i) / 1000)
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if math.Abs(lo-0.5) > 1e-3 || math.Abs(hi-2.0) > 1e-3 {
		t.Errorf("range [0.5,2.0] not covered: observed [%f,%f]", lo, hi)
	}
}

func TestPhaseOffsetShiftsWaveform(t *testing.T) {
	base := New(1.0)
	shifted := LFO{Freq: 1, Min: -1, Max: 1, Waveform: Sine, PhaseOffset: 0.25}

	if a, b := base.Value(0.25), shifted.Value(0); math.Abs(a-b) > 1e-9 {
		t.Errorf("quarter-cycle offset: got %f, want %f", b, a)
	}
}

func TestValueIsPure(t *testing.T) {
	l := LFO{Freq: 3.7, Min: -2, Max: 5, Waveform: Triangle, PhaseOffset: 0.1}
	for _, elapsed := range []float64{0, 0.123, 1.5, 42.7} {
		a := l.Value(elapsed)
		b := l.Value(elapsed)
		if a != b {
			t.Fatalf("value at %f not repeatable: %f vs %f", elapsed, a, b)
		}
	}
}

func TestRandomHoldsWithinCycle(t *testing.T) {
	l := LFO{Freq: 10, Min: -1, Max: 1, Waveform: Random, Seed: 7}

	// All evaluations inside one cycle return the held value.
	first := l.Value(0.001)
	for _, elapsed := range []float64{0.02, 0.05, 0.09} {
		if v := l.Value(elapsed); v != first {
			t.Fatalf("random changed mid-cycle: %f vs %f", v, first)
		}
	}
	// The next cycle produces a different hold.
	if v := l.Value(0.11); v == first {
		t.Error("random held the same value across a cycle boundary")
	}
}

func TestRandomSeedVariesSequence(t *testing.T) {
	a := LFO{Freq: 5, Min: -1, Max: 1, Waveform: Random, Seed: 1}
	b := LFO{Freq: 5, Min: -1, Max: 1, Waveform: Random, Seed: 2}

	same := true
	for i := 0; i < 10; i++ {
		elapsed := float64(i) * 0.2
		if a.Value(elapsed) != b.Value(elapsed) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestRandomStaysInRange(t *testing.T) {
	l := LFO{Freq: 50, Min: -0.5, Max: 0.5, Waveform: Random, Seed: 99}
	for i := 0; i < 500; i++ {
		v := l.Value(float64(i) * 0.01)
		if v < -0.5-1e-9 || v > 0.5+1e-9 {
			t.Fatalf("random value %f outside [-0.5,0.5]", v)
		}
	}
}

func TestZeroFrequencyIsMidpoint(t *testing.T) {
	l := LFO{Min: 2, Max: 4, Waveform: Sine}
	if v := l.Value(123.4); v != 3 {
		t.Errorf("zero-frequency LFO: got %f, want midpoint 3", v)
	}
}
