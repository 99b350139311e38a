// Package lfo provides low-frequency oscillators for parameter
// modulation. An LFO here is a pure function of elapsed time: two
// callers evaluating the same LFO at the same instant get the same
// value, which keeps modulation deterministic and safe to share
// between the audio goroutine and the display.
package lfo

import "math"

// Waveform selects the oscillator shape.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
	Square
	Saw
	ReverseSaw
	Random
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	case Square:
		return "square"
	case Saw:
		return "saw"
	case ReverseSaw:
		return "reverse-saw"
	case Random:
		return "random"
	}
	return "unknown"
}

// LFO oscillates between Min and Max at Freq hertz. The zero value is
// unusable; construct with New or WithRange. PhaseOffset shifts the
// waveform start in cycles, Seed varies the Random waveform's
// sample-and-hold sequence.
type LFO struct {
	Freq        float64
	Min         float64
	Max         float64
	Waveform    Waveform
	PhaseOffset float64
	Seed        uint64
}

// New creates a sine LFO spanning [-1, 1].
func New(freq float64) LFO {
	return LFO{Freq: freq, Min: -1, Max: 1, Waveform: Sine}
}

// WithRange creates a sine LFO spanning [min, max].
func WithRange(freq, min, max float64) LFO {
	return LFO{Freq: freq, Min: min, Max: max, Waveform: Sine}
}

// Value evaluates the LFO at the given elapsed time in seconds. The
// raw waveform spans [-1, 1] and is mapped linearly onto [Min, Max].
func (l LFO) Value(elapsed float64) float64 {
	if l.Freq == 0 {
		return (l.Min + l.Max) / 2
	}
	cycles := elapsed*l.Freq + l.PhaseOffset
	phase := cycles - math.Floor(cycles)

	var raw float64
	switch l.Waveform {
	case Triangle:
		if phase < 0.5 {
			raw = 4*phase - 1
		} else {
			raw = 3 - 4*phase
		}
	case Square:
		if phase < 0.5 {
			raw = 1
		} else {
			raw = -1
		}
	case Saw:
		raw = 2*phase - 1
	case ReverseSaw:
		raw = 1 - 2*phase
	case Random:
		raw = l.hold(math.Floor(cycles))
	default:
		raw = math.Sin(2 * math.Pi * phase)
	}
	return (raw+1)/2*(l.Max-l.Min) + l.Min
}

// hold returns the sample-and-hold value for one full cycle. A
// sine-based hash of the cycle index gives a value that is stable for
// the whole cycle yet deterministic across runs with the same seed.
func (l LFO) hold(cycle float64) float64 {
	v := math.Sin(cycle*12.9898+float64(l.Seed)*78.233) * 43758.5453
	v -= math.Floor(v)
	return v*2 - 1
}
