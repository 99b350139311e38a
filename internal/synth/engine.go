// Package synth turns shapes into audio. The engine walks a shape's
// parameter with a phase accumulator at the trace frequency; the X
// channel becomes the left output and Y the right, so an oscilloscope
// in XY mode redraws the shape.
//
// The engine's Process runs on the audio goroutine. All control state
// it reads is published atomically: shape and effect chain as an
// immutable Config snapshot, frequency and volume as float64 bits.
// Callers mutate by building a new snapshot and republishing, never by
// writing into a snapshot the engine may be reading.
package synth

import (
	"math"
	"sync/atomic"

	"github.com/cbegin/scopesynth-go/internal/effects"
	"github.com/cbegin/scopesynth-go/internal/shape"
	"github.com/cbegin/scopesynth-go/internal/xyring"
)

// Config is one immutable shape-plus-effects snapshot.
type Config struct {
	Shape   shape.Shape
	Effects *effects.Chain
}

// State is the engine lifecycle.
type State int32

const (
	Stopped State = iota
	Starting
	Running
	Stopping
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopping:
		return "stopping"
	}
	return "unknown"
}

const (
	DefaultFrequency = 80.0
	DefaultVolume    = 0.8
)

// Engine generates stereo float32 frames from the published config.
// Safe for one audio goroutine calling Process concurrently with any
// number of goroutines calling the setters.
type Engine struct {
	sampleRate float64
	ring       *xyring.Ring

	cfg   atomic.Pointer[Config]
	freq  atomic.Uint64 // float64 bits
	vol   atomic.Uint64 // float64 bits
	state atomic.Int32

	// Owned by the audio goroutine.
	phase  float64
	frames uint64
}

// New creates an engine pushing every generated point into ring. The
// ring may be nil when no display is attached.
func New(sampleRate int, ring *xyring.Ring) *Engine {
	e := &Engine{
		sampleRate: float64(sampleRate),
		ring:       ring,
	}
	e.cfg.Store(&Config{})
	e.freq.Store(math.Float64bits(DefaultFrequency))
	e.vol.Store(math.Float64bits(DefaultVolume))
	return e
}

// SetShape republishes the snapshot with a new shape, keeping the
// current effect chain.
func (e *Engine) SetShape(s shape.Shape) {
	old := e.cfg.Load()
	e.cfg.Store(&Config{Shape: s, Effects: old.Effects})
}

// SetEffects republishes the snapshot with a new chain, keeping the
// current shape.
func (e *Engine) SetEffects(c *effects.Chain) {
	old := e.cfg.Load()
	e.cfg.Store(&Config{Shape: old.Shape, Effects: c})
}

// Snapshot returns the current config.
func (e *Engine) Snapshot() *Config { return e.cfg.Load() }

// SetFrequency sets how many full shape traces happen per second.
// Non-positive and non-finite values are ignored.
func (e *Engine) SetFrequency(hz float64) {
	if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
		return
	}
	e.freq.Store(math.Float64bits(hz))
}

// Frequency returns the trace frequency in Hz.
func (e *Engine) Frequency() float64 {
	return math.Float64frombits(e.freq.Load())
}

// SetVolume sets the output gain. Negative and non-finite values are
// ignored; values above 1 are allowed and clip at the output stage.
func (e *Engine) SetVolume(v float64) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	e.vol.Store(math.Float64bits(v))
}

// Volume returns the output gain.
func (e *Engine) Volume() float64 {
	return math.Float64frombits(e.vol.Load())
}

// SetState publishes a lifecycle transition.
func (e *Engine) SetState(s State) { e.state.Store(int32(s)) }

// State returns the current lifecycle state.
func (e *Engine) State() State { return State(e.state.Load()) }

// Process fills dst with interleaved stereo frames. Unless the engine
// is Running it writes silence and pushes nothing to the ring, so a
// stopped scope shows a blank screen rather than a frozen trace.
func (e *Engine) Process(dst []float32) {
	if e.State() != Running {
		for i := range dst {
			dst[i] = 0
		}
		return
	}

	cfg := e.cfg.Load()
	freq := e.Frequency()
	vol := e.Volume()
	inc := freq / e.sampleRate

	for i := 0; i+1 < len(dst); i += 2 {
		var x, y float64
		if cfg.Shape != nil {
			elapsed := float64(e.frames) / e.sampleRate
			x, y = cfg.Shape.Sample(e.phase)
			x, y = cfg.Effects.Apply(x, y, elapsed)
		}

		l := clamp(float32(x * vol))
		r := clamp(float32(y * vol))
		dst[i] = l
		dst[i+1] = r

		if e.ring != nil {
			e.ring.Push(xyring.Sample{X: l, Y: r})
		}

		e.frames++
		e.phase += inc
		for e.phase >= 1 {
			e.phase -= 1
		}
	}
}

func clamp(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
