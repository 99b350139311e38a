// Package scopesynth plays parametric shapes as stereo audio. The left
// channel carries X and the right channel carries Y, so feeding the
// output to an oscilloscope in XY mode draws the shape on screen.
package scopesynth

import (
	"errors"
	"fmt"
	"sync"

	intaudio "github.com/cbegin/scopesynth-go/internal/audio"
	intfx "github.com/cbegin/scopesynth-go/internal/effects"
	intshape "github.com/cbegin/scopesynth-go/internal/shape"
	intsynth "github.com/cbegin/scopesynth-go/internal/synth"
	"github.com/cbegin/scopesynth-go/internal/xyring"
)

// BackendKind selects the playback device.
type BackendKind string

const (
	// BackendOto opens the audio device directly; no window required.
	BackendOto BackendKind = "oto"
	// BackendEbiten plays through ebiten's audio context, for programs
	// that already run an ebiten game loop.
	BackendEbiten BackendKind = "ebiten"
)

// DefaultRingCapacity holds roughly a third of a second at 48 kHz,
// comfortably more than one display frame.
const DefaultRingCapacity = 16384

type Option func(*synthConfig)

type synthConfig struct {
	backend      BackendKind
	ringCapacity int
}

func defaultSynthConfig() synthConfig {
	return synthConfig{backend: BackendOto, ringCapacity: DefaultRingCapacity}
}

func WithBackend(kind BackendKind) Option {
	return func(cfg *synthConfig) {
		cfg.backend = kind
	}
}

// WithRingCapacity sizes the sample ring shared with the display.
func WithRingCapacity(n int) Option {
	return func(cfg *synthConfig) {
		cfg.ringCapacity = n
	}
}

// Synth owns the engine, the display ring, and the audio backend.
// Control methods are safe to call from any goroutine.
type Synth struct {
	mu         sync.Mutex
	sampleRate int
	backend    intaudio.Backend
	kind       BackendKind
	engine     *intsynth.Engine
	ring       *xyring.Ring
}

func New(sampleRate int, opts ...Option) (*Synth, error) {
	if sampleRate <= 0 {
		return nil, errors.New("sampleRate must be positive")
	}
	cfg := defaultSynthConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.ringCapacity <= 0 {
		return nil, errors.New("ring capacity must be positive")
	}
	ring := xyring.New(cfg.ringCapacity)
	return &Synth{
		sampleRate: sampleRate,
		kind:       cfg.backend,
		engine:     intsynth.New(sampleRate, ring),
		ring:       ring,
	}, nil
}

// Start acquires the audio device and begins playback. Starting an
// already-playing synth is a no-op. On device failure the synth
// returns to Stopped and the error is returned.
func (s *Synth) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine.State() != intsynth.Stopped {
		return nil
	}
	s.engine.SetState(intsynth.Starting)

	backend, err := s.acquireBackend()
	if err != nil {
		s.engine.SetState(intsynth.Stopped)
		return fmt.Errorf("start playback: %w", err)
	}
	s.backend = backend
	s.engine.SetState(intsynth.Running)
	backend.Play()
	return nil
}

func (s *Synth) acquireBackend() (intaudio.Backend, error) {
	switch s.kind {
	case BackendEbiten:
		return intaudio.NewEbitenBackend(s.sampleRate, s.engine)
	case BackendOto:
		return intaudio.NewOtoBackend(s.sampleRate, s.engine)
	default:
		return nil, fmt.Errorf("unknown backend %q", s.kind)
	}
}

// Stop halts playback and releases the player. Always ends in Stopped,
// even if the device reports an error on close.
func (s *Synth) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.backend == nil {
		s.engine.SetState(intsynth.Stopped)
		return nil
	}
	s.engine.SetState(intsynth.Stopping)
	s.backend.Pause()
	err := s.backend.Close()
	s.backend = nil
	s.engine.SetState(intsynth.Stopped)
	return err
}

// Playing reports whether the synth is producing audio.
func (s *Synth) Playing() bool {
	return s.engine.State() == intsynth.Running
}

// State returns the engine lifecycle state.
func (s *Synth) State() intsynth.State {
	return s.engine.State()
}

// Err reports an asynchronous device failure, or nil. A failed device
// drives the synth to Stopped; restarting is a fresh Start call.
func (s *Synth) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.backend == nil {
		return nil
	}
	err := s.backend.Err()
	if err != nil {
		s.engine.SetState(intsynth.Stopping)
		s.backend.Close()
		s.backend = nil
		s.engine.SetState(intsynth.Stopped)
	}
	return err
}

// SetShape swaps the traced shape. Takes effect on the next audio
// buffer; the running trace is never torn mid-snapshot.
func (s *Synth) SetShape(sh intshape.Shape) {
	s.engine.SetShape(sh)
}

// Shape returns the currently traced shape, or nil.
func (s *Synth) Shape() intshape.Shape {
	return s.engine.Snapshot().Shape
}

// SetEffects swaps the effect chain. A nil chain clears all effects.
func (s *Synth) SetEffects(c *intfx.Chain) {
	s.engine.SetEffects(c)
}

// SetFrequency sets full shape traces per second.
func (s *Synth) SetFrequency(hz float64) {
	s.engine.SetFrequency(hz)
}

func (s *Synth) Frequency() float64 {
	return s.engine.Frequency()
}

// SetVolume sets the output gain. 0 silences, 1 is full scale.
func (s *Synth) SetVolume(v float64) {
	s.engine.SetVolume(v)
}

func (s *Synth) Volume() float64 {
	return s.engine.Volume()
}

// Ring exposes the sample ring for a display consumer. Exactly one
// goroutine may pop from it.
func (s *Synth) Ring() *xyring.Ring {
	return s.ring
}

// SampleRate returns the configured output rate in Hz.
func (s *Synth) SampleRate() int {
	return s.sampleRate
}
