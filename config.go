package scopesynth

import (
	"fmt"
	"math"
	"strings"

	intfx "github.com/cbegin/scopesynth-go/internal/effects"
	intlfo "github.com/cbegin/scopesynth-go/internal/lfo"
	intset "github.com/cbegin/scopesynth-go/internal/settings"
	intshape "github.com/cbegin/scopesynth-go/internal/shape"
)

// BuildShape constructs the shape a settings document describes.
func BuildShape(cfg intset.ShapeConfig) (intshape.Shape, error) {
	size := cfg.Size
	if size <= 0 {
		size = 0.8
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Kind)) {
	case "circle":
		return intshape.NewCircle(size / 2), nil
	case "square":
		return intshape.Square(size), nil
	case "rect", "rectangle":
		return intshape.NewRect(size, size/2), nil
	case "triangle":
		return intshape.Regular(3, size/2)
	case "pentagon":
		return intshape.Regular(5, size/2)
	case "hexagon":
		return intshape.Regular(6, size/2)
	case "star":
		return intshape.Star(5, size/2, size/5)
	case "line":
		return intshape.Horizontal(0, -size/2, size/2), nil
	case "lissajous":
		a, b := cfg.LissajousA, cfg.LissajousB
		if a < 1 {
			a = 3
		}
		if b < 1 {
			b = 2
		}
		delta := cfg.LissajousDelta
		if delta == 0 {
			delta = math.Pi / 2
		}
		return intshape.NewLissajous(a, b, delta, size/2), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", cfg.Kind)
	}
}

// ParseWaveform resolves a persisted waveform name.
func ParseWaveform(name string) (intlfo.Waveform, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "sine":
		return intlfo.Sine, nil
	case "triangle":
		return intlfo.Triangle, nil
	case "square":
		return intlfo.Square, nil
	case "saw":
		return intlfo.Saw, nil
	case "reverse-saw", "rsaw":
		return intlfo.ReverseSaw, nil
	case "random":
		return intlfo.Random, nil
	default:
		return 0, fmt.Errorf("unknown waveform %q", name)
	}
}

// BuildEffects constructs the effect chain a settings document
// describes. Returns nil when no effect is enabled.
func BuildEffects(cfg intset.EffectConfig) (*intfx.Chain, error) {
	chain := intfx.NewChain()
	if cfg.RotationSpeed != 0 {
		chain.Add(intfx.AnimatedRotate(cfg.RotationSpeed))
	}
	if cfg.ScaleLFO {
		wave, err := ParseWaveform(cfg.ScaleLFOWave)
		if err != nil {
			return nil, err
		}
		chain.Add(intfx.LFOScale{LFO: intlfo.LFO{
			Freq:     cfg.ScaleLFOFreq,
			Min:      cfg.ScaleLFOMin,
			Max:      cfg.ScaleLFOMax,
			Waveform: wave,
		}})
	}
	if chain.Len() == 0 {
		return nil, nil
	}
	return chain, nil
}
