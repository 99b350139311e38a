// Package settings persists user-facing configuration as JSON. Loading
// never fails hard: a missing or corrupt file yields the defaults, so
// the program always starts.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ShapeConfig selects and parameterizes the traced shape.
type ShapeConfig struct {
	Kind string  `json:"kind"` // circle, square, rect, triangle, pentagon, hexagon, star, line, lissajous
	Size float64 `json:"size"`

	// Lissajous parameters, ignored by other kinds.
	LissajousA     int     `json:"lissajous_a,omitempty"`
	LissajousB     int     `json:"lissajous_b,omitempty"`
	LissajousDelta float64 `json:"lissajous_delta,omitempty"`
}

// EffectConfig parameterizes the optional effect chain.
type EffectConfig struct {
	RotationSpeed float64 `json:"rotation_speed"` // radians per second, 0 disables

	ScaleLFO     bool    `json:"scale_lfo"`
	ScaleLFOFreq float64 `json:"scale_lfo_freq"`
	ScaleLFOMin  float64 `json:"scale_lfo_min"`
	ScaleLFOMax  float64 `json:"scale_lfo_max"`
	ScaleLFOWave string  `json:"scale_lfo_wave"` // sine, triangle, square, saw, reverse-saw, random
}

// DisplayConfig holds oscilloscope rendering options.
type DisplayConfig struct {
	Persistence float64 `json:"persistence"` // per-frame intensity decay factor [0,1)
	Intensity   float64 `json:"intensity"`   // beam brightness [0,1]
	Zoom        float64 `json:"zoom"`
	Graticule   bool    `json:"graticule"`
}

// MIDIMapping binds a control-change number to a named parameter.
// Parameter names follow the midictl package.
type MIDIMapping struct {
	CC    int    `json:"cc"`
	Param string `json:"param"`
}

// Settings is the persisted root document.
type Settings struct {
	SampleRate int           `json:"sample_rate"`
	Frequency  float64       `json:"frequency"`
	Volume     float64       `json:"volume"`
	Shape      ShapeConfig   `json:"shape"`
	Effects    EffectConfig  `json:"effects"`
	Display    DisplayConfig `json:"display"`
	MIDI       []MIDIMapping `json:"midi,omitempty"`
}

// Default returns the settings used when nothing is saved yet.
func Default() Settings {
	return Settings{
		SampleRate: 48000,
		Frequency:  80,
		Volume:     0.8,
		Shape:      ShapeConfig{Kind: "circle", Size: 0.8},
		Effects: EffectConfig{
			ScaleLFOFreq: 0.5,
			ScaleLFOMin:  0.6,
			ScaleLFOMax:  1.0,
			ScaleLFOWave: "sine",
		},
		Display: DisplayConfig{
			Persistence: 0.90,
			Intensity:   0.8,
			Zoom:        1.0,
			Graticule:   true,
		},
	}
}

// DefaultPath is the per-user settings location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "scopesynth", "settings.json"), nil
}

// Load reads settings from path. Any failure, including a missing
// file, returns Default(); the error is informational.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Default(), err
	}
	s := Default()
	if err := json.Unmarshal(raw, &s); err != nil {
		return Default(), err
	}
	return s, nil
}

// Save writes settings to path, creating parent directories as needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(raw, '\n'), 0o644)
}
