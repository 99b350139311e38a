// Package midictl maps MIDI control-change messages onto synth and
// display parameters. Any knob controller works: bind a CC number to a
// parameter and the 0..127 knob range maps linearly onto the
// parameter's own range.
package midictl

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rakyll/portmidi"
)

// Param identifies a controllable parameter.
type Param int

const (
	Frequency Param = iota
	Volume
	RotationSpeed
	ScaleLFOFreq
	ScaleLFOMin
	ScaleLFOMax
	Intensity
	Persistence
	Zoom
)

var paramNames = map[Param]string{
	Frequency:     "frequency",
	Volume:        "volume",
	RotationSpeed: "rotation-speed",
	ScaleLFOFreq:  "scale-lfo-freq",
	ScaleLFOMin:   "scale-lfo-min",
	ScaleLFOMax:   "scale-lfo-max",
	Intensity:     "intensity",
	Persistence:   "persistence",
	Zoom:          "zoom",
}

func (p Param) Name() string {
	if n, ok := paramNames[p]; ok {
		return n
	}
	return "unknown"
}

// Range returns the parameter's usable interval.
func (p Param) Range() (min, max float64) {
	switch p {
	case Frequency:
		return 20, 500
	case Volume:
		return 0, 1
	case RotationSpeed:
		return -4, 4
	case ScaleLFOFreq:
		return 0.05, 10
	case ScaleLFOMin, ScaleLFOMax:
		return 0, 2
	case Intensity:
		return 0, 1
	case Persistence:
		return 0, 0.99
	case Zoom:
		return 0.25, 4
	}
	return 0, 1
}

// Map converts a 0..127 controller value onto the parameter's range.
func (p Param) Map(value int) float64 {
	if value < 0 {
		value = 0
	}
	if value > 127 {
		value = 127
	}
	min, max := p.Range()
	return min + float64(value)/127*(max-min)
}

// ParamByName resolves the persisted parameter name.
func ParamByName(name string) (Param, error) {
	for p, n := range paramNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown parameter %q", name)
}

// Mapping binds one CC number to a parameter.
type Mapping struct {
	CC    int
	Param Param
}

// Update is one decoded knob movement.
type Update struct {
	Param Param
	Value float64
}

const ccStatus = 0xB0

// applyCC decodes one control-change message against the mapping
// table. Non-CC messages and unmapped CC numbers produce no update.
func applyCC(mappings []Mapping, status, data1, data2 int64) (Update, bool) {
	if status&0xF0 != ccStatus {
		return Update{}, false
	}
	for _, m := range mappings {
		if int64(m.CC) == data1 {
			return Update{Param: m.Param, Value: m.Param.Map(int(data2))}, true
		}
	}
	return Update{}, false
}

var initOnce sync.Once

func initPortmidi() {
	initOnce.Do(func() {
		portmidi.Initialize()
	})
}

// Device describes one attached MIDI input.
type Device struct {
	ID   portmidi.DeviceID
	Name string
}

// Devices lists attached MIDI inputs.
func Devices() []Device {
	initPortmidi()
	var out []Device
	for i := 0; i < portmidi.CountDevices(); i++ {
		id := portmidi.DeviceID(i)
		info := portmidi.Info(id)
		if info != nil && info.IsInputAvailable {
			out = append(out, Device{ID: id, Name: info.Name})
		}
	}
	return out
}

// Controller owns one MIDI input stream and a mapping table.
type Controller struct {
	stream   *portmidi.Stream
	mappings []Mapping
}

// Open opens the MIDI input with the given device ID; pass a negative
// ID to use the system default input.
func Open(deviceID int, mappings []Mapping) (*Controller, error) {
	initPortmidi()
	id := portmidi.DeviceID(deviceID)
	if deviceID < 0 {
		id = portmidi.DefaultInputDeviceID()
	}
	if id < 0 {
		return nil, errors.New("no MIDI input device available")
	}
	stream, err := portmidi.NewInputStream(id, 1024)
	if err != nil {
		return nil, fmt.Errorf("open MIDI input: %w", err)
	}
	return &Controller{stream: stream, mappings: mappings}, nil
}

// Poll reads pending MIDI events and returns the decoded parameter
// updates, oldest first. Call periodically; it never blocks on an
// empty queue.
func (c *Controller) Poll() ([]Update, error) {
	events, err := c.stream.Read(1024)
	if err != nil {
		return nil, err
	}
	var updates []Update
	for _, ev := range events {
		if u, ok := applyCC(c.mappings, ev.Status, ev.Data1, ev.Data2); ok {
			updates = append(updates, u)
		}
	}
	return updates, nil
}

// Close releases the input stream.
func (c *Controller) Close() error {
	return c.stream.Close()
}
