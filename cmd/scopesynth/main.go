package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	scopesynth "github.com/cbegin/scopesynth-go"
	"github.com/cbegin/scopesynth-go/internal/midictl"
	"github.com/cbegin/scopesynth-go/internal/settings"
)

func main() {
	var (
		sampleRate = flag.Int("sample-rate", 48000, "output sample rate")
		shapeName  = flag.String("shape", "circle", "shape: circle|square|rect|triangle|pentagon|hexagon|star|line|lissajous")
		freq       = flag.Float64("freq", 80, "shape traces per second")
		volume     = flag.Float64("volume", 0.8, "output gain (0..1)")
		duration   = flag.Duration("duration", 0, "stop after this long (0 = run until interrupted)")
		rotate     = flag.Float64("rotate", 0, "rotation speed in radians per second")
		pulse      = flag.Bool("pulse", false, "enable the scale LFO")
		pulseFreq  = flag.Float64("pulse-freq", 0.5, "scale LFO frequency in Hz")
		pulseMin   = flag.Float64("pulse-min", 0.6, "scale LFO minimum factor")
		pulseMax   = flag.Float64("pulse-max", 1.0, "scale LFO maximum factor")
		pulseWave  = flag.String("pulse-wave", "sine", "scale LFO waveform: sine|triangle|square|saw|reverse-saw|random")
		lissA      = flag.Int("lissajous-a", 3, "lissajous X frequency ratio")
		lissB      = flag.Int("lissajous-b", 2, "lissajous Y frequency ratio")
		wavPath    = flag.String("wav", "", "render to a WAV file instead of playing")
		wavSeconds = flag.Float64("wav-seconds", 5, "length of the rendered WAV")
		listMIDI   = flag.Bool("list-midi", false, "list MIDI input devices and exit")
		midiDev    = flag.Int("midi", -2, "MIDI input device ID (-1 = system default)")
		midiMap    = flag.String("midi-map", "1=frequency,7=volume", "comma-separated cc=param bindings")
	)
	flag.Parse()

	if *listMIDI {
		for _, d := range midictl.Devices() {
			fmt.Printf("%3d  %s\n", d.ID, d.Name)
		}
		return
	}

	sh, err := scopesynth.BuildShape(settings.ShapeConfig{
		Kind:       *shapeName,
		Size:       0.8,
		LissajousA: *lissA,
		LissajousB: *lissB,
	})
	if err != nil {
		log.Fatal(err)
	}
	chain, err := scopesynth.BuildEffects(settings.EffectConfig{
		RotationSpeed: *rotate,
		ScaleLFO:      *pulse,
		ScaleLFOFreq:  *pulseFreq,
		ScaleLFOMin:   *pulseMin,
		ScaleLFOMax:   *pulseMax,
		ScaleLFOWave:  *pulseWave,
	})
	if err != nil {
		log.Fatal(err)
	}

	if *wavPath != "" {
		if err := scopesynth.RenderWAVFile(*wavPath, sh, chain, *sampleRate, *freq, *volume, *wavSeconds); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("wrote %s (%.1fs, %s at %.1f Hz)\n", *wavPath, *wavSeconds, sh.Name(), *freq)
		return
	}

	synth, err := scopesynth.New(*sampleRate)
	if err != nil {
		log.Fatal(err)
	}
	synth.SetShape(sh)
	synth.SetEffects(chain)
	synth.SetFrequency(*freq)
	synth.SetVolume(*volume)
	if err := synth.Start(); err != nil {
		log.Fatal(err)
	}
	defer synth.Stop()
	fmt.Printf("playing %s at %.1f Hz (ctrl-c to stop)\n", sh.Name(), *freq)

	var controller *midictl.Controller
	if *midiDev >= -1 {
		mappings, err := parseMIDIMap(*midiMap)
		if err != nil {
			log.Fatal(err)
		}
		controller, err = midictl.Open(*midiDev, mappings)
		if err != nil {
			log.Fatal(err)
		}
		defer controller.Close()
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

	var timeout <-chan time.Time
	if *duration > 0 {
		timeout = time.After(*duration)
	}
	poll := time.NewTicker(10 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case <-sig:
			return
		case <-timeout:
			return
		case <-poll.C:
			if err := synth.Err(); err != nil {
				log.Fatalf("audio device: %v", err)
			}
			if controller == nil {
				continue
			}
			updates, err := controller.Poll()
			if err != nil {
				log.Fatalf("midi: %v", err)
			}
			for _, u := range updates {
				applyUpdate(synth, u)
			}
		}
	}
}

func applyUpdate(synth *scopesynth.Synth, u midictl.Update) {
	switch u.Param {
	case midictl.Frequency:
		synth.SetFrequency(u.Value)
	case midictl.Volume:
		synth.SetVolume(u.Value)
	default:
		// Display parameters have no meaning in the headless player.
	}
}

func parseMIDIMap(raw string) ([]midictl.Mapping, error) {
	var out []midictl.Mapping
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		var cc int
		var name string
		if _, err := fmt.Sscanf(pair, "%d=%s", &cc, &name); err != nil {
			return nil, fmt.Errorf("invalid -midi-map entry %q (expected cc=param)", pair)
		}
		param, err := midictl.ParamByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, midictl.Mapping{CC: cc, Param: param})
	}
	return out, nil
}
