package scopesynth

import (
	"testing"

	intlfo "github.com/cbegin/scopesynth-go/internal/lfo"
	intset "github.com/cbegin/scopesynth-go/internal/settings"
)

func TestBuildShapeKinds(t *testing.T) {
	kinds := map[string]string{
		"circle":    "Circle",
		"square":    "Rectangle",
		"rect":      "Rectangle",
		"triangle":  "Triangle",
		"pentagon":  "Pentagon",
		"hexagon":   "Hexagon",
		"star":      "Star",
		"line":      "Line",
		"lissajous": "Lissajous",
	}
	for kind, wantName := range kinds {
		sh, err := BuildShape(intset.ShapeConfig{Kind: kind, Size: 0.8})
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if sh.Name() != wantName {
			t.Errorf("%s: built %q, want %q", kind, sh.Name(), wantName)
		}
	}
	if _, err := BuildShape(intset.ShapeConfig{Kind: "dodecahedron"}); err == nil {
		t.Fatal("unknown shape kind accepted")
	}
}

func TestBuildShapeDefaultsZeroSize(t *testing.T) {
	sh, err := BuildShape(intset.ShapeConfig{Kind: "circle"})
	if err != nil {
		t.Fatal(err)
	}
	if sh.Length() <= 0 {
		t.Fatal("zero-size config produced a degenerate shape")
	}
}

func TestParseWaveform(t *testing.T) {
	cases := map[string]intlfo.Waveform{
		"":            intlfo.Sine,
		"sine":        intlfo.Sine,
		"Triangle":    intlfo.Triangle,
		"square":      intlfo.Square,
		"saw":         intlfo.Saw,
		"reverse-saw": intlfo.ReverseSaw,
		"random":      intlfo.Random,
	}
	for name, want := range cases {
		got, err := ParseWaveform(name)
		if err != nil {
			t.Fatalf("%q: %v", name, err)
		}
		if got != want {
			t.Errorf("%q: got %v, want %v", name, got, want)
		}
	}
	if _, err := ParseWaveform("sinc"); err == nil {
		t.Fatal("unknown waveform accepted")
	}
}

func TestBuildEffects(t *testing.T) {
	chain, err := BuildEffects(intset.EffectConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if chain != nil {
		t.Fatal("empty config should build a nil chain")
	}

	chain, err = BuildEffects(intset.EffectConfig{
		RotationSpeed: 1.5,
		ScaleLFO:      true,
		ScaleLFOFreq:  0.5,
		ScaleLFOMin:   0.6,
		ScaleLFOMax:   1.0,
		ScaleLFOWave:  "triangle",
	})
	if err != nil {
		t.Fatal(err)
	}
	if chain.Len() != 2 {
		t.Fatalf("chain length %d, want 2", chain.Len())
	}

	if _, err := BuildEffects(intset.EffectConfig{ScaleLFO: true, ScaleLFOWave: "sinc"}); err == nil {
		t.Fatal("bad waveform accepted")
	}
}
