package scopesynth

import (
	"encoding/binary"
	"errors"
	"math"
	"os"

	intfx "github.com/cbegin/scopesynth-go/internal/effects"
	intshape "github.com/cbegin/scopesynth-go/internal/shape"
	intsynth "github.com/cbegin/scopesynth-go/internal/synth"
)

// RenderSamples traces a shape offline and returns interleaved stereo
// float32 frames. No audio device is touched, so it works headless and
// faster than real time.
func RenderSamples(sh intshape.Shape, chain *intfx.Chain, sampleRate int, freq, volume, seconds float64) []float32 {
	engine := intsynth.New(sampleRate, nil)
	engine.SetShape(sh)
	engine.SetEffects(chain)
	engine.SetFrequency(freq)
	engine.SetVolume(volume)
	engine.SetState(intsynth.Running)

	frames := int(float64(sampleRate) * seconds)
	out := make([]float32, frames*2)
	engine.Process(out)
	return out
}

// EncodeWAVFloat32LE wraps samples in a canonical IEEE-float WAV
// container (format tag 3, 32 bits per sample).
func EncodeWAVFloat32LE(samples []float32, sampleRate int, channels int) []byte {
	dataSize := len(samples) * 4
	byteRate := sampleRate * channels * 4
	blockAlign := channels * 4
	chunkSize := 36 + dataSize
	out := make([]byte, 44+dataSize)
	copy(out[0:], []byte("RIFF"))
	binary.LittleEndian.PutUint32(out[4:], uint32(chunkSize))
	copy(out[8:], []byte("WAVE"))
	copy(out[12:], []byte("fmt "))
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], 3)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(byteRate))
	binary.LittleEndian.PutUint16(out[32:], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], []byte("data"))
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[44+i*4:], math.Float32bits(s))
	}
	return out
}

// RenderWAVFile traces a shape offline and writes the result as a
// stereo WAV file.
func RenderWAVFile(path string, sh intshape.Shape, chain *intfx.Chain, sampleRate int, freq, volume, seconds float64) error {
	if sh == nil {
		return errors.New("shape must not be nil")
	}
	if seconds <= 0 {
		return errors.New("duration must be positive")
	}
	samples := RenderSamples(sh, chain, sampleRate, freq, volume, seconds)
	return os.WriteFile(path, EncodeWAVFloat32LE(samples, sampleRate, 2), 0o644)
}
