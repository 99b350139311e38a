// Package audio connects a sample source to a playback device. Two
// backends are provided: oto for headless command-line use and ebiten
// for programs that already run an ebiten game loop. Both consume the
// same float32 stereo stream.
package audio

import (
	"encoding/binary"
	"math"
	"sync"
)

// SampleSource fills dst with interleaved stereo float32 frames. It is
// called from the device's audio goroutine.
type SampleSource interface {
	Process(dst []float32)
}

// Backend is a playback device bound to a source.
type Backend interface {
	Play()
	Pause()
	IsPlaying() bool

	// Err reports an asynchronous device failure, or nil.
	Err() error

	// Close releases the player. The underlying device context stays
	// open for the life of the process.
	Close() error
}

// StreamReader adapts a SampleSource to the io.Reader the device
// libraries expect, converting float32 frames to little-endian bytes.
// The stream never ends; playback stops by pausing the player.
type StreamReader struct {
	mu     sync.Mutex
	source SampleSource
	buf    []float32
}

func NewStreamReader(source SampleSource) *StreamReader {
	return &StreamReader{source: source}
}

func (r *StreamReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	frames := len(p) / 8
	if frames == 0 {
		return 0, nil
	}
	need := frames * 2
	if cap(r.buf) < need {
		r.buf = make([]float32, need)
	}
	r.buf = r.buf[:need]
	r.source.Process(r.buf)
	for i := 0; i < need; i++ {
		u := math.Float32bits(r.buf[i])
		binary.LittleEndian.PutUint32(p[i*4:], u)
	}
	return frames * 8, nil
}

func (r *StreamReader) Close() error { return nil }
