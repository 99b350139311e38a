package audio

import (
	"fmt"
	"sync"

	ebitaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenBackend plays through ebiten's audio context. Use it from
// programs that run an ebiten game loop; the context doubles as the
// game's audio system.
type EbitenBackend struct {
	player *ebitaudio.Player
	reader *StreamReader
}

var (
	ebitenContextOnce sync.Once
	ebitenContext     *ebitaudio.Context
	ebitenSampleRate  int
)

// ebiten allows exactly one audio context per process.
func sharedEbitenContext(sampleRate int) (*ebitaudio.Context, error) {
	ebitenContextOnce.Do(func() {
		ebitenSampleRate = sampleRate
		ebitenContext = ebitaudio.NewContext(sampleRate)
	})
	if ebitenSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", ebitenSampleRate, sampleRate)
	}
	return ebitenContext, nil
}

// NewEbitenBackend creates a paused player reading from source.
func NewEbitenBackend(sampleRate int, source SampleSource) (*EbitenBackend, error) {
	ctx, err := sharedEbitenContext(sampleRate)
	if err != nil {
		return nil, err
	}
	reader := NewStreamReader(source)
	pl, err := ctx.NewPlayerF32(reader)
	if err != nil {
		return nil, err
	}
	return &EbitenBackend{player: pl, reader: reader}, nil
}

func (b *EbitenBackend) Play()           { b.player.Play() }
func (b *EbitenBackend) Pause()          { b.player.Pause() }
func (b *EbitenBackend) IsPlaying() bool { return b.player.IsPlaying() }
func (b *EbitenBackend) Err() error      { return nil }

func (b *EbitenBackend) Close() error {
	b.player.Pause()
	if err := b.player.Close(); err != nil {
		return err
	}
	return b.reader.Close()
}
