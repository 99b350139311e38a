package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
)

// OtoBackend plays through an oto device directly, with no window or
// game loop required.
type OtoBackend struct {
	player *oto.Player
	reader *StreamReader
}

var (
	otoContextOnce sync.Once
	otoContext     *oto.Context
	otoContextErr  error
	otoSampleRate  int
)

// oto allows exactly one context per process.
func sharedOtoContext(sampleRate int) (*oto.Context, error) {
	otoContextOnce.Do(func() {
		otoSampleRate = sampleRate
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 2,
			Format:       oto.FormatFloat32LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoContextErr = err
			return
		}
		<-ready
		otoContext = ctx
	})
	if otoContextErr != nil {
		return nil, fmt.Errorf("open audio device: %w", otoContextErr)
	}
	if otoSampleRate != sampleRate {
		return nil, fmt.Errorf("audio context already initialized at %d Hz (requested %d Hz)", otoSampleRate, sampleRate)
	}
	return otoContext, nil
}

// NewOtoBackend creates a paused player reading from source.
func NewOtoBackend(sampleRate int, source SampleSource) (*OtoBackend, error) {
	ctx, err := sharedOtoContext(sampleRate)
	if err != nil {
		return nil, err
	}
	reader := NewStreamReader(source)
	return &OtoBackend{player: ctx.NewPlayer(reader), reader: reader}, nil
}

func (b *OtoBackend) Play()           { b.player.Play() }
func (b *OtoBackend) Pause()          { b.player.Pause() }
func (b *OtoBackend) IsPlaying() bool { return b.player.IsPlaying() }
func (b *OtoBackend) Err() error      { return b.player.Err() }

func (b *OtoBackend) Close() error {
	b.player.Pause()
	if err := b.player.Close(); err != nil {
		return err
	}
	return b.reader.Close()
}
