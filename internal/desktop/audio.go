package desktop

import (
	"bytes"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"tanks/internal/game"
	"tanks/internal/sfx"
)

const (
	channelCount = 2
	formatF32LE  = oto.FormatFloat32LE
)

// Audio plays effects through oto. Each effect gets its own player goroutine.
type Audio struct {
	ctx    *oto.Context
	ready  chan struct{}
	volume float64
	voices sfx.Voices
	seq    atomic.Uint64
}

func NewAudio(volume float64) (*Audio, error) {
	ctx, ready, err := oto.NewContext(sfx.SampleRate, channelCount, formatF32LE)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready, volume: volume}, nil
}

// Attach plays the sound carried by every event on bus.
func (a *Audio) Attach(bus *game.EventBus) {
	bus.SubscribeAll(func(e game.Event) {
		if e.Sound != game.SoundNone {
			a.Play(e.Sound)
		}
	})
}

func (a *Audio) Play(kind game.SoundKind) {
	select {
	case <-a.ready:
	default:
		return
	}
	if !a.voices.Acquire(kind) {
		return
	}
	samples := sfx.Generate(kind, a.seq.Add(1)^uint64(time.Now().UnixNano()))
	if len(samples) == 0 {
		a.voices.Release(kind)
		return
	}
	data := sfx.EncodeStereoF32(samples, 1)
	go func() {
		defer a.voices.Release(kind)
		player := a.ctx.NewPlayer(bytes.NewReader(data))
		player.SetVolume(a.volume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}
