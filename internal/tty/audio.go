package tty

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"tanks/internal/game"
	"tanks/internal/sfx"
)

const sampleRate = beep.SampleRate(sfx.SampleRate)

// Audio plays the synthesized effects through the beep speaker.
type Audio struct {
	volume float64
	voices sfx.Voices
	seq    atomic.Uint64
}

func NewAudio(volume float64) (*Audio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Audio{volume: volume}, nil
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
	if !a.voices.Acquire(kind) {
		return
	}
	samples := sfx.Generate(kind, a.seq.Add(1)^uint64(time.Now().UnixNano()))
	if len(samples) == 0 {
		a.voices.Release(kind)
		return
	}
	speaker.Play(beep.Seq(
		newVolume(&monoStreamer{samples: samples}, a.volume),
		beep.Callback(func() { a.voices.Release(kind) }),
	))
}

// Click is the dry-fire tick played when a shot is refused for lack of ammo.
func (a *Audio) Click() {
	tone, err := generators.SineTone(sampleRate, 1760)
	if err != nil {
		return
	}
	speaker.Play(newVolume(beep.Take(sampleRate.N(25*time.Millisecond), tone), a.volume*0.3))
}

// monoStreamer plays a mono buffer on both channels.
type monoStreamer struct {
	samples []float64
	pos     int
}

func (m *monoStreamer) Stream(buf [][2]float64) (n int, ok bool) {
	if m.pos >= len(m.samples) {
		return 0, false
	}
	for i := range buf {
		if m.pos >= len(m.samples) {
			return i, true
		}
		v := m.samples[m.pos]
		buf[i][0] = v
		buf[i][1] = v
		m.pos++
	}
	return len(buf), true
}

func (m *monoStreamer) Err() error { return nil }

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
