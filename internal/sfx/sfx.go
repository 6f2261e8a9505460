// Package sfx synthesises the game's sound effects procedurally. Output is
// mono float64 samples in [-1, 1] at SampleRate; the audio backends convert
// to their own formats.
package sfx

import (
	"math"
	"sync/atomic"

	"tanks/internal/game"
)

const SampleRate = 44100

// Generate renders the effect for kind. seed varies the noise so repeated
// explosions do not sound identical. Unknown kinds yield nil.
func Generate(kind game.SoundKind, seed uint64) []float64 {
	switch kind {
	case game.SoundShotAP:
		return genShot(0.11, 200, 0.88, seed)
	case game.SoundShotHE:
		return genShot(0.18, 120, 1.0, seed)
	case game.SoundShotHostile:
		return genShot(0.09, 260, 0.55, seed)
	case game.SoundExplosion:
		return genExplosion(seed)
	case game.SoundPickup:
		return genPickup()
	case game.SoundLevelUp:
		return genLevelUp()
	case game.SoundGameOver:
		return genGameOver()
	}
	return nil
}

// Voices caps how many copies of the loud effects overlap.
type Voices struct {
	explosions atomic.Int32
}

const maxExplosions = 2

// Acquire reports whether kind may start now. Every successful Acquire must be
// paired with Release once playback ends.
func (v *Voices) Acquire(kind game.SoundKind) bool {
	if kind != game.SoundExplosion {
		return true
	}
	if v.explosions.Add(1) > maxExplosions {
		v.explosions.Add(-1)
		return false
	}
	return true
}

func (v *Voices) Release(kind game.SoundKind) {
	if kind == game.SoundExplosion {
		v.explosions.Add(-1)
	}
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

// genShot: noise crack, pitched sub drop and a short ring. Longer and lower
// for heavier rounds.
func genShot(dur, thumpHz, gain float64, seed uint64) []float64 {
	n := int(dur * SampleRate)
	out := make([]float64, n)
	seed ^= 77777
	for i := range out {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		crack := 0.0
		if p < 0.014 {
			crack = lcg(&seed) * (1 - p/0.014) * 0.88
		}
		thumpFreq := thumpHz * math.Pow(0.04, p*4)
		thump := math.Sin(2*math.Pi*thumpFreq*t) * math.Exp(-p*22) * 0.62
		body := lcg(&seed) * math.Pow(1-p, 5) * 0.28
		ring := math.Sin(2*math.Pi*3400*t) * math.Exp(-p*35) * 0.09
		out[i] = softSat((crack + thump + body + ring) * 0.82 * gain)
	}
	return out
}

// genExplosion: sub boom, transient crack, bandpassed body and rumble tail.
func genExplosion(seed uint64) []float64 {
	const dur = 0.5
	n := int(dur * SampleRate)
	out := make([]float64, n)
	seed ^= 0xE7
	lp1, lp2, rumLP, subPhase := 0.0, 0.0, 0.0, 0.0
	for i := range out {
		p := float64(i) / float64(n)

		subFreq := 120.0 * math.Pow(24.0/120.0, p*2.4)
		subPhase += 2 * math.Pi * subFreq / SampleRate
		sub := math.Sin(subPhase) * math.Exp(-p*5) * 0.6

		crack := 0.0
		if p < 0.025 {
			crack = lcg(&seed) * (1 - p/0.025) * 0.7
		}

		raw := lcg(&seed)
		lp1 = lp1*0.76 + raw*0.24
		lp2 = lp2*0.975 + raw*0.025
		body := (lp1 - lp2) * math.Exp(-p*5) * 0.4

		rumLP = rumLP*0.95 + lcg(&seed)*0.05
		rumble := rumLP * math.Exp(-p*2.2) * 0.16

		out[i] = softSat((sub + crack + body + rumble) * 0.86)
	}
	return out
}

// genPickup: ascending FM bell arpeggio.
func genPickup() []float64 {
	freqs := []float64{523.25, 659.25, 783.99, 1046.5} // C5 E5 G5 C6
	return bellRun(freqs, SampleRate*75/1000, int(0.18*SampleRate), 2.756, 0.38)
}

// genLevelUp: ascending bell staircase, each note ringing over the next.
func genLevelUp() []float64 {
	notes := []float64{440, 554.37, 659.25, 880, 1108.73}
	return bellRun(notes, int(0.09*SampleRate), int(0.25*SampleRate), 3.5, 0.28)
}

func bellRun(freqs []float64, step, tail int, ratio, gain float64) []float64 {
	total := len(freqs)*step + tail
	mix := make([]float64, total)
	for fi, freq := range freqs {
		start := fi * step
		dur := total - start
		for j := range dur {
			t := float64(start+j) / SampleRate
			np := float64(j) / float64(dur)
			env := adsr(np, 0.004, 0.6, 0.05, 0.3)
			s := fm(t, freq, ratio, 5.0*env) * env * gain
			s += math.Sin(2*math.Pi*freq*2*t) * env * 0.08
			mix[start+j] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// genGameOver: slow descending minor chord, staggered.
func genGameOver() []float64 {
	const dur = 0.75
	n := int(dur * SampleRate)
	notes := []struct{ freq, onset float64 }{
		{329.63, 0.00}, // E4
		{261.63, 0.14}, // C4
		{220.00, 0.28}, // A3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * SampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / SampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.008, 0.25, 0.3, 0.45)
			freq := note.freq * (1 - np*0.025)
			s := fm(t, freq, 2.0, 2.0*env) * env * 0.32
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.1
			mix[i] += s
		}
	}
	for i, s := range mix {
		mix[i] = softSat(s)
	}
	return mix
}

// EncodeStereoF32 packs mono samples as interleaved stereo float32 LE frames
// scaled by gain.
func EncodeStereoF32(samples []float64, gain float64) []byte {
	buf := make([]byte, len(samples)*8)
	for i, s := range samples {
		v := math.Float32bits(float32(s * gain))
		for ch := range 2 {
			o := i*8 + ch*4
			buf[o] = byte(v)
			buf[o+1] = byte(v >> 8)
			buf[o+2] = byte(v >> 16)
			buf[o+3] = byte(v >> 24)
		}
	}
	return buf
}
