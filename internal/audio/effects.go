package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer that plays one wave for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1
			if o.phase < 0.5 {
				val = 1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope wraps s with a linear attack/release envelope.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol; vol <= 0 is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a single enveloped note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Sound names one of the game's effects.
type Sound uint8

const (
	SoundMove Sound = iota
	SoundCharge
	SoundKey
	SoundPing
	SoundGameOver
	SoundVictory
)

// Create builds a fresh streamer for sound at the given master volume.
// Every streamer ends on its own.
func Create(sound Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch sound {
	case SoundMove:
		s = tone(220, 40*time.Millisecond, WaveSquare, rate)
		volume *= 0.3
	case SoundCharge:
		s = beep.Seq(
			tone(660, 60*time.Millisecond, WaveSine, rate),
			tone(990, 90*time.Millisecond, WaveSine, rate),
		)
	case SoundKey:
		s = beep.Mix(
			newVolume(tone(880, 180*time.Millisecond, WaveSine, rate), 0.7),
			newVolume(tone(1760, 120*time.Millisecond, WaveSine, rate), 0.3),
		)
	case SoundPing:
		s = beep.Seq(
			tone(1200, 50*time.Millisecond, WaveSine, rate),
			tone(1600, 50*time.Millisecond, WaveSine, rate),
		)
	case SoundGameOver:
		s = beep.Seq(
			tone(330, 200*time.Millisecond, WaveSaw, rate),
			tone(247, 200*time.Millisecond, WaveSaw, rate),
			tone(165, 400*time.Millisecond, WaveSaw, rate),
		)
		volume *= 0.5
	case SoundVictory:
		s = beep.Seq(
			tone(523, 120*time.Millisecond, WaveSine, rate),
			tone(659, 120*time.Millisecond, WaveSine, rate),
			tone(784, 120*time.Millisecond, WaveSine, rate),
			tone(1047, 300*time.Millisecond, WaveSine, rate),
		)
	default:
		return beep.Silence(0)
	}
	return newVolume(s, volume)
}
