package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone, optionally sweeping its
// frequency linearly from freq to sweepTo.
type oscillator struct {
	freq     float64
	sweepTo  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a constant-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from one frequency to another.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     from,
		sweepTo:  to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(from*1000) + 1)),
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.sweepTo-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain. Zero or negative gain is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, attack, release, rate)
}

func sweep(from, to float64, d, attack, release time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewSweep(from, to, d, wave, rate), d, attack, release, rate)
}

// NewCue builds the streamer for one cue at the given gain.
// Unknown cues return nil.
func NewCue(c Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueFire:
		s = sweep(1400, 700, 80*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, WaveSquare, rate)
	case CueEnemyFire:
		s = sweep(500, 300, 90*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, WaveSaw, rate)
	case CueExplosion:
		s = tone(0, 250*time.Millisecond, 5*time.Millisecond, 200*time.Millisecond, WaveNoise, rate)
	case CueHit:
		s = beep.Mix(
			tone(0, 400*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, WaveNoise, rate),
			sweep(300, 60, 400*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, WaveSaw, rate),
		)
	case CueLevelUp:
		s = beep.Seq(
			tone(523.25, 90*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, WaveSquare, rate),
			tone(659.25, 90*time.Millisecond, 5*time.Millisecond, 30*time.Millisecond, WaveSquare, rate),
			tone(783.99, 160*time.Millisecond, 5*time.Millisecond, 80*time.Millisecond, WaveSquare, rate),
		)
	case CueGameOver:
		s = beep.Seq(
			tone(392.00, 200*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSaw, rate),
			tone(311.13, 200*time.Millisecond, 5*time.Millisecond, 60*time.Millisecond, WaveSaw, rate),
			tone(261.63, 450*time.Millisecond, 5*time.Millisecond, 300*time.Millisecond, WaveSaw, rate),
		)
	case CueHighScore:
		s = beep.Seq(
			tone(987.77, 80*time.Millisecond, 3*time.Millisecond, 40*time.Millisecond, WaveSine, rate),
			tone(1318.51, 200*time.Millisecond, 3*time.Millisecond, 150*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return newVolume(s, gain)
}
