// Package audio plays synthesized sound effects for engine events.
// Everything degrades to a no-op when no audio device is available.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/shooter-arcade/internal/engine"
)

const sampleRate = beep.SampleRate(44100)

// DefaultGain is the volume the CLI plays cues at.
const DefaultGain = 0.5

// maxVoices bounds how many cues may overlap in the mixer.
const maxVoices = 16

// Player turns engine events into sounds. It implements engine.Listener.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rate        beep.SampleRate
	gain        float64
	initialized bool
	muted       bool
	paused      bool
	played      map[Cue]int
}

// NewPlayer creates a player with the given gain in [0, 1].
func NewPlayer(gain float64) *Player {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}
	return &Player{
		mixer:  &beep.Mixer{},
		rate:   sampleRate,
		gain:   gain,
		played: make(map[Cue]int),
	}
}

// Initialize opens the speaker. On error the player stays silent and
// every method remains safe to call.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.clear()
	p.initialized = false
}

// SetMuted silences the player and drops queued sounds.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.muted = muted
	if muted {
		p.clear()
	}
}

// Muted reports whether the player is muted.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// OnEvent implements engine.Listener. Pause drops whatever is playing and
// ignores cues until the run resumes or restarts.
func (p *Player) OnEvent(ev engine.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev.Kind {
	case engine.EventPaused:
		p.paused = true
		p.clear()
		return
	case engine.EventResumed, engine.EventRunStarted:
		p.paused = false
		return
	}

	if p.paused {
		return
	}
	p.play(CueFor(ev.Kind))
}

// Play queues a cue directly.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.play(c)
}

// Played returns how many times each cue was queued.
func (p *Player) Played(c Cue) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played[c]
}

func (p *Player) play(c Cue) {
	if c == CueNone || p.muted {
		return
	}
	p.played[c]++

	s := NewCue(c, p.rate, p.gain)
	if s == nil {
		return
	}

	p.withSpeaker(func() {
		if p.mixer.Len() >= maxVoices {
			return
		}
		p.mixer.Add(s)
	})
}

func (p *Player) clear() {
	p.withSpeaker(p.mixer.Clear)
}

// withSpeaker runs f with the speaker locked when it is running.
func (p *Player) withSpeaker(f func()) {
	if !p.initialized {
		return
	}
	speaker.Lock()
	defer speaker.Unlock()
	f()
}
