// Package audio implements core.SoundSink on top of a beep speaker: every
// game event maps to a short synthesized streamer added to a shared mixer,
// fire-and-forget. Events with no mapping are dropped silently.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/fluppy/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Player is a beep-backed sound sink. A nil *Player is a valid no-op sink,
// so callers can keep the handle they got even when audio setup failed.
type Player struct {
	mixer *beep.Mixer
}

// NewPlayer opens the speaker and starts the shared mixer. On any failure
// the caller should fall back to core.NopSink.
func NewPlayer() (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(p.mixer)
	return p, nil
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Close()
}

// Play queues the tone for a game event. Unmapped events are a no-op, never
// an error.
func (p *Player) Play(s core.Sound) {
	if p == nil {
		return
	}
	t := tone(s)
	if t == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(t)
	speaker.Unlock()
}
