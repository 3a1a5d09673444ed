package terminal

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// Cue signals the outcome of a search.
type Cue interface {
	Found()
	Missing()
}

// Silent is a Cue that does nothing.
type Silent struct{}

func (Silent) Found()   {}
func (Silent) Missing() {}

const sampleRate = beep.SampleRate(44100)

// Beeper plays short sine tones through the system speaker.
type Beeper struct{}

// NewBeeper initializes the speaker. Callers should fall back to Silent on error.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("terminal: audio init: %w", err)
	}
	return &Beeper{}, nil
}

// Found plays a short high tone.
func (b *Beeper) Found() { b.tone(880, 120*time.Millisecond) }

// Missing plays a longer low tone.
func (b *Beeper) Missing() { b.tone(220, 250*time.Millisecond) }

// Close releases the speaker.
func (b *Beeper) Close() { speaker.Close() }

func (b *Beeper) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
