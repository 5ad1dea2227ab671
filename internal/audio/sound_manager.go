package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/flappy/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays effects through the system speaker.
// A manager that failed to initialize, or was never initialized, is silent,
// so callers can always hand it events.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a silent manager with the given linear volume in [0, 1].
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
	}
}

// Initialize opens the speaker. The speaker can only be opened once per
// process, so a second call is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences every playing effect.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// Enabled reports whether sounds are actually played.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && sm.volume > 0
}

// Play starts an effect on top of whatever is already playing.
func (sm *SoundManager) Play(s Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}

	effect := NewEffect(s, sampleRate, sm.volume)
	if effect == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(effect)
	speaker.Unlock()
}

// HandleEvents plays the effects for one simulation step.
func (sm *SoundManager) HandleEvents(ev core.Events) {
	for _, s := range SoundsFor(ev) {
		sm.Play(s)
	}
}

// SoundsFor maps step events to effects. A death swallows the flap and
// score sounds of the same frame.
func SoundsFor(ev core.Events) []Sound {
	if ev.Died {
		return []Sound{SoundDeath}
	}
	var out []Sound
	if ev.Flapped {
		out = append(out, SoundFlap)
	}
	if ev.Scored > 0 {
		out = append(out, SoundScore)
	}
	return out
}
