// Package audio synthesizes and plays the game's sound effects.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Config controls the sound effects.
type Config struct {
	Enabled bool
	Volume  float64 // 0..1
}

// SoundManager plays effects through a single mixer on the speaker.
// Until Initialize succeeds every Play is a no-op, so a machine without an
// audio device runs silently.
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; call Initialize to open the device.
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{cfg: cfg, mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. It does nothing when sound is disabled.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Enabled reports whether sounds will be heard.
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Play queues sound on the mixer.
func (sm *SoundManager) Play(sound Sound) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Create(sound, sampleRate, sm.cfg.Volume)
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.initialized = false
}
