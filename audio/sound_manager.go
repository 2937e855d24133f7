package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager plays the gym sounds through the speaker.
type SoundManager struct {
	mu          sync.Mutex
	config      Config
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a sound manager; nothing plays until Initialize succeeds.
func NewSoundManager(config Config) *SoundManager {
	return &SoundManager{
		config: config,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker. It is a no-op when audio is disabled or already open.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Ready reports whether sounds will actually play.
func (sm *SoundManager) Ready() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup silences everything still queued.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayThrow plays the whoosh for a throw at speed.
func (sm *SoundManager) PlayThrow(speed float64) {
	sm.play(func(cfg Config) beep.Streamer { return CreateThrowSound(cfg, speed) })
}

// PlayBounce plays the thud for a bounce at impactSpeed.
func (sm *SoundManager) PlayBounce(impactSpeed float64) {
	sm.play(func(cfg Config) beep.Streamer { return CreateBounceSound(cfg, impactSpeed) })
}

func (sm *SoundManager) play(create func(Config) beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := create(sm.config)
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
