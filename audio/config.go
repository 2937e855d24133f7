package audio

import "time"

// Config holds the mix levels for the gym sounds.
type Config struct {
	Enabled      bool
	SampleRate   int
	MasterVolume float64
	ThrowVolume  float64
	BounceVolume float64
}

// DefaultConfig returns audio settings with sound on.
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		SampleRate:   44100,
		MasterVolume: 0.6,
		ThrowVolume:  0.5,
		BounceVolume: 0.9,
	}
}

// Sound timing
const (
	throwSoundDuration = 220 * time.Millisecond
	throwSoundAttack   = 30 * time.Millisecond
	throwSoundRelease  = 150 * time.Millisecond

	bounceSoundDuration = 140 * time.Millisecond
	bounceSoundAttack   = 2 * time.Millisecond
	bounceSoundRelease  = 120 * time.Millisecond

	// bounceFullSpeed is the impact speed that plays a bounce at full volume
	bounceFullSpeed = 10.0

	// throwFullSpeed is the launch speed that plays a throw at full volume
	throwFullSpeed = 14.0
)
