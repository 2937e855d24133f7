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
	WaveNoise
)

// oscillator generates a wave whose frequency glides from startFreq to endFreq
type oscillator struct {
	startFreq float64
	endFreq   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
	rng       *rand.Rand
}

// NewOscillator creates a fixed-pitch oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from startFreq to endFreq over duration.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		startFreq: startFreq,
		endFreq:   endFreq,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
		rng:       rand.New(rand.NewSource(1)),
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
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.startFreq + (o.endFreq-o.startFreq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope fades s in over attack and out over the last release of duration.
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
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; 0 or less is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// loudness maps a speed onto (0,1] against the speed that plays at full volume
func loudness(speed, full float64) float64 {
	if speed <= 0 || full <= 0 {
		return 0
	}
	return math.Min(1, speed/full)
}

// CreateThrowSound generates a rising whoosh whose volume follows the launch speed.
func CreateThrowSound(cfg Config, speed float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	air := NewOscillator(0, throwSoundDuration, WaveNoise, rate)
	airShaped := NewEnvelope(air, throwSoundDuration, throwSoundAttack, throwSoundRelease, rate)

	tone := NewSweep(180, 420, throwSoundDuration, WaveSine, rate)
	toneShaped := NewEnvelope(tone, throwSoundDuration, throwSoundAttack, throwSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(airShaped, 0.6),
		newVolume(toneShaped, 0.25),
	)

	vol := cfg.ThrowVolume * cfg.MasterVolume * loudness(speed, throwFullSpeed)
	return newVolume(mixed, vol)
}

// CreateBounceSound generates a short falling thud whose volume follows the impact speed.
func CreateBounceSound(cfg Config, impactSpeed float64) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewSweep(140, 70, bounceSoundDuration, WaveSine, rate)
	bodyShaped := NewEnvelope(body, bounceSoundDuration, bounceSoundAttack, bounceSoundRelease, rate)

	slap := NewOscillator(0, bounceSoundDuration/4, WaveNoise, rate)
	slapShaped := NewEnvelope(slap, bounceSoundDuration/4, bounceSoundAttack, bounceSoundDuration/8, rate)

	mixed := beep.Mix(
		newVolume(bodyShaped, 0.8),
		newVolume(slapShaped, 0.2),
	)

	vol := cfg.BounceVolume * cfg.MasterVolume * loudness(impactSpeed, bounceFullSpeed)
	return newVolume(mixed, vol)
}
