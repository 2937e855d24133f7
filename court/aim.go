package court

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AimConfig bounds and steps the wheel-driven pitch offset.
type AimConfig struct {
	// MinPitch is the lowest pitch offset in radians (negative aims down)
	MinPitch float64

	// MaxPitch is the highest pitch offset in radians
	MaxPitch float64

	// Step is the pitch change per wheel tick in radians
	Step float64
}

// DefaultAimConfig returns ±35° of extra pitch in 2.5° ticks.
func DefaultAimConfig() AimConfig {
	return AimConfig{
		MinPitch: mgl64.DegToRad(-35),
		MaxPitch: mgl64.DegToRad(35),
		Step:     mgl64.DegToRad(2.5),
	}
}

// AimController tracks the extra pitch applied on top of the camera direction when throwing.
type AimController struct {
	config AimConfig
	pitch  float64
}

// NewAimController creates a controller with a zero pitch offset.
func NewAimController(config AimConfig) *AimController {
	return &AimController{config: config}
}

// Pitch returns the current pitch offset in radians.
func (a *AimController) Pitch() float64 { return a.pitch }

// SetPitch sets the pitch offset, clamped to the configured range.
func (a *AimController) SetPitch(pitch float64) {
	a.pitch = a.clamp(pitch)
}

// Tick applies one discrete wheel tick. Only the sign of direction matters; 0 is ignored.
func (a *AimController) Tick(direction int) {
	switch {
	case direction > 0:
		a.pitch = a.clamp(a.pitch - a.config.Step)
	case direction < 0:
		a.pitch = a.clamp(a.pitch + a.config.Step)
	}
}

// Ticks applies n ticks in the direction of n's sign.
func (a *AimController) Ticks(n int) {
	for ; n > 0; n-- {
		a.Tick(1)
	}
	for ; n < 0; n++ {
		a.Tick(-1)
	}
}

// Direction rotates forward about right by the pitch offset and normalizes the result.
// The same vector feeds the predicted arc and the real launch.
func (a *AimController) Direction(forward, right mgl64.Vec3) mgl64.Vec3 {
	if forward.Len() == 0 {
		return mgl64.Vec3{}
	}
	if right.Len() == 0 || a.pitch == 0 {
		return forward.Normalize()
	}

	rotation := mgl64.QuatRotate(a.pitch, right.Normalize())
	return rotation.Rotate(forward).Normalize()
}

func (a *AimController) clamp(pitch float64) float64 {
	if math.IsNaN(pitch) {
		return a.pitch
	}
	lo, hi := a.config.MinPitch, a.config.MaxPitch
	if lo > hi {
		lo, hi = hi, lo
	}
	return mgl64.Clamp(pitch, lo, hi)
}
