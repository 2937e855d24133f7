package court

import "math"

// ChargeConfig holds the throw power tuning.
type ChargeConfig struct {
	// ChargeTime is how many seconds of holding the throw input reach full charge
	ChargeTime float64

	// MinSpeed is the launch speed at zero charge
	MinSpeed float64

	// MaxSpeed is the launch speed at full charge
	MaxSpeed float64
}

// DefaultChargeConfig returns the charge tuning used by the game.
func DefaultChargeConfig() ChargeConfig {
	return ChargeConfig{
		ChargeTime: 1.2,
		MinSpeed:   4.0,
		MaxSpeed:   14.0,
	}
}

// ChargeController accumulates throw power while the throw input is held.
type ChargeController struct {
	config   ChargeConfig
	charging bool
	charge   float64
}

// NewChargeController creates an idle controller with no charge.
func NewChargeController(config ChargeConfig) *ChargeController {
	return &ChargeController{config: config}
}

// Charging reports whether the throw input is currently held down.
func (c *ChargeController) Charging() bool { return c.charging }

// Charge returns the normalized charge in [0,1].
func (c *ChargeController) Charge() float64 { return c.charge }

// Press starts charging. It does not care whether a ball is held.
func (c *ChargeController) Press() {
	c.charging = true
}

// Release stops charging. With a held ball it returns the launch speed for the current charge,
// drops the charge back to 0 and reports commit. Without a ball the charge stays where it was.
func (c *ChargeController) Release(held bool) (speed float64, commit bool) {
	c.charging = false
	if !held {
		return 0, false
	}

	speed = c.ThrowSpeed()
	c.charge = 0
	return speed, true
}

// Update advances the charge by dt seconds while charging. The charge never passes 1.
func (c *ChargeController) Update(dt float64) {
	if !c.charging {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}

	if c.config.ChargeTime <= 0 {
		c.charge = 1
		return
	}

	c.charge = math.Min(1, c.charge+dt/c.config.ChargeTime)
}

// ThrowSpeed maps the current charge to a launch speed.
func (c *ChargeController) ThrowSpeed() float64 {
	return c.SpeedFor(c.charge)
}

// SpeedFor eases charge into a launch speed: minSpeed + (maxSpeed-minSpeed)*charge².
// Squaring keeps short taps weak so a full charge pays off.
func (c *ChargeController) SpeedFor(charge float64) float64 {
	charge = clamp01(charge)
	return c.config.MinSpeed + (c.config.MaxSpeed-c.config.MinSpeed)*charge*charge
}

// Reset drops the charge to 0 and stops charging.
func (c *ChargeController) Reset() {
	c.charging = false
	c.charge = 0
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
