package court

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BallState is whether the player has the ball in hand.
type BallState int

const (
	BallFree BallState = iota
	BallHeld
)

func (s BallState) String() string {
	switch s {
	case BallHeld:
		return "held"
	case BallFree:
		return "free"
	default:
		return "unknown"
	}
}

// GrabRangePolicy picks how the pickup distance is measured against.
type GrabRangePolicy int

const (
	// GrabRangeFixed uses BallConfig.GrabRange as is
	GrabRangeFixed GrabRangePolicy = iota

	// GrabRangeCameraHeight adds the eye height to BallConfig.GrabRange, so a ball lying at the
	// player's feet is always reachable
	GrabRangeCameraHeight
)

// BallConfig holds the ball tuning.
type BallConfig struct {
	// Radius of the ball sphere
	Radius float64

	// Mass of the rigid body
	Mass float64

	// HandOffset is where the held ball sits in camera space
	HandOffset mgl64.Vec3

	// HoldStiffness is how fast the held ball catches up with the hand (1/seconds)
	HoldStiffness float64

	// GrabRange is the pickup distance, see GrabPolicy
	GrabRange float64

	// GrabPolicy selects how GrabRange is interpreted
	GrabPolicy GrabRangePolicy

	// MarkerOffset lifts the hit marker off the surface
	MarkerOffset float64

	// ArcSteps is the number of predicted arc samples
	ArcSteps int

	// ArcStepDuration is the time between arc samples in seconds
	ArcStepDuration float64
}

// DefaultBallConfig returns the ball used by the game.
func DefaultBallConfig() BallConfig {
	return BallConfig{
		Radius:          0.15,
		Mass:            1.0,
		HandOffset:      mgl64.Vec3{0.25, 0, -1},
		HoldStiffness:   15,
		GrabRange:       2.0,
		GrabPolicy:      GrabRangeFixed,
		MarkerOffset:    DefaultMarkerOffset,
		ArcSteps:        60,
		ArcStepDuration: 1.0 / 30.0,
	}
}

// Env is everything outside the ball that the ball reads or drives.
type Env struct {
	Camera Camera
	Room   Room
	Body   RigidBody

	// Gravity is the signed vertical acceleration, e.g. -9.82
	Gravity float64
}

// ThrowEvent describes what happened to the ball during one Step.
type ThrowEvent struct {
	PickedUp bool
	Thrown   bool
	Speed    float64
	Velocity mgl64.Vec3
}

// Ball is the hold/throw state machine. It owns the visible transform of the ball and hands
// the body over to the physics engine when thrown.
type Ball struct {
	env    Env
	config BallConfig
	planes []Plane

	aim    *AimController
	charge *ChargeController

	state     BallState
	transform Transform

	arc    []mgl64.Vec3
	hit    Hit
	hasHit bool
	marker HitMarker
}

// NewBall creates a free ball whose visible transform starts at the body's.
func NewBall(env Env, config BallConfig, aim *AimController, charge *ChargeController) *Ball {
	env.Body.SetCollides(true)
	return &Ball{
		env:       env,
		config:    config,
		planes:    env.Room.Planes(),
		aim:       aim,
		charge:    charge,
		state:     BallFree,
		transform: transformOf(env.Body),
		marker:    hiddenMarker(),
	}
}

// State returns the current state.
func (b *Ball) State() BallState { return b.state }

// Held reports whether the player has the ball.
func (b *Ball) Held() bool { return b.state == BallHeld }

// Transform returns the visible ball transform.
func (b *Ball) Transform() Transform { return b.transform }

// Arc returns the predicted arc; empty while the ball is free.
func (b *Ball) Arc() []mgl64.Vec3 { return b.arc }

// ArcHit returns where the predicted arc meets the room, if it does.
func (b *Ball) ArcHit() (Hit, bool) { return b.hit, b.hasHit }

// Marker returns the hit marker state.
func (b *Ball) Marker() HitMarker { return b.marker }

// Aim returns the aim controller.
func (b *Ball) Aim() *AimController { return b.aim }

// Charge returns the charge controller.
func (b *Ball) Charge() *ChargeController { return b.charge }

// Body returns the physics body.
func (b *Ball) Body() RigidBody { return b.env.Body }

// Config returns the ball tuning.
func (b *Ball) Config() BallConfig { return b.config }

// Hold takes the ball out of the simulation: no collisions, no velocity, asleep.
// Calling it on a held ball reapplies the same state.
func (b *Ball) Hold() {
	body := b.env.Body
	body.SetCollides(false)
	body.SetVelocity(mgl64.Vec3{})
	body.SetAngularVelocity(mgl64.Vec3{})
	body.Sleep()

	b.state = BallHeld
}

// Throw hands the ball back to the physics engine at its visible transform with a launch
// velocity of ThrowDirection()*speed. It does nothing and returns false when the ball is free.
func (b *Ball) Throw(speed float64) bool {
	if b.state != BallHeld {
		return false
	}

	body := b.env.Body
	body.WakeUp()
	body.SetCollides(true)
	body.SetPosition(b.transform.Position)
	body.SetOrientation(b.transform.Orientation)
	body.SetVelocity(b.ThrowDirection().Mul(speed))

	b.state = BallFree
	b.clearPrediction()
	return true
}

// ThrowDirection is the camera forward pitched by the aim offset.
func (b *Ball) ThrowDirection() mgl64.Vec3 {
	cam := b.env.Camera
	return b.aim.Direction(cam.Forward(), cam.Right())
}

// GrabRange returns the current pickup distance.
func (b *Ball) GrabRange() float64 {
	if b.config.GrabPolicy == GrabRangeCameraHeight {
		return b.config.GrabRange + b.env.Camera.Position().Y()
	}
	return b.config.GrabRange
}

// InReach reports whether the ball is close enough to the camera to pick up.
func (b *Ball) InReach() bool {
	return b.transform.Position.Sub(b.env.Camera.Position()).Len() < b.GrabRange()
}

// TryPickup holds the ball when the pickup input is active, the ball is free and in reach.
func (b *Ball) TryPickup(active bool) bool {
	if !active || b.state != BallFree || !b.InReach() {
		return false
	}
	b.Hold()
	return true
}

// Step runs one frame: input first, then the transform and prediction update.
func (b *Ball) Step(in InputSnapshot, dt float64) ThrowEvent {
	var event ThrowEvent

	b.aim.Ticks(in.PitchTicks)

	if in.ThrowPressed {
		b.charge.Press()
	}
	b.charge.Update(dt)

	if in.ThrowReleased {
		if speed, commit := b.charge.Release(b.Held()); commit && b.Throw(speed) {
			event.Thrown = true
			event.Speed = speed
			event.Velocity = b.env.Body.Velocity()
		}
	}

	if !event.Thrown {
		event.PickedUp = b.TryPickup(in.PickupHeld)
	}

	b.Update(dt)
	return event
}

// Update recomputes the visible transform and, while held, the predicted arc and marker.
func (b *Ball) Update(dt float64) {
	if b.state != BallHeld {
		b.transform = transformOf(b.env.Body)
		b.clearPrediction()
		return
	}

	b.transform = b.heldTransform(dt)
	b.refreshPrediction()
}

// heldTransform eases the ball toward the hand and keeps it out of the walls.
func (b *Ball) heldTransform(dt float64) Transform {
	cam := b.env.Camera
	target := cam.LocalToWorld(b.config.HandOffset)

	position := followTarget(b.transform.Position, target, dt, b.config.HoldStiffness)
	position = b.env.Room.Clamp(position, b.config.Radius)

	return Transform{Position: position, Orientation: cam.Orientation()}
}

// followTarget moves current a dt*stiffness fraction of the way to target. The fraction is
// capped at 1 so a long frame lands on the target instead of overshooting it.
func followTarget(current, target mgl64.Vec3, dt, stiffness float64) mgl64.Vec3 {
	k := dt * stiffness
	if k <= 0 || math.IsNaN(k) {
		return current
	}
	if k > 1 {
		k = 1
	}
	return current.Add(target.Sub(current).Mul(k))
}

// Predict samples and clips the arc a throw at speed would follow from the current transform.
func (b *Ball) Predict(speed float64) ([]mgl64.Vec3, Hit, bool) {
	velocity := b.ThrowDirection().Mul(speed)
	points := SampleTrajectory(b.transform.Position, velocity, b.env.Gravity, b.config.ArcSteps, b.config.ArcStepDuration)
	return ClipArc(points, b.planes)
}

func (b *Ball) refreshPrediction() {
	b.arc, b.hit, b.hasHit = b.Predict(b.charge.ThrowSpeed())
	b.marker = PlaceHitMarker(b.hit, b.hasHit, b.config.MarkerOffset)
}

func (b *Ball) clearPrediction() {
	b.arc = b.arc[:0]
	b.hit = Hit{}
	b.hasHit = false
	b.marker = hiddenMarker()
}
