package court

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is what the ball needs to know about the player's view.
type Camera interface {
	// Position returns the eye position in world space
	Position() mgl64.Vec3

	// Forward returns the unit view direction
	Forward() mgl64.Vec3

	// Right returns the unit vector pointing to the right of the view
	Right() mgl64.Vec3

	// Orientation returns the view rotation; identity looks down -Z with +Y up
	Orientation() mgl64.Quat

	// LocalToWorld transforms an offset in camera space into a world position
	LocalToWorld(offset mgl64.Vec3) mgl64.Vec3
}

// Camera space axes, matching a right-handed view looking down -Z.
var (
	axisForward = mgl64.Vec3{0, 0, -1}
	axisRight   = mgl64.Vec3{1, 0, 0}
	axisUp      = mgl64.Vec3{0, 1, 0}
)

// maxLookPitch keeps mouse look just short of straight up/down so yaw stays defined.
var maxLookPitch = mgl64.DegToRad(89)

// FirstPersonCamera is a yaw/pitch camera that walks on the gym floor.
type FirstPersonCamera struct {
	// Eye is the camera position in world space
	Eye mgl64.Vec3

	// Yaw is the rotation about +Y in radians; 0 looks down -Z
	Yaw float64

	// LookPitch is the mouse look pitch in radians; positive looks up
	LookPitch float64

	// Room limits where the camera may walk
	Room Room

	// WalkMargin is how close to a wall the camera may get
	WalkMargin float64
}

// NewFirstPersonCamera places a camera at eye looking down -Z.
func NewFirstPersonCamera(eye mgl64.Vec3, room Room, walkMargin float64) *FirstPersonCamera {
	return &FirstPersonCamera{
		Eye:        eye,
		Room:       room,
		WalkMargin: walkMargin,
	}
}

// Position returns the eye position.
func (c *FirstPersonCamera) Position() mgl64.Vec3 { return c.Eye }

// Orientation returns yaw applied after pitch.
func (c *FirstPersonCamera) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(c.Yaw, axisUp)
	pitch := mgl64.QuatRotate(c.LookPitch, axisRight)
	return yaw.Mul(pitch).Normalize()
}

// Forward returns the unit view direction.
func (c *FirstPersonCamera) Forward() mgl64.Vec3 {
	return c.Orientation().Rotate(axisForward).Normalize()
}

// Right returns the unit right vector. It never tilts since there is no roll.
func (c *FirstPersonCamera) Right() mgl64.Vec3 {
	return c.Orientation().Rotate(axisRight).Normalize()
}

// Up returns the unit up vector of the view.
func (c *FirstPersonCamera) Up() mgl64.Vec3 {
	return c.Orientation().Rotate(axisUp).Normalize()
}

// LocalToWorld transforms a camera space offset into world space.
func (c *FirstPersonCamera) LocalToWorld(offset mgl64.Vec3) mgl64.Vec3 {
	return c.Eye.Add(c.Orientation().Rotate(offset))
}

// Look turns the camera by yaw and pitch deltas in radians.
func (c *FirstPersonCamera) Look(deltaYaw, deltaPitch float64) {
	c.Yaw = math.Mod(c.Yaw+deltaYaw, 2*math.Pi)
	c.LookPitch = mgl64.Clamp(c.LookPitch+deltaPitch, -maxLookPitch, maxLookPitch)
}

// Walk moves along the floor: forward along the view heading, right along the strafe axis.
// Height is unchanged and the eye is kept inside the room.
func (c *FirstPersonCamera) Walk(forward, right float64) {
	heading := mgl64.QuatRotate(c.Yaw, axisUp)
	fwd := heading.Rotate(axisForward)
	side := heading.Rotate(axisRight)

	next := c.Eye.Add(fwd.Mul(forward)).Add(side.Mul(right))
	lo, hi := c.Room.Bounds(c.WalkMargin)
	next[0] = mgl64.Clamp(next[0], lo[0], hi[0])
	next[2] = mgl64.Clamp(next[2], lo[2], hi[2])
	next[1] = c.Eye[1]
	c.Eye = next
}

// ViewMatrix returns the world-to-camera matrix.
func (c *FirstPersonCamera) ViewMatrix() mgl64.Mat4 {
	eye := c.Eye
	return mgl64.LookAtV(eye, eye.Add(c.Forward()), c.Up())
}
