package court

import "github.com/go-gl/mathgl/mgl64"

// RigidBody is the slice of a physics engine body the ball drives.
type RigidBody interface {
	Position() mgl64.Vec3
	SetPosition(p mgl64.Vec3)

	Orientation() mgl64.Quat
	SetOrientation(q mgl64.Quat)

	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)

	AngularVelocity() mgl64.Vec3
	SetAngularVelocity(w mgl64.Vec3)

	// SetCollides switches between colliding with everything and colliding with nothing
	SetCollides(collides bool)

	// Sleep removes the body from integration until WakeUp
	Sleep()
	WakeUp()
	Sleeping() bool
}

// Transform is a position and orientation pair, computed per frame and written once.
type Transform struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// transformOf reads the simulated transform of a body.
func transformOf(body RigidBody) Transform {
	return Transform{Position: body.Position(), Orientation: body.Orientation()}
}
