package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// BodyID identifies a body within its world.
type BodyID uint64

// Body is a dynamic sphere.
type Body struct {
	id BodyID

	// Radius of the sphere shape
	Radius float64

	// Mass in kilograms; zero or less makes the body static
	Mass float64

	// Material used for contact lookups
	Material *Material

	// LinearDamping is the fraction of linear velocity lost per second (0..1)
	LinearDamping float64

	// AngularDamping is the fraction of angular velocity lost per second (0..1)
	AngularDamping float64

	position        mgl64.Vec3
	orientation     mgl64.Quat
	velocity        mgl64.Vec3
	angularVelocity mgl64.Vec3

	collides bool
	sleeping bool
}

// NewSphere creates an awake, colliding sphere at the origin.
func NewSphere(radius, mass float64, material *Material) *Body {
	return &Body{
		Radius:         radius,
		Mass:           mass,
		Material:       material,
		LinearDamping:  0.01,
		AngularDamping: 0.01,
		orientation:    mgl64.QuatIdent(),
		collides:       true,
	}
}

// ID returns the id assigned when the body was added to a world.
func (b *Body) ID() BodyID { return b.id }

// Position returns the center of the sphere.
func (b *Body) Position() mgl64.Vec3 { return b.position }

// SetPosition teleports the body.
func (b *Body) SetPosition(p mgl64.Vec3) { b.position = p }

// Orientation returns the body rotation.
func (b *Body) Orientation() mgl64.Quat { return b.orientation }

// SetOrientation sets the body rotation.
func (b *Body) SetOrientation(q mgl64.Quat) {
	if q.Len() == 0 {
		q = mgl64.QuatIdent()
	}
	b.orientation = q.Normalize()
}

// Velocity returns the linear velocity.
func (b *Body) Velocity() mgl64.Vec3 { return b.velocity }

// SetVelocity sets the linear velocity.
func (b *Body) SetVelocity(v mgl64.Vec3) { b.velocity = v }

// AngularVelocity returns the angular velocity in radians per second about each axis.
func (b *Body) AngularVelocity() mgl64.Vec3 { return b.angularVelocity }

// SetAngularVelocity sets the angular velocity.
func (b *Body) SetAngularVelocity(w mgl64.Vec3) { b.angularVelocity = w }

// Collides reports whether the body takes part in contact resolution.
func (b *Body) Collides() bool { return b.collides }

// SetCollides switches between colliding with everything and with nothing.
func (b *Body) SetCollides(collides bool) { b.collides = collides }

// Sleeping reports whether the body is skipped by integration.
func (b *Body) Sleeping() bool { return b.sleeping }

// Sleep stops integrating the body until WakeUp.
func (b *Body) Sleep() { b.sleeping = true }

// WakeUp resumes integration.
func (b *Body) WakeUp() { b.sleeping = false }

// Dynamic reports whether the body moves under forces.
func (b *Body) Dynamic() bool { return b.Mass > 0 }

// integrate advances an awake dynamic body by h seconds under gravity.
func (b *Body) integrate(gravity mgl64.Vec3, h float64) {
	if b.sleeping || !b.Dynamic() {
		return
	}

	b.velocity = b.velocity.Add(gravity.Mul(h))
	b.velocity = b.velocity.Mul(dampingFactor(b.LinearDamping, h))
	b.angularVelocity = b.angularVelocity.Mul(dampingFactor(b.AngularDamping, h))

	b.position = b.position.Add(b.velocity.Mul(h))

	// dq/dt = 0.5 * w * q
	if b.angularVelocity.Len() > 0 {
		spin := mgl64.Quat{W: 0, V: b.angularVelocity}
		b.orientation = b.orientation.Add(spin.Mul(b.orientation).Scale(0.5 * h)).Normalize()
	}
}

// dampingFactor returns (1-damping)^h, the velocity fraction kept over h seconds.
func dampingFactor(damping, h float64) float64 {
	if damping <= 0 {
		return 1
	}
	if damping >= 1 {
		return 0
	}
	return math.Pow(1-damping, h)
}
