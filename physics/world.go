// Package physics is a small rigid body world: dynamic spheres bouncing inside static planes.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// restingSpeed is the bounce speed below which a contact stops bouncing and settles
	restingSpeed = 0.25

	// rollingResistance scales friction into a slowdown for bodies resting on a surface
	rollingResistance = 0.15

	// rollingSlipFraction is the share of sliding speed a solid sphere loses before it rolls
	rollingSlipFraction = 2.0 / 7.0

	// contactReportSpeed is the minimum impact speed passed to OnContact
	contactReportSpeed = 0.4
)

// StaticPlane is an infinite immovable plane; points p on it satisfy Normal·p == Distance and
// bodies are kept on the side the normal points to.
type StaticPlane struct {
	Name     string
	Normal   mgl64.Vec3
	Distance float64
	Material *Material
}

// Contact describes a body striking a plane.
type Contact struct {
	Body        *Body
	Plane       StaticPlane
	Point       mgl64.Vec3
	ImpactSpeed float64
}

// World owns the bodies and static planes and steps them with a fixed time step.
type World struct {
	// Gravity acceleration applied to every awake dynamic body
	Gravity mgl64.Vec3

	// OnContact is called for every bounce faster than a light touch
	OnContact func(Contact)

	bodies           []*Body
	planes           []StaticPlane
	contactMaterials []ContactMaterial

	nextID      BodyID
	accumulator float64
	time        float64
}

// NewWorld creates an empty world.
func NewWorld(gravity mgl64.Vec3) *World {
	return &World{
		Gravity: gravity,
		bodies:  make([]*Body, 0, 4),
		planes:  make([]StaticPlane, 0, 6),
		nextID:  1,
	}
}

// AddBody registers a body and assigns its id.
func (w *World) AddBody(body *Body) {
	for _, b := range w.bodies {
		if b == body {
			return
		}
	}
	body.id = w.nextID
	w.nextID++
	w.bodies = append(w.bodies, body)
}

// RemoveBody unregisters a body.
func (w *World) RemoveBody(body *Body) {
	for i, b := range w.bodies {
		if b == body {
			w.bodies[i] = w.bodies[len(w.bodies)-1]
			w.bodies = w.bodies[:len(w.bodies)-1]
			return
		}
	}
}

// Bodies returns the registered bodies.
func (w *World) Bodies() []*Body { return w.bodies }

// AddPlane registers a static plane. The normal is normalized on the way in.
func (w *World) AddPlane(plane StaticPlane) {
	if plane.Normal.Len() == 0 {
		return
	}
	plane.Normal = plane.Normal.Normalize()
	w.planes = append(w.planes, plane)
}

// Planes returns the registered static planes.
func (w *World) Planes() []StaticPlane { return w.planes }

// AddContactMaterial registers the behavior for a material pair, replacing an earlier entry.
func (w *World) AddContactMaterial(cm ContactMaterial) {
	for i, existing := range w.contactMaterials {
		if existing.matches(cm.A, cm.B) {
			w.contactMaterials[i] = cm
			return
		}
	}
	w.contactMaterials = append(w.contactMaterials, cm)
}

// ContactMaterialFor returns the contact material for a pair, or the default.
func (w *World) ContactMaterialFor(a, b *Material) ContactMaterial {
	for _, cm := range w.contactMaterials {
		if cm.matches(a, b) {
			return cm
		}
	}
	return DefaultContactMaterial
}

// Time returns the simulated time in seconds.
func (w *World) Time() float64 { return w.time }

// Step advances the world by dt seconds of wall time using fixed sub steps of size fixed.
// At most maxSubSteps are taken; left over time beyond that is dropped so a long stall does
// not snowball. It returns how many sub steps ran.
func (w *World) Step(fixed, dt float64, maxSubSteps int) int {
	if !(fixed > 0) || !(dt > 0) || math.IsInf(dt, 0) || maxSubSteps <= 0 {
		return 0
	}

	w.accumulator += dt
	steps := 0
	for w.accumulator >= fixed && steps < maxSubSteps {
		w.internalStep(fixed)
		w.accumulator -= fixed
		steps++
	}
	if steps == maxSubSteps {
		w.accumulator = math.Mod(w.accumulator, fixed)
	}
	return steps
}

// internalStep integrates every body by h and resolves plane contacts.
func (w *World) internalStep(h float64) {
	for _, body := range w.bodies {
		body.integrate(w.Gravity, h)
		if body.sleeping || !body.collides || !body.Dynamic() {
			continue
		}
		for _, plane := range w.planes {
			w.resolvePlane(body, plane, h)
		}
	}
	w.time += h
}

// resolvePlane pushes a sphere out of a plane and applies bounce, friction and rolling spin.
func (w *World) resolvePlane(body *Body, plane StaticPlane, h float64) {
	n := plane.Normal
	dist := n.Dot(body.position) - plane.Distance
	penetration := body.Radius - dist
	if penetration <= 0 {
		return
	}

	body.position = body.position.Add(n.Mul(penetration))

	cm := w.ContactMaterialFor(body.Material, plane.Material)
	vn := body.velocity.Dot(n)
	tangent := body.velocity.Sub(n.Mul(vn))

	if impact := -vn; impact >= restingSpeed {
		bounce := impact * cm.Restitution
		if bounce < restingSpeed {
			bounce = 0
		}

		// Coulomb friction on the bounce impulse, limited to where a solid sphere starts rolling
		slip := math.Min(cm.Friction*(impact+bounce), rollingSlipFraction*tangent.Len())
		tangent = reduceSpeed(tangent, slip)
		body.velocity = tangent.Add(n.Mul(bounce))

		if impact >= contactReportSpeed && w.OnContact != nil {
			w.OnContact(Contact{
				Body:        body,
				Plane:       plane,
				Point:       body.position.Sub(n.Mul(body.Radius)),
				ImpactSpeed: impact,
			})
		}
	} else {
		// resting on or rolling along the surface
		support := math.Abs(w.Gravity.Dot(n))
		tangent = reduceSpeed(tangent, cm.Friction*rollingResistance*support*h)
		body.velocity = tangent.Add(n.Mul(math.Max(vn, 0)))
	}

	if body.Radius > 0 {
		body.angularVelocity = n.Cross(tangent).Mul(1 / body.Radius)
	}
}

// reduceSpeed shortens v by amount without reversing it.
func reduceSpeed(v mgl64.Vec3, amount float64) mgl64.Vec3 {
	speed := v.Len()
	if speed == 0 || amount <= 0 {
		return v
	}
	if amount >= speed {
		return mgl64.Vec3{}
	}
	return v.Mul((speed - amount) / speed)
}
