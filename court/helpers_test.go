package court

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func assertVec(t *testing.T, label string, got, want mgl64.Vec3, eps float64) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if math.Abs(got[i]-want[i]) > eps {
			t.Fatalf("%s: got %v, want %v (eps %g)", label, got, want, eps)
		}
	}
}

func assertFloat(t *testing.T, label string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("%s: got %v, want %v (eps %g)", label, got, want, eps)
	}
}

// fakeBody records what the ball does to its rigid body
type fakeBody struct {
	position        mgl64.Vec3
	orientation     mgl64.Quat
	velocity        mgl64.Vec3
	angularVelocity mgl64.Vec3
	collides        bool
	sleeping        bool
}

func newFakeBody(position mgl64.Vec3) *fakeBody {
	return &fakeBody{position: position, orientation: mgl64.QuatIdent(), collides: true}
}

func (b *fakeBody) Position() mgl64.Vec3            { return b.position }
func (b *fakeBody) SetPosition(p mgl64.Vec3)        { b.position = p }
func (b *fakeBody) Orientation() mgl64.Quat         { return b.orientation }
func (b *fakeBody) SetOrientation(q mgl64.Quat)     { b.orientation = q }
func (b *fakeBody) Velocity() mgl64.Vec3            { return b.velocity }
func (b *fakeBody) SetVelocity(v mgl64.Vec3)        { b.velocity = v }
func (b *fakeBody) AngularVelocity() mgl64.Vec3     { return b.angularVelocity }
func (b *fakeBody) SetAngularVelocity(w mgl64.Vec3) { b.angularVelocity = w }
func (b *fakeBody) SetCollides(collides bool)       { b.collides = collides }
func (b *fakeBody) Sleep()                          { b.sleeping = true }
func (b *fakeBody) WakeUp()                         { b.sleeping = false }
func (b *fakeBody) Sleeping() bool                  { return b.sleeping }

// fixedCamera is a camera that never moves
type fixedCamera struct {
	position    mgl64.Vec3
	orientation mgl64.Quat
}

func newFixedCamera(position mgl64.Vec3) *fixedCamera {
	return &fixedCamera{position: position, orientation: mgl64.QuatIdent()}
}

func (c *fixedCamera) Position() mgl64.Vec3    { return c.position }
func (c *fixedCamera) Orientation() mgl64.Quat { return c.orientation }
func (c *fixedCamera) Forward() mgl64.Vec3     { return c.orientation.Rotate(axisForward).Normalize() }
func (c *fixedCamera) Right() mgl64.Vec3       { return c.orientation.Rotate(axisRight).Normalize() }
func (c *fixedCamera) LocalToWorld(offset mgl64.Vec3) mgl64.Vec3 {
	return c.position.Add(c.orientation.Rotate(offset))
}
