package court

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFirstPersonCameraStartsLookingDownNegativeZ(t *testing.T) {
	cam := NewFirstPersonCamera(mgl64.Vec3{0, 1.8, 3}, DefaultRoom(), 0.5)

	assertVec(t, "forward", cam.Forward(), mgl64.Vec3{0, 0, -1}, 1e-12)
	assertVec(t, "right", cam.Right(), mgl64.Vec3{1, 0, 0}, 1e-12)
	assertVec(t, "up", cam.Up(), mgl64.Vec3{0, 1, 0}, 1e-12)
	assertVec(t, "hand", cam.LocalToWorld(mgl64.Vec3{0.25, 0, -1}), mgl64.Vec3{0.25, 1.8, 2}, 1e-12)
}

func TestFirstPersonCameraYawTurnsLeft(t *testing.T) {
	cam := NewFirstPersonCamera(mgl64.Vec3{0, 1.8, 0}, DefaultRoom(), 0.5)
	cam.Look(math.Pi/2, 0)

	assertVec(t, "forward", cam.Forward(), mgl64.Vec3{-1, 0, 0}, 1e-12)
	assertVec(t, "right", cam.Right(), mgl64.Vec3{0, 0, -1}, 1e-12)
}

func TestFirstPersonCameraPitchIsLimited(t *testing.T) {
	cam := NewFirstPersonCamera(mgl64.Vec3{0, 1.8, 0}, DefaultRoom(), 0.5)

	cam.Look(0, 0.3)
	if cam.Forward().Y() <= 0 {
		t.Fatalf("positive look pitch should look up, forward %v", cam.Forward())
	}

	cam.Look(0, 10)
	assertFloat(t, "pitch", cam.LookPitch, mgl64.DegToRad(89), 1e-12)
	cam.Look(0, -20)
	assertFloat(t, "pitch", cam.LookPitch, -mgl64.DegToRad(89), 1e-12)
}

func TestFirstPersonCameraWalkStaysOnFloorAndInRoom(t *testing.T) {
	room := DefaultRoom()
	cam := NewFirstPersonCamera(mgl64.Vec3{0, 1.8, 0}, room, 0.5)
	cam.Look(0, 0.5)

	cam.Walk(2, 1)
	assertVec(t, "walked", cam.Eye, mgl64.Vec3{1, 1.8, -2}, 1e-12)

	cam.Walk(100, -100)
	assertVec(t, "clamped", cam.Eye, mgl64.Vec3{-13.5, 1.8, -7}, 1e-12)
}

func TestFirstPersonCameraViewMatrixMapsEyeToOrigin(t *testing.T) {
	cam := NewFirstPersonCamera(mgl64.Vec3{1, 1.8, 2}, DefaultRoom(), 0.5)
	cam.Look(0.4, -0.2)

	view := cam.ViewMatrix()
	eye := view.Mul4x1(cam.Eye.Vec4(1)).Vec3()
	assertVec(t, "eye in view space", eye, mgl64.Vec3{}, 1e-9)

	ahead := view.Mul4x1(cam.Eye.Add(cam.Forward()).Vec4(1)).Vec3()
	assertVec(t, "forward in view space", ahead, mgl64.Vec3{0, 0, -1}, 1e-9)
}
