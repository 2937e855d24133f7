package court

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClipArcStopsAtFloor(t *testing.T) {
	points := SampleTrajectory(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}, 0, 10, 1)

	clipped, hit, ok := ClipArc(points, DefaultRoom().Planes())
	if !ok {
		t.Fatal("expected a hit")
	}
	if len(clipped) >= len(points) {
		t.Fatalf("arc not truncated: %d of %d points", len(clipped), len(points))
	}
	assertFloat(t, "last y", clipped[len(clipped)-1].Y(), 0, 1e-9)
	assertVec(t, "normal", hit.Normal, mgl64.Vec3{0, 1, 0}, 0)
	if hit.Plane != "floor" {
		t.Fatalf("hit plane %q, want floor", hit.Plane)
	}
	if clipped[len(clipped)-1] != hit.Point {
		t.Fatalf("last point %v differs from hit %v", clipped[len(clipped)-1], hit.Point)
	}
}

func TestClipArcInsideRoomIsUnchanged(t *testing.T) {
	// a slow lob that stays in the air for the whole sampled window
	points := SampleTrajectory(mgl64.Vec3{0, 2, 0}, mgl64.Vec3{0.5, 3, 0}, -9.82, 10, 0.05)

	clipped, hit, ok := ClipArc(points, DefaultRoom().Planes())
	if ok {
		t.Fatalf("unexpected hit %+v", hit)
	}
	if len(clipped) != len(points) {
		t.Fatalf("got %d points, want %d", len(clipped), len(points))
	}
	for i := range points {
		if clipped[i] != points[i] {
			t.Fatalf("point %d changed: %v -> %v", i, points[i], clipped[i])
		}
	}
}

func TestClipArcInterpolatesWallHit(t *testing.T) {
	room := DefaultRoom()
	// straight toward the front wall at z = -7.5
	points := []mgl64.Vec3{{0, 2, -7}, {0, 2, -8}}

	clipped, hit, ok := ClipArc(points, room.Planes())
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Plane != "front" {
		t.Fatalf("hit plane %q, want front", hit.Plane)
	}
	assertVec(t, "hit", hit.Point, mgl64.Vec3{0, 2, -7.5}, 1e-12)
	assertVec(t, "normal", hit.Normal, mgl64.Vec3{0, 0, 1}, 0)
	if len(clipped) != 2 {
		t.Fatalf("got %d points, want 2", len(clipped))
	}
}

func TestClipArcFirstPlaneWinsOnSharedSegment(t *testing.T) {
	room := DefaultRoom()
	// one long segment leaving through the floor and the right wall
	points := []mgl64.Vec3{{13, 1, 0}, {15, -1, 0}}

	_, hit, ok := ClipArc(points, room.Planes())
	if !ok || hit.Plane != "floor" {
		t.Fatalf("got %+v ok=%v, want the floor to win", hit, ok)
	}

	reordered := []Plane{room.Planes()[4], room.Planes()[0]}
	_, hit, ok = ClipArc(points, reordered)
	if !ok || hit.Plane != "right" {
		t.Fatalf("got %+v ok=%v, want the right wall to win", hit, ok)
	}
}

func TestClipArcStartingOnPlane(t *testing.T) {
	// a ball resting on the floor and thrown downward still reports the floor
	points := []mgl64.Vec3{{0, 0, 0}, {0, -1, 0}}
	clipped, hit, ok := ClipArc(points, DefaultRoom().Planes())
	if !ok || hit.Plane != "floor" {
		t.Fatalf("got %+v ok=%v, want a floor hit", hit, ok)
	}
	assertVec(t, "hit", hit.Point, mgl64.Vec3{0, 0, 0}, 0)
	if len(clipped) != 2 {
		t.Fatalf("got %d points, want 2", len(clipped))
	}
}

func TestClipArcIgnoresSegmentsEnteringTheRoom(t *testing.T) {
	points := []mgl64.Vec3{{0, -1, 0}, {0, 1, 0}, {0, 2, 0}}
	clipped, _, ok := ClipArc(points, DefaultRoom().Planes())
	if ok {
		t.Fatal("an arc climbing out of the floor should not hit it")
	}
	if len(clipped) != 3 {
		t.Fatalf("got %d points, want 3", len(clipped))
	}
}

func TestClipArcShortInputs(t *testing.T) {
	planes := DefaultRoom().Planes()

	clipped, _, ok := ClipArc(nil, planes)
	if ok || len(clipped) != 0 {
		t.Fatalf("nil input: got %v ok=%v", clipped, ok)
	}

	single := []mgl64.Vec3{{0, -5, 0}}
	clipped, _, ok = ClipArc(single, planes)
	if ok || len(clipped) != 1 {
		t.Fatalf("single point: got %v ok=%v", clipped, ok)
	}
}

func TestClipArcDoesNotModifyInput(t *testing.T) {
	points := []mgl64.Vec3{{0, 1, 0}, {0, -1, 0}, {0, -2, 0}}
	original := append([]mgl64.Vec3(nil), points...)

	ClipArc(points, DefaultRoom().Planes())
	for i := range points {
		if points[i] != original[i] {
			t.Fatalf("input point %d changed to %v", i, points[i])
		}
	}
}
