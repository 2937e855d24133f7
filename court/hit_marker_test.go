package court

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestPlaceHitMarkerOnFloor(t *testing.T) {
	hit := Hit{Point: mgl64.Vec3{2, 0, -3}, Normal: mgl64.Vec3{0, 1, 0}, Plane: "floor"}
	marker := PlaceHitMarker(hit, true, DefaultMarkerOffset)

	if !marker.Visible {
		t.Fatal("marker hidden for a hit")
	}
	assertVec(t, "position", marker.Position, mgl64.Vec3{2, DefaultMarkerOffset, -3}, 1e-12)
	assertVec(t, "face", marker.Orientation.Rotate(MarkerAxis), mgl64.Vec3{0, 1, 0}, 1e-9)
}

func TestPlaceHitMarkerOnEveryWall(t *testing.T) {
	for _, plane := range DefaultRoom().Planes() {
		hit := Hit{Point: mgl64.Vec3{}, Normal: plane.Normal, Plane: plane.Name}
		marker := PlaceHitMarker(hit, true, 0.05)

		assertVec(t, plane.Name+" face", marker.Orientation.Rotate(MarkerAxis), plane.Normal, 1e-9)
		assertVec(t, plane.Name+" offset", marker.Position, plane.Normal.Mul(0.05), 1e-12)
	}
}

func TestPlaceHitMarkerHidden(t *testing.T) {
	marker := PlaceHitMarker(Hit{Point: mgl64.Vec3{1, 1, 1}, Normal: mgl64.Vec3{0, 1, 0}}, false, 0.01)
	if marker.Visible {
		t.Fatal("marker visible without a hit")
	}

	marker = PlaceHitMarker(Hit{Point: mgl64.Vec3{1, 1, 1}}, true, 0.01)
	if marker.Visible {
		t.Fatal("marker visible for a hit without a normal")
	}
}
