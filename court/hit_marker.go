package court

import "github.com/go-gl/mathgl/mgl64"

// MarkerAxis is the face normal of the marker quad in its own space.
var MarkerAxis = mgl64.Vec3{0, 0, 1}

// DefaultMarkerOffset lifts the marker off the surface it lies on.
const DefaultMarkerOffset = 0.01

// HitMarker is the decal shown where the predicted arc lands.
type HitMarker struct {
	Visible     bool
	Position    mgl64.Vec3
	Orientation mgl64.Quat
	Normal      mgl64.Vec3
}

// hiddenMarker is the marker state whenever there is nothing to show.
func hiddenMarker() HitMarker {
	return HitMarker{Orientation: mgl64.QuatIdent()}
}

// PlaceHitMarker puts the marker offset units in front of the hit surface with its face
// turned to the surface normal. Without a hit the marker is hidden.
func PlaceHitMarker(hit Hit, ok bool, offset float64) HitMarker {
	if !ok || hit.Normal.Len() == 0 {
		return hiddenMarker()
	}

	normal := hit.Normal.Normalize()
	return HitMarker{
		Visible:     true,
		Position:    hit.Point.Add(normal.Mul(offset)),
		Orientation: mgl64.QuatBetweenVectors(MarkerAxis, normal),
		Normal:      normal,
	}
}
