package court

import "github.com/go-gl/mathgl/mgl64"

// Hit is where a predicted arc first meets a collision plane.
type Hit struct {
	Point  mgl64.Vec3
	Normal mgl64.Vec3
	Plane  string
}

// ClipArc walks points as a polyline and stops at the first segment that passes through one of
// planes. The returned slice ends with the intersection point. Planes are tested in the order
// given, so on a segment that crosses two planes the earlier plane in the list wins.
// When nothing is crossed the input comes back unchanged and ok is false.
func ClipArc(points []mgl64.Vec3, planes []Plane) (clipped []mgl64.Vec3, hit Hit, ok bool) {
	if len(points) < 2 {
		return points, Hit{}, false
	}

	for i := 0; i < len(points)-1; i++ {
		a := points[i]
		b := points[i+1]

		for _, plane := range planes {
			point, crossed := intersectSegment(a, b, plane)
			if !crossed {
				continue
			}

			clipped = make([]mgl64.Vec3, 0, i+2)
			clipped = append(clipped, points[:i+1]...)
			clipped = append(clipped, point)
			return clipped, Hit{Point: point, Normal: plane.Normal, Plane: plane.Name}, true
		}
	}

	return points, Hit{}, false
}

// intersectSegment finds where a→b goes from the room side of plane to its far side.
// Segments that start behind the plane are ignored; they cannot come from a ball inside the room.
func intersectSegment(a, b mgl64.Vec3, plane Plane) (mgl64.Vec3, bool) {
	da := plane.SignedDistance(a)
	db := plane.SignedDistance(b)

	crossing := (da >= 0 && db < 0) || (da > 0 && db <= 0)
	if !crossing {
		return mgl64.Vec3{}, false
	}

	// da - db > 0 on every crossing above
	t := da / (da - db)
	return a.Add(b.Sub(a).Mul(t)), true
}
