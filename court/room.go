package court

import "github.com/go-gl/mathgl/mgl64"

// Plane is an infinite static plane: every point p on it satisfies Normal·p == Distance.
// Normals point into the room, so a positive signed distance means "inside".
type Plane struct {
	Name     string
	Normal   mgl64.Vec3
	Distance float64
}

// SignedDistance returns how far p lies in front of the plane along its normal.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Distance
}

// Room describes the gymnasium box. The floor sits at y=0 and the room is centered on x/z.
type Room struct {
	// Length runs along the x axis (end wall to end wall)
	Length float64

	// Width runs along the z axis (front wall to back wall)
	Width float64

	// Height is the wall height
	Height float64
}

// DefaultRoom returns the gym used by the game: 28 long, 15 wide, 8 high.
func DefaultRoom() Room {
	return Room{
		Length: 28,
		Width:  15,
		Height: 8,
	}
}

// HalfLength returns the distance from the center to an end wall.
func (r Room) HalfLength() float64 { return r.Length / 2 }

// HalfWidth returns the distance from the center to a side wall.
func (r Room) HalfWidth() float64 { return r.Width / 2 }

// Planes returns the arc collision planes in test order: floor, front, back, left, right.
func (r Room) Planes() []Plane {
	hl := r.HalfLength()
	hw := r.HalfWidth()
	return []Plane{
		{Name: "floor", Normal: mgl64.Vec3{0, 1, 0}, Distance: 0},
		{Name: "front", Normal: mgl64.Vec3{0, 0, 1}, Distance: -hw},
		{Name: "back", Normal: mgl64.Vec3{0, 0, -1}, Distance: -hw},
		{Name: "left", Normal: mgl64.Vec3{1, 0, 0}, Distance: -hl},
		{Name: "right", Normal: mgl64.Vec3{-1, 0, 0}, Distance: -hl},
	}
}

// Ceiling returns the plane closing the top of the room. The arc does not clip against it.
func (r Room) Ceiling() Plane {
	return Plane{Name: "ceiling", Normal: mgl64.Vec3{0, -1, 0}, Distance: -r.Height}
}

// Bounds returns the min and max corners of the room shrunk by margin on every side.
func (r Room) Bounds(margin float64) (lo, hi mgl64.Vec3) {
	lo = mgl64.Vec3{-r.HalfLength() + margin, margin, -r.HalfWidth() + margin}
	hi = mgl64.Vec3{r.HalfLength() - margin, r.Height - margin, r.HalfWidth() - margin}
	return lo, hi
}

// Clamp keeps p inside the room shrunk by margin. If margin is larger than a half extent
// the axis collapses onto the room's center line for that axis.
func (r Room) Clamp(p mgl64.Vec3, margin float64) mgl64.Vec3 {
	lo, hi := r.Bounds(margin)
	for i := 0; i < 3; i++ {
		if lo[i] > hi[i] {
			mid := (lo[i] + hi[i]) / 2
			lo[i], hi[i] = mid, mid
		}
		p[i] = mgl64.Clamp(p[i], lo[i], hi[i])
	}
	return p
}

// Contains reports whether p lies inside the room shrunk by margin.
func (r Room) Contains(p mgl64.Vec3, margin float64) bool {
	lo, hi := r.Bounds(margin)
	for i := 0; i < 3; i++ {
		if p[i] < lo[i] || p[i] > hi[i] {
			return false
		}
	}
	return true
}
