package court

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSampleTrajectoryFirstSampleIsStart(t *testing.T) {
	start := mgl64.Vec3{0.123456789, 1.987654321, -3.5}
	points := SampleTrajectory(start, mgl64.Vec3{3, 7, -2}, -9.82, 30, 1.0/30.0)

	if len(points) != 30 {
		t.Fatalf("got %d samples, want 30", len(points))
	}
	if points[0] != start {
		t.Fatalf("first sample %v, want exactly %v", points[0], start)
	}
}

func TestSampleTrajectoryFollowsClosedForm(t *testing.T) {
	start := mgl64.Vec3{1, 2, 3}
	velocity := mgl64.Vec3{4, 5, -6}
	gravity := -9.82
	dt := 0.05

	points := SampleTrajectory(start, velocity, gravity, 40, dt)
	for i, p := range points {
		tm := float64(i) * dt
		want := mgl64.Vec3{
			start.X() + velocity.X()*tm,
			start.Y() + velocity.Y()*tm + 0.5*gravity*tm*tm,
			start.Z() + velocity.Z()*tm,
		}
		assertVec(t, "sample", p, want, tolerance)
	}
}

func TestSampleTrajectoryWithoutSteps(t *testing.T) {
	for _, steps := range []int{0, -3} {
		points := SampleTrajectory(mgl64.Vec3{}, mgl64.Vec3{1, 1, 1}, -9.82, steps, 0.1)
		if points == nil || len(points) != 0 {
			t.Fatalf("steps=%d: got %v, want an empty slice", steps, points)
		}
	}
}

func TestSampleTrajectorySingleStep(t *testing.T) {
	start := mgl64.Vec3{0, 1, 0}
	points := SampleTrajectory(start, mgl64.Vec3{0, 10, 0}, -9.82, 1, 1)
	if len(points) != 1 || points[0] != start {
		t.Fatalf("got %v, want only the start point", points)
	}
}
