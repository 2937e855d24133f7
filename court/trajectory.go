// Package court holds the ball interaction core of the gym: the hold/throw state machine,
// the aim and charge controllers, and the ballistic arc prediction with its room clipping.
// Nothing in here talks to the window, the GPU or the audio device.
package court

import "github.com/go-gl/mathgl/mgl64"

// SampleTrajectory returns steps positions along the closed-form ballistic path starting at
// start with the given initial velocity. Sample i is taken at t = i*dt; gravity acts on y only.
// Sample 0 is start itself so the result can be walked as a polyline from the launch point.
func SampleTrajectory(start, velocity mgl64.Vec3, gravity float64, steps int, dt float64) []mgl64.Vec3 {
	if steps <= 0 {
		return []mgl64.Vec3{}
	}

	points := make([]mgl64.Vec3, 0, steps)
	points = append(points, start)

	for i := 1; i < steps; i++ {
		t := float64(i) * dt
		points = append(points, mgl64.Vec3{
			start[0] + velocity[0]*t,
			start[1] + velocity[1]*t + 0.5*gravity*t*t,
			start[2] + velocity[2]*t,
		})
	}

	return points
}
