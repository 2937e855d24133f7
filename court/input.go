package court

// InputSnapshot is the ball-related input for one frame, polled once by the host.
type InputSnapshot struct {
	// PickupHeld is true while the pickup button is down
	PickupHeld bool

	// ThrowPressed is true on the frame the throw button went down
	ThrowPressed bool

	// ThrowReleased is true on the frame the throw button came up
	ThrowReleased bool

	// PitchTicks is the signed number of wheel ticks since the last frame
	PitchTicks int
}
