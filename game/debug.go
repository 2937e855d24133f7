package game

// DebugState holds debug flags toggled with F1. It lives on the Game so a fresh Game starts
// with everything off.
type DebugState struct {
	ShowPlanes bool // Outline the physics body and the arc hit normal
	ShowStats  bool // Print camera, body and arc numbers
}

// Toggle flips every debug overlay together
func (d *DebugState) Toggle() {
	on := !(d.ShowPlanes || d.ShowStats)
	d.ShowPlanes = on
	d.ShowStats = on
}

// Enabled reports whether any overlay is on
func (d *DebugState) Enabled() bool {
	return d.ShowPlanes || d.ShowStats
}
