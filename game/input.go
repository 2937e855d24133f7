package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gymhoops/court"
)

// InputProvider defines where a frame of player intent comes from
type InputProvider interface {
	// Poll returns the intent gathered for this frame
	Poll() FrameInput

	// Update samples the device state
	Update()
}

// FrameInput is the player intent for one frame
type FrameInput struct {
	// MoveForward and MoveRight are in [-1, 1]
	MoveForward float64
	MoveRight   float64

	// LookX and LookY are mouse deltas in pixels
	LookX float64
	LookY float64

	// Ball is what the throwing core sees
	Ball court.InputSnapshot

	TogglePause bool
	ToggleDebug bool
}

// PlayerInput provides input from keyboard and mouse
type PlayerInput struct {
	frame FrameInput

	lastCursorX, lastCursorY int
	hasCursor                bool
	captured                 bool

	// wheel carries fractional trackpad scroll between frames
	wheel float64
}

// NewPlayerInput creates a new player input provider
func NewPlayerInput() *PlayerInput {
	return &PlayerInput{}
}

// Poll returns the intent sampled by the last Update
func (p *PlayerInput) Poll() FrameInput {
	return p.frame
}

// Capture grabs or releases the mouse cursor for look control
func (p *PlayerInput) Capture(captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	p.captured = captured
	p.hasCursor = false
}

// Update samples keys, buttons, wheel and cursor
func (p *PlayerInput) Update() {
	var frame FrameInput

	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		frame.MoveForward += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		frame.MoveForward -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		frame.MoveRight += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		frame.MoveRight -= 1
	}

	cx, cy := ebiten.CursorPosition()
	if p.captured && p.hasCursor {
		frame.LookX = float64(cx - p.lastCursorX)
		frame.LookY = float64(cy - p.lastCursorY)
	}
	p.lastCursorX, p.lastCursorY = cx, cy
	p.hasCursor = true

	frame.Ball = court.InputSnapshot{
		PickupHeld:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) || ebiten.IsKeyPressed(ebiten.KeyE),
		ThrowPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		ThrowReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) || inpututil.IsKeyJustReleased(ebiten.KeySpace),
		PitchTicks:    p.wheelTicks(),
	}

	frame.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	frame.ToggleDebug = inpututil.IsKeyJustPressed(ebiten.KeyF1)

	p.frame = frame
}

// wheelTicks turns wheel motion into whole aim ticks. Scrolling up aims higher, which is a
// negative tick.
func (p *PlayerInput) wheelTicks() int {
	_, dy := ebiten.Wheel()
	p.wheel += dy

	ticks := int(p.wheel)
	p.wheel -= float64(ticks)
	return -ticks
}
