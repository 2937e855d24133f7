package game

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"gymhoops/court"
)

var (
	colorHUDText      = color.RGBA{235, 235, 235, 255}
	colorChargeEmpty  = color.RGBA{50, 50, 60, 220}
	colorChargeFill   = color.RGBA{240, 150, 40, 255}
	colorChargeFrame  = color.RGBA{200, 200, 200, 255}
	colorPauseOverlay = color.RGBA{0, 0, 0, 150}
)

const (
	chargeBarWidth  = 220
	chargeBarHeight = 12
	hudMargin       = 12
	hudLineHeight   = 16
)

// HUD draws the 2D overlay: throw charge, aim pitch and status lines
type HUD struct {
	face *text.GoXFace
}

// NewHUD creates a HUD using the built in bitmap font
func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// HUDStatus is what the overlay shows for one frame
type HUDStatus struct {
	Ball    *court.Ball
	FPS     float64
	Paused  bool
	Debug   *DebugState
	Camera  *court.FirstPersonCamera
	Contact string
}

// Draw renders the overlay on top of the scene
func (h *HUD) Draw(screen *ebiten.Image, status HUDStatus) {
	b := screen.Bounds()
	width, height := float32(b.Dx()), float32(b.Dy())
	ball := status.Ball

	h.drawLine(screen, fmt.Sprintf("FPS %.0f", status.FPS), hudMargin, hudMargin)
	h.drawLine(screen, fmt.Sprintf("Ball %s", ball.State()), hudMargin, hudMargin+hudLineHeight)

	switch {
	case ball.Held():
		pitch := ball.Aim().Pitch()
		h.drawLine(screen, fmt.Sprintf("Aim %+.1f deg  Speed %.1f m/s", mgl64.RadToDeg(pitch), ball.Charge().ThrowSpeed()),
			hudMargin, hudMargin+2*hudLineHeight)
		h.drawLine(screen, "Hold LMB to charge, wheel to aim", hudMargin, float64(height)-hudMargin-hudLineHeight)
	case ball.InReach():
		h.drawLine(screen, "RMB to pick up", hudMargin, float64(height)-hudMargin-hudLineHeight)
	}

	if ball.Held() {
		h.drawChargeBar(screen, ball.Charge().Charge(), width, height)
	}

	if status.Debug != nil && status.Debug.ShowStats {
		h.drawDebugStats(screen, status)
	}

	if status.Paused {
		vector.DrawFilledRect(screen, 0, 0, width, height, colorPauseOverlay, false)
		msg := "PAUSED  press Esc to resume"
		x := float64(width)/2 - float64(len(msg))*3.5
		h.drawLine(screen, msg, x, float64(height)/2)
	}
}

func (h *HUD) drawLine(screen *ebiten.Image, msg string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(colorHUDText)
	text.Draw(screen, msg, h.face, op)
}

// drawChargeBar draws the throw charge centered near the bottom of the screen
func (h *HUD) drawChargeBar(screen *ebiten.Image, charge float64, width, height float32) {
	x := width/2 - chargeBarWidth/2
	y := height - 3*hudMargin - chargeBarHeight

	vector.DrawFilledRect(screen, x, y, chargeBarWidth, chargeBarHeight, colorChargeEmpty, false)
	vector.DrawFilledRect(screen, x, y, chargeBarWidth*float32(charge), chargeBarHeight, colorChargeFill, false)
	vector.StrokeRect(screen, x, y, chargeBarWidth, chargeBarHeight, 1, colorChargeFrame, false)
}

// drawDebugStats prints the raw numbers behind the scene
func (h *HUD) drawDebugStats(screen *ebiten.Image, status HUDStatus) {
	ball := status.Ball
	body := ball.Body()
	cam := status.Camera

	lines := fmt.Sprintf("eye %.2f %.2f %.2f  yaw %.1f  look %.1f\n",
		cam.Eye.X(), cam.Eye.Y(), cam.Eye.Z(), mgl64.RadToDeg(cam.Yaw), mgl64.RadToDeg(cam.LookPitch))
	p := body.Position()
	v := body.Velocity()
	lines += fmt.Sprintf("body %.2f %.2f %.2f  vel %.2f %.2f %.2f  asleep %v\n",
		p.X(), p.Y(), p.Z(), v.X(), v.Y(), v.Z(), body.Sleeping())
	lines += fmt.Sprintf("arc %d points  reach %.2f\n", len(ball.Arc()), ball.GrabRange())
	if hit, ok := ball.ArcHit(); ok {
		lines += fmt.Sprintf("hit %s at %.2f %.2f %.2f\n", hit.Plane, hit.Point.X(), hit.Point.Y(), hit.Point.Z())
	}
	if status.Contact != "" {
		lines += "last contact " + status.Contact + "\n"
	}

	b := screen.Bounds()
	ebitenutil.DebugPrintAt(screen, lines, b.Dx()-420, hudMargin)
}
