package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gymhoops/court"
)

const (
	minimapWidth       = 196.0 // pixels across the court length
	minimapMargin      = 12.0
	minimapLabelHeight = 16.0

	minimapTrailMaxAge         = 1.5  // seconds
	minimapTrailUpdateInterval = 0.05 // seconds between trail points
	minimapTrailMaxPoints      = 40   // maximum trail points kept
	minimapTrailMinSpeed       = 0.2  // ball speed below which no trail is laid

	minimapPlayerDotSize = 3.0
	minimapBallDotSize   = 2.5
	minimapHeadingLength = 10.0
)

var (
	colorMinimapBackdrop = color.RGBA{10, 10, 18, 200}
	colorMinimapCourt    = color.RGBA{120, 100, 70, 255}
	colorMinimapPlayer   = color.RGBA{80, 200, 255, 255}
	colorMinimapTrail    = color.RGBA{235, 120, 30, 255}
)

// trailPoint is a ball position on the map with its age in seconds
type trailPoint struct {
	pos mgl64.Vec3
	age float64
}

// Minimap is a top down view of the court in the screen corner: the player with their
// heading, the ball with a fading trail, and the predicted arc with its landing spot
type Minimap struct {
	room  court.Room
	scale float64

	trail      []trailPoint
	trailTimer float64
}

// NewMinimap creates a minimap sized to the room
func NewMinimap(room court.Room) *Minimap {
	scale := 0.0
	if room.Length > 0 {
		scale = minimapWidth / room.Length
	}
	return &Minimap{
		room:  room,
		scale: scale,
		trail: make([]trailPoint, 0, minimapTrailMaxPoints),
	}
}

// Update ages the trail and lays a new point while the ball is flying or rolling
func (m *Minimap) Update(dt float64, ballPos, ballVel mgl64.Vec3) {
	kept := m.trail[:0]
	for _, point := range m.trail {
		point.age += dt
		if point.age < minimapTrailMaxAge {
			kept = append(kept, point)
		}
	}
	m.trail = kept

	m.trailTimer += dt
	if m.trailTimer < minimapTrailUpdateInterval {
		return
	}
	m.trailTimer = 0

	if ballVel.Len() < minimapTrailMinSpeed {
		return
	}
	m.trail = append(m.trail, trailPoint{pos: ballPos})
	if len(m.trail) > minimapTrailMaxPoints {
		m.trail = append(m.trail[:0], m.trail[1:]...)
	}
}

// Trail returns the trail positions, oldest first
func (m *Minimap) Trail() []mgl64.Vec3 {
	points := make([]mgl64.Vec3, len(m.trail))
	for i, p := range m.trail {
		points[i] = p.pos
	}
	return points
}

// origin returns the screen position of the court's far left corner, placing the map in the
// bottom right of the screen above its distance label
func (m *Minimap) origin(screen *ebiten.Image) (float64, float64) {
	b := screen.Bounds()
	h := m.room.Width * m.scale
	return float64(b.Dx()) - minimapMargin - minimapWidth, float64(b.Dy()) - minimapMargin - minimapLabelHeight - h
}

// toMap projects a world point onto the map: x runs along the court length, z down the map
func (m *Minimap) toMap(p mgl64.Vec3, ox, oy float64) (float64, float64) {
	x := (p.X() + m.room.HalfLength()) * m.scale
	y := (p.Z() + m.room.HalfWidth()) * m.scale
	return ox + x, oy + y
}

// Draw renders the minimap
func (m *Minimap) Draw(screen *ebiten.Image, camera *court.FirstPersonCamera, ball *court.Ball) {
	ox, oy := m.origin(screen)
	w := float32(m.room.Length * m.scale)
	h := float32(m.room.Width * m.scale)

	vector.DrawFilledRect(screen, float32(ox)-2, float32(oy)-2, w+4, h+4, colorMinimapBackdrop, false)
	vector.StrokeRect(screen, float32(ox), float32(oy), w, h, 1, colorMinimapCourt, false)
	midX := float32(ox) + w/2
	vector.StrokeLine(screen, midX, float32(oy), midX, float32(oy)+h, 1, colorMinimapCourt, false)

	m.drawTrail(screen, ox, oy)
	m.drawArc(screen, ball.Arc(), ox, oy)

	if marker := ball.Marker(); marker.Visible {
		x, y := m.toMap(marker.Position, ox, oy)
		vector.StrokeCircle(screen, float32(x), float32(y), 3, 1, colorMarker, true)
	}

	bx, by := m.toMap(ball.Transform().Position, ox, oy)
	vector.DrawFilledCircle(screen, float32(bx), float32(by), minimapBallDotSize, colorBall, true)

	px, py := m.toMap(camera.Eye, ox, oy)
	heading := camera.Forward()
	flat := mgl64.Vec2{heading.X(), heading.Z()}
	if flat.Len() > 0 {
		flat = flat.Normalize().Mul(minimapHeadingLength)
		vector.StrokeLine(screen, float32(px), float32(py), float32(px+flat.X()), float32(py+flat.Y()), 1, colorMinimapPlayer, true)
	}
	vector.DrawFilledCircle(screen, float32(px), float32(py), minimapPlayerDotSize, colorMinimapPlayer, true)

	dist := ball.Transform().Position.Sub(camera.Eye).Len()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.1fm", dist), int(ox), int(oy)+int(h)+4)
}

// drawTrail draws the ball trail fading with age
func (m *Minimap) drawTrail(screen *ebiten.Image, ox, oy float64) {
	for i := 0; i+1 < len(m.trail); i++ {
		p1, p2 := m.trail[i], m.trail[i+1]
		x1, y1 := m.toMap(p1.pos, ox, oy)
		x2, y2 := m.toMap(p2.pos, ox, oy)

		age := (p1.age + p2.age) / 2
		opacity := mgl64.Clamp(1-age/minimapTrailMaxAge, 0, 1)
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, fade(colorMinimapTrail, opacity), true)
	}
}

// drawArc draws the predicted path from above, fading toward its end
func (m *Minimap) drawArc(screen *ebiten.Image, arc []mgl64.Vec3, ox, oy float64) {
	n := len(arc)
	for i := 0; i+1 < n; i++ {
		x1, y1 := m.toMap(arc[i], ox, oy)
		x2, y2 := m.toMap(arc[i+1], ox, oy)
		opacity := math.Max(0.3, 1-float64(i)/float64(n))
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, fade(colorArc, opacity), true)
	}
}
