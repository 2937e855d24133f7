package game

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gymhoops/court"
)

// Court palette
var (
	colorBackground = color.RGBA{18, 18, 28, 255}
	colorCourtLine  = color.RGBA{245, 245, 245, 255}
	colorWallEdge   = color.RGBA{90, 110, 170, 255}
	colorWallStripe = color.RGBA{60, 80, 150, 255}
	colorHoop       = color.RGBA{230, 90, 40, 255}
	colorBall       = color.RGBA{235, 120, 30, 255}
	colorBallSeam   = color.RGBA{40, 20, 10, 255}
	colorArc        = color.RGBA{255, 255, 255, 255}
	colorMarker     = color.RGBA{80, 255, 120, 255}
	colorDebug      = color.RGBA{255, 60, 200, 255}
)

const (
	nearPlane = 0.05
	farPlane  = 100.0

	// hoopHeight and hoopRadius follow a regulation rim
	hoopHeight  = 3.05
	hoopRadius  = 0.23
	hoopInset   = 1.2
	centerRadii = 1.8

	// markerHalfSize is half the side of the hit marker square
	markerHalfSize = 0.2

	// stripeHeight is where the two tone wall paint meets
	stripeHeight = 2.5
)

// Projection maps world points to screen pixels for one frame
type Projection struct {
	view      mgl64.Mat4
	proj      mgl64.Mat4
	width     float64
	height    float64
	focal     float64
	hasCamera bool
}

// NewProjection builds a projection for the camera and screen size
func NewProjection(camera *court.FirstPersonCamera, fovDegrees float64, width, height int) Projection {
	fovY := mgl64.DegToRad(fovDegrees)
	aspect := float64(width) / float64(height)
	return Projection{
		view:      camera.ViewMatrix(),
		proj:      mgl64.Perspective(fovY, aspect, nearPlane, farPlane),
		width:     float64(width),
		height:    float64(height),
		focal:     float64(height) / (2 * math.Tan(fovY/2)),
		hasCamera: true,
	}
}

// toView transforms a world point into camera space, where visible points have z < -nearPlane
func (p Projection) toView(world mgl64.Vec3) mgl64.Vec3 {
	return p.view.Mul4x1(world.Vec4(1)).Vec3()
}

// viewToScreen projects a camera space point that is in front of the near plane
func (p Projection) viewToScreen(v mgl64.Vec3) (float64, float64) {
	clip := p.proj.Mul4x1(v.Vec4(1))
	w := clip.W()
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	return (ndcX + 1) * 0.5 * p.width, (1 - ndcY) * 0.5 * p.height
}

// Project returns screen coordinates and view depth, or ok=false when the point is behind the camera
func (p Projection) Project(world mgl64.Vec3) (x, y, depth float64, ok bool) {
	if !p.hasCamera {
		return 0, 0, 0, false
	}
	v := p.toView(world)
	if v.Z() > -nearPlane {
		return 0, 0, 0, false
	}
	x, y = p.viewToScreen(v)
	return x, y, -v.Z(), true
}

// ProjectSegment clips a world segment against the near plane and projects what is left
func (p Projection) ProjectSegment(a, b mgl64.Vec3) (x0, y0, x1, y1 float64, ok bool) {
	if !p.hasCamera {
		return 0, 0, 0, 0, false
	}
	va := p.toView(a)
	vb := p.toView(b)
	limit := -nearPlane

	aIn := va.Z() <= limit
	bIn := vb.Z() <= limit
	switch {
	case !aIn && !bIn:
		return 0, 0, 0, 0, false
	case !aIn:
		t := (limit - va.Z()) / (vb.Z() - va.Z())
		va = va.Add(vb.Sub(va).Mul(t))
	case !bIn:
		t := (limit - vb.Z()) / (va.Z() - vb.Z())
		vb = vb.Add(va.Sub(vb).Mul(t))
	}

	x0, y0 = p.viewToScreen(va)
	x1, y1 = p.viewToScreen(vb)
	return x0, y0, x1, y1, true
}

// ScreenRadius is the on screen radius of a sphere of radius r at the given depth
func (p Projection) ScreenRadius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return r * p.focal / depth
}

// Renderer draws the gym, the ball and its aiming aids
type Renderer struct {
	room court.Room
	fov  float64

	courtLines [][2]mgl64.Vec3
	wallLines  [][2]mgl64.Vec3
	stripes    [][2]mgl64.Vec3
	hoopLines  [][2]mgl64.Vec3
}

// NewRenderer creates a new renderer and precomputes the static gym lines
func NewRenderer(room court.Room, fovDegrees float64) *Renderer {
	r := &Renderer{room: room, fov: fovDegrees}
	r.buildLines()
	return r
}

// Render renders one frame of the scene
func (r *Renderer) Render(screen *ebiten.Image, camera *court.FirstPersonCamera, ball *court.Ball, debug *DebugState) {
	screen.Fill(colorBackground)

	bounds := screen.Bounds()
	proj := NewProjection(camera, r.fov, bounds.Dx(), bounds.Dy())

	r.drawLines(screen, proj, r.stripes, colorWallStripe, 1)
	r.drawLines(screen, proj, r.wallLines, colorWallEdge, 1)
	r.drawLines(screen, proj, r.courtLines, colorCourtLine, 1.5)
	r.drawLines(screen, proj, r.hoopLines, colorHoop, 2)

	r.drawArc(screen, proj, ball.Arc())
	r.drawMarker(screen, proj, ball.Marker())
	r.drawBall(screen, proj, ball.Transform(), ball.Config().Radius)

	if debug.ShowPlanes {
		r.drawDebug(screen, proj, ball)
	}
	if ball.Held() {
		drawCrosshair(screen)
	}
}

func (r *Renderer) drawLines(screen *ebiten.Image, proj Projection, lines [][2]mgl64.Vec3, clr color.Color, width float32) {
	for _, line := range lines {
		x0, y0, x1, y1, ok := proj.ProjectSegment(line[0], line[1])
		if !ok {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
	}
}

// drawArc draws the predicted path as dots that fade toward the end
func (r *Renderer) drawArc(screen *ebiten.Image, proj Projection, arc []mgl64.Vec3) {
	n := len(arc)
	for i, point := range arc {
		x, y, depth, ok := proj.Project(point)
		if !ok {
			continue
		}
		alpha := 1.0 - float64(i)/float64(n)*0.7
		clr := fade(colorArc, alpha)

		radius := proj.ScreenRadius(0.03, depth)
		if radius < 1.5 {
			radius = 1.5
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), clr, true)
	}
}

// drawMarker draws the hit marker as a square lying on the struck surface
func (r *Renderer) drawMarker(screen *ebiten.Image, proj Projection, marker court.HitMarker) {
	if !marker.Visible {
		return
	}
	corners := [4]mgl64.Vec3{
		{-markerHalfSize, -markerHalfSize, 0},
		{markerHalfSize, -markerHalfSize, 0},
		{markerHalfSize, markerHalfSize, 0},
		{-markerHalfSize, markerHalfSize, 0},
	}
	var world [4]mgl64.Vec3
	for i, c := range corners {
		world[i] = marker.Position.Add(marker.Orientation.Rotate(c))
	}
	for i := range world {
		x0, y0, x1, y1, ok := proj.ProjectSegment(world[i], world[(i+1)%4])
		if ok {
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, colorMarker, true)
		}
	}
	for _, diag := range [][2]int{{0, 2}, {1, 3}} {
		x0, y0, x1, y1, ok := proj.ProjectSegment(world[diag[0]], world[diag[1]])
		if ok {
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, colorMarker, true)
		}
	}
}

// drawBall draws the ball with a seam so spin is visible
func (r *Renderer) drawBall(screen *ebiten.Image, proj Projection, t court.Transform, radius float64) {
	x, y, depth, ok := proj.Project(t.Position)
	if !ok {
		return
	}
	sr := proj.ScreenRadius(radius, depth)
	if sr < 1 {
		sr = 1
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(sr), colorBall, true)

	seamEnd := t.Position.Add(t.Orientation.Rotate(mgl64.Vec3{radius, 0, 0}))
	seamStart := t.Position.Sub(t.Orientation.Rotate(mgl64.Vec3{radius, 0, 0}))
	x0, y0, x1, y1, ok := proj.ProjectSegment(seamStart, seamEnd)
	if ok {
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, colorBallSeam, true)
	}
}

// drawDebug outlines the physics body and the arc hit normal
func (r *Renderer) drawDebug(screen *ebiten.Image, proj Projection, ball *court.Ball) {
	body := ball.Body()
	if x, y, depth, ok := proj.Project(body.Position()); ok {
		sr := proj.ScreenRadius(ball.Config().Radius, depth)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(sr), 1, colorDebug, true)
	}

	if hit, ok := ball.ArcHit(); ok {
		tip := hit.Point.Add(hit.Normal.Mul(0.5))
		x0, y0, x1, y1, visible := proj.ProjectSegment(hit.Point, tip)
		if visible {
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, colorDebug, true)
		}
	}
}

func drawCrosshair(screen *ebiten.Image) {
	b := screen.Bounds()
	cx := float32(b.Dx()) / 2
	cy := float32(b.Dy()) / 2
	vector.StrokeLine(screen, cx-6, cy, cx+6, cy, 1, colorCourtLine, true)
	vector.StrokeLine(screen, cx, cy-6, cx, cy+6, 1, colorCourtLine, true)
}

// buildLines lays out the floor markings, wall edges and hoops
func (r *Renderer) buildLines() {
	hl := r.room.HalfLength()
	hw := r.room.HalfWidth()
	h := r.room.Height
	lift := 0.002

	corners := [4]mgl64.Vec3{{-hl, 0, -hw}, {hl, 0, -hw}, {hl, 0, hw}, {-hl, 0, hw}}
	for i := range corners {
		a, b := corners[i], corners[(i+1)%4]
		r.wallLines = append(r.wallLines,
			[2]mgl64.Vec3{a, b},
			[2]mgl64.Vec3{a.Add(mgl64.Vec3{0, h, 0}), b.Add(mgl64.Vec3{0, h, 0})},
			[2]mgl64.Vec3{a, a.Add(mgl64.Vec3{0, h, 0})},
		)
		r.stripes = append(r.stripes, [2]mgl64.Vec3{a.Add(mgl64.Vec3{0, stripeHeight, 0}), b.Add(mgl64.Vec3{0, stripeHeight, 0})})
	}

	// court boundary sits a meter inside the walls
	cl, cw := hl-1, hw-1
	boundary := [4]mgl64.Vec3{{-cl, lift, -cw}, {cl, lift, -cw}, {cl, lift, cw}, {-cl, lift, cw}}
	for i := range boundary {
		r.courtLines = append(r.courtLines, [2]mgl64.Vec3{boundary[i], boundary[(i+1)%4]})
	}
	r.courtLines = append(r.courtLines, [2]mgl64.Vec3{{0, lift, -cw}, {0, lift, cw}})
	r.courtLines = append(r.courtLines, circleLines(mgl64.Vec3{0, lift, 0}, centerRadii, 32)...)

	for _, side := range []float64{-1, 1} {
		rim := mgl64.Vec3{side * (hl - hoopInset), hoopHeight, 0}
		r.hoopLines = append(r.hoopLines, circleLines(rim, hoopRadius, 16)...)

		board := side * (hl - hoopInset + hoopRadius + 0.15)
		r.hoopLines = append(r.hoopLines,
			[2]mgl64.Vec3{{board, hoopHeight - 0.15, -0.9}, {board, hoopHeight - 0.15, 0.9}},
			[2]mgl64.Vec3{{board, hoopHeight + 0.9, -0.9}, {board, hoopHeight + 0.9, 0.9}},
			[2]mgl64.Vec3{{board, hoopHeight - 0.15, -0.9}, {board, hoopHeight + 0.9, -0.9}},
			[2]mgl64.Vec3{{board, hoopHeight - 0.15, 0.9}, {board, hoopHeight + 0.9, 0.9}},
		)

		// free throw lane
		baseline := side * cl
		lane := side * (cl - 5.8)
		r.courtLines = append(r.courtLines,
			[2]mgl64.Vec3{{baseline, lift, -2.45}, {lane, lift, -2.45}},
			[2]mgl64.Vec3{{baseline, lift, 2.45}, {lane, lift, 2.45}},
			[2]mgl64.Vec3{{lane, lift, -2.45}, {lane, lift, 2.45}},
		)
	}
}

// fade scales a premultiplied color by alpha
func fade(c color.RGBA, alpha float64) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(float64(v) * alpha) }
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), scale(c.A)}
}

// circleLines approximates a horizontal circle with segments
func circleLines(center mgl64.Vec3, radius float64, segments int) [][2]mgl64.Vec3 {
	lines := make([][2]mgl64.Vec3, 0, segments)
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		p0 := center.Add(mgl64.Vec3{math.Cos(a0) * radius, 0, math.Sin(a0) * radius})
		p1 := center.Add(mgl64.Vec3{math.Cos(a1) * radius, 0, math.Sin(a1) * radius})
		lines = append(lines, [2]mgl64.Vec3{p0, p1})
	}
	return lines
}
