package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gymhoops/audio"
	"gymhoops/physics"
)

// Game represents the main game state
type Game struct {
	config Config

	scene    *Scene
	input    InputProvider
	player   *PlayerInput
	renderer *Renderer
	hud      *HUD
	minimap  *Minimap
	sounds   *audio.SoundManager

	monitor  *FrameMonitor
	profiler *Profiler
	debug    DebugState

	paused      bool
	started     bool
	lastContact string

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance
func NewGame(config Config) *Game {
	player := NewPlayerInput()
	g := &Game{
		config:         config,
		scene:          NewScene(config),
		input:          player,
		player:         player,
		renderer:       NewRenderer(config.Room, config.FieldOfView),
		hud:            NewHUD(),
		minimap:        NewMinimap(config.Room),
		sounds:         audio.NewSoundManager(config.Audio),
		monitor:        NewFrameMonitor(config.FPSDropThreshold),
		profiler:       NewProfiler(config.ProfilesDir),
		lastUpdateTime: time.Now(),
	}

	if err := g.sounds.Initialize(); err != nil {
		log.Printf("[audio] disabled: %v", err)
	}
	g.scene.World.OnContact = g.onContact

	return g
}

// onContact plays a bounce and remembers the surface for the debug overlay
func (g *Game) onContact(contact physics.Contact) {
	g.sounds.PlayBounce(contact.ImpactSpeed)
	g.lastContact = fmt.Sprintf("%s %.1f m/s", contact.Plane.Name, contact.ImpactSpeed)
}

// Update advances the game by one tick
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > g.config.MaxFrameTime {
		deltaTime = g.config.MaxFrameTime
	}

	if !g.started {
		g.player.Capture(true)
		g.started = true
	}

	g.input.Update()
	frame := g.input.Poll()

	if frame.ToggleDebug {
		g.debug.Toggle()
	}
	if frame.TogglePause {
		g.paused = !g.paused
		g.player.Capture(!g.paused)
	}

	g.trackFrameRate(deltaTime)

	if g.paused {
		return nil
	}

	event := g.scene.Advance(frame, deltaTime, g.config)
	g.minimap.Update(deltaTime, g.scene.Ball.Transform().Position, g.scene.BallBody.Velocity())
	if event.Thrown {
		g.sounds.PlayThrow(event.Speed)
		if g.debug.Enabled() {
			v := event.Velocity
			log.Printf("throw speed=%.2f pitch=%.3f velocity=(%.2f, %.2f, %.2f)",
				event.Speed, g.scene.Ball.Aim().Pitch(), v.X(), v.Y(), v.Z())
		}
	}

	return nil
}

// trackFrameRate feeds the frame monitor and starts a profile on a drop when enabled
func (g *Game) trackFrameRate(deltaTime float64) {
	if !g.monitor.Tick(deltaTime) {
		return
	}
	log.Printf("FPS drop detected (%.0f FPS)", g.monitor.FPS())
	if !g.config.ProfileOnFPSDrop {
		return
	}
	reason := fmt.Sprintf("fps%.0f-%s", g.monitor.FPS(), g.scene.Ball.State())
	if err := g.profiler.CaptureProfile(reason); err != nil {
		log.Printf("[profile] not captured: %v", err)
	}
}

// Draw renders the scene and the overlay
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.scene.Camera, g.scene.Ball, &g.debug)
	g.minimap.Draw(screen, g.scene.Camera, g.scene.Ball)
	g.hud.Draw(screen, HUDStatus{
		Ball:    g.scene.Ball,
		FPS:     g.monitor.FPS(),
		Paused:  g.paused,
		Debug:   &g.debug,
		Camera:  g.scene.Camera,
		Contact: g.lastContact,
	})
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Close releases the audio device
func (g *Game) Close() {
	g.sounds.Cleanup()
}
