package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/joho/godotenv"

	"gymhoops/audio"
	"gymhoops/court"
)

// Config holds game configuration
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// FieldOfView is the vertical field of view in degrees
	FieldOfView float64

	// Room is the gym box
	Room court.Room

	// Ball, Aim and Charge tune the throwing core
	Ball   court.BallConfig
	Aim    court.AimConfig
	Charge court.ChargeConfig

	// Audio holds sound levels
	Audio audio.Config

	// Gravity is the vertical acceleration in units per second^2 (negative is down)
	Gravity float64

	// PhysicsStep is the fixed physics sub step in seconds
	PhysicsStep float64

	// MaxSubSteps caps physics sub steps per frame
	MaxSubSteps int

	// MaxFrameTime clamps the frame delta to avoid large jumps after a stall
	MaxFrameTime float64

	// CameraSpawn is where the player starts
	CameraSpawn mgl64.Vec3

	// BallSpawn is where the ball is dropped at load
	BallSpawn mgl64.Vec3

	// MoveSpeed is the walking speed in units per second
	MoveSpeed float64

	// WalkMargin keeps the player this far from the walls
	WalkMargin float64

	// MouseSensitivity is radians of look per pixel of mouse motion
	MouseSensitivity float64

	// Contact behavior of the ball against floor and walls
	FloorRestitution float64
	FloorFriction    float64
	WallRestitution  float64
	WallFriction     float64

	// ProfileOnFPSDrop captures a CPU profile when the frame rate sags
	ProfileOnFPSDrop bool

	// FPSDropThreshold is the frame rate below which a drop is reported
	FPSDropThreshold float64

	// ProfilesDir is where captured profiles are written
	ProfilesDir string
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:      1280,
		ScreenHeight:     720,
		FieldOfView:      60,
		Room:             court.DefaultRoom(),
		Ball:             court.DefaultBallConfig(),
		Aim:              court.DefaultAimConfig(),
		Charge:           court.DefaultChargeConfig(),
		Audio:            audio.DefaultConfig(),
		Gravity:          -9.82,
		PhysicsStep:      1.0 / 60.0,
		MaxSubSteps:      3,
		MaxFrameTime:     0.1,
		CameraSpawn:      mgl64.Vec3{0, 1.8, 3},
		BallSpawn:        mgl64.Vec3{0, 5, 0},
		MoveSpeed:        5.0,
		WalkMargin:       0.5,
		MouseSensitivity: 0.0025,
		FloorRestitution: 0.78,
		FloorFriction:    0.35,
		WallRestitution:  0.65,
		WallFriction:     0.4,
		ProfileOnFPSDrop: false,
		FPSDropThreshold: 45,
		ProfilesDir:      "profiles",
	}
}

// LoadConfig starts from DefaultConfig, reads an optional .env file and applies GYM_*
// environment overrides.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return LoadConfigFrom(os.LookupEnv)
}

// LoadConfigFrom applies overrides read through lookup to DefaultConfig and validates the result.
func LoadConfigFrom(lookup func(string) (string, bool)) (Config, error) {
	cfg := DefaultConfig()
	env := envReader{lookup: lookup}

	env.int("GYM_SCREEN_WIDTH", &cfg.ScreenWidth)
	env.int("GYM_SCREEN_HEIGHT", &cfg.ScreenHeight)
	env.float("GYM_FOV", &cfg.FieldOfView)
	env.float("GYM_GRAVITY", &cfg.Gravity)
	env.float("GYM_MOVE_SPEED", &cfg.MoveSpeed)
	env.float("GYM_MOUSE_SENSITIVITY", &cfg.MouseSensitivity)

	env.float("GYM_CHARGE_TIME", &cfg.Charge.ChargeTime)
	env.float("GYM_THROW_MIN_SPEED", &cfg.Charge.MinSpeed)
	env.float("GYM_THROW_MAX_SPEED", &cfg.Charge.MaxSpeed)

	env.float("GYM_GRAB_RANGE", &cfg.Ball.GrabRange)
	env.grabPolicy("GYM_GRAB_POLICY", &cfg.Ball.GrabPolicy)
	env.int("GYM_ARC_STEPS", &cfg.Ball.ArcSteps)
	env.float("GYM_ARC_STEP_DURATION", &cfg.Ball.ArcStepDuration)

	env.bool("GYM_AUDIO", &cfg.Audio.Enabled)
	env.float("GYM_AUDIO_VOLUME", &cfg.Audio.MasterVolume)

	env.bool("GYM_PROFILE_ON_FPS_DROP", &cfg.ProfileOnFPSDrop)
	env.float("GYM_FPS_DROP_THRESHOLD", &cfg.FPSDropThreshold)
	if dir, ok := lookup("GYM_PROFILES_DIR"); ok && strings.TrimSpace(dir) != "" {
		cfg.ProfilesDir = strings.TrimSpace(dir)
	}

	if len(env.errs) > 0 {
		return Config{}, errors.Join(env.errs...)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports tunables that would break the simulation.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.ScreenWidth > 0 && c.ScreenHeight > 0, "screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	check(c.FieldOfView > 10 && c.FieldOfView < 170, "field of view must be within (10, 170) degrees, got %v", c.FieldOfView)
	check(c.Room.Length > 0 && c.Room.Width > 0 && c.Room.Height > 0, "room extents must be positive, got %+v", c.Room)
	check(c.Ball.Radius > 0, "ball radius must be positive, got %v", c.Ball.Radius)
	check(c.Ball.Mass > 0, "ball mass must be positive, got %v", c.Ball.Mass)
	check(c.Ball.HoldStiffness > 0, "hold stiffness must be positive, got %v", c.Ball.HoldStiffness)
	check(c.Ball.GrabRange >= 0, "grab range must not be negative, got %v", c.Ball.GrabRange)
	check(c.Ball.ArcSteps >= 0, "arc steps must not be negative, got %d", c.Ball.ArcSteps)
	check(c.Ball.ArcStepDuration > 0, "arc step duration must be positive, got %v", c.Ball.ArcStepDuration)
	check(c.Charge.ChargeTime >= 0, "charge time must not be negative, got %v", c.Charge.ChargeTime)
	check(c.Charge.MinSpeed >= 0 && c.Charge.MinSpeed <= c.Charge.MaxSpeed, "throw speeds must satisfy 0 <= min <= max, got min %v max %v", c.Charge.MinSpeed, c.Charge.MaxSpeed)
	check(c.Aim.MinPitch <= c.Aim.MaxPitch, "aim pitch range is inverted: min %v max %v", c.Aim.MinPitch, c.Aim.MaxPitch)
	check(c.Aim.Step > 0, "aim step must be positive, got %v", c.Aim.Step)
	check(c.PhysicsStep > 0, "physics step must be positive, got %v", c.PhysicsStep)
	check(c.MaxSubSteps > 0, "max sub steps must be positive, got %d", c.MaxSubSteps)
	check(c.MaxFrameTime > 0, "max frame time must be positive, got %v", c.MaxFrameTime)
	check(c.MoveSpeed >= 0, "move speed must not be negative, got %v", c.MoveSpeed)
	check(c.Audio.MasterVolume >= 0, "audio volume must not be negative, got %v", c.Audio.MasterVolume)

	return errors.Join(errs...)
}

// envReader collects parse errors so every bad override is reported at once.
type envReader struct {
	lookup func(string) (string, bool)
	errs   []error
}

func (e *envReader) raw(key string) (string, bool) {
	value, ok := e.lookup(key)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func (e *envReader) int(key string, dst *int) {
	value, ok := e.raw(key)
	if !ok {
		return
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: invalid integer %q: %w", key, value, err))
		return
	}
	*dst = parsed
}

func (e *envReader) float(key string, dst *float64) {
	value, ok := e.raw(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: invalid number %q: %w", key, value, err))
		return
	}
	*dst = parsed
}

func (e *envReader) bool(key string, dst *bool) {
	value, ok := e.raw(key)
	if !ok {
		return
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		e.errs = append(e.errs, fmt.Errorf("%s: invalid boolean %q: %w", key, value, err))
		return
	}
	*dst = parsed
}

func (e *envReader) grabPolicy(key string, dst *court.GrabRangePolicy) {
	value, ok := e.raw(key)
	if !ok {
		return
	}
	switch strings.ToLower(value) {
	case "fixed":
		*dst = court.GrabRangeFixed
	case "camera-height", "camera_height":
		*dst = court.GrabRangeCameraHeight
	default:
		e.errs = append(e.errs, fmt.Errorf("%s: unknown grab policy %q (want fixed or camera-height)", key, value))
	}
}
