package game

import (
	"strings"
	"testing"

	"gymhoops/court"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigFromWithoutOverrides(t *testing.T) {
	cfg, err := LoadConfigFrom(lookupFrom(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	def := DefaultConfig()
	if cfg.ScreenWidth != def.ScreenWidth || cfg.Gravity != def.Gravity || cfg.Ball != def.Ball {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigFromAppliesOverrides(t *testing.T) {
	cfg, err := LoadConfigFrom(lookupFrom(map[string]string{
		"GYM_SCREEN_WIDTH":        "800",
		"GYM_GRAVITY":             "-3.5",
		"GYM_THROW_MAX_SPEED":     " 20 ",
		"GYM_GRAB_POLICY":         "camera-height",
		"GYM_GRAB_RANGE":          "0.2",
		"GYM_ARC_STEPS":           "30",
		"GYM_AUDIO":               "false",
		"GYM_PROFILE_ON_FPS_DROP": "1",
		"GYM_PROFILES_DIR":        "/tmp/gym-profiles",
		"GYM_FOV":                 "",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.ScreenWidth != 800 {
		t.Errorf("screen width %d", cfg.ScreenWidth)
	}
	if cfg.Gravity != -3.5 {
		t.Errorf("gravity %v", cfg.Gravity)
	}
	if cfg.Charge.MaxSpeed != 20 {
		t.Errorf("max speed %v", cfg.Charge.MaxSpeed)
	}
	if cfg.Ball.GrabPolicy != court.GrabRangeCameraHeight || cfg.Ball.GrabRange != 0.2 {
		t.Errorf("grab %v %v", cfg.Ball.GrabPolicy, cfg.Ball.GrabRange)
	}
	if cfg.Ball.ArcSteps != 30 {
		t.Errorf("arc steps %d", cfg.Ball.ArcSteps)
	}
	if cfg.Audio.Enabled {
		t.Error("audio still enabled")
	}
	if !cfg.ProfileOnFPSDrop || cfg.ProfilesDir != "/tmp/gym-profiles" {
		t.Errorf("profiling %v %q", cfg.ProfileOnFPSDrop, cfg.ProfilesDir)
	}
	if cfg.FieldOfView != DefaultConfig().FieldOfView {
		t.Errorf("empty override changed the field of view to %v", cfg.FieldOfView)
	}
}

func TestLoadConfigFromReportsEveryBadValue(t *testing.T) {
	_, err := LoadConfigFrom(lookupFrom(map[string]string{
		"GYM_SCREEN_WIDTH": "wide",
		"GYM_GRAVITY":      "down",
		"GYM_AUDIO":        "maybe",
		"GYM_GRAB_POLICY":  "anywhere",
	}))
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, key := range []string{"GYM_SCREEN_WIDTH", "GYM_GRAVITY", "GYM_AUDIO", "GYM_GRAB_POLICY"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not mention %s", err, key)
		}
	}
}

func TestLoadConfigFromRejectsInvalidTuning(t *testing.T) {
	_, err := LoadConfigFrom(lookupFrom(map[string]string{
		"GYM_THROW_MIN_SPEED": "30",
		"GYM_THROW_MAX_SPEED": "10",
	}))
	if err == nil || !strings.Contains(err.Error(), "throw speeds") {
		t.Fatalf("got %v, want a throw speed error", err)
	}
}

func TestValidateCatchesBrokenValues(t *testing.T) {
	cases := map[string]func(*Config){
		"screen":      func(c *Config) { c.ScreenHeight = 0 },
		"fov":         func(c *Config) { c.FieldOfView = 180 },
		"room":        func(c *Config) { c.Room.Width = 0 },
		"radius":      func(c *Config) { c.Ball.Radius = 0 },
		"arc steps":   func(c *Config) { c.Ball.ArcSteps = -1 },
		"aim":         func(c *Config) { c.Aim.Step = 0 },
		"physics":     func(c *Config) { c.PhysicsStep = 0 },
		"sub steps":   func(c *Config) { c.MaxSubSteps = 0 },
		"charge time": func(c *Config) { c.Charge.ChargeTime = -1 },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected a validation error", name)
		}
	}
}
