package court

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAimTicksStayInRange(t *testing.T) {
	cfg := DefaultAimConfig()
	a := NewAimController(cfg)

	a.Ticks(-1000)
	if a.Pitch() != cfg.MaxPitch {
		t.Fatalf("pitch %v after scrolling up, want max %v", a.Pitch(), cfg.MaxPitch)
	}
	for i := 0; i < 50; i++ {
		a.Tick(-1)
		if a.Pitch() > cfg.MaxPitch {
			t.Fatalf("pitch %v above max", a.Pitch())
		}
	}

	a.Ticks(1000)
	if a.Pitch() != cfg.MinPitch {
		t.Fatalf("pitch %v after scrolling down, want min %v", a.Pitch(), cfg.MinPitch)
	}
	for i := 0; i < 50; i++ {
		a.Tick(5)
		if a.Pitch() < cfg.MinPitch {
			t.Fatalf("pitch %v below min", a.Pitch())
		}
	}
}

func TestAimTickUsesOnlySign(t *testing.T) {
	cfg := DefaultAimConfig()
	a := NewAimController(cfg)

	a.Tick(120)
	assertFloat(t, "pitch after one tick", a.Pitch(), -cfg.Step, 1e-12)

	a.Tick(0)
	assertFloat(t, "pitch after zero tick", a.Pitch(), -cfg.Step, 1e-12)

	a.Tick(-3)
	assertFloat(t, "pitch back to zero", a.Pitch(), 0, 1e-12)
}

func TestAimSetPitchClamps(t *testing.T) {
	cfg := DefaultAimConfig()
	a := NewAimController(cfg)

	a.SetPitch(10)
	if a.Pitch() != cfg.MaxPitch {
		t.Fatalf("pitch %v, want %v", a.Pitch(), cfg.MaxPitch)
	}
	a.SetPitch(math.NaN())
	if a.Pitch() != cfg.MaxPitch {
		t.Fatalf("NaN changed the pitch to %v", a.Pitch())
	}
}

func TestAimDirectionWithoutPitchIsForward(t *testing.T) {
	a := NewAimController(DefaultAimConfig())
	dir := a.Direction(mgl64.Vec3{0, 0, -2}, mgl64.Vec3{1, 0, 0})
	assertVec(t, "direction", dir, mgl64.Vec3{0, 0, -1}, 1e-12)
}

func TestAimDirectionPositivePitchAimsUp(t *testing.T) {
	a := NewAimController(DefaultAimConfig())
	a.SetPitch(0.2)

	dir := a.Direction(mgl64.Vec3{0, 0, -1}, mgl64.Vec3{1, 0, 0})
	assertFloat(t, "length", dir.Len(), 1, 1e-12)
	assertVec(t, "direction", dir, mgl64.Vec3{0, math.Sin(0.2), -math.Cos(0.2)}, 1e-12)
}

func TestAimDirectionDegenerateInputs(t *testing.T) {
	a := NewAimController(DefaultAimConfig())
	a.SetPitch(0.3)

	if dir := a.Direction(mgl64.Vec3{}, mgl64.Vec3{1, 0, 0}); dir != (mgl64.Vec3{}) {
		t.Fatalf("zero forward gave %v", dir)
	}
	dir := a.Direction(mgl64.Vec3{0, 0, -3}, mgl64.Vec3{})
	assertVec(t, "zero right", dir, mgl64.Vec3{0, 0, -1}, 1e-12)
}
