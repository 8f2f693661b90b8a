package effects

import (
	"math"
	"testing"
)

func TestTiltAtCenterIsZero(t *testing.T) {
	got := TiltAt(0.5, 0.5)
	if got.RotateX != 0 || got.RotateY != 0 {
		t.Fatalf("center tilt should be zero, got %+v", got)
	}
	if got.GlowX != 50 || got.GlowY != 50 {
		t.Fatalf("center glow should be (50,50), got %+v", got)
	}
}

func TestTiltAtBounds(t *testing.T) {
	positions := []struct{ px, py float64 }{
		{0, 0}, {1, 1}, {0, 1}, {1, 0},
		{0.25, 0.75}, {0.5, 0.5},
		// Out-of-range inputs must clamp, not exceed the bounds.
		{-3, 2}, {1.5, -0.5},
	}
	for _, p := range positions {
		got := TiltAt(p.px, p.py)
		if got.RotateX < -5 || got.RotateX > 5 || got.RotateY < -5 || got.RotateY > 5 {
			t.Fatalf("TiltAt(%v,%v) angle out of ±5°: %+v", p.px, p.py, got)
		}
		if got.GlowX < 0 || got.GlowX > 100 || got.GlowY < 0 || got.GlowY > 100 {
			t.Fatalf("TiltAt(%v,%v) glow out of [0,100]: %+v", p.px, p.py, got)
		}
	}
}

func TestTiltAtCorners(t *testing.T) {
	got := TiltAt(1, 0)
	if got.RotateY != 5 {
		t.Fatalf("rotateY at right edge = %v, want 5", got.RotateY)
	}
	if got.RotateX != 5 {
		t.Fatalf("rotateX at top edge = %v, want 5", got.RotateX)
	}
	got = TiltAt(0, 1)
	if got.RotateY != -5 || got.RotateX != -5 {
		t.Fatalf("bottom-left tilt = %+v, want (-5,-5)", got)
	}
}

func TestNeutralReset(t *testing.T) {
	// Pointer-leave resets to (0,0,50,50) regardless of prior state.
	n := Neutral()
	if n.RotateX != 0 || n.RotateY != 0 || n.GlowX != 50 || n.GlowY != 50 {
		t.Fatalf("Neutral() = %+v", n)
	}
	if !n.IsNeutral() {
		t.Fatalf("Neutral().IsNeutral() = false")
	}
	if TiltAt(0.9, 0.1).IsNeutral() {
		t.Fatalf("off-center tilt should not be neutral")
	}
}

func TestGlowConvergesToTarget(t *testing.T) {
	g := NewGlow(true)
	g.SetTarget(90, 10)

	for i := 0; i < 600; i++ {
		if !g.Step() {
			break
		}
	}
	if math.Abs(g.X-90) > 0.1 || math.Abs(g.Y-10) > 0.1 {
		t.Fatalf("glow did not converge: at (%.2f, %.2f), want (90, 10)", g.X, g.Y)
	}
	if g.Step() {
		t.Fatalf("settled glow should report no further frames needed")
	}
}

func TestGlowLagsBehindTarget(t *testing.T) {
	g := NewGlow(true)
	g.SetTarget(100, 100)
	g.Step()
	// One frame in, the spring must not have snapped to the target.
	if g.X == 100 && g.Y == 100 {
		t.Fatalf("glow jumped straight to target; spring damping is not applied")
	}
}

func TestGlowDisabledIsInert(t *testing.T) {
	g := NewGlow(false)
	g.SetTarget(90, 10)
	if g.Step() {
		t.Fatalf("disabled glow should not animate")
	}
	if g.X != 50 || g.Y != 50 {
		t.Fatalf("disabled glow moved to (%.2f, %.2f)", g.X, g.Y)
	}
}

func TestGlowDisableRecenters(t *testing.T) {
	g := NewGlow(true)
	g.SetTarget(90, 10)
	for i := 0; i < 600 && g.Step(); i++ {
	}
	g.SetEnabled(false)
	if g.X != 50 || g.Y != 50 {
		t.Fatalf("disable should recenter, got (%.2f, %.2f)", g.X, g.Y)
	}
}

func TestGlowTargetClamped(t *testing.T) {
	g := NewGlow(true)
	g.SetTarget(250, -40)
	for i := 0; i < 600 && g.Step(); i++ {
	}
	if g.X < 0 || g.X > 100 || g.Y < 0 || g.Y > 100 {
		t.Fatalf("glow position out of [0,100]: (%.2f, %.2f)", g.X, g.Y)
	}
}
