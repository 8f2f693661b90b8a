package effects

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring tuning for the page-wide glow. Expressed as a physical
// stiffness/damping/mass triple and converted to harmonica's angular
// frequency + damping ratio form. The resulting motion lags smoothly behind
// the raw pointer instead of jumping with every event.
const (
	glowStiffness = 120.0
	glowDamping   = 20.0
	glowMass      = 0.25

	glowFPS = 60
)

func glowSpring() harmonica.Spring {
	omega := math.Sqrt(glowStiffness / glowMass)
	zeta := glowDamping / (2 * math.Sqrt(glowStiffness*glowMass))
	return harmonica.NewSpring(harmonica.FPS(glowFPS), omega, zeta)
}

// Glow is the page-wide cursor-follower: a spring-damped position in
// percent-of-viewport space. One instance per page, stepped once per
// animation frame. When disabled (reduced motion) it renders nothing and
// ignores targets.
type Glow struct {
	spring harmonica.Spring

	X, Y             float64
	velX, velY       float64
	targetX, targetY float64

	enabled bool
	active  bool
}

// NewGlow starts centered. enabled=false produces an inert glow whose state
// never changes; the caller simply skips drawing it.
func NewGlow(enabled bool) *Glow {
	return &Glow{
		spring:  glowSpring(),
		X:       50, Y: 50,
		targetX: 50, targetY: 50,
		enabled: enabled,
	}
}

func (g *Glow) Enabled() bool { return g.enabled }

// SetEnabled flips the reduced-motion gate. Disabling also re-centers so a
// later re-enable doesn't continue from a stale position.
func (g *Glow) SetEnabled(enabled bool) {
	g.enabled = enabled
	if !enabled {
		g.X, g.Y = 50, 50
		g.velX, g.velY = 0, 0
		g.targetX, g.targetY = 50, 50
		g.active = false
	}
}

// SetTarget points the spring at a new pointer position, in percent of the
// viewport. No-op while disabled.
func (g *Glow) SetTarget(xPct, yPct float64) {
	if !g.enabled {
		return
	}
	g.targetX = clampPct(xPct)
	g.targetY = clampPct(yPct)
	g.active = true
}

// Step advances the spring one frame. Returns false once the glow has
// settled on its target, letting the caller stop scheduling frames.
func (g *Glow) Step() bool {
	if !g.enabled || !g.active {
		return false
	}
	g.X, g.velX = g.spring.Update(g.X, g.velX, g.targetX)
	g.Y, g.velY = g.spring.Update(g.Y, g.velY, g.targetY)
	if g.settled() {
		g.X, g.Y = g.targetX, g.targetY
		g.velX, g.velY = 0, 0
		g.active = false
		return false
	}
	return true
}

func (g *Glow) settled() bool {
	const eps = 0.05
	return math.Abs(g.X-g.targetX) < eps &&
		math.Abs(g.Y-g.targetY) < eps &&
		math.Abs(g.velX) < eps &&
		math.Abs(g.velY) < eps
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
