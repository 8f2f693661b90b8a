// Package effects turns pointer positions into the decorative tilt and glow
// state the page renders. All math here is pure; the TUI layer owns event
// routing and drawing.
package effects

// Tilt is one card's pointer-driven state. Angles are degrees, glow
// coordinates are percentages of the card's box.
type Tilt struct {
	RotateX float64
	RotateY float64
	GlowX   float64
	GlowY   float64
}

// Neutral is the at-rest state a card returns to when the pointer leaves.
func Neutral() Tilt {
	return Tilt{RotateX: 0, RotateY: 0, GlowX: 50, GlowY: 50}
}

// TiltAt maps a normalized pointer position within a card (0,0 = top-left,
// 1,1 = bottom-right) to tilt angles and a glow center. Inputs outside [0,1]
// are clamped first, which bounds the angles to ±5°.
func TiltAt(px, py float64) Tilt {
	px = clamp01(px)
	py = clamp01(py)
	return Tilt{
		RotateY: (px - 0.5) * 10,
		RotateX: -(py - 0.5) * 10,
		GlowX:   px * 100,
		GlowY:   py * 100,
	}
}

// IsNeutral reports whether t is the at-rest state.
func (t Tilt) IsNeutral() bool {
	return t == Neutral()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
