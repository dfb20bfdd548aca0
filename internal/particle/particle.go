// Package particle implements the short-lived visual entities (cursor
// trail, click ripple, confetti, bubbles) and the system that steps them
// once per frame.
package particle

import (
	"math/rand"

	"quizgame/internal/render"
)

// Kind tags a particle variant.
type Kind uint8

const (
	KindCursor Kind = iota
	KindRipple
	KindConfetti
	KindBubble
)

func (k Kind) String() string {
	switch k {
	case KindCursor:
		return "cursor"
	case KindRipple:
		return "ripple"
	case KindConfetti:
		return "confetti"
	case KindBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// Viewport is the drawable area particles are judged against.
type Viewport struct {
	W, H float64
}

// Particle is a self-contained physics and decay simulation.
type Particle interface {
	Kind() Kind
	Update()
	Display(s render.Surface)
	Alive(vp Viewport) bool
}

// Body is the state every variant shares.
type Body struct {
	X, Y   float64
	VX, VY float64
}

func (b *Body) move() {
	b.X += b.VX
	b.Y += b.VY
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
