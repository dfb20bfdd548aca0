package particle

import (
	"math"
	"math/rand"

	"quizgame/internal/render"
)

const (
	bubbleAlpha  = 150
	bubbleStroke = 2
	bubbleSway   = 0.5
)

// Bubble rises with a sinusoidal sway. It dies once it has left the top of
// the viewport.
type Bubble struct {
	Body
	Radius float64
}

func NewBubble(rng *rand.Rand, x, y float64) *Bubble {
	return &Bubble{
		Body:   Body{X: x, Y: y, VX: between(rng, -0.5, 0.5), VY: between(rng, -3, -1)},
		Radius: between(rng, 10, 30),
	}
}

func (b *Bubble) Kind() Kind { return KindBubble }

func (b *Bubble) Update() {
	b.move()
	b.X += math.Sin(b.Y/20) * bubbleSway
}

func (b *Bubble) Display(s render.Surface) {
	s.StrokeCircle(b.X, b.Y, b.Radius, bubbleStroke, render.RGBA(0, 150, 255, bubbleAlpha))
}

func (b *Bubble) Alive(Viewport) bool { return b.Y > -b.Radius }
