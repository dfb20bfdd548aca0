package particle

import (
	"image/color"
	"math"
	"math/rand"

	"quizgame/internal/render"
)

const confettiGravity = 0.05

// Confetti is a spinning square falling under gravity. It dies once it has
// left the bottom of the viewport.
type Confetti struct {
	Body
	Size     float64
	Angle    float64
	Rotation float64
	Color    color.NRGBA
}

func NewConfetti(rng *rand.Rand, x, y float64) *Confetti {
	return &Confetti{
		Body:     Body{X: x, Y: y, VX: between(rng, -2, 2), VY: between(rng, 1, 4)},
		Size:     between(rng, 5, 10),
		Angle:    between(rng, 0, 2*math.Pi),
		Rotation: between(rng, -0.1, 0.1),
		Color:    render.RGBA(between(rng, 0, 255), between(rng, 0, 255), between(rng, 0, 255), 255),
	}
}

func (c *Confetti) Kind() Kind { return KindConfetti }

func (c *Confetti) Update() {
	c.move()
	c.Angle += c.Rotation
	c.VY += confettiGravity
}

func (c *Confetti) Display(s render.Surface) {
	s.FillRotatedRect(c.X, c.Y, c.Size, c.Size, c.Angle, c.Color)
}

func (c *Confetti) Alive(vp Viewport) bool { return c.Y < vp.H+c.Size }
