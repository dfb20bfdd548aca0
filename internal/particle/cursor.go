package particle

import (
	"math/rand"

	"quizgame/internal/render"
)

const cursorFade = 5

// Cursor is one dot of the pointer trail. It drifts and fades to nothing.
type Cursor struct {
	Body
	Alpha float64
	Size  float64
	green float64
}

func NewCursor(rng *rand.Rand, x, y float64) *Cursor {
	return &Cursor{
		Body:  Body{X: x, Y: y, VX: between(rng, -1, 1), VY: between(rng, -1, 1)},
		Alpha: 255,
		Size:  between(rng, 3, 7),
		green: between(rng, 150, 255),
	}
}

func (c *Cursor) Kind() Kind { return KindCursor }

func (c *Cursor) Update() {
	c.move()
	c.Alpha -= cursorFade
}

func (c *Cursor) Display(s render.Surface) {
	s.FillCircle(c.X, c.Y, c.Size/2, render.RGBA(100, c.green, 255, c.Alpha))
}

func (c *Cursor) Alive(Viewport) bool { return c.Alpha > 0 }
