package particle

import "quizgame/internal/render"

const (
	rippleGrowth = 5
	rippleFade   = 15
	rippleStroke = 3
)

// Ripple is the expanding ring left by a click.
type Ripple struct {
	Body
	Radius float64
	Alpha  float64
}

func NewRipple(x, y float64) *Ripple {
	return &Ripple{Body: Body{X: x, Y: y}, Alpha: 255}
}

func (r *Ripple) Kind() Kind { return KindRipple }

func (r *Ripple) Update() {
	r.Radius += rippleGrowth
	r.Alpha -= rippleFade
}

func (r *Ripple) Display(s render.Surface) {
	s.StrokeCircle(r.X, r.Y, r.Radius, rippleStroke, render.RGBA(0, 150, 255, r.Alpha))
}

func (r *Ripple) Alive(Viewport) bool { return r.Alpha > 0 }
