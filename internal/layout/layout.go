// Package layout computes the responsive rectangles the quiz screens draw
// and hit-test against.
package layout

import "math"

const (
	BaseWidth  = 800
	BaseHeight = 600

	// TwoColumnMinWidth is the surface width above which four options are
	// laid out in two columns.
	TwoColumnMinWidth = 900
)

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) is strictly inside r.
func (r Rect) Contains(x, y float64) bool {
	return x > r.X && x < r.X+r.W && y > r.Y && y < r.Y+r.H
}

func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Layout is the set of rectangles for one surface size.
type Layout struct {
	W, H    float64
	Scale   float64
	Start   Rect
	Restart Rect
}

// New lays out a surface of w x h.
func New(w, h float64) Layout {
	scale := math.Min(w/BaseWidth, h/BaseHeight)
	btnW := 200 * scale
	btnH := 50 * scale
	return Layout{
		W:       w,
		H:       h,
		Scale:   scale,
		Start:   Rect{X: w/2 - btnW/2, Y: h/2 + 50*scale, W: btnW, H: btnH},
		Restart: Rect{X: w/2 - btnW/2, Y: h - 100*scale, W: btnW, H: btnH},
	}
}

// S scales a base-resolution length.
func (l Layout) S(v float64) float64 { return v * l.Scale }

// Options returns the button rectangles for n answer options.
func (l Layout) Options(n int) []Rect {
	left := l.S(100)
	top := l.S(250)
	gapY := l.S(70)
	btnH := l.S(50)

	rects := make([]Rect, n)
	if l.W > TwoColumnMinWidth && n == 4 {
		gutter := l.S(20)
		colW := (l.W - left*2 - gutter) / 2
		for i := range rects {
			col, row := i%2, i/2
			rects[i] = Rect{X: left + float64(col)*(colW+gutter), Y: top + float64(row)*gapY, W: colW, H: btnH}
		}
		return rects
	}
	for i := range rects {
		rects[i] = Rect{X: left, Y: top + float64(i)*gapY, W: l.W - left*2, H: btnH}
	}
	return rects
}

// OptionAt returns the index of the option under (x, y), or -1.
func (l Layout) OptionAt(n int, x, y float64) int {
	for i, r := range l.Options(n) {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}
