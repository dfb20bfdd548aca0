// Package render defines the draw-intent contract the quiz and particle
// code issue against, independent of the graphics backend.
package render

import "image/color"

// Align is the horizontal text anchor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical text anchor.
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBaseline
)

// TextStyle controls a Text intent. Wrap > 0 word-wraps at that width.
type TextStyle struct {
	Size   float64
	Color  color.Color
	Align  Align
	VAlign VAlign
	Wrap   float64
}

// Surface accepts draw intents and reports its current size.
type Surface interface {
	Size() (w, h float64)
	Clear(c color.Color)
	FillRect(x, y, w, h, radius float64, c color.Color)
	StrokeRect(x, y, w, h, radius, width float64, c color.Color)
	// FillRotatedRect fills a w*h rectangle centred on (cx, cy) and rotated
	// by angle radians.
	FillRotatedRect(cx, cy, w, h, angle float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeCircle(cx, cy, r, width float64, c color.Color)
	Text(s string, x, y float64, st TextStyle)
}
