package render

import "image/color"

// RGBA builds a straight-alpha color from float channels, clamping each
// to [0,255].
func RGBA(r, g, b, a float64) color.NRGBA {
	return color.NRGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: clamp8(a)}
}

func clamp8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Palette
var (
	Background   = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	Ink          = color.NRGBA{0x00, 0x00, 0x00, 0xFF}
	ErrorRed     = color.NRGBA{0xFF, 0x00, 0x00, 0xFF}
	PraiseGreen  = color.NRGBA{50, 200, 50, 0xFF}
	EncourageOrg = color.NRGBA{255, 165, 0, 0xFF}
	ButtonFill   = color.NRGBA{240, 240, 240, 0xFF}
	ButtonStroke = color.NRGBA{150, 150, 150, 0xFF}
	HoverFill    = color.NRGBA{220, 220, 255, 0xFF}
	HoverStroke  = color.NRGBA{100, 100, 255, 0xFF}
	CursorOuter  = color.NRGBA{100, 100, 255, 150}
	CursorInner  = color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
)
