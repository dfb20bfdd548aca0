package canvas

import (
	"fmt"
	"math"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Fonts hands out faces per text size. Without a TTF every size is the
// 7x13 bitmap face drawn scaled.
type Fonts struct {
	ttf   *truetype.Font
	faces map[int]font.Face
	wrap  *gg.Context
}

// BitmapFonts draws every size with the 7x13 bitmap face.
func BitmapFonts() *Fonts {
	return &Fonts{faces: make(map[int]font.Face), wrap: gg.NewContext(1, 1)}
}

// NewFonts loads the TTF at path, or the bitmap fallback when path is empty.
func NewFonts(path string) (*Fonts, error) {
	f := BitmapFonts()
	if path == "" {
		return f, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	f.ttf = ttf
	return f, nil
}

// Face returns the face for size and the scale to draw it at.
func (f *Fonts) Face(size float64) (font.Face, float64) {
	if f.ttf == nil {
		return basicfont.Face7x13, size / float64(basicfont.Face7x13.Height)
	}
	px := int(math.Max(1, math.Round(size)))
	face, ok := f.faces[px]
	if !ok {
		face = truetype.NewFace(f.ttf, &truetype.Options{Size: float64(px), DPI: 72, Hinting: font.HintingFull})
		f.faces[px] = face
	}
	return face, 1
}

// Wrap splits s into lines no wider than width, measured in face units.
func (f *Fonts) Wrap(face font.Face, s string, width float64) []string {
	f.wrap.SetFontFace(face)
	return f.wrap.WordWrap(s, width)
}

// Measure returns the advance width of s in face units.
func (f *Fonts) Measure(face font.Face, s string) float64 {
	f.wrap.SetFontFace(face)
	w, _ := f.wrap.MeasureString(s)
	return w
}
