// Package canvas draws render intents onto an Ebiten image.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"quizgame/internal/render"
)

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 opaque image used as the source for triangles and
// rotated quads.
func white() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Surface implements render.Surface on top of an Ebiten image.
type Surface struct {
	dst   *ebiten.Image
	fonts *Fonts
}

func New(dst *ebiten.Image, fonts *Fonts) *Surface {
	return &Surface{dst: dst, fonts: fonts}
}

var _ render.Surface = (*Surface)(nil)

func (s *Surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h, radius float64, c color.Color) {
	if radius <= 0 {
		vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c, true)
		return
	}
	path := roundedRect(x, y, w, h, radius)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawTriangles(vs, is, c)
}

func (s *Surface) StrokeRect(x, y, w, h, radius, width float64, c color.Color) {
	if radius <= 0 {
		vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), float32(width), c, true)
		return
	}
	path := roundedRect(x, y, w, h, radius)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: float32(width)})
	s.drawTriangles(vs, is, c)
}

func (s *Surface) FillRotatedRect(cx, cy, w, h, angle float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(white(), op)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) StrokeCircle(cx, cy, r, width float64, c color.Color) {
	if r <= 0 {
		return
	}
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(width), c, true)
}

func (s *Surface) Text(str string, x, y float64, st render.TextStyle) {
	face, scale := s.fonts.Face(st.Size)
	m := face.Metrics()
	ascent := float64(m.Ascent.Ceil()) * scale
	lineHeight := float64(m.Height.Ceil()) * scale
	boxHeight := float64((m.Ascent + m.Descent).Ceil()) * scale

	lines := []string{str}
	if st.Wrap > 0 {
		lines = s.fonts.Wrap(face, str, st.Wrap/scale)
	}

	top := y
	switch st.VAlign {
	case render.VAlignCenter:
		top = y - (lineHeight*float64(len(lines)-1)+boxHeight)/2
	case render.VAlignBaseline:
		top = y - ascent
	}

	clr := st.Color
	if clr == nil {
		clr = render.Ink
	}
	for i, line := range lines {
		w := s.fonts.Measure(face, line) * scale
		lx := x
		switch st.Align {
		case render.AlignCenter:
			lx = x - w/2
		case render.AlignRight:
			lx = x - w
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(lx, top+ascent+float64(i)*lineHeight)
		op.ColorScale.ScaleWithColor(clr)
		text.DrawWithOptions(s.dst, line, face, op)
	}
}

func (s *Surface) drawTriangles(vs []ebiten.Vertex, is []uint16, c color.Color) {
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}
	s.dst.DrawTriangles(vs, is, white(), op)
}

func roundedRect(x, y, w, h, radius float64) *vector.Path {
	radius = math.Min(radius, math.Min(w, h)/2)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	r := float32(radius)

	var p vector.Path
	p.MoveTo(x0+r, y0)
	p.LineTo(x1-r, y0)
	p.ArcTo(x1, y0, x1, y0+r, r)
	p.LineTo(x1, y1-r)
	p.ArcTo(x1, y1, x1-r, y1, r)
	p.LineTo(x0+r, y1)
	p.ArcTo(x0, y1, x0, y1-r, r)
	p.LineTo(x0, y0+r)
	p.ArcTo(x0, y0, x0+r, y0, r)
	p.Close()
	return &p
}
