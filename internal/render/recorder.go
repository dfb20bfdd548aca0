package render

import "image/color"

// Op is one recorded draw intent.
type Op struct {
	Kind  string
	X, Y  float64
	W, H  float64
	R     float64
	Angle float64
	Color color.Color
	Text  string
	Style TextStyle
}

// Recorder is a Surface that records intents instead of drawing them.
type Recorder struct {
	W, H float64
	Ops  []Op
}

func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h}
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: c})
}

func (r *Recorder) FillRect(x, y, w, h, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fillRect", X: x, Y: y, W: w, H: h, R: radius, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, radius, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "strokeRect", X: x, Y: y, W: w, H: h, R: radius, Color: c})
}

func (r *Recorder) FillRotatedRect(cx, cy, w, h, angle float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fillRotatedRect", X: cx, Y: cy, W: w, H: h, Angle: angle, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fillCircle", X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "strokeCircle", X: cx, Y: cy, R: radius, W: width, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, st TextStyle) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Style: st, Color: st.Color})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every recorded text string in draw order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
