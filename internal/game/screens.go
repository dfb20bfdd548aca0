package game

import (
	"fmt"

	"quizgame/internal/layout"
	"quizgame/internal/quiz"
	"quizgame/internal/render"
)

var optionLabels = [quiz.OptionCount]string{"A", "B", "C", "D"}

const buttonRadius = 10

// render draws one frame: the phase screen, then the ripple and cursor
// trail, then the pointer on top.
func (g *Game) render(s render.Surface) {
	l := layout.New(s.Size())
	s.Clear(render.Background)

	switch g.session.Phase() {
	case quiz.PhaseStart:
		g.drawStart(s, l)
	case quiz.PhaseQuiz:
		g.drawQuiz(s, l)
	case quiz.PhaseResult:
		g.drawResult(s, l)
	}

	g.particles.DrawAmbient(s)
	g.drawCursor(s)
}

func (g *Game) drawStart(s render.Surface, l layout.Layout) {
	s.Text("Welcome to the Interactive Quiz", l.W/2, l.H/2-l.S(50), render.TextStyle{
		Size: l.S(32), Color: render.Ink, Align: render.AlignCenter, VAlign: render.VAlignCenter,
	})
	if g.session.Total() == 0 {
		msg := "Error: no questions found!"
		if g.loadErr != nil {
			msg = fmt.Sprintf("Error: no questions found! (%v)", g.loadErr)
		}
		s.Text(msg, l.W/2, l.H/2, render.TextStyle{
			Size: l.S(18), Color: render.ErrorRed, Align: render.AlignCenter, VAlign: render.VAlignCenter, Wrap: l.W - l.S(100),
		})
	}
	g.drawButton(s, l, l.Start, "Start Quiz", l.Start.Contains(g.cursorX, g.cursorY), render.AlignCenter)
}

func (g *Game) drawQuiz(s render.Surface, l layout.Layout) {
	q, p, ok := g.session.Current()
	if !ok {
		s.Text("Error: no question to show!", l.W/2, l.H/2, render.TextStyle{
			Size: 24, Color: render.ErrorRed, Align: render.AlignCenter, VAlign: render.VAlignCenter,
		})
		return
	}

	heading := render.TextStyle{Size: l.S(28), Color: render.Ink, Align: render.AlignLeft, VAlign: render.VAlignTop}
	s.Text(fmt.Sprintf("Question %d:", g.session.Index()+1), l.S(50), l.S(50), heading)
	heading.Wrap = l.W - l.S(100)
	s.Text(q.Text, l.S(50), l.S(100), heading)

	for i, r := range l.Options(len(p.Options)) {
		label := fmt.Sprintf("%s. %s", optionLabels[i], p.Options[i])
		g.drawButton(s, l, r, label, i == g.hovered, render.AlignLeft)
	}
}

func (g *Game) drawResult(s render.Surface, l layout.Layout) {
	title, clr := "Keep going, you can do it!", render.EncourageOrg
	if g.session.Outcome() == quiz.OutcomePraise {
		title, clr = "Excellent! Congratulations!", render.PraiseGreen
	}
	s.Text(title, l.W/2, l.H/2-l.S(100), render.TextStyle{
		Size: l.S(48), Color: clr, Align: render.AlignCenter, VAlign: render.VAlignCenter,
	})
	score := fmt.Sprintf("Your score: %d / %d (%.0f%%)", g.session.Score(), g.session.Total(), g.session.Percentage())
	s.Text(score, l.W/2, l.H/2, render.TextStyle{
		Size: l.S(24), Color: clr, Align: render.AlignCenter, VAlign: render.VAlignCenter,
	})

	g.particles.DrawEffect(s)

	g.drawButton(s, l, l.Restart, "Try Again", l.Restart.Contains(g.cursorX, g.cursorY), render.AlignCenter)
}

func (g *Game) drawButton(s render.Surface, l layout.Layout, r layout.Rect, label string, hovering bool, align render.Align) {
	fill, stroke, width := render.ButtonFill, render.ButtonStroke, 1.0
	if hovering {
		fill, stroke, width = render.HoverFill, render.HoverStroke, 2.0
	}
	s.FillRect(r.X, r.Y, r.W, r.H, buttonRadius, fill)
	s.StrokeRect(r.X, r.Y, r.W, r.H, buttonRadius, width, stroke)

	st := render.TextStyle{Size: l.S(18), Color: render.Ink, Align: align, VAlign: render.VAlignCenter}
	if align == render.AlignCenter {
		s.Text(label, r.X+r.W/2, r.Y+r.H/2, st)
		return
	}
	s.Text(label, r.X+l.S(20), r.Y+r.H/2, st)
}

func (g *Game) drawCursor(s render.Surface) {
	s.FillCircle(g.cursorX, g.cursorY, 7.5, render.CursorOuter)
	s.FillCircle(g.cursorX, g.cursorY, 2.5, render.CursorInner)
}
