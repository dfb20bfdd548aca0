// Package game runs the quiz as an Ebiten game: it polls pointer input into
// an event queue, drives the quiz session and the particle system once per
// tick, and draws the current screen.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"quizgame/internal/audio"
	"quizgame/internal/canvas"
	"quizgame/internal/event"
	"quizgame/internal/layout"
	"quizgame/internal/logger"
	"quizgame/internal/particle"
	"quizgame/internal/quiz"
)

// Options carries the collaborators a Game is built from.
type Options struct {
	Log       *logger.Logger
	Session   *quiz.Session
	Particles *particle.System
	Sound     audio.Feedback
	Fonts     *canvas.Fonts
	// LoadErr is shown on the start screen when the bank is empty.
	LoadErr error
	Width   float64
	Height  float64
}

// Game implements ebiten.Game. All state is owned by the game loop; input
// handlers and the per-tick particle step never interleave.
type Game struct {
	log       *logger.Logger
	session   *quiz.Session
	particles *particle.System
	sound     audio.Feedback
	fonts     *canvas.Fonts
	queue     *event.Queue
	layout    layout.Layout
	loadErr   error

	cursorX, cursorY float64
	cursorSeen       bool
	hovered          int
}

func New(opts Options) *Game {
	g := &Game{
		log:       opts.Log,
		session:   opts.Session,
		particles: opts.Particles,
		sound:     opts.Sound,
		fonts:     opts.Fonts,
		queue:     event.NewQueue(),
		loadErr:   opts.LoadErr,
		hovered:   -1,
	}
	if g.log == nil {
		g.log = logger.NewNop()
	}
	if g.sound == nil {
		g.sound = audio.Nop{}
	}
	g.resize(opts.Width, opts.Height)
	g.session.OnPhaseChange(g.onPhaseChange)
	return g
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (g *Game) resize(w, h float64) {
	if w == g.layout.W && h == g.layout.H {
		return
	}
	g.layout = layout.New(w, h)
	g.particles.SetViewport(particle.Viewport{W: w, H: h})
}

func (g *Game) Update() error {
	g.poll()
	g.step()
	return nil
}

// poll turns this tick's pointer state into queued events.
func (g *Game) poll() {
	x, y := ebiten.CursorPosition()
	fx, fy := float64(x), float64(y)
	if !g.cursorSeen {
		g.cursorX, g.cursorY = fx, fy
		g.cursorSeen = true
	} else if fx != g.cursorX || fy != g.cursorY {
		g.queue.Push(event.Event{Kind: event.PointerMove, X: fx, Y: fy})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.queue.Push(event.Event{Kind: event.Press, X: fx, Y: fy})
	}
}

// step drains input to completion, then advances the particles one frame.
func (g *Game) step() {
	g.queue.Drain(g.handle)
	g.hovered = -1
	if g.session.Phase() == quiz.PhaseQuiz {
		g.hovered = g.layout.OptionAt(quiz.OptionCount, g.cursorX, g.cursorY)
	}
	g.particles.Frame()
}

func (g *Game) handle(e event.Event) {
	switch e.Kind {
	case event.PointerMove:
		g.cursorX, g.cursorY = e.X, e.Y
		g.particles.PointerMoved(e.X, e.Y)
	case event.Press:
		g.cursorX, g.cursorY = e.X, e.Y
		g.particles.Pressed(e.X, e.Y)
		g.press(e.X, e.Y)
	}
}

func (g *Game) press(x, y float64) {
	switch g.session.Phase() {
	case quiz.PhaseStart:
		if !g.layout.Start.Contains(x, y) {
			return
		}
		if err := g.session.Start(); err != nil {
			g.reject("start", err)
		}
	case quiz.PhaseQuiz:
		sel := g.layout.OptionAt(quiz.OptionCount, x, y)
		if sel < 0 {
			return
		}
		correct, err := g.session.SubmitAnswer(sel)
		if err != nil {
			g.reject("submit", err)
			return
		}
		if correct {
			g.sound.Correct()
		} else {
			g.sound.Wrong()
		}
	case quiz.PhaseResult:
		if !g.layout.Restart.Contains(x, y) {
			return
		}
		if err := g.session.Reset(); err != nil {
			g.reject("reset", err)
		}
	}
}

// reject logs a refused operation and keeps the loop running.
func (g *Game) reject(op string, err error) {
	if errors.Is(err, quiz.ErrNoQuestions) {
		g.log.Warn("quiz not started", "reason", err)
		return
	}
	g.log.Debug("operation refused", "op", op, "phase", g.session.Phase().String(), "error", err)
}

func (g *Game) onPhaseChange(c quiz.PhaseChange) {
	g.log.Info("phase changed",
		"from", c.From.String(),
		"to", c.To.String(),
		"score", g.session.Score(),
		"total", g.session.Total(),
	)
	switch c.To {
	case quiz.PhaseResult:
		effect := particle.EffectBubbles
		if c.Outcome == quiz.OutcomePraise {
			effect = particle.EffectConfetti
		}
		g.particles.StartEffect(effect)
	case quiz.PhaseStart:
		g.particles.StopEffect()
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render(canvas.New(screen, g.fonts))
}
