package particle

import (
	"math/rand"

	"quizgame/internal/render"
)

// Effect selects which result category is active.
type Effect int

const (
	EffectNone Effect = iota
	EffectConfetti
	EffectBubbles
)

const (
	// SeedConfetti and SeedBubbles are the burst sizes on entering an effect.
	SeedConfetti = 100
	SeedBubbles  = 50

	confettiEvery = 2
	bubbleEvery   = 5
	spawnMargin   = 10
	bubbleBand    = 200
)

// System owns every live particle, one ordered collection per category.
// Collections are stepped once per logical frame by Frame and drawn by the
// Draw methods; members whose alive predicate fails after their update are
// dropped before they can be drawn again.
type System struct {
	rng    *rand.Rand
	vp     Viewport
	frame  uint64
	effect Effect

	cursor   []Particle
	ripple   *Ripple
	confetti []Particle
	bubbles  []Particle
}

func NewSystem(rng *rand.Rand, vp Viewport) *System {
	return &System{
		rng:      rng,
		vp:       vp,
		cursor:   make([]Particle, 0, 64),
		confetti: make([]Particle, 0, SeedConfetti*2),
		bubbles:  make([]Particle, 0, SeedBubbles*2),
	}
}

func (s *System) SetViewport(vp Viewport) { s.vp = vp }

func (s *System) Viewport() Viewport { return s.vp }

func (s *System) Effect() Effect { return s.effect }

// Frames returns how many frames have been stepped.
func (s *System) Frames() uint64 { return s.frame }

// PointerMoved spawns one trail particle exactly at (x, y).
func (s *System) PointerMoved(x, y float64) {
	s.cursor = append(s.cursor, NewCursor(s.rng, x, y))
}

// Pressed starts a ripple at (x, y), replacing any ripple still running.
func (s *System) Pressed(x, y float64) {
	s.ripple = NewRipple(x, y)
}

// StartEffect clears both result collections and seeds e with a burst
// scattered through its off-screen band.
func (s *System) StartEffect(e Effect) {
	s.clearEffects()
	s.effect = e
	switch e {
	case EffectConfetti:
		for i := 0; i < SeedConfetti; i++ {
			x := between(s.rng, 0, s.vp.W)
			y := between(s.rng, -s.vp.H, 0)
			s.confetti = append(s.confetti, NewConfetti(s.rng, x, y))
		}
	case EffectBubbles:
		for i := 0; i < SeedBubbles; i++ {
			x := between(s.rng, 0, s.vp.W)
			y := between(s.rng, s.vp.H, s.vp.H+bubbleBand)
			s.bubbles = append(s.bubbles, NewBubble(s.rng, x, y))
		}
	}
}

// StopEffect empties both result collections immediately. The cursor
// trail and ripple are left alone.
func (s *System) StopEffect() {
	s.clearEffects()
	s.effect = EffectNone
}

func (s *System) clearEffects() {
	s.confetti = s.confetti[:0]
	s.bubbles = s.bubbles[:0]
}

// Frame advances one logical frame: every live member is updated, dead
// members are pruned, then the active effect spawns on its cadence.
func (s *System) Frame() {
	s.frame++

	s.cursor = s.step(s.cursor)
	if s.ripple != nil {
		s.ripple.Update()
		if !s.ripple.Alive(s.vp) {
			s.ripple = nil
		}
	}
	s.confetti = s.step(s.confetti)
	s.bubbles = s.step(s.bubbles)

	switch s.effect {
	case EffectConfetti:
		if s.frame%confettiEvery == 0 {
			s.confetti = append(s.confetti, NewConfetti(s.rng, between(s.rng, 0, s.vp.W), -spawnMargin))
		}
	case EffectBubbles:
		if s.frame%bubbleEvery == 0 {
			s.bubbles = append(s.bubbles, NewBubble(s.rng, between(s.rng, 0, s.vp.W), s.vp.H+spawnMargin))
		}
	}
}

// step updates in append order and compacts the survivors in place.
func (s *System) step(ps []Particle) []Particle {
	alive := 0
	for _, p := range ps {
		p.Update()
		if !p.Alive(s.vp) {
			continue
		}
		ps[alive] = p
		alive++
	}
	for i := alive; i < len(ps); i++ {
		ps[i] = nil
	}
	return ps[:alive]
}

// DrawEffect displays the result particles.
func (s *System) DrawEffect(surface render.Surface) {
	display(surface, s.confetti)
	display(surface, s.bubbles)
}

// DrawAmbient displays the ripple and the cursor trail.
func (s *System) DrawAmbient(surface render.Surface) {
	if s.ripple != nil {
		s.ripple.Display(surface)
	}
	display(surface, s.cursor)
}

func display(surface render.Surface, ps []Particle) {
	for _, p := range ps {
		p.Display(surface)
	}
}

// Count returns the number of live particles of kind k.
func (s *System) Count(k Kind) int {
	switch k {
	case KindCursor:
		return len(s.cursor)
	case KindRipple:
		if s.ripple != nil {
			return 1
		}
		return 0
	case KindConfetti:
		return len(s.confetti)
	case KindBubble:
		return len(s.bubbles)
	}
	return 0
}

// Each calls fn for every live particle of kind k in collection order.
func (s *System) Each(k Kind, fn func(Particle)) {
	var ps []Particle
	switch k {
	case KindCursor:
		ps = s.cursor
	case KindRipple:
		if s.ripple != nil {
			fn(s.ripple)
		}
		return
	case KindConfetti:
		ps = s.confetti
	case KindBubble:
		ps = s.bubbles
	}
	for _, p := range ps {
		fn(p)
	}
}
