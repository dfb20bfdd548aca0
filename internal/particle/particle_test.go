package particle

import (
	"math/rand"
	"testing"

	"quizgame/internal/render"
)

var testViewport = Viewport{W: 800, H: 600}

func TestCursorFadesOut(t *testing.T) {
	c := NewCursor(rand.New(rand.NewSource(1)), 10, 20)
	if c.X != 10 || c.Y != 20 {
		t.Fatalf("cursor particle must spawn at the pointer, got (%v,%v)", c.X, c.Y)
	}
	if c.Size < 3 || c.Size >= 7 {
		t.Fatalf("size out of range: %v", c.Size)
	}
	updates := 0
	for c.Alive(testViewport) {
		c.Update()
		updates++
	}
	if updates != 51 {
		t.Fatalf("expected 51 updates to fade out, got %d", updates)
	}
}

func TestRippleGrowsAndFades(t *testing.T) {
	r := NewRipple(5, 5)
	r.Update()
	if r.Radius != 5 || r.Alpha != 240 {
		t.Fatalf("unexpected ripple after one update: r=%v alpha=%v", r.Radius, r.Alpha)
	}
	for r.Alive(testViewport) {
		r.Update()
	}
	if r.Alpha > 0 {
		t.Fatalf("ripple alive at alpha %v", r.Alpha)
	}
}

func TestConfettiFallsAndDiesBelowViewport(t *testing.T) {
	c := NewConfetti(rand.New(rand.NewSource(3)), 100, 0)
	vy := c.VY
	angle := c.Angle
	c.Update()
	if c.VY <= vy {
		t.Fatalf("gravity not applied: %v -> %v", vy, c.VY)
	}
	if c.Angle == angle && c.Rotation != 0 {
		t.Fatal("confetti did not rotate")
	}
	c.Y = testViewport.H + c.Size
	if c.Alive(testViewport) {
		t.Fatal("confetti at H+size must be dead")
	}
	c.Y = testViewport.H + c.Size - 0.01
	if !c.Alive(testViewport) {
		t.Fatal("confetti just above H+size must be alive")
	}
}

func TestBubbleRisesAndDiesAboveViewport(t *testing.T) {
	b := NewBubble(rand.New(rand.NewSource(4)), 100, 600)
	y := b.Y
	b.Update()
	if b.Y >= y {
		t.Fatalf("bubble did not rise: %v -> %v", y, b.Y)
	}
	b.Y = -b.Radius
	if b.Alive(testViewport) {
		t.Fatal("bubble at -r must be dead")
	}
}

func TestDisplayIntents(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	rec := render.NewRecorder(testViewport.W, testViewport.H)
	NewCursor(rng, 1, 1).Display(rec)
	NewRipple(1, 1).Display(rec)
	NewConfetti(rng, 1, 1).Display(rec)
	NewBubble(rng, 1, 1).Display(rec)

	want := []string{"fillCircle", "strokeCircle", "fillRotatedRect", "strokeCircle"}
	if len(rec.Ops) != len(want) {
		t.Fatalf("expected %d ops, got %d", len(want), len(rec.Ops))
	}
	for i, kind := range want {
		if rec.Ops[i].Kind != kind {
			t.Errorf("op %d: expected %s, got %s", i, kind, rec.Ops[i].Kind)
		}
	}
}

func TestKindString(t *testing.T) {
	if KindConfetti.String() != "confetti" || Kind(42).String() != "unknown" {
		t.Fatal("unexpected kind names")
	}
}
