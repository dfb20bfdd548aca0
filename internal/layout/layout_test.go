package layout

import "testing"

func TestContainsIsStrict(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 20}
	if !r.Contains(15, 15) {
		t.Fatal("expected inside point")
	}
	for _, p := range [][2]float64{{10, 15}, {30, 15}, {15, 10}, {15, 30}, {0, 0}} {
		if r.Contains(p[0], p[1]) {
			t.Fatalf("edge or outside point %v reported inside", p)
		}
	}
}

func TestBaseLayout(t *testing.T) {
	l := New(BaseWidth, BaseHeight)
	if l.Scale != 1 {
		t.Fatalf("expected scale 1, got %v", l.Scale)
	}
	want := Rect{X: 300, Y: 350, W: 200, H: 50}
	if l.Start != want {
		t.Fatalf("unexpected start button %+v", l.Start)
	}
	if l.Restart.Y != 500 {
		t.Fatalf("unexpected restart button %+v", l.Restart)
	}
}

func TestScaleUsesSmallerRatio(t *testing.T) {
	l := New(1600, 600)
	if l.Scale != 1 {
		t.Fatalf("expected height-bound scale 1, got %v", l.Scale)
	}
	l = New(400, 600)
	if l.Scale != 0.5 {
		t.Fatalf("expected width-bound scale 0.5, got %v", l.Scale)
	}
}

func TestOptionColumns(t *testing.T) {
	single := New(BaseWidth, BaseHeight).Options(4)
	for i, r := range single {
		if r.X != 100 || r.W != 600 || r.Y != 250+float64(i)*70 {
			t.Fatalf("single column option %d at %+v", i, r)
		}
	}

	double := New(1000, 600).Options(4)
	if double[0].Y != double[1].Y || double[0].X >= double[1].X {
		t.Fatalf("expected first row side by side: %+v %+v", double[0], double[1])
	}
	if double[2].Y <= double[0].Y {
		t.Fatalf("expected second row below first: %+v", double[2])
	}

	three := New(1000, 600).Options(3)
	if three[0].X != three[1].X {
		t.Fatal("two columns only apply to exactly four options")
	}
}

func TestOptionAt(t *testing.T) {
	l := New(BaseWidth, BaseHeight)
	rects := l.Options(4)
	for i, r := range rects {
		x, y := r.Center()
		if got := l.OptionAt(4, x, y); got != i {
			t.Fatalf("center of option %d hit %d", i, got)
		}
	}
	if got := l.OptionAt(4, 5, 5); got != -1 {
		t.Fatalf("expected miss, got %d", got)
	}
}
