package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func TestBuzzGeneratorFadesIn(t *testing.T) {
	g := NewBuzzGenerator(sampleRate, 120)
	buf := make([][2]float64, 512)
	n, ok := g.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("expected a full buffer, got n=%d ok=%v", n, ok)
	}
	if buf[0][0] != 0 {
		t.Fatalf("first sample should be silent, got %v", buf[0][0])
	}
	for i, s := range buf {
		if s[0] != s[1] {
			t.Fatalf("sample %d not mono: %v", i, s)
		}
		if math.Abs(s[0]) > 0.2*0.525 {
			t.Fatalf("sample %d above peak: %v", i, s[0])
		}
	}
	if g.Err() != nil {
		t.Fatal("generator should never fail")
	}
}

func TestBuzzTakeLength(t *testing.T) {
	want := sampleRate.N(150 * time.Millisecond)
	s := beep.Take(want, NewBuzzGenerator(sampleRate, 120))
	total := 0
	buf := make([][2]float64, 1024)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Fatalf("expected %d samples, got %d", want, total)
	}
}

func TestUninitializedManagerIsSilent(t *testing.T) {
	sm := NewSoundManager()
	sm.Correct()
	sm.Wrong()
	sm.Cleanup()
	var f Feedback = Nop{}
	f.Correct()
	f.Wrong()
}
