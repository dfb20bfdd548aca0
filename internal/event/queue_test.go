package event

import "testing"

func TestDrainFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Kind: PointerMove, X: 1})
	q.Push(Event{Kind: Press, X: 2})
	q.Push(Event{Kind: PointerMove, X: 3})

	var got []float64
	n := q.Drain(func(e Event) { got = append(got, e.X) })
	if n != 3 || len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("unexpected drain order %v (n=%d)", got, n)
	}
	if q.Len() != 0 {
		t.Fatalf("queue not empty after drain: %d", q.Len())
	}
	if q.Drain(func(Event) { t.Fatal("empty queue delivered an event") }) != 0 {
		t.Fatal("expected zero events")
	}
}

func TestOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	for i := 0; i < QueueSize+10; i++ {
		q.Push(Event{X: float64(i)})
	}
	if q.Len() != QueueSize {
		t.Fatalf("expected %d pending, got %d", QueueSize, q.Len())
	}
	first := -1.0
	q.Drain(func(e Event) {
		if first < 0 {
			first = e.X
		}
	})
	if first != 10 {
		t.Fatalf("expected oldest surviving event 10, got %v", first)
	}
}

func TestPushDuringDrain(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Kind: Press})
	n := q.Drain(func(e Event) {
		if e.Kind == Press {
			q.Push(Event{Kind: PointerMove})
		}
	})
	if n != 2 {
		t.Fatalf("expected follow-up event in same drain, got %d", n)
	}
}
