// Package event buffers pointer input between frames.
package event

// Kind of input event.
type Kind uint8

const (
	PointerMove Kind = iota
	Press
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "move"
	case Press:
		return "press"
	default:
		return "unknown"
	}
}

// Event carries normalized pointer coordinates.
type Event struct {
	Kind Kind
	X, Y float64
}

// QueueSize must be a power of two.
const (
	QueueSize  = 256
	bufferMask = QueueSize - 1
)

// Queue is a ring buffer owned by the game loop. Events are pushed while
// input is polled and drained once per tick; every handler runs to
// completion before the next event is taken, and the whole drain finishes
// before particles are stepped.
//
// Overflow: oldest events are overwritten when full.
type Queue struct {
	events [QueueSize]Event
	head   uint64
	tail   uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends e.
func (q *Queue) Push(e Event) {
	q.events[q.tail&bufferMask] = e
	q.tail++
	if q.tail-q.head > QueueSize {
		q.head = q.tail - QueueSize
	}
}

func (q *Queue) Len() int { return int(q.tail - q.head) }

// Drain calls fn for every pending event in FIFO order. Events pushed by fn
// are delivered in the same drain.
func (q *Queue) Drain(fn func(Event)) int {
	n := 0
	for q.head != q.tail {
		e := q.events[q.head&bufferMask]
		q.head++
		fn(e)
		n++
	}
	return n
}
