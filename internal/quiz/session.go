package quiz

import "fmt"

// Phase is the lifecycle phase of a Session.
type Phase int

const (
	PhaseStart Phase = iota
	PhaseQuiz
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseQuiz:
		return "QUIZ"
	case PhaseResult:
		return "RESULT"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Outcome classifies a finished session.
type Outcome int

const (
	OutcomeEncourage Outcome = iota
	OutcomePraise
)

func (o Outcome) String() string {
	if o == OutcomePraise {
		return "praise"
	}
	return "encourage"
}

// PraiseThreshold is the inclusive percentage from which a result is praised.
const PraiseThreshold = 80

// PhaseChange is emitted after every transition.
type PhaseChange struct {
	From    Phase
	To      Phase
	Outcome Outcome
}

// Session is the quiz state machine: START -> QUIZ -> RESULT -> START.
// It is created once and reinitialized in place by Reset.
type Session struct {
	bank      *Bank
	index     int
	score     int
	phase     Phase
	listeners []func(PhaseChange)
}

func NewSession(bank *Bank) *Session {
	return &Session{bank: bank, phase: PhaseStart}
}

// OnPhaseChange registers fn to run synchronously after each transition.
func (s *Session) OnPhaseChange(fn func(PhaseChange)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Session) Phase() Phase { return s.phase }
func (s *Session) Score() int   { return s.score }
func (s *Session) Index() int   { return s.index }
func (s *Session) Total() int   { return s.bank.Len() }

// Startable reports whether Start would succeed.
func (s *Session) Startable() bool {
	return s.phase == PhaseStart && s.bank.Len() > 0
}

// Current returns the question under the cursor and its presentation. ok is
// false outside PhaseQuiz.
func (s *Session) Current() (q Question, p Presentation, ok bool) {
	if s.phase != PhaseQuiz || s.index >= s.bank.Len() {
		return q, p, false
	}
	return s.bank.Question(s.index), s.bank.Presentation(s.index), true
}

// Start reshuffles all presentations and enters PhaseQuiz.
func (s *Session) Start() error {
	if s.phase != PhaseStart {
		return fmt.Errorf("start from %s: %w", s.phase, ErrInvalidTransition)
	}
	if s.bank.Len() == 0 {
		return ErrNoQuestions
	}
	s.bank.ShuffleAll()
	s.index = 0
	s.score = 0
	s.transition(PhaseQuiz)
	return nil
}

// SubmitAnswer scores selected against the current presentation and
// advances. An invalid selection leaves the session untouched.
func (s *Session) SubmitAnswer(selected int) (correct bool, err error) {
	if s.phase != PhaseQuiz {
		return false, fmt.Errorf("submit from %s: %w", s.phase, ErrInvalidTransition)
	}
	p := s.bank.Presentation(s.index)
	if selected < 0 || selected >= len(p.Options) {
		return false, fmt.Errorf("option %d: %w", selected, ErrOutOfRange)
	}

	correct = selected == p.CorrectIndex
	if correct {
		s.score++
	}
	s.index++
	if s.index == s.bank.Len() {
		s.transition(PhaseResult)
	}
	return correct, nil
}

// Reset returns the session to PhaseStart with fresh presentations. It is
// refused only while a quiz is running.
func (s *Session) Reset() error {
	if s.phase == PhaseQuiz {
		return fmt.Errorf("reset from %s: %w", s.phase, ErrInvalidTransition)
	}
	s.score = 0
	s.index = 0
	s.bank.ShuffleAll()
	s.transition(PhaseStart)
	return nil
}

// Percentage is 100*score/N, or 0 for an empty bank.
func (s *Session) Percentage() float64 {
	n := s.bank.Len()
	if n == 0 {
		return 0
	}
	return 100 * float64(s.score) / float64(n)
}

// Outcome classifies the current score. Integer arithmetic keeps the 80%
// boundary exact.
func (s *Session) Outcome() Outcome {
	n := s.bank.Len()
	if n > 0 && s.score*100 >= PraiseThreshold*n {
		return OutcomePraise
	}
	return OutcomeEncourage
}

func (s *Session) transition(to Phase) {
	change := PhaseChange{From: s.phase, To: to, Outcome: s.Outcome()}
	s.phase = to
	for _, fn := range s.listeners {
		fn(change)
	}
}
