package quiz

import "math/rand"

// Bank owns the loaded questions and their current presentations.
type Bank struct {
	rng           *rand.Rand
	questions     []Question
	presentations []Presentation
}

func NewBank(rng *rand.Rand) *Bank {
	return &Bank{rng: rng}
}

// Load replaces the bank with one question per row, in source order. On a
// malformed row the bank is left empty and the *DataFormatError returned.
// Zero rows is not an error.
func (b *Bank) Load(rows []Row) error {
	b.questions = nil
	b.presentations = nil

	questions := make([]Question, 0, len(rows))
	for i, r := range rows {
		q, err := ParseQuestion(i+1, r)
		if err != nil {
			return err
		}
		questions = append(questions, q)
	}
	b.questions = questions
	b.ShuffleAll()
	return nil
}

// ShuffleAll regenerates every presentation. Prior presentations are
// replaced, never mutated.
func (b *Bank) ShuffleAll() {
	presentations := make([]Presentation, len(b.questions))
	for i, q := range b.questions {
		presentations[i] = ShuffleOptions(b.rng, q)
	}
	b.presentations = presentations
}

func (b *Bank) Len() int { return len(b.questions) }

func (b *Bank) Question(i int) Question { return b.questions[i] }

func (b *Bank) Presentation(i int) Presentation { return b.presentations[i] }
