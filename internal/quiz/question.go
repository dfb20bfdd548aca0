// Package quiz holds the question bank and the quiz session state machine.
package quiz

import (
	"math/rand"
	"strconv"
	"strings"

	"quizgame/internal/shuffle"
)

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// Field names a question record must expose.
const (
	FieldQuestion     = "question"
	FieldOptionA      = "optionA"
	FieldOptionB      = "optionB"
	FieldOptionC      = "optionC"
	FieldOptionD      = "optionD"
	FieldCorrectIndex = "correctAnswerIndex"
)

var optionFields = [OptionCount]string{FieldOptionA, FieldOptionB, FieldOptionC, FieldOptionD}

// Row is one external question record keyed by field name.
type Row map[string]string

// Question is immutable after load.
type Question struct {
	Text         string
	Options      [OptionCount]string
	CorrectIndex int
}

// Presentation is the shuffled view of a Question shown to the player.
type Presentation struct {
	Options      [OptionCount]string
	CorrectIndex int
}

// ParseQuestion builds a Question from a record. row is only used for
// error reporting.
func ParseQuestion(row int, r Row) (Question, error) {
	var q Question

	text, err := requireField(row, r, FieldQuestion)
	if err != nil {
		return q, err
	}
	q.Text = text

	for i, name := range optionFields {
		opt, err := requireField(row, r, name)
		if err != nil {
			return q, err
		}
		q.Options[i] = opt
	}

	raw, err := requireField(row, r, FieldCorrectIndex)
	if err != nil {
		return q, err
	}
	idx, err := strconv.Atoi(raw)
	if err != nil {
		return q, &DataFormatError{Row: row, Field: FieldCorrectIndex, Reason: "not an integer: " + strconv.Quote(raw)}
	}
	if idx < 0 || idx >= OptionCount {
		return q, &DataFormatError{Row: row, Field: FieldCorrectIndex, Reason: "out of range [0,3]: " + raw}
	}
	q.CorrectIndex = idx
	return q, nil
}

func requireField(row int, r Row, name string) (string, error) {
	v, ok := r[name]
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", &DataFormatError{Row: row, Field: name, Reason: "missing"}
	}
	return v, nil
}

type taggedOption struct {
	text   string
	origin int
}

// ShuffleOptions returns a fresh Presentation of q. The option at the
// returned CorrectIndex is always q.Options[q.CorrectIndex].
func ShuffleOptions(rng *rand.Rand, q Question) Presentation {
	tagged := make([]taggedOption, OptionCount)
	for i, text := range q.Options {
		tagged[i] = taggedOption{text: text, origin: i}
	}
	shuffle.Slice(rng, tagged)

	var p Presentation
	for i, t := range tagged {
		p.Options[i] = t.text
		if t.origin == q.CorrectIndex {
			p.CorrectIndex = i
		}
	}
	return p
}
