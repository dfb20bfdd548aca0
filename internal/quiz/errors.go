package quiz

import (
	"errors"
	"fmt"
)

var (
	// ErrDataFormat reports a question record that is missing a field or
	// carries an unusable correct answer index.
	ErrDataFormat = errors.New("malformed question data")
	// ErrInvalidTransition reports an operation invoked from a phase that
	// does not allow it.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrOutOfRange reports a selection outside the presented options.
	ErrOutOfRange = errors.New("selection out of range")
	// ErrNoQuestions is returned by Start when the bank is empty.
	ErrNoQuestions = errors.New("no questions loaded")
)

// DataFormatError locates a bad record. Row is 1-based over data rows.
type DataFormatError struct {
	Row    int
	Field  string
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("row %d: field %q: %s", e.Row, e.Field, e.Reason)
}

func (e *DataFormatError) Unwrap() error { return ErrDataFormat }
