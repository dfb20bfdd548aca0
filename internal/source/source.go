// Package source reads question records from files.
package source

import (
	"context"

	"quizgame/internal/quiz"
)

// Loader yields the ordered question records of one data source.
type Loader interface {
	Rows(ctx context.Context) ([]quiz.Row, error)
}
