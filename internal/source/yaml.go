package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"quizgame/internal/quiz"
)

// YAMLLoader reads a sequence of mappings keyed by field name:
//
//	- question: What is 2 + 2?
//	  optionA: "3"
//	  optionB: "4"
//	  optionC: "5"
//	  optionD: "22"
//	  correctAnswerIndex: 1
type YAMLLoader struct {
	Path string
}

func NewYAMLLoader(path string) *YAMLLoader {
	return &YAMLLoader{Path: path}
}

func (l *YAMLLoader) Rows(ctx context.Context) ([]quiz.Row, error) {
	data, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("open questions yaml: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var records []map[string]string
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode questions yaml: %w", err)
	}
	rows := make([]quiz.Row, len(records))
	for i, rec := range records {
		rows[i] = quiz.Row(rec)
	}
	return rows, nil
}
