package sqlite

import (
	"context"
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"quizgame/internal/quiz"
)

func seed(t *testing.T, records ...Record) string {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "questions.db")
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Table("questions").AutoMigrate(&Record{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	for i := range records {
		if err := db.Table("questions").Create(&records[i]).Error; err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	sqlDB, _ := db.DB()
	sqlDB.Close()
	return dsn
}

func TestLoaderRows(t *testing.T) {
	dsn := seed(t,
		Record{Question: "First?", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswerIndex: "3"},
		Record{Question: "Second?", OptionA: "e", OptionB: "f", OptionC: "g", OptionD: "h", CorrectAnswerIndex: "0"},
	)
	rows, err := NewLoader(dsn, "").Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if len(rows) != 2 || rows[0][quiz.FieldQuestion] != "First?" || rows[1][quiz.FieldOptionD] != "h" {
		t.Fatalf("unexpected rows %v", rows)
	}
	bank := quiz.NewBank(rand.New(rand.NewSource(1)))
	if err := bank.Load(rows); err != nil {
		t.Fatalf("load: %v", err)
	}
	if bank.Question(0).CorrectIndex != 3 {
		t.Fatalf("unexpected correct index %d", bank.Question(0).CorrectIndex)
	}
}

func TestLoaderBadIndex(t *testing.T) {
	dsn := seed(t, Record{Question: "q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d", CorrectAnswerIndex: "x"})
	rows, err := NewLoader(dsn, "questions").Rows(context.Background())
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	bank := quiz.NewBank(rand.New(rand.NewSource(1)))
	if err := bank.Load(rows); !errors.Is(err, quiz.ErrDataFormat) {
		t.Fatalf("expected data format error, got %v", err)
	}
}

func TestLoaderMissingTable(t *testing.T) {
	dsn := seed(t)
	if _, err := NewLoader(dsn, "nope").Rows(context.Background()); err == nil {
		t.Fatal("expected query error for missing table")
	}
}

func TestLoaderMissingFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "typo.db")
	_, err := NewLoader(dsn, "").Rows(context.Background())
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, statErr := os.Stat(dsn); !errors.Is(statErr, fs.ErrNotExist) {
		t.Fatalf("loader created %s", dsn)
	}
}
