// Package sqlite reads question records from a local SQLite database.
package sqlite

import (
	"context"
	"fmt"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"quizgame/internal/quiz"
)

// Record is the table layout. correct_answer_index is text so a bad value
// surfaces as a DataFormatError instead of a scan failure.
type Record struct {
	ID                 uint   `gorm:"primaryKey"`
	Question           string `gorm:"column:question"`
	OptionA            string `gorm:"column:option_a"`
	OptionB            string `gorm:"column:option_b"`
	OptionC            string `gorm:"column:option_c"`
	OptionD            string `gorm:"column:option_d"`
	CorrectAnswerIndex string `gorm:"column:correct_answer_index"`
}

// Loader reads every row of Table in id order.
type Loader struct {
	DSN   string
	Table string
}

func NewLoader(dsn, table string) *Loader {
	if table == "" {
		table = "questions"
	}
	return &Loader{DSN: dsn, Table: table}
}

// Open connects with gorm's own logging silenced.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	return db, nil
}

// Rows refuses a missing file so a mistyped path is reported as such
// instead of leaving an empty database behind.
func (l *Loader) Rows(ctx context.Context) ([]quiz.Row, error) {
	if _, err := os.Stat(l.DSN); err != nil {
		return nil, fmt.Errorf("open questions db: %w", err)
	}
	db, err := Open(l.DSN)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	defer sqlDB.Close()

	var records []Record
	if err := db.WithContext(ctx).Table(l.Table).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("query %s: %w", l.Table, err)
	}

	rows := make([]quiz.Row, len(records))
	for i, r := range records {
		rows[i] = quiz.Row{
			quiz.FieldQuestion:     r.Question,
			quiz.FieldOptionA:      r.OptionA,
			quiz.FieldOptionB:      r.OptionB,
			quiz.FieldOptionC:      r.OptionC,
			quiz.FieldOptionD:      r.OptionD,
			quiz.FieldCorrectIndex: r.CorrectAnswerIndex,
		}
	}
	return rows, nil
}
