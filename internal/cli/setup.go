package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"quizgame/internal/config"
	"quizgame/internal/logger"
	"quizgame/internal/quiz"
	"quizgame/internal/source"
	"quizgame/internal/source/sqlite"
)

// loadConfig reads the config file and applies flag overrides. The default
// config path may be absent; an explicit one must exist.
func loadConfig(cmd *cobra.Command, f *flags) (config.Config, error) {
	optional := !cmd.Flags().Changed("config") && f.configPath == defaultConfigPath
	cfg, err := config.Load(f.configPath, optional)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if f.questions != "" {
		cfg.Questions.Path = f.questions
	}
	if f.format != "" {
		cfg.Questions.Format = f.format
	}
	if f.logMode != "" {
		cfg.Log.Mode = f.logMode
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	if f.mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log.With("run_id", uuid.NewString()), nil
}

// openSource picks the loader for the configured format.
func openSource(q config.Questions) (source.Loader, error) {
	switch q.ResolveFormat() {
	case config.FormatCSV:
		return source.NewCSVLoader(q.Path), nil
	case config.FormatYAML:
		return source.NewYAMLLoader(q.Path), nil
	case config.FormatSQLite:
		return sqlite.NewLoader(q.Path, q.Table), nil
	default:
		return nil, fmt.Errorf("unknown question format %q", q.Format)
	}
}

// loadBank fills bank from the configured source. On any failure the bank
// stays empty and the error is returned for display.
func loadBank(ctx context.Context, q config.Questions, bank *quiz.Bank) error {
	loader, err := openSource(q)
	if err != nil {
		return err
	}
	rows, err := loader.Rows(ctx)
	if err != nil {
		return err
	}
	return bank.Load(rows)
}
