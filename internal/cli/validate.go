package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"quizgame/internal/quiz"
	"quizgame/internal/shuffle"
)

// newValidateCmd checks a question source without opening a window.
func newValidateCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the question source and report problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}
			bank := quiz.NewBank(shuffle.NewRand(cfg.Seed))
			if err := loadBank(cmd.Context(), cfg.Questions, bank); err != nil {
				return fmt.Errorf("%s: %w", cfg.Questions.Path, err)
			}
			if bank.Len() == 0 {
				return fmt.Errorf("%s: %w", cfg.Questions.Path, quiz.ErrNoQuestions)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions ok\n", cfg.Questions.Path, bank.Len())
			return nil
		},
	}
}
