package cli

import (
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "config.yaml"

type flags struct {
	configPath string
	questions  string
	format     string
	seed       int64
	mute       bool
	logMode    string
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	envConfig := os.Getenv("QUIZ_CONFIG")
	if envConfig == "" {
		envConfig = defaultConfigPath
	}

	cmd := &cobra.Command{
		Use:           "quizgame",
		Short:         "Interactive multiple-choice quiz with celebratory particle effects",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, f)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", envConfig, "path to YAML config")
	pf.StringVar(&f.questions, "questions", os.Getenv("QUIZ_QUESTIONS"), "question source (overrides config)")
	pf.StringVar(&f.format, "format", "", "question source format: csv, yaml or sqlite")
	pf.StringVar(&f.logMode, "log-mode", "", "log mode: development or production")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed, 0 for time based")
	cmd.Flags().BoolVar(&f.mute, "mute", false, "disable answer sounds")

	cmd.AddCommand(newValidateCmd(f))
	return cmd
}
