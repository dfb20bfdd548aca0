package cli

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"quizgame/internal/audio"
	"quizgame/internal/canvas"
	"quizgame/internal/config"
	"quizgame/internal/game"
	"quizgame/internal/logger"
	"quizgame/internal/particle"
	"quizgame/internal/quiz"
	"quizgame/internal/shuffle"
)

func runGame(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	rng := shuffle.NewRand(cfg.Seed)
	bank := quiz.NewBank(rng)
	loadErr := loadBank(cmd.Context(), cfg.Questions, bank)
	if loadErr != nil {
		log.Error("question bank unavailable", "path", cfg.Questions.Path, "error", loadErr)
	} else {
		log.Info("question bank loaded", "path", cfg.Questions.Path, "questions", bank.Len())
	}

	fonts, err := canvas.NewFonts(cfg.Font.Path)
	if err != nil {
		log.Warn("falling back to bitmap font", "error", err)
		fonts = canvas.BitmapFonts()
	}

	sound := newSound(cfg, log)
	if sm, ok := sound.(*audio.SoundManager); ok {
		defer sm.Cleanup()
	}

	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	g := game.New(game.Options{
		Log:       log,
		Session:   quiz.NewSession(bank),
		Particles: particle.NewSystem(rng, particle.Viewport{W: w, H: h}),
		Sound:     sound,
		Fonts:     fonts,
		LoadErr:   loadErr,
		Width:     w,
		Height:    h,
	})

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	return ebiten.RunGame(g)
}

func newSound(cfg config.Config, log *logger.Logger) audio.Feedback {
	if !cfg.Audio.Enabled {
		return audio.Nop{}
	}
	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing silently", "error", err)
		return audio.Nop{}
	}
	return sm
}
