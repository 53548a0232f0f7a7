package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-tui/internal/core"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

func (a *app) newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play the game",
		Long: `Start the game in the terminal.

Controls:
  Space/Up/W   - Flap (also starts a round)
  Enter/R      - Start / restart after game over
  Q/Esc/Ctrl+C - Quit

Every round is stored as a replay in the database given by --db.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --timing variable --fps 60
  flappy play --config ./my-flappy.yaml`,
		Args: cobra.NoArgs,
		RunE: a.runPlay,
	}
}

func (a *app) runPlay(cmd *cobra.Command, _ []string) error {
	logFile, err := a.openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := a.newLogger(logFile)
	if err != nil {
		return err
	}

	gameCfg, err := a.loadGameConfig(logger)
	if err != nil {
		return err
	}

	rt, err := a.runtimeConfig()
	if err != nil {
		return err
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	// Replays are optional; the game still works without storage.
	var saver tui.ReplaySaver
	store, err := storage.Open(a.settings.GetString(keyDB))
	if err != nil {
		logger.Warn("replays disabled", "err", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not open replay database: %v\n", err)
	} else {
		defer store.Close()
		saver = store
	}

	logger.Info("starting game", "fps", rt.TickRate, "timing", rt.Timing, "seed", rt.Seed)

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: rt,
		Saver:   saver,
		Logger:  logger,
	})
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// runtimeConfig assembles terminal-level settings from flags and environment.
func (a *app) runtimeConfig() (core.RuntimeConfig, error) {
	rt := core.DefaultConfig()
	rt.TickRate = a.settings.GetInt(keyFPS)
	rt.Seed = a.settings.GetInt64(keySeed)

	if rt.TickRate <= 0 {
		return rt, fmt.Errorf("fps must be positive, got %d", rt.TickRate)
	}

	switch mode := core.TimingMode(a.settings.GetString(keyTiming)); mode {
	case core.TimingFixed, core.TimingVariable:
		rt.Timing = mode
	default:
		return rt, fmt.Errorf("unknown timing mode %q (want fixed or variable)", mode)
	}
	return rt, nil
}
