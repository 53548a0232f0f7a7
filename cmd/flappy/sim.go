package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

func (a *app) newSimCmd() *cobra.Command {
	var (
		maxTicks int
		idle     bool
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run a headless round with the autopilot",
		Long: `Play one round without a terminal UI, using a fixed timestep.

The autopilot steers through the gaps; --idle never flaps. With --save the
round is stored as a replay that 'flappy replay <id>' can re-simulate.

Examples:
  flappy sim --seed 7
  flappy sim --ticks 12000 --save
  flappy sim --idle`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := a.newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			cfg, err := a.loadGameConfig(logger)
			if err != nil {
				return err
			}

			seed := a.settings.GetInt64(keySeed)
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			pilot := flappy.Pilot(flappy.Autopilot)
			if idle {
				pilot = nil
			}

			s, frames, err := flappy.Run(cfg, seed, pilot, maxTicks)
			if err != nil {
				return err
			}
			logger.Debug("simulation finished", "seed", seed, "ticks", s.Ticks())

			printResult(cmd.OutOrStdout(), s)

			if !save {
				return nil
			}
			id, err := a.saveReplay(cfg, seed, s, frames)
			if err != nil {
				return err
			}
			logger.Info("replay saved", "id", id, "frames", len(frames))
			fmt.Fprintf(cmd.OutOrStdout(), "Replay:  %d\n", id)
			return nil
		},
	}

	cmd.Flags().IntVar(&maxTicks, "ticks", 36_000, "Maximum number of ticks to simulate")
	cmd.Flags().BoolVar(&idle, "idle", false, "Never flap")
	cmd.Flags().BoolVar(&save, "save", false, "Store the round as a replay")

	return cmd
}

func (a *app) saveReplay(cfg config.GameConfig, seed int64, s *flappy.Session, frames []flappy.RecordedFrame) (int64, error) {
	data, err := config.Marshal(cfg)
	if err != nil {
		return 0, err
	}

	store, err := storage.Open(a.settings.GetString(keyDB))
	if err != nil {
		return 0, err
	}
	defer store.Close()

	return store.SaveReplay(storage.Replay{
		Seed:       seed,
		ConfigYAML: string(data),
		EndReason:  s.EndReason().String(),
		Frames:     toStorageFrames(frames),
	})
}

// printResult writes a summary of a finished or interrupted round.
func printResult(w io.Writer, s *flappy.Session) {
	status := s.EndReason().String()
	if s.Active() {
		status = "still flying"
	}
	fmt.Fprintf(w, "Seed:    %d\n", s.Seed())
	fmt.Fprintf(w, "Score:   %d\n", s.Score())
	fmt.Fprintf(w, "Ticks:   %d\n", s.Ticks())
	fmt.Fprintf(w, "End:     %s\n", status)
	fmt.Fprintf(w, "Hash:    %016x\n", s.Snapshot().Hash())
}

func toStorageFrames(frames []flappy.RecordedFrame) []storage.Frame {
	out := make([]storage.Frame, len(frames))
	for i, f := range frames {
		out[i] = storage.Frame{NowNanos: int64(f.Now), DT: f.DT, Flap: f.Flap}
	}
	return out
}

func fromStorageFrames(frames []storage.Frame) []flappy.RecordedFrame {
	out := make([]flappy.RecordedFrame, len(frames))
	for i, f := range frames {
		out[i] = flappy.RecordedFrame{Now: time.Duration(f.NowNanos), DT: f.DT, Flap: f.Flap}
	}
	return out
}
