package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/config"
	"github.com/vovakirdan/flappy-tui/internal/games/flappy"
	"github.com/vovakirdan/flappy-tui/internal/platform/tui"
	"github.com/vovakirdan/flappy-tui/internal/storage"
)

func (a *app) newReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay <id>",
		Short: "Re-simulate a stored replay",
		Long: `Re-run a stored round from its seed, configuration and recorded inputs
and print the outcome. The score is recomputed, not read from storage.

Examples:
  flappy replays
  flappy replay 3`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReplayID(args[0])
			if err != nil {
				return err
			}

			store, err := storage.Open(a.settings.GetString(keyDB))
			if err != nil {
				return err
			}
			defer store.Close()

			r, err := store.Replay(id)
			if err != nil {
				return err
			}

			cfg, err := config.Parse([]byte(r.ConfigYAML))
			if err != nil {
				return fmt.Errorf("replay %d has an unreadable config: %w", id, err)
			}

			s, err := flappy.Simulate(cfg, r.Seed, fromStorageFrames(r.Frames))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Replay:  %d (%d frames, %d flaps)\n", r.ID, len(r.Frames), r.Flaps)
			printResult(out, s)
			if got := s.EndReason().String(); got != r.EndReason {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: recorded end %q, re-simulated end %q\n", r.EndReason, got)
			}
			return nil
		},
	}
}

func (a *app) newReplaysCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "replays",
		Short: "List stored replays",
		Long: `List the most recent replays, newest first.

Examples:
  flappy replays
  flappy replays --limit 50
  flappy replays rm 3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.Open(a.settings.GetString(keyDB))
			if err != nil {
				return err
			}
			defer store.Close()

			replays, err := store.RecentReplays(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(replays) == 0 {
				fmt.Fprintln(out, "No replays recorded yet.")
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Play 'flappy play' or run 'flappy sim --save' to record one.")
				return nil
			}

			fmt.Fprintln(out, tui.ReplayTable(replays))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of replays to list")

	cmd.AddCommand(&cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a stored replay",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseReplayID(args[0])
			if err != nil {
				return err
			}

			store, err := storage.Open(a.settings.GetString(keyDB))
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteReplay(id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted replay %d\n", id)
			return nil
		},
	})

	return cmd
}

func parseReplayID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid replay id %q", arg)
	}
	return id, nil
}
