// flappy is a terminal Flappy Bird clone.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy sim               - Run a headless round with the autopilot
//	flappy replay <id>       - Re-simulate a stored replay
//	flappy replays           - List stored replays
//	flappy replays rm <id>   - Delete a stored replay
//	flappy config            - Print the effective game configuration
//
// Global flags (also settable as FLAPPY_<NAME> environment variables):
//
//	--fps <rate>         - Terminal tick rate (default: 120)
//	--seed <value>       - RNG seed for reproducible courses
//	--db <path>          - Replay database (default: ~/.flappy/replays.db)
//	--config <path>      - Custom game config YAML
//	--timing <mode>      - fixed or variable timestep
//	--log-level <level>  - debug, info, warn, error
//	--log-file <path>    - Log file used while playing
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Setting keys. Flag names double as viper keys.
const (
	keyFPS      = "fps"
	keySeed     = "seed"
	keyDB       = "db"
	keyConfig   = "config"
	keyTiming   = "timing"
	keyLogLevel = "log-level"
	keyLogFile  = "log-file"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries settings shared by all subcommands.
type app struct {
	settings *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{settings: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "flappy",
		Short: "Flappy - flap through the pipes in your terminal",
		Long: `Flappy is a terminal rendition of Flappy Bird.

Available commands:
  play     - Play the game
  sim      - Run a headless round with the autopilot
  replay   - Re-simulate a stored replay
  replays  - List or delete stored replays
  config   - Print the effective game configuration

Examples:
  flappy play
  flappy play --seed 42 --timing variable
  flappy sim --save
  flappy replay 3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.Int(keyFPS, 120, "Tick rate (frames per second)")
	pf.Int64(keySeed, 0, "RNG seed (0 = random based on time)")
	pf.String(keyDB, "~/.flappy/replays.db", "Path to replay database")
	pf.String(keyConfig, "", "Path to custom game config YAML")
	pf.String(keyTiming, "fixed", "Timestep: fixed or variable")
	pf.String(keyLogLevel, "info", "Log level: debug, info, warn, error")
	pf.String(keyLogFile, "~/.flappy/flappy.log", "Log file used while playing")

	//nolint:errcheck // Only fails on a nil flag set
	a.settings.BindPFlags(pf)
	a.settings.SetEnvPrefix("FLAPPY")
	a.settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.settings.AutomaticEnv()

	rootCmd.AddCommand(a.newPlayCmd())
	rootCmd.AddCommand(a.newSimCmd())
	rootCmd.AddCommand(a.newReplayCmd())
	rootCmd.AddCommand(a.newReplaysCmd())
	rootCmd.AddCommand(a.newConfigCmd())

	return rootCmd
}
