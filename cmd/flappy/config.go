package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-tui/internal/config"
)

func (a *app) newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective game configuration",
		Long: `Print the game configuration that play and sim would use, as YAML.

The configuration is looked up in this order:
  1. --config <path>
  2. ~/.flappy/configs/flappy.yaml
  3. ./configs/flappy.yaml
  4. built-in defaults

Redirect the output to a file to start a custom configuration:
  flappy config > ~/.flappy/configs/flappy.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, src, err := config.Load(a.settings.GetString(keyConfig))
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s\n", src)
			_, err = out.Write(data)
			return err
		},
	}
}

// loadGameConfig resolves the game configuration and logs where it came from.
func (a *app) loadGameConfig(logger *log.Logger) (config.GameConfig, error) {
	cfg, src, err := config.Load(a.settings.GetString(keyConfig))
	if err != nil {
		return config.GameConfig{}, err
	}
	logger.Debug("loaded game config", "source", src)
	return cfg, nil
}
