package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML.

With no flags the embedded defaults are printed, ready to be saved to
~/.tetris/configs/tetris.yaml and edited. With --config or --difficulty the
resolved configuration is validated and printed instead.

Examples:
  tetris config > ~/.tetris/configs/tetris.yaml
  tetris config --config ./my-tetris.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfig == "" && flagDifficulty == "" {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	cfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyTetrisPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}
