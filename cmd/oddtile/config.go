package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/oddtile/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the game config as YAML after applying the search order:

  1. --config path
  2. ~/.oddtile/config.yaml
  3. ./configs/oddtile.yaml
  4. built-in defaults

A --difficulty preset is applied on top. The output is a complete config file and can be edited and passed back
with --config.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadGameConfig()
		if err != nil {
			return err
		}

		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}

		_, err = os.Stdout.Write(data)
		return err
	},
}

// loadGameConfig loads the config file and applies the --difficulty preset.
func loadGameConfig() (config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.GameConfig{}, err
	}
	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}
