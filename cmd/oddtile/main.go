// oddtile is a terminal colour-perception game: spot the one tile in a 5x5
// grid whose lightness is slightly off before the clock runs out.
//
// Usage:
//
//	oddtile play             - Play in this terminal
//	oddtile serve            - Start SSH server for remote play
//	oddtile config           - Print the effective game config
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible rounds
//	--config <path>  - Load game config from a YAML file
//	--difficulty <p> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oddtile",
	Short: "Odd Tile - find the odd colour out",
	Long: `Odd Tile shows a 5x5 grid of nearly identical tiles. One of them is a
little lighter or darker than the rest. Pick it before the 30 second clock
runs out: a hit adds 2 seconds and makes the next grid harder, a miss costs 3.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective game config

Examples:
  oddtile play
  oddtile play --seed 42
  oddtile play --difficulty hard
  oddtile serve --ssh :2222
  oddtile config > ~/.oddtile/config.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
