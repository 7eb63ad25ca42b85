package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/oddtile/internal/core"
	"github.com/vovakirdan/oddtile/internal/oddtile"
	"github.com/vovakirdan/oddtile/internal/platform/tui"
)

var flagLogPath string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse click     - Pick a tile
  Arrows/hjkl     - Move the cursor
  Enter/Space     - Pick the tile under the cursor (or start)
  R               - New game
  ?               - Show all keys
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Bigger shade differences, smaller miss penalty
  normal - The standard curve: 20 down to 1.5, 30s, -3s per miss
  hard   - Subtle shades from the start, 20s clock, -5s per miss
  fixed  - No progression, the level 1 difference for the whole game

Examples:
  oddtile play
  oddtile play --difficulty easy
  oddtile play --seed 7
  oddtile play --config ./hard.yaml --log /tmp/oddtile.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	logger.Debug("starting", "width", width, "height", height, "seed", flagSeed, "difficulty", flagDifficulty)

	if err := tui.Run(oddtile.New(gameCfg), cfg, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openLogger returns a debug logger writing to path. The terminal belongs to
// the TUI, so without a path logs are discarded.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "oddtile",
	})
	return logger, func() { _ = f.Close() }, nil
}
