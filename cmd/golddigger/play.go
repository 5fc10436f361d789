package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/golddigger/internal/config"
	"github.com/vovakirdan/golddigger/internal/platform/tui"
	"github.com/vovakirdan/golddigger/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Gold Digger",
	Long: `Start digging right away.

Controls:
  Arrows/WASD  - Hold to dig or move
  P            - Pause
  N            - New world
  Enter        - Confirm dialog
  Esc          - Cancel purchase
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Longer lasting drill bit, more gold
  normal - The original balance
  hard   - Shorter drill bit, less gold

Examples:
  golddigger play
  golddigger play --difficulty easy
  golddigger play --seed 42
  golddigger play --config ./my-golddigger.yaml --log-file ./golddigger.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	game, err := registry.Create(string(preset), gameEnv(cfg, logger, store))
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	if err := tui.Run(game, runtimeConfig(), cfg.Input, logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
