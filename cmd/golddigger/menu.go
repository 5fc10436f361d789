package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/golddigger/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Gold Digger with the title menu",
	Long: `Start in interactive menu mode.

Pick Classic, Easy or Hard to start digging, or open the run history.
Pausing a game (P) and pressing Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Run history
  Q            - Quit

Examples:
  golddigger menu
  golddigger menu --fps 30
  golddigger menu --db ./runs.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	var history tui.RunHistory
	if store != nil {
		defer store.Close()
		history = store
	}

	return tui.RunSession(gameEnv(cfg, logger, store), history, runtimeConfig())
}
