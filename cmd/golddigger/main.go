// golddigger is a tile-based mining game for the terminal.
//
// Usage:
//
//	golddigger play           - Play a game directly
//	golddigger menu           - Start the title menu
//	golddigger serve          - Start SSH server for remote play
//	golddigger scores         - Show the run history
//	golddigger modes          - List difficulty modes
//	golddigger config         - Print, validate or describe the tuning file
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible worlds
//	--db <path>         - Set database path (default: ~/.golddigger/runs.db)
//	--config <path>     - Use a custom tuning file
//	--difficulty <id>   - easy, normal or hard
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/golddigger/internal/config"
	"github.com/vovakirdan/golddigger/internal/core"
	"github.com/vovakirdan/golddigger/internal/registry"
	"github.com/vovakirdan/golddigger/internal/storage"

	// Import the game to register its modes
	_ "github.com/vovakirdan/golddigger/internal/games/golddigger"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "golddigger",
	Short: "Gold Digger - dig for gold in your terminal",
	Long: `Gold Digger is a tile-based mining game for the terminal.

Hold an arrow key to dig. Your drill bit wears down while it works;
return to the surface for a new one, and trade gold for a sturdier bit.
Somewhere deep below lies an alien artifact.

Available commands:
  play     - Play directly
  menu     - Title menu with difficulty modes and run history
  serve    - Start SSH server for remote play
  scores   - View the run history
  modes    - List difficulty modes
  config   - Print, validate or describe the tuning file

Examples:
  golddigger play
  golddigger play --difficulty hard --seed 42
  golddigger menu
  golddigger serve --ssh :2222
  golddigger scores --plain`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.golddigger/runs.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(modesCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the tuning file named by --config or found on the search path.
func loadConfig(logger *log.Logger) (config.GoldDiggerConfig, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.GoldDiggerConfig{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// newLogger builds the logger for interactive commands. Without --log-file
// logs are discarded so they never draw over the game.
func newLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(flagLogFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "golddigger",
		Level:           level,
	})
	return logger, f, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the run history. A failure is logged and play continues
// without history.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("run history unavailable", "err", err)
		return nil
	}
	return store
}

// gameEnv builds the environment every game mode is created with.
func gameEnv(cfg config.GoldDiggerConfig, logger *log.Logger, store *storage.Store) registry.Env {
	env := registry.Env{Config: cfg, Logger: logger}
	if store != nil {
		env.Recorder = store
	}
	return env
}
