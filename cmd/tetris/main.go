// tetris is a terminal Tetris with local play, a mode menu, a persistent
// scoreboard and an SSH server for remote play.
//
// Usage:
//
//	tetris list              - List game modes
//	tetris play [mode]       - Play a mode (default: tetris)
//	tetris menu              - Pick modes interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--log-level <level>   - debug, info, warn or error
//	--config <path>       - Custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/storage"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris in your terminal",
	Long: `A terminal Tetris with a marathon mode, a constant-speed classic mode,
a local scoreboard and an SSH server for remote play.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play tetris_classic --seed 42
  tetris menu --difficulty hard
  tetris serve --ssh :2222
  tetris scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to scores database")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// configureGame validates --config and --difficulty and hands them to the
// game package before any game is created.
func configureGame() error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}

	if flagConfig != "" {
		if _, err := config.LoadTetris(flagConfig); err != nil {
			return err
		}
	}

	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig builds the session parameters from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// interactiveLogger logs to the log file, since the game owns the terminal.
// The returned closer must be called on exit.
func interactiveLogger() (*log.Logger, io.Closer, error) {
	f, err := logging.OpenFile(logging.DefaultFile)
	if err != nil {
		// No log file is not fatal for a local game.
		logger, lerr := logging.New(logging.Options{Prefix: "tetris", Level: flagLogLevel, Writer: io.Discard})
		return logger, io.NopCloser(nil), lerr
	}
	logger, err := logging.New(logging.Options{Prefix: "tetris", Level: flagLogLevel, Writer: f})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, f, nil
}

// openStore opens the score database. A failure is reported and the game
// runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without score persistence", "error", err)
		return nil
	}
	return store
}
