package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode. Defaults to marathon ("tetris").

Controls:
  ←/h, →/l   - Move
  ↓/j        - Soft drop
  ↑/k/x      - Rotate
  Space      - Hard drop
  P          - Pause
  R          - Restart (any key after game over)
  Esc/B      - Leave (while paused or after game over)
  Q/Ctrl+C   - Quit
  Ctrl+S     - Save a text screenshot

Difficulty options:
  easy   - Start at level 1
  normal - Start at level 5
  hard   - Start at level 10
  fixed  - Constant gravity, no level speed-up

Examples:
  tetris play
  tetris play tetris_classic
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'tetris list' to see modes)", gameID)
	}
	if err := configureGame(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closer, err := interactiveLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, runtimeConfig(),
		tui.WithLogger(logger),
		tui.WithPlayer(flagPlayer),
	)
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
