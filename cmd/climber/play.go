package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/registry"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the game",
	Long: `Start a run. The climber begins on a seed platform; hold the jump
key to charge the power meter and release to launch.

Controls:
  Space/Up/W - Charge jump (press again to release)
  R          - Restart (after game over)
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  climber play
  climber play --seed 42
  climber play --config ./my-climber.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := "climber"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'climber list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path before the game is created
	climber.SetConfigPath(flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
