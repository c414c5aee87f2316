// climber is a terminal vertical-jumper: charge a power meter, leap up an
// endless column of moving platforms, and evolve your climber as it gains
// experience from risky landings.
//
// Usage:
//
//	climber play             - Play the game
//	climber scores           - Show the high-score table
//	climber serve            - Start SSH server for remote play
//	climber list             - List registered games
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.climber/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-climber/internal/games/climber"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "Climber - Endless vertical jumper in your terminal",
	Long: `Climber is a terminal game about ascending an endless column of
moving platforms. Hold to charge a jump, release to launch, and land
high to gain experience and evolve through cosmetic stages.

Available commands:
  play     - Play the game
  scores   - Interactive high-score table
  serve    - Start SSH server for remote play
  list     - List registered games

Examples:
  climber play
  climber play --seed 42
  climber scores
  climber serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.climber/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
