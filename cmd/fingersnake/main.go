// fingersnake is a snake game steered by a continuous pointer instead of
// arrow keys. In the terminal the mouse plays the role of the tracked
// fingertip: the snake follows wherever the pointer leads, one grid step
// per fixed tick.
//
// Usage:
//
//	fingersnake play         - Play the game
//	fingersnake scores       - Show best runs
//	fingersnake serve        - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible food placement
//	--db <path>     - Set database path (default: ~/.fingersnake/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
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
	Use:   "fingersnake",
	Short: "Pointer-steered snake in your terminal",
	Long: `fingersnake is a snake game driven by continuous pointer motion.
Move the mouse around the board and the snake follows; there are no
arrow keys. Losing the pointer pauses the game, hitting a wall or
your own body ends it.

Available commands:
  play     - Play the game
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  fingersnake play
  fingersnake play --difficulty hard
  fingersnake scores --interactive
  fingersnake serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fingersnake/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
