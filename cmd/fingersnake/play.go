package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/handplay/fingersnake/internal/config"
	"github.com/handplay/fingersnake/internal/core"
	"github.com/handplay/fingersnake/internal/platform/tui"
	"github.com/handplay/fingersnake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game. The snake follows your mouse pointer; move it
around the board to steer. Keeping the pointer still is fine for a
moment, but after the grace period the game pauses until the pointer
moves again.

Controls:
  Mouse      - Steer the snake
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets adjust the movement speed:
  easy   - Slower ticks
  normal - Default speed
  hard   - Faster ticks

Examples:
  fingersnake play
  fingersnake play --difficulty hard
  fingersnake play --config ./my-snake.yaml
  fingersnake play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))

	// Get terminal size for the screen buffer
	runtime := core.DefaultRuntimeConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	runtime.PollRate = gameCfg.Timing.PollRate
	runtime.Seed = flagSeed

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(gameCfg, store, runtime, nil)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
