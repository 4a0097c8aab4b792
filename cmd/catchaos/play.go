package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cat-chaos/internal/catchaos"
	"github.com/vovakirdan/cat-chaos/internal/config"
	"github.com/vovakirdan/cat-chaos/internal/core"
	"github.com/vovakirdan/cat-chaos/internal/platform/tui"
	"github.com/vovakirdan/cat-chaos/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Cat Chaos",
	Long: `Start a session in the current terminal.

Controls:
  Arrows/hjkl  - Move the caretaker
  F            - Fill the food bowl
  W            - Fill the water bowl
  P            - Play with a cat at a toy
  T            - Pet a cat
  N            - Stop a cat mid-mischief
  Space        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower needs, forgiving hazards, more starting points
  normal - The standard tuning
  hard   - Faster needs, meaner hazards, fewer starting points
  fixed  - No round-by-round timer tightening

Examples:
  catchaos play
  catchaos play --difficulty hard
  catchaos play --config ./my-room.yaml
  catchaos play --seed 42`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagDifficulty != "" && !config.IsValidPreset(flagDifficulty) {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (use easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}

	// Terminal size for the runtime config
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	catchaos.SetConfigPath(flagConfig)
	catchaos.SetDifficultyPreset(flagDifficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(catchaos.New(), store, cfg, flagDifficulty)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
