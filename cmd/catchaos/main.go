// catchaos is a terminal arcade game about keeping a room full of cats fed,
// watered, entertained and away from the breakables.
//
// Usage:
//
//	catchaos play            - Play in the current terminal
//	catchaos serve           - Start SSH server for remote play
//	catchaos scores          - Show the best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.catchaos/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "catchaos",
	Short: "Cat Chaos - Keep the cats happy and the vases standing",
	Long: `Cat Chaos is a terminal arcade game. Cats roam a furnished room with
needs that only grow; you are the caretaker who answers timed round
objectives with rapid key presses before the score runs dry.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View the best runs

Examples:
  catchaos play
  catchaos play --difficulty hard
  catchaos serve --ssh :2222
  catchaos scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.catchaos/runs.db", "Path to runs database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
