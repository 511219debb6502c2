// fluppy is a terminal rendition of the classic one-button flapping game.
//
// Usage:
//
//	fluppy play                  - Play (difficulty picker when no flag given)
//	fluppy difficulties          - List difficulty presets
//	fluppy scores [difficulty]   - Show recorded scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible pipe placement
//	--db <path>     - Scores database path (default: in-memory)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fluppy",
	Short: "Fluppy - a flapping-bird reflex game for your terminal",
	Long: `Fluppy is a terminal game: tap space to flap, thread the bird
through the pipe gaps, and chase your best score.

Available commands:
  play          - Start a game
  difficulties  - Show the difficulty presets
  scores        - View recorded scores

Examples:
  fluppy play
  fluppy play --difficulty hard
  fluppy play --seed 42 --db ~/.fluppy/scores.db
  fluppy scores hard --db ~/.fluppy/scores.db`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (default: in-memory, scores vanish on exit)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(scoresCmd)
}
