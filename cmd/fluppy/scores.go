package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/platform/tui"
	"github.com/vovakirdan/fluppy/internal/storage"
)

var flagScoresPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show recorded scores",
	Long: `Browse recorded scores, optionally filtered to one difficulty.

The default database lives in memory, so this command is only useful
together with --db pointing at a file the play command also used.

Examples:
  fluppy scores --db ~/.fluppy/scores.db
  fluppy scores hard --db ~/.fluppy/scores.db
  fluppy scores --plain --db ~/.fluppy/scores.db`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive browser")
}

func runScores(cmd *cobra.Command, args []string) {
	difficulty := ""
	if len(args) == 1 {
		difficulty = args[0]
		if _, ok := config.Lookup(difficulty); !ok {
			logger.Fatal("unknown difficulty", "name", difficulty)
		}
	}

	if flagDBPath == "" {
		logger.Warn("no --db given; the default database is in-memory and always empty here")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("open scores database", "err", err)
	}
	defer store.Close()

	if flagScoresPlain {
		printScores(store, difficulty)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if err := tui.RunScoreboard(store, width, height); err != nil {
		logger.Fatal("scoreboard", "err", err)
	}
}

func printScores(store *storage.Store, difficulty string) {
	scores, err := store.TopScores(difficulty, 10)
	if err != nil {
		logger.Fatal("retrieve scores", "err", err)
	}

	label := difficulty
	if label == "" {
		label = "all difficulties"
	}
	fmt.Printf("High Scores - %s\n", label)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fluppy play --db <path>' to set the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "Rank", "Score", "Difficulty", "Date")
	fmt.Printf("  %-4s  %-10s  %-12s  %s\n", "----", "-----", "----------", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %-12s  %s\n",
			i+1, entry.Score, entry.Difficulty, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if difficulty != "" {
		best, err := store.HighScore(difficulty)
		if err == nil {
			fmt.Println()
			fmt.Printf("Best: %d\n", best)
		}
	}
}
