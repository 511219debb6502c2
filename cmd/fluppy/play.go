package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fluppy/internal/audio"
	"github.com/vovakirdan/fluppy/internal/config"
	"github.com/vovakirdan/fluppy/internal/core"
	"github.com/vovakirdan/fluppy/internal/game"
	"github.com/vovakirdan/fluppy/internal/platform/tui"
	"github.com/vovakirdan/fluppy/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game",
	Long: `Start playing. Without --difficulty an interactive picker opens first.

Controls:
  Space/Up/W - Flap
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - Slow pipes, wide gaps
  normal - The intended experience
  hard   - Fast pipes, narrow gaps, and the gaps drift up and down

Examples:
  fluppy play
  fluppy play --difficulty hard
  fluppy play --seed 42 --mute
  fluppy play --config ./my-fluppy.yaml --db ~/.fluppy/scores.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Fatal("load config", "err", err)
	}

	// Terminal size before any TUI program starts.
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}

	// No explicit choice anywhere means the player picks interactively.
	choice := flagDifficulty
	if choice == "" && os.Getenv(config.EnvDifficulty) == "" {
		choice, err = tui.RunDifficultySelector(cfg.Difficulty, rc)
		if err != nil {
			logger.Fatal("difficulty selector", "err", err)
		}
		if choice == "" {
			return // player backed out
		}
	}
	preset := config.Resolve(choice, cfg.Difficulty)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("scores disabled", "err", err)
		store = nil
	}

	var sounds core.SoundSink = core.NopSink{}
	var player *audio.Player
	if !flagMute {
		player, err = audio.NewPlayer()
		if err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			sounds = player
		}
	}

	g := game.New(rc, cfg, preset, sounds)
	runErr := tui.Run(g, store, rc)

	player.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Fatal("run game", "err", runErr)
	}
}
