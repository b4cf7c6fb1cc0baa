package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rsa-snake/internal/config"
	"github.com/vovakirdan/rsa-snake/internal/core"
	"github.com/vovakirdan/rsa-snake/internal/leaderboard"
	"github.com/vovakirdan/rsa-snake/internal/platform/tui"
	"github.com/vovakirdan/rsa-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play RSA Snake",
	Long: `Start the game.

Controls:
  Arrows/WASD  - Steer
  P            - Pause (any direction resumes)
  R            - Restart the round
  M            - Back to the difficulty menu
  N            - Change player
  L            - Leaderboard
  Q/Ctrl+C     - Quit

The buttons under the field can be clicked with the mouse.
The leaderboard lives only as long as the process.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var difficulty config.Difficulty
	if flagDifficulty != "" {
		if difficulty, err = config.ParseDifficulty(flagDifficulty); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.Timing.TickRate
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	// Rankings and round history for this process only
	var store leaderboard.Store
	db, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("sqlite unavailable, using in-process board", "err", err)
		store = leaderboard.NewBoard()
	} else {
		defer db.Close()
		store = db
	}

	player := strings.TrimSpace(flagPlayer)
	logger.Info("starting", "player", player, "difficulty", difficulty, "seed", flagSeed)

	err = tui.Run(tui.Options{
		Config:     cfg,
		Runtime:    runtime,
		Player:     player,
		Difficulty: difficulty,
		Store:      store,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
