package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pixel-blaster/internal/core"
	"github.com/vovakirdan/pixel-blaster/internal/platform/tui"
	"github.com/vovakirdan/pixel-blaster/internal/storage"
)

var (
	flagRecord    bool
	flagReplayDir string
	flagHold      int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Pixel Blaster",
	Long: `Start the main menu and play.

Controls:
  Arrows/WASD  - Move (hold)
  Space        - Place a bomb
  Enter        - Start from the title screen
  P            - Pause
  Esc/B        - Abandon the run, or leave the title screen
  R            - Restart after game over
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Examples:
  blaster play
  blaster play --difficulty easy
  blaster play --seed 42 --record
  blaster play --config ./my-blaster.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagRecord, "record", false, "Save a replay of the session")
	playCmd.Flags().StringVar(&flagReplayDir, "replay-dir", "", "Directory for replays (default: ~/.arcade/replays)")
	playCmd.Flags().IntVar(&flagHold, "hold", int(tui.DefaultHoldWindow.Milliseconds()), "Milliseconds a direction stays held after a key press")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
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

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	opts := tui.Options{
		Store:      store,
		Logger:     logger,
		Config:     gameCfg,
		HoldWindow: time.Duration(flagHold) * time.Millisecond,
	}
	if flagRecord {
		opts.ReplayDir = replayDir()
	}

	runErr := tui.Run(opts, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// replayDir returns the --replay-dir flag or ~/.arcade/replays.
func replayDir() string {
	if flagReplayDir != "" {
		return flagReplayDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "replays"
	}
	return filepath.Join(home, ".arcade", "replays")
}
