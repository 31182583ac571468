package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-blaster/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-run a recorded session headless",
	Long: `Replay a session recorded with 'blaster play --record'.

The recording is re-simulated without a terminal using the stored seed,
config and inputs. The final state is printed and, when the recording
carries a final hash, checked against it.

Examples:
  blaster replay ~/.arcade/replays/blaster_20260101_120000.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	rec, err := replay.Load(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := replay.Run(rec)
	if err != nil && !errors.Is(err, replay.ErrMismatch) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	snap := res.Snapshot
	fmt.Printf("Seed:   %d\n", rec.Seed)
	fmt.Printf("Steps:  %d (%d with input)\n", rec.Steps, len(rec.Frames))
	fmt.Printf("Phase:  %s\n", snap.Phase)
	fmt.Printf("Score:  %d\n", snap.Score)
	fmt.Printf("Level:  %d\n", snap.Level)
	fmt.Printf("Lives:  %d\n", snap.Player.Lives)
	fmt.Printf("Hash:   %d\n", res.Hash)

	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	case res.Verified:
		fmt.Println("Replay matches the recorded run.")
	default:
		fmt.Println("No final hash recorded; nothing to verify.")
	}
}
