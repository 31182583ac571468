// blaster is a terminal bomberman arena: place timed bombs, clear soft
// walls and outlast the AI enemies.
//
// Usage:
//
//	blaster play             - Play from the main menu
//	blaster scores           - Show the top runs and the best score
//	blaster serve            - Start SSH server for remote play
//	blaster replay <file>    - Re-run a recorded session headless
//	blaster config           - Print the effective game config
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set RNG seed for reproducible arenas
//	--db <path>            - Set database path (default: ~/.arcade/scores.db)
//	--config <path>        - Load game config from a YAML file
//	--difficulty <preset>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pixel-blaster/internal/config"
	"github.com/vovakirdan/pixel-blaster/internal/games/blaster"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

// logger reports warnings that do not stop a command.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "blaster"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blaster",
	Short: "Pixel Blaster - a bomberman arena in your terminal",
	Long: `Pixel Blaster is a grid arena game played in the terminal.
Place bombs to clear soft walls and defeat enemies; clear every enemy
to advance to the next level.

Available commands:
  play     - Play from the main menu
  scores   - View high scores
  serve    - Start SSH server for remote play
  replay   - Re-run a recorded session
  config   - Print the effective game config

Examples:
  blaster play
  blaster play --difficulty hard --record
  blaster serve --ssh :2222
  blaster replay ~/.arcade/replays/blaster_20260101_120000.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig resolves the config selected by the global flags. A
// custom path that cannot be used is an error rather than a silent
// fallback.
func loadGameConfig() (config.BlasterConfig, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.BlasterConfig{}, err
	}

	cfg, err := config.LoadBlaster(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyBlasterPreset(&cfg, preset)

	blaster.SetConfigPath(flagConfig)
	blaster.SetDifficultyPreset(preset)
	return cfg, nil
}
