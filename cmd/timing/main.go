// timing is a reflex-timing game for the terminal: raise the block to the bar
// and catch it before it falls.
//
// Usage:
//
//	timing                    - Play (same as timing play)
//	timing play               - Play
//	timing config show        - Print the effective configuration
//	timing config check [f]   - Validate a configuration file
//
// Global flags:
//
//	--fps <rate>      - Override the configured tick rate
//	--seed <value>    - Set RNG seed for reproducible challenges
//	--config <path>   - Use a custom config YAML
//	--preset <name>   - relaxed, standard or strict
//	--log-file <path> - Write a debug log while playing
//	--no-summary      - Skip the attempt table after quitting
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagPreset    string
	flagLogFile   string
	flagNoSummary bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "timing",
	Short: "Timing Game - catch the block at the bar",
	Long: `Timing Game is a terminal reflex game.

Raise the block toward the bar, then catch it while it hovers there.
Catch it too early or too late and the attempt fails. Wait too long and
it falls back; raise it again before it lands to keep the same attempt.

Available commands:
  play     - Play the game (default)
  config   - Show or check the configuration

Examples:
  timing
  timing play --preset strict
  timing --seed 42 --log-file timing.log
  timing config check ./my-timing.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = physics.frame_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Preset: relaxed, standard, strict")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagNoSummary, "no-summary", false, "Do not show the session summary on exit")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
