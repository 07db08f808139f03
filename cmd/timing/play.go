package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-timing/internal/config"
	"github.com/vovakirdan/tui-timing/internal/core"
	"github.com/vovakirdan/tui-timing/internal/games/timing"
	"github.com/vovakirdan/tui-timing/internal/platform/tui"
	"github.com/vovakirdan/tui-timing/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing.

Controls:
  Up/W/K       - Raise the block (or catch it again while it falls)
  Space/Enter  - Catch
  P            - Pause
  R            - New session
  Q/Esc/Ctrl+C - Quit

Presets:
  relaxed  - Long hold windows, slow rises
  standard - Config as loaded
  strict   - Short hold windows, fast rises

Examples:
  timing play
  timing play --preset relaxed
  timing play --config ./my-timing.yaml --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := effectiveConfig()
	if err != nil {
		return err
	}

	tickRate := cfg.Physics.FrameRate
	if flagFPS < 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagFPS > 0 {
		tickRate = flagFPS
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	logger.Info("starting",
		"preset", flagPreset,
		"config", flagConfig,
		"fps", tickRate,
		"rise", fmt.Sprintf("%d-%d", cfg.Rise.MinDistance, cfg.Rise.MaxDistance),
		"speed", fmt.Sprintf("%d-%d", cfg.Rise.MinSpeed, cfg.Rise.MaxSpeed),
		"hold_ms", fmt.Sprintf("%d-%d", cfg.Hold.MinMs, cfg.Hold.MaxMs),
		"gravity", cfg.Physics.Gravity,
	)

	game, err := timing.NewGame(cfg, core.NewMonotonicClock())
	if err != nil {
		return err
	}

	journal, err := storage.OpenJournal()
	if err != nil {
		// Continue without a journal - the game still works
		logger.Warn("could not open session journal", "error", err)
		journal = nil
	}
	if journal != nil {
		defer journal.Close()
	}

	if err := tui.Run(game, journal, logger, rc); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if flagNoSummary || journal == nil {
		return nil
	}
	if err := tui.RunSummary(journal, width, height); err != nil {
		return fmt.Errorf("showing summary: %w", err)
	}
	return nil
}

// effectiveConfig loads the config and applies the preset flag.
func effectiveConfig() (config.TimingConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, ok := config.ParsePreset(flagPreset)
	if !ok {
		return cfg, fmt.Errorf("unknown preset %q (use relaxed, standard or strict)", flagPreset)
	}
	config.ApplyPreset(&cfg, preset)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger writes to path, or discards everything when path is empty.
// The terminal belongs to the game while it runs.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "timing",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
