// Package timing implements a reflex-timing game.
// The player raises an object toward a target and must catch it while it
// hovers there; a missed catch lets it fall back under gravity.
package timing

import (
	"fmt"

	"github.com/vovakirdan/tui-timing/internal/config"
	"github.com/vovakirdan/tui-timing/internal/core"
)

// Visual characters for rendering
const (
	ObjectChar   = '█'
	ObstacleChar = '▀'
	FloorChar    = '─'
)

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State  core.GameState
	Events []Event
}

// Game adapts the attempt state machine to the platform loop: it maps
// actions to signals, handles pause and draws the field onto a screen.
type Game struct {
	cfg       config.TimingConfig
	gen       *Generator
	machine   *Machine
	seed      int64
	paused    bool
	tickCount uint64
}

// NewGame creates a game over a validated config. clock may be nil to use the
// process monotonic clock.
func NewGame(cfg config.TimingConfig, clock core.Clock) (*Game, error) {
	gen := NewGenerator(cfg, 0)
	m, err := New(cfg, gen, clock)
	if err != nil {
		return nil, err
	}
	return &Game{
		cfg:     cfg,
		gen:     gen,
		machine: m,
	}, nil
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "timing"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Timing Game"
}

// Reset starts a new session with the runtime seed.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.seed = runtime.Seed
	g.gen.Reseed(runtime.Seed)
	g.machine.Reset()
	g.paused = false
	g.tickCount = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) StepResult {
	signals := make([]Signal, 0, in.Len())
	for _, a := range in.Actions() {
		switch a {
		case core.ActionPause:
			g.paused = !g.paused
		case core.ActionRise:
			if !g.paused {
				signals = append(signals, SignalRise)
			}
		case core.ActionJudge:
			if !g.paused {
				signals = append(signals, SignalJudge)
			}
		}
	}

	var events []Event
	if g.paused {
		events = g.machine.Apply(signals...)
	} else {
		events = g.machine.Step(signals...)
		g.tickCount++
	}

	return StepResult{State: g.State(), Events: events}
}

// Machine exposes the underlying state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

// Seed returns the seed of the current session.
func (g *Game) Seed() int64 {
	return g.seed
}

// Ticks returns the number of unpaused ticks since the last reset.
func (g *Game) Ticks() uint64 {
	return g.tickCount
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	fw, fh := g.cfg.Field.Width, g.cfg.Field.Height
	snap := g.machine.Snapshot()

	dst.DrawHLine(0, h-1, w, FloorChar, core.ColorGray)
	dst.DrawRect(snap.Obstacle.Scale(fw, fh, w, h), ObstacleChar, core.ColorWhite)
	dst.DrawRect(snap.Object.Scale(fw, fh, w, h), ObjectChar, core.ColorBlue)

	dst.DrawText(1, 0, fmt.Sprintf("Success: %d", snap.Successes), core.ColorGreen)
	dst.DrawText(1, 1, fmt.Sprintf("Failure: %d", snap.Failures), core.ColorRed)

	phase := snap.Phase.String()
	dst.DrawText(w-len(phase)-1, 0, phase, core.ColorGray)

	if g.paused {
		msg := "PAUSED - press P to resume"
		dst.DrawText((w-len(msg))/2, h/2, msg, core.ColorYellow)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Successes: g.machine.Successes(),
		Failures:  g.machine.Failures(),
		Phase:     g.machine.Phase().String(),
		Paused:    g.paused,
	}
}
