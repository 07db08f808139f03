package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timing/internal/config"
	"github.com/vovakirdan/tui-timing/internal/core"
	"github.com/vovakirdan/tui-timing/internal/games/timing"
	"github.com/vovakirdan/tui-timing/internal/storage"
)

type testHarness struct {
	model   Model
	clock   *core.FakeClock
	journal *storage.Journal
	logs    *bytes.Buffer
}

func newHarness(t *testing.T) *testHarness {
	t.Helper()
	clock := core.NewFakeClock(0)
	game, err := timing.NewGame(config.DefaultTimingConfig(), clock)
	if err != nil {
		t.Fatalf("NewGame() failed: %v", err)
	}
	journal, err := storage.OpenJournal()
	if err != nil {
		t.Fatalf("OpenJournal() failed: %v", err)
	}
	t.Cleanup(func() { journal.Close() })

	logs := &bytes.Buffer{}
	logger := log.NewWithOptions(logs, log.Options{Level: log.DebugLevel, Prefix: "timing"})

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 99}
	return &testHarness{
		model:   NewModel(game, journal, logger, cfg),
		clock:   clock,
		journal: journal,
		logs:    logs,
	}
}

func (h *testHarness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	m, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	h.model = m
	return cmd
}

func (h *testHarness) tick(t *testing.T) {
	t.Helper()
	h.clock.Advance(16)
	if cmd := h.send(t, TickMsg(time.Now())); cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
}

func (h *testHarness) phase() string {
	return h.model.State().Phase
}

func TestModelTickLoop(t *testing.T) {
	h := newHarness(t)

	if h.phase() != "resting" {
		t.Fatalf("initial phase %q", h.phase())
	}
	if h.model.Init() == nil {
		t.Fatal("Init() should start the tick loop")
	}

	// Keys are queued until the next tick
	h.send(t, tea.KeyMsg{Type: tea.KeyUp})
	if h.phase() != "resting" {
		t.Error("key should not apply before the tick")
	}
	h.tick(t)
	if h.phase() != "rising" {
		t.Fatalf("phase %q after rise, expected rising", h.phase())
	}

	// Judging while rising is a failure that lands in the journal
	h.send(t, tea.KeyMsg{Type: tea.KeySpace})
	h.tick(t)
	if h.model.State().Failures != 1 {
		t.Fatalf("Failures = %d, expected 1", h.model.State().Failures)
	}

	attempts, err := h.journal.Attempts(0)
	if err != nil {
		t.Fatalf("Attempts() failed: %v", err)
	}
	if len(attempts) != 1 || attempts[0].Outcome != storage.OutcomeFailure || attempts[0].Cause != "too early" {
		t.Errorf("journal = %+v, expected one early failure", attempts)
	}

	logs := h.logs.String()
	if !strings.Contains(logs, "attempt resolved") || !strings.Contains(logs, "rise started") {
		t.Errorf("logs missing transitions:\n%s", logs)
	}
}

func TestModelCatch(t *testing.T) {
	h := newHarness(t)

	h.send(t, runeKey('w'))
	h.tick(t)
	for i := 0; i < 500 && h.phase() == "rising"; i++ {
		h.tick(t)
	}
	if h.phase() != "holding" {
		t.Fatalf("phase %q, expected holding", h.phase())
	}

	h.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	h.clock.Advance(1)
	h.send(t, TickMsg(time.Now()))
	if h.model.State().Successes != 1 {
		t.Fatalf("Successes = %d, expected 1", h.model.State().Successes)
	}

	s, err := h.journal.Summary()
	if err != nil {
		t.Fatalf("Summary() failed: %v", err)
	}
	if s.Successes != 1 || !s.HasReaction || s.BestReactionMs != 1 {
		t.Errorf("summary = %+v", s)
	}
}

func TestModelRestart(t *testing.T) {
	h := newHarness(t)
	first := h.journal.SessionID()

	h.send(t, runeKey('w'))
	h.tick(t)
	h.send(t, tea.KeyMsg{Type: tea.KeySpace})
	h.tick(t)

	h.send(t, runeKey('r'))
	h.tick(t)

	state := h.model.State()
	if state.Failures != 0 || state.Successes != 0 || state.Phase != "resting" {
		t.Errorf("state after restart = %+v", state)
	}
	if h.journal.SessionID() == first {
		t.Error("restart should start a new journal session")
	}
}

func TestModelPause(t *testing.T) {
	h := newHarness(t)

	h.send(t, runeKey('p'))
	h.tick(t)
	if !h.model.State().Paused {
		t.Fatal("expected paused")
	}

	h.send(t, runeKey('w'))
	h.tick(t)
	if h.phase() != "resting" {
		t.Errorf("rise applied while paused, phase %q", h.phase())
	}
}

func TestModelQuit(t *testing.T) {
	h := newHarness(t)

	cmd := h.send(t, runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if h.model.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelViewAndResize(t *testing.T) {
	h := newHarness(t)

	view := h.model.View()
	if !strings.Contains(view, "Success: 0") || !strings.Contains(view, "rise") {
		t.Errorf("view missing HUD or help:\n%s", view)
	}
	if h.model.screen.Height() != 24 {
		t.Errorf("playfield height = %d, expected 24", h.model.screen.Height())
	}

	h.send(t, tea.WindowSizeMsg{Width: 100, Height: 41})
	if h.model.screen.Width() != 100 || h.model.screen.Height() != 40 {
		t.Errorf("screen = %dx%d after resize", h.model.screen.Width(), h.model.screen.Height())
	}
	if h.phase() != "resting" {
		t.Error("resize should not reset the session")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorGreen)
	s.DrawText(0, 1, "ef", core.ColorDefault)

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should produce 2 rows: %q", out)
	}
}

func TestSummaryModel(t *testing.T) {
	h := newHarness(t)

	empty, err := NewSummaryModel(h.journal, 80, 24)
	if err != nil {
		t.Fatalf("NewSummaryModel() failed: %v", err)
	}
	if !strings.Contains(empty.View(), "No attempts") {
		t.Errorf("empty summary view:\n%s", empty.View())
	}

	h.send(t, runeKey('w'))
	h.tick(t)
	h.send(t, tea.KeyMsg{Type: tea.KeySpace})
	h.tick(t)

	m, err := NewSummaryModel(h.journal, 80, 24)
	if err != nil {
		t.Fatalf("NewSummaryModel() failed: %v", err)
	}
	view := m.View()
	if !strings.Contains(view, "SESSION SUMMARY") || !strings.Contains(view, "Failure: 1") || !strings.Contains(view, "too early") {
		t.Errorf("summary view:\n%s", view)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should close the summary")
	}
	if next.(SummaryModel).View() != "" {
		t.Error("View() should be empty after closing")
	}
}
