package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-timing/internal/storage"
)

// Summary layout constants
const (
	maxAttempts     = 500 // Max attempts to load
	summaryChrome   = 9   // Rows taken by title, totals, borders and help
	minTableHeight  = 3
	defaultColWidth = 10
)

// SummaryKeyMap defines the key bindings for the session summary.
type SummaryKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SummaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k SummaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Quit}}
}

// DefaultSummaryKeyMap returns default key bindings.
func DefaultSummaryKeyMap() SummaryKeyMap {
	return SummaryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "enter", "ctrl+c"),
			key.WithHelp("q/enter", "close"),
		),
	}
}

// SummaryModel is the Bubble Tea model for the end-of-run attempt table.
type SummaryModel struct {
	summary  storage.SessionSummary
	attempts []storage.AttemptRecord
	table    table.Model
	help     help.Model
	keys     SummaryKeyMap
	width    int
	height   int
	quitting bool
}

// NewSummaryModel loads the current session of the journal.
func NewSummaryModel(journal *storage.Journal, width, height int) (SummaryModel, error) {
	summary, err := journal.Summary()
	if err != nil {
		return SummaryModel{}, err
	}
	attempts, err := journal.Attempts(maxAttempts)
	if err != nil {
		return SummaryModel{}, err
	}

	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := SummaryModel{
		summary:  summary,
		attempts: attempts,
		keys:     DefaultSummaryKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
	m.table = m.createTable()
	m.updateTableRows()

	return m, nil
}

// createTable creates a new table with appropriate columns.
func (m *SummaryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 5},
		{Title: "Outcome", Width: 9},
		{Title: "Cause", Width: 14},
		{Title: "Held", Width: defaultColWidth},
		{Title: "Window", Width: defaultColWidth},
		{Title: "Speed", Width: 6},
		{Title: "Target", Width: 7},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(minTableHeight, m.height-summaryChrome)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the loaded attempts.
func (m *SummaryModel) updateTableRows() {
	rows := make([]table.Row, len(m.attempts))
	for i, a := range m.attempts {
		held := "-"
		if a.Phase == "holding" {
			held = fmt.Sprintf("%d ms", a.HeldMs)
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			a.Outcome,
			a.Cause,
			held,
			fmt.Sprintf("%d ms", a.HoldMs),
			fmt.Sprintf("%d", a.RiseSpeed),
			fmt.Sprintf("%d", a.TargetY),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the summary model.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary.
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Scrolling is handled by the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the summary.
func (m SummaryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("SESSION SUMMARY", m.width)))
	b.WriteString("\n\n")

	b.WriteString(centerText(m.totalsLine(), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// totalsLine formats the aggregate counters of the session.
func (m SummaryModel) totalsLine() string {
	s := m.summary
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	line := fmt.Sprintf("%s  %s  rate %.0f%%",
		green.Render(fmt.Sprintf("Success: %d", s.Successes)),
		red.Render(fmt.Sprintf("Failure: %d", s.Failures)),
		s.SuccessRate*100,
	)
	if s.HasReaction {
		line += fmt.Sprintf("  mean %.0f ms  best %d ms", s.MeanReactionMs, s.BestReactionMs)
	}
	return line
}

// renderTableContent renders the table or empty message.
func (m SummaryModel) renderTableContent() string {
	if len(m.attempts) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		return emptyStyle.Render("No attempts resolved this session.")
	}
	return m.table.View()
}

// centerText pads text so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunSummary shows the attempt table of the journal's current session.
func RunSummary(journal *storage.Journal, width, height int) error {
	model, err := NewSummaryModel(journal, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
