// Package tui is the terminal front-end, built on bubbletea.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"netbreach/pkg/engine/input"
	"netbreach/pkg/engine/terminal"
	"netbreach/pkg/game/devtools"
	"netbreach/pkg/game/gameplay"
	"netbreach/pkg/game/renderer"
	"netbreach/pkg/game/state"
)

// PumpInterval is how often the model fires due game events
const PumpInterval = 50 * time.Millisecond

// Lines reserved outside the log pane: separator, prompt and status
const chromeRows = 3

// ErrNotInteractive is returned by Init when stdin or stdout is not a terminal
var ErrNotInteractive = errors.New("tui renderer needs an interactive terminal")

var (
	bannerTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("9")).
				Border(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color("9")).
				Padding(0, 2)
	bannerCountdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	separatorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct{}

// New creates a new TUI renderer
func New() *TUIRenderer {
	return &TUIRenderer{}
}

// Init checks the terminal and sets up colors
func (t *TUIRenderer) Init() error {
	if !terminal.IsInteractive() {
		return ErrNotInteractive
	}
	renderer.InitColors()
	return nil
}

// Run starts the bubbletea program and blocks until the player quits
func (t *TUIRenderer) Run(g *state.Game) error {
	p := tea.NewProgram(NewModel(g), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(PumpInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the bubbletea model wrapping one game session
type Model struct {
	game   *state.Game
	input  textinput.Model
	width  int
	height int
	status string // Last devtools result, shown under the prompt
}

// NewModel creates a model sized to the current terminal
func NewModel(g *state.Game) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256
	ti.Focus()

	w, h := terminal.GetSize()
	m := Model{game: g, input: ti, width: w, height: h}
	m.syncInput()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncInput()
		return m, nil

	case tickMsg:
		gameplay.Advance(m.game)
		m.syncInput()
		return m, tick()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := input.IntentFor(input.DeviceTerminal, msg.String())

	switch intent.Action {
	case input.ActionQuit:
		return m, tea.Quit

	case input.ActionSubmit, input.ActionComplete, input.ActionHistoryPrev, input.ActionHistoryNext:
		line := gameplay.ProcessIntent(m.game, intent, m.input.Value())
		m.input.SetValue(line)
		m.input.CursorEnd()
		gameplay.Advance(m.game)
		m.syncInput()
		return m, nil

	case input.ActionScreenshot:
		m.status = m.devtool("screenshot", devtools.SaveScreenshotHTML)
		return m, nil

	case input.ActionDebugFSDump:
		m.status = m.devtool("filesystem dump", devtools.DumpFilesystemToFile)
		return m, nil

	case input.ActionZoomIn, input.ActionZoomOut:
		return m, nil
	}

	if !renderer.InputEnabled(m.game) {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) devtool(name string, save func(*state.Game) (string, error)) string {
	path, err := save(m.game)
	if err != nil {
		m.game.Log.Warn("devtool failed", zap.String("tool", name), zap.Error(err))
		return fmt.Sprintf("%s failed: %v", name, err)
	}
	m.game.Log.Info("devtool saved", zap.String("tool", name), zap.String("path", path))
	return fmt.Sprintf("%s saved to %s", name, path)
}

// syncInput keeps the input widget in step with the game phase
func (m *Model) syncInput() {
	label := renderer.PromptLabel(m.game) + " "
	m.input.Placeholder = renderer.Placeholder(m.game)
	m.input.Width = m.width - lipgloss.Width(label) - 1
	if renderer.InputEnabled(m.game) {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	rows := m.height - chromeRows
	if title, countdown, ok := renderer.TraceBanner(m.game); ok {
		banner := lipgloss.JoinVertical(lipgloss.Center,
			bannerTitleStyle.Render(title),
			bannerCountdownStyle.Render(countdown),
		)
		banner = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, banner)
		b.WriteString(banner)
		b.WriteString("\n")
		rows -= lipgloss.Height(banner)
	}

	for _, line := range logLines(m.game.Logs, m.width, rows) {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(separatorStyle.Render(strings.Repeat("─", max(m.width, 1))))
	b.WriteString("\n")

	promptStyle := renderer.StylePrompt
	if m.game.TraceActive() {
		promptStyle = renderer.StyleError
	}
	b.WriteString(renderer.ColorFor(promptStyle).Sprint(renderer.PromptLabel(m.game)))
	b.WriteString(" ")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(renderer.ColorSubtle.Sprint(m.status))

	return b.String()
}

// logLines colors the newest log rows, padding the top so the prompt stays
// at the bottom of the screen
func logLines(logs []state.LogEntry, width, rows int) []string {
	if rows <= 0 {
		return nil
	}
	var lines []string
	for _, l := range renderer.LogLines(logs, width, rows) {
		lines = append(lines, renderer.ColorFor(l.Style).Sprint(l.Text))
	}
	for len(lines) < rows {
		lines = append([]string{""}, lines...)
	}
	return lines
}
