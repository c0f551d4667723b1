package tui

import (
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"netbreach/pkg/game/gameplay"
	"netbreach/pkg/game/locale"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

func TestMain(m *testing.M) {
	if _, err := locale.Init(locale.Default); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestModel(t *testing.T) (Model, *clock) {
	t.Helper()
	c := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	g := gameplay.NewGame(state.Options{
		Rand:  rand.New(rand.NewSource(1)),
		Clock: c.Now,
	})
	g.TraceChance = 0
	return NewModel(g), c
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func booted(t *testing.T) Model {
	t.Helper()
	m, c := newTestModel(t)
	c.now = c.now.Add(gameplay.BootDuration())
	m, _ = update(t, m, tickMsg(c.now))
	if m.game.Phase != phase.Menu {
		t.Fatalf("Phase after boot = %s, want MENU", m.game.Phase)
	}
	return m
}

func TestModel_TypingIgnoredDuringBoot(t *testing.T) {
	m, _ := newTestModel(t)
	m = typeText(t, m, "help")
	if got := m.input.Value(); got != "" {
		t.Errorf("input during boot = %q, want empty", got)
	}
}

func TestModel_TickPumpsEvents(t *testing.T) {
	m, c := newTestModel(t)
	c.now = c.now.Add(time.Second)
	m, cmd := update(t, m, tickMsg(c.now))
	if cmd == nil {
		t.Fatal("tick did not reschedule itself")
	}
	if m.game.Phase != phase.Boot {
		t.Errorf("Phase after 1s = %s, want BOOT", m.game.Phase)
	}
	if len(m.game.Logs) != 2 {
		t.Errorf("boot logs after 1s = %d, want 2", len(m.game.Logs))
	}
}

func TestModel_SubmitRunsCommand(t *testing.T) {
	m := booted(t)
	m = typeText(t, m, "start")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.game.Phase != phase.DirectoryHunt {
		t.Errorf("Phase = %s, want DIRECTORY_HUNT", m.game.Phase)
	}
	if got := m.input.Value(); got != "" {
		t.Errorf("input after submit = %q, want empty", got)
	}
}

func TestModel_HistoryAndCompletion(t *testing.T) {
	m := booted(t)
	m = typeText(t, m, "start")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if got := m.input.Value(); got != "start" {
		t.Errorf("input after up = %q, want %q", got, "start")
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if got := m.input.Value(); got != "" {
		t.Errorf("input after down = %q, want empty", got)
	}

	m = typeText(t, m, "cd ho")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.input.Value(); got != "cd home" {
		t.Errorf("input after tab = %q, want %q", got, "cd home")
	}
}

func TestModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t)
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("ctrl+c command = %T, want tea.QuitMsg", cmd())
	}
}

func TestModel_ViewShowsPromptAndLogs(t *testing.T) {
	m := booted(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	if !strings.Contains(view, "guest@mainframe ~$") {
		t.Error("View() is missing the prompt label")
	}
	if !strings.Contains(view, "Type 'help' for available commands.") {
		t.Error("View() is missing the boot hint")
	}
}

func TestLogLines_PadsAndTrims(t *testing.T) {
	logs := []state.LogEntry{{Text: "one"}, {Text: "two"}}
	got := logLines(logs, 80, 4)
	if len(got) != 4 {
		t.Fatalf("logLines() len = %d, want 4", len(got))
	}
	if got[0] != "" || got[1] != "" {
		t.Errorf("logLines() should pad the top, got %q", got)
	}

	long := []state.LogEntry{{Text: strings.Repeat("word ", 40)}}
	if got := logLines(long, 20, 3); len(got) != 3 {
		t.Errorf("logLines() with wrapping len = %d, want 3", len(got))
	}
}
