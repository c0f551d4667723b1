package state

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Severity classifies a log entry for display
type Severity int

const (
	Info Severity = iota
	Success
	Error
	Warning
	System
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case System:
		return "system"
	default:
		return "info"
	}
}

// LogEntry is one line of player-facing output
type LogEntry struct {
	ID       string
	Text     string
	Severity Severity
}

// AddLog appends a single entry to the game log
func (g *Game) AddLog(text string, sev Severity) {
	g.logSeq++
	g.Logs = append(g.Logs, LogEntry{
		ID:       logID(g.logSeq),
		Text:     text,
		Severity: sev,
	})
}

// logID names the n-th entry of a game. IDs repeat across runs and never
// draw from the game's random source.
func logID(n uint64) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strconv.FormatUint(n, 10))).String()
}

// AddLines appends one entry per line of text. Surrounding blank lines are dropped.
func (g *Game) AddLines(text string, sev Severity) {
	for _, line := range strings.Split(strings.Trim(text, "\n"), "\n") {
		g.AddLog(line, sev)
	}
}

// ClearLogs empties the game log
func (g *Game) ClearLogs() {
	g.Logs = make([]LogEntry, 0)
}

// LogTexts returns the text of every entry, oldest first
func (g *Game) LogTexts() []string {
	texts := make([]string, len(g.Logs))
	for i, e := range g.Logs {
		texts[i] = e.Text
	}
	return texts
}
