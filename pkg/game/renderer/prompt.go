package renderer

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"netbreach/pkg/engine/terminal"
	"netbreach/pkg/game/phase"
	"netbreach/pkg/game/state"
)

// PromptLabel is the text shown before the input line
func PromptLabel(g *state.Game) string {
	switch {
	case g.Phase == phase.Boot:
		return gotext.Get("PROMPT_BOOTING")
	case g.TraceActive():
		return gotext.Get("PROMPT_ALERT")
	case len(g.Path) > 0:
		return fmt.Sprintf(gotext.Get("PROMPT_CWD"), g.Path[len(g.Path)-1])
	default:
		return gotext.Get("PROMPT_DEFAULT")
	}
}

// Placeholder is the hint shown in an empty input line
func Placeholder(g *state.Game) string {
	switch g.Phase {
	case phase.Boot:
		return ""
	case phase.Trace:
		return gotext.Get("PLACEHOLDER_TRACE")
	default:
		return gotext.Get("PLACEHOLDER_DEFAULT")
	}
}

// InputEnabled reports whether the prompt accepts typing
func InputEnabled(g *state.Game) bool {
	return g.Phase != phase.Boot
}

// TraceBanner returns the title and countdown line of the trace overlay.
// ok is false when no trace is running.
func TraceBanner(g *state.Game) (title, countdown string, ok bool) {
	if !g.TraceActive() {
		return "", "", false
	}
	return gotext.Get("TRACE_DETECTED"),
		fmt.Sprintf(gotext.Get("TRACE_SEVERED_IN"), float64(g.Trace.TimeLeft)),
		true
}

// VisibleLogs returns the newest entries that fit in rows lines
func VisibleLogs(logs []state.LogEntry, rows int) []state.LogEntry {
	if rows <= 0 {
		return nil
	}
	if len(logs) <= rows {
		return logs
	}
	return logs[len(logs)-rows:]
}

// Line is one wrapped, styled row of log output
type Line struct {
	Text  string
	Style TextStyle
}

// LogLines wraps the newest log entries to width columns and keeps the
// last rows lines
func LogLines(logs []state.LogEntry, width, rows int) []Line {
	if rows <= 0 {
		return nil
	}
	var lines []Line
	for _, entry := range VisibleLogs(logs, rows) {
		style := StyleFor(entry.Severity)
		for _, l := range terminal.Wrap(entry.Text, width) {
			lines = append(lines, Line{Text: l, Style: style})
		}
	}
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}
	return lines
}
