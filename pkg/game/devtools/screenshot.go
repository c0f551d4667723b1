package devtools

import (
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"netbreach/pkg/game/state"
)

// severityColors matches the terminal palette
var severityColors = map[state.Severity]string{
	state.Info:    "#22c55e",
	state.Success: "#4ade80",
	state.Error:   "#ef4444",
	state.Warning: "#eab308",
	state.System:  "#60a5fa",
}

// TranscriptHTML renders the game log as a standalone HTML page
func TranscriptHTML(g *state.Game) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>netbreach - Transcript</title>
    <style>
        body {
            background-color: #000;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #16a34a; margin-bottom: 10px; }
        .line { white-space: pre-wrap; margin: 2px 0; }
`)
	for _, sev := range []state.Severity{state.Info, state.Success, state.Error, state.Warning, state.System} {
		fmt.Fprintf(&b, "        .%s { color: %s; }\n", sev, severityColors[sev])
	}
	b.WriteString(`    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">phase: %s &middot; cwd: %s</div>`+"\n", g.Phase, html.EscapeString(g.Cwd()))
	for _, e := range g.Logs {
		fmt.Fprintf(&b, `    <div class="line %s">%s</div>`+"\n", e.Severity, html.EscapeString(e.Text))
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// SaveScreenshotHTML saves the current transcript as an HTML file and
// returns its name
func SaveScreenshotHTML(g *state.Game) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	if err := os.WriteFile(filename, []byte(TranscriptHTML(g)), 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return filename, nil
}
