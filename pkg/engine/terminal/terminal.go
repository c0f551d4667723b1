package terminal

import (
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsInteractive reports whether both stdin and stdout are attached to a terminal.
// The TUI front-end needs raw mode on stdin and a sized stdout.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Wrap splits s into lines no wider than width terminal cells, breaking on
// spaces where possible. Existing newlines are kept.
func Wrap(s string, width int) []string {
	if width <= 0 {
		width = DefaultWidth
	}
	return strings.Split(ansi.Wrap(s, width, ""), "\n")
}
