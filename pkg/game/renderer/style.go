package renderer

import (
	"github.com/gookit/color"

	"netbreach/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleSuccess
	StyleError
	StyleWarning
	StyleSystem
	StylePrompt
	StyleAlert
	StyleSubtle
)

var (
	ColorNormal  color.Style
	ColorSuccess color.Style
	ColorError   color.Style
	ColorWarning color.Style
	ColorSystem  color.Style
	ColorPrompt  color.Style
	ColorAlert   color.Style
	ColorSubtle  color.Style
)

// InitColors initializes the color styles
func InitColors() {
	ColorNormal = color.Style{color.FgGreen}
	ColorSuccess = color.Style{color.FgLightGreen, color.OpBold}
	ColorError = color.Style{color.FgRed, color.OpBold}
	ColorWarning = color.Style{color.FgYellow}
	ColorSystem = color.Style{color.FgCyan}
	ColorPrompt = color.Style{color.FgGreen, color.OpBold}
	ColorAlert = color.Style{color.FgWhite, color.BgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray}
}

// StyleFor maps a log severity to its text style
func StyleFor(sev state.Severity) TextStyle {
	switch sev {
	case state.Success:
		return StyleSuccess
	case state.Error:
		return StyleError
	case state.Warning:
		return StyleWarning
	case state.System:
		return StyleSystem
	default:
		return StyleNormal
	}
}

// ColorFor returns the ANSI color style for a text style
func ColorFor(style TextStyle) color.Style {
	switch style {
	case StyleSuccess:
		return ColorSuccess
	case StyleError:
		return ColorError
	case StyleWarning:
		return ColorWarning
	case StyleSystem:
		return ColorSystem
	case StylePrompt:
		return ColorPrompt
	case StyleAlert:
		return ColorAlert
	case StyleSubtle:
		return ColorSubtle
	default:
		return ColorNormal
	}
}

// RGB returns the 24-bit color a GUI should use for a text style
func RGB(style TextStyle) (r, g, b uint8) {
	switch style {
	case StyleSuccess:
		return 0x4a, 0xde, 0x80
	case StyleError:
		return 0xef, 0x44, 0x44
	case StyleWarning:
		return 0xfa, 0xcc, 0x15
	case StyleSystem:
		return 0x60, 0xa5, 0xfa
	case StylePrompt:
		return 0x22, 0xc5, 0x5e
	case StyleAlert:
		return 0xff, 0xff, 0xff
	case StyleSubtle:
		return 0x6b, 0x72, 0x80
	default:
		return 0x86, 0xef, 0xac
	}
}
