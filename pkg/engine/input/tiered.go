package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
)

// Action represents a high‑level intent at the prompt.
type Action int

const (
	ActionNone Action = iota

	// Line editing
	ActionSubmit      // Run the current line
	ActionComplete    // Tab-complete the last token
	ActionHistoryPrev // Recall the previous submitted line
	ActionHistoryNext // Move forward through history
	ActionBackspace   // Delete the character before the cursor

	// Meta / UI
	ActionQuit    // Leave the program
	ActionZoomIn  // Increase font size (GUI only)
	ActionZoomOut // Decrease font size (GUI only)

	// Developer tools
	ActionScreenshot  // Save the transcript as HTML
	ActionDebugFSDump // Write the filesystem tree to fs.txt
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "enter", "up", "ctrl+c").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// Both front-ends already deliver discrete key events (bubbletea key messages,
// ebiten just-pressed checks), so this is currently a pass-through.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action. Printable characters are not
// bound; they fall through to the line editor.
var bindings = map[string]Action{
	"enter":    ActionSubmit,
	"return":   ActionSubmit,
	"tab":      ActionComplete,
	"up":       ActionHistoryPrev,
	"arrow_up": ActionHistoryPrev,

	"down":       ActionHistoryNext,
	"arrow_down": ActionHistoryNext,

	"backspace": ActionBackspace,

	"ctrl+c": ActionQuit,

	"ctrl+=": ActionZoomIn,
	"ctrl++": ActionZoomIn,
	"ctrl+-": ActionZoomOut,

	"f12": ActionScreenshot,
	"f9":  ActionDebugFSDump,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// IntentFor runs a single key code through all four layers
func IntentFor(device Device, code string) Intent {
	raw := RawInput{Device: device, Code: code, Timestamp: time.Now()}
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionSubmit:
		return "Submit"
	case ActionComplete:
		return "Complete"
	case ActionHistoryPrev:
		return "History Previous"
	case ActionHistoryNext:
		return "History Next"
	case ActionBackspace:
		return "Backspace"
	case ActionQuit:
		return "Quit"
	case ActionZoomIn:
		return "Zoom In"
	case ActionZoomOut:
		return "Zoom Out"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDebugFSDump:
		return "Dump Filesystem"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
