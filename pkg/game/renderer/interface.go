// Package renderer holds what the terminal and window front-ends share.
package renderer

import (
	"netbreach/pkg/game/state"
)

// Renderer defines the interface for game rendering backends.
// Both backends own the update loop and pump gameplay.Advance on every tick.
type Renderer interface {
	// Init prepares the renderer (colors, fonts, terminal checks)
	Init() error

	// Run blocks until the player quits
	Run(g *state.Game) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() error {
	if Current != nil {
		return Current.Init()
	}
	return nil
}

// Run hands the game to the current renderer
func Run(g *state.Game) error {
	if Current != nil {
		return Current.Run(g)
	}
	return nil
}
