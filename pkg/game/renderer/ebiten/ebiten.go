// Package ebiten provides an Ebiten-based graphical renderer for the breach terminal.
package ebiten

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/gofont/gomono"

	"netbreach/pkg/game/config"
	"netbreach/pkg/game/state"
)

const windowTitle = "NETRUNNER // TERMINAL BREACH"

// keyRepeatInfo tracks the repeat state for a held key
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	cfg        *config.Config
	configPath string // Where zoom changes are saved; empty disables saving

	// Window dimensions, updated by Layout
	windowWidth  int
	windowHeight int

	// Font source and the face cached for the current font size
	monoFontSource   *text.GoTextFaceSource
	cachedMonoFace   *text.GoTextFace
	cachedFontSize   float64
	cachedCharWidth  float64
	cachedLineHeight float64

	game *state.Game
	log  *zap.Logger

	line   string // Text typed at the prompt
	chars  []rune // Reused buffer for ebiten.AppendInputChars
	status string // Last devtools result

	keyRepeatState map[string]keyRepeatInfo

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer. configPath is where zoom changes are
// persisted; pass "" to keep them in memory.
func New(cfg *config.Config, configPath string) *EbitenRenderer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &EbitenRenderer{
		cfg:            cfg,
		configPath:     configPath,
		windowWidth:    cfg.WindowWidth,
		windowHeight:   cfg.WindowHeight,
		keyRepeatState: make(map[string]keyRepeatInfo),
		log:            zap.NewNop(),
	}
}

// Init loads the monospace font
func (e *EbitenRenderer) Init() error {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	e.monoFontSource = src
	e.invalidateFontCache()
	return nil
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run(g *state.Game) error {
	if e.monoFontSource == nil {
		if err := e.Init(); err != nil {
			return err
		}
	}
	e.game = g
	e.log = g.Log

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(e); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run gui: %w", err)
	}
	return nil
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth = outsideWidth
	e.windowHeight = outsideHeight
	return outsideWidth, outsideHeight
}
