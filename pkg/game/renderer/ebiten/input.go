package ebiten

import (
	"fmt"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	engineinput "netbreach/pkg/engine/input"
	"netbreach/pkg/game/config"
	"netbreach/pkg/game/devtools"
	"netbreach/pkg/game/gameplay"
	"netbreach/pkg/game/renderer"
	"netbreach/pkg/game/state"
)

// Key repeat timings for held keys (milliseconds)
const (
	keyRepeatInitialDelay = 400
	keyRepeatInterval     = 50
)

// fontSizeStep is how much one zoom key press changes the font size
const fontSizeStep = 2.0

// Update handles input and game logic (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Info("window opened", zap.Int("width", w), zap.Int("height", h))
	}

	gameplay.Advance(e.game)

	intent := e.checkInput()
	switch intent.Action {
	case engineinput.ActionQuit:
		return ebiten.Termination
	case engineinput.ActionZoomIn:
		e.zoom(fontSizeStep)
	case engineinput.ActionZoomOut:
		e.zoom(-fontSizeStep)
	case engineinput.ActionScreenshot:
		e.status = e.devtool("screenshot", devtools.SaveScreenshotHTML)
	case engineinput.ActionDebugFSDump:
		e.status = e.devtool("filesystem dump", devtools.DumpFilesystemToFile)
	case engineinput.ActionBackspace:
		if renderer.InputEnabled(e.game) {
			e.line = deleteLastRune(e.line)
		}
	case engineinput.ActionNone:
	default:
		e.line = gameplay.ProcessIntent(e.game, intent, e.line)
		gameplay.Advance(e.game)
	}

	if renderer.InputEnabled(e.game) && !ebiten.IsKeyPressed(ebiten.KeyControl) {
		e.chars = ebiten.AppendInputChars(e.chars[:0])
		e.line = appendPrintable(e.line, e.chars)
	}
	return nil
}

// checkInput checks for keyboard input and returns the corresponding Intent.
func (e *EbitenRenderer) checkInput() engineinput.Intent {
	// Evaluated every frame so a released key clears its repeat state
	backspace := e.shouldRepeatKey(ebiten.IsKeyPressed(ebiten.KeyBackspace), "key_backspace", time.Now().UnixMilli())

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	switch {
	case ctrl && inpututil.IsKeyJustPressed(ebiten.KeyC):
		return keyIntent("ctrl+c")
	case ctrl && (inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd)):
		return keyIntent("ctrl+=")
	case ctrl && (inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract)):
		return keyIntent("ctrl+-")
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		return keyIntent("enter")
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		return keyIntent("tab")
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		return keyIntent("arrow_up")
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		return keyIntent("arrow_down")
	case inpututil.IsKeyJustPressed(ebiten.KeyF12):
		return keyIntent("f12")
	case inpututil.IsKeyJustPressed(ebiten.KeyF9):
		return keyIntent("f9")
	case backspace:
		return keyIntent("backspace")
	}
	return engineinput.Intent{Action: engineinput.ActionNone}
}

func keyIntent(code string) engineinput.Intent {
	return engineinput.IntentFor(engineinput.DeviceKeyboard, code)
}

// shouldRepeatKey checks if a key should trigger (initial press or repeat).
// now is in milliseconds.
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string, now int64) bool {
	info, exists := e.keyRepeatState[code]

	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}

	if !exists {
		// First press - record it and trigger immediately
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}

	if now-info.firstPressed >= keyRepeatInitialDelay && now-info.lastRepeat >= keyRepeatInterval {
		info.lastRepeat = now
		e.keyRepeatState[code] = info
		return true
	}
	return false
}

// zoom changes the font size and saves it to preferences
func (e *EbitenRenderer) zoom(delta float64) {
	before := e.cfg.FontSize
	e.cfg.SetFontSize(before + delta)
	if e.cfg.FontSize == before {
		return
	}
	e.invalidateFontCache()
	e.saveZoomPreference()
}

// saveZoomPreference saves the current font size to preferences
func (e *EbitenRenderer) saveZoomPreference() {
	if e.configPath == "" {
		return
	}
	if err := config.SaveFontSize(e.configPath, e.cfg.FontSize); err != nil {
		// Not critical; the new size still applies for this session
		e.log.Warn("could not save preferences", zap.Error(err))
	}
}

func (e *EbitenRenderer) devtool(name string, save func(*state.Game) (string, error)) string {
	path, err := save(e.game)
	if err != nil {
		e.log.Warn("devtool failed", zap.String("tool", name), zap.Error(err))
		return fmt.Sprintf("%s failed: %v", name, err)
	}
	e.log.Info("devtool saved", zap.String("tool", name), zap.String("path", path))
	return fmt.Sprintf("%s saved to %s", name, path)
}

// appendPrintable adds the printable runes in chars to line
func appendPrintable(line string, chars []rune) string {
	for _, r := range chars {
		if unicode.IsPrint(r) {
			line += string(r)
		}
	}
	return line
}

// deleteLastRune removes the final rune of line
func deleteLastRune(line string) string {
	if line == "" {
		return line
	}
	_, size := utf8.DecodeLastRuneInString(line)
	return line[:len(line)-size]
}
