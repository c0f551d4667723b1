package ebiten

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"netbreach/pkg/game/renderer"
)

// Frame margin in pixels
const margin = 16

var (
	colorBackground = color.RGBA{0x05, 0x0a, 0x05, 0xff}
	colorFrame      = color.RGBA{0x15, 0x80, 0x3d, 0xff}
	colorAlert      = color.RGBA{0xdc, 0x26, 0x26, 0xff}
	colorBannerBg   = color.RGBA{0x00, 0x00, 0x00, 0xcc}
)

// styleColor converts a renderer style into a drawable color
func styleColor(style renderer.TextStyle) color.Color {
	r, g, b := renderer.RGB(style)
	return color.RGBA{r, g, b, 0xff}
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if e.game == nil || e.monoFontSource == nil {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	lh := e.lineHeight()

	frame := colorFrame
	if e.game.TraceActive() {
		frame = colorAlert
	}
	vector.StrokeRect(screen, margin/2, margin/2, float32(screenWidth-margin), float32(screenHeight-margin), 2, frame, false)

	y := float64(margin)
	if title, countdown, ok := renderer.TraceBanner(e.game); ok {
		y = e.drawTraceBanner(screen, title, countdown, screenWidth, y)
	}

	// Rows left for the log after the prompt and the status line
	promptY := float64(screenHeight) - margin - 2*lh
	rows := int((promptY - y) / lh)
	cols := int(float64(screenWidth-2*margin) / e.charWidth())

	for _, l := range renderer.LogLines(e.game.Logs, cols, rows) {
		e.drawText(screen, l.Text, margin, y, styleColor(l.Style))
		y += lh
	}

	vector.StrokeLine(screen, margin, float32(promptY-lh*0.3), float32(screenWidth-margin), float32(promptY-lh*0.3), 1, frame, false)
	e.drawPrompt(screen, promptY)
	if e.status != "" {
		e.drawText(screen, e.status, margin, promptY+lh, styleColor(renderer.StyleSubtle))
	}
}

// drawTraceBanner draws the centered alert box and returns the y below it
func (e *EbitenRenderer) drawTraceBanner(screen *ebiten.Image, title, countdown string, screenWidth int, y float64) float64 {
	face := e.getMonoFontFace()
	lh := e.lineHeight()

	tw, _ := text.Measure(title, face, 0)
	cw, _ := text.Measure(countdown, face, 0)
	boxW := max(tw, cw) + 4*e.charWidth()
	boxH := 2*lh + lh/2
	boxX := (float64(screenWidth) - boxW) / 2

	vector.DrawFilledRect(screen, float32(boxX), float32(y), float32(boxW), float32(boxH), colorBannerBg, false)
	vector.StrokeRect(screen, float32(boxX), float32(y), float32(boxW), float32(boxH), 2, colorAlert, false)

	e.drawText(screen, title, (float64(screenWidth)-tw)/2, y+lh/4, colorAlert)
	e.drawText(screen, countdown, (float64(screenWidth)-cw)/2, y+lh/4+lh, colorAlert)
	return y + boxH + lh/2
}

// drawPrompt draws the label, the typed line or placeholder, and a blinking cursor
func (e *EbitenRenderer) drawPrompt(screen *ebiten.Image, y float64) {
	labelStyle := renderer.StylePrompt
	if e.game.TraceActive() {
		labelStyle = renderer.StyleError
	}
	label := renderer.PromptLabel(e.game) + " "
	e.drawText(screen, label, margin, y, styleColor(labelStyle))

	x := margin + float64(len([]rune(label)))*e.charWidth()
	if e.line == "" {
		e.drawText(screen, renderer.Placeholder(e.game), x, y, styleColor(renderer.StyleSubtle))
	} else {
		e.drawText(screen, e.line, x, y, styleColor(renderer.StyleNormal))
		x += float64(len([]rune(e.line))) * e.charWidth()
	}

	if renderer.InputEnabled(e.game) && (time.Now().UnixMilli()/500)%2 == 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(e.charWidth()), float32(e.cfg.FontSize), styleColor(renderer.StyleNormal), false)
	}
}

// drawText draws str with its top-left corner at x, y
func (e *EbitenRenderer) drawText(screen *ebiten.Image, str string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, e.getMonoFontFace(), op)
}
