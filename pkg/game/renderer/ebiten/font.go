package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// getMonoFontFace returns a cached monospace font face at the configured size
func (e *EbitenRenderer) getMonoFontFace() *text.GoTextFace {
	size := e.cfg.FontSize
	if e.cachedMonoFace == nil || e.cachedFontSize != size {
		e.cachedFontSize = size
		e.cachedMonoFace = &text.GoTextFace{
			Source: e.monoFontSource,
			Size:   size,
		}
		w, _ := text.Measure("M", e.cachedMonoFace, 0)
		e.cachedCharWidth = w
		e.cachedLineHeight = size * 1.4
	}
	return e.cachedMonoFace
}

// charWidth is the advance of one monospace cell in pixels
func (e *EbitenRenderer) charWidth() float64 {
	e.getMonoFontFace()
	if e.cachedCharWidth <= 0 {
		return e.cfg.FontSize * 0.6
	}
	return e.cachedCharWidth
}

// lineHeight is the distance between two text rows in pixels
func (e *EbitenRenderer) lineHeight() float64 {
	e.getMonoFontFace()
	return e.cachedLineHeight
}

// invalidateFontCache clears the cached face (call when the font size changes)
func (e *EbitenRenderer) invalidateFontCache() {
	e.cachedMonoFace = nil
}
