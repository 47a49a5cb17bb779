// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton рисует «паузу» (две полосы) или «play» (треугольник) на паузе.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	rectSize := b.Size * clickPulse(time.Since(b.LastClickTime).Seconds())

	if b.IsPaused {
		// Треугольник (play)
		p := triangle(b.X-rectSize, b.Y-rectSize*1.2, b.X-rectSize, b.Y+rectSize*1.2, b.X+rectSize, b.Y)
		fillPath(screen, p, b.PlayColor)
		strokePath(screen, p, 1, color.White)
		return
	}
	// Две полосы (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, false)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, false)
	}
}

func (b *PauseButton) IsClicked(mx, my int) bool {
	return inCircle(float32(mx), float32(my), b.X, b.Y, b.Size*1.5)
}

func (b *PauseButton) SetPaused(paused bool) {
	if paused != b.IsPaused {
		b.IsPaused = paused
		b.LastClickTime = time.Now()
	}
}
