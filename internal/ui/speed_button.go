// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton — кнопка скорости в виде двух треугольников; цвет показывает текущий множитель.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	triangleSize := b.Size * clickPulse(time.Since(b.LastClickTime).Seconds())
	clr := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	left := triangle(b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2)
	right := triangle(b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2)
	fillPath(screen, left, clr)
	strokePath(screen, left, 1, color.White)
	fillPath(screen, right, clr)
	strokePath(screen, right, 1, color.White)
}

func (b *SpeedButton) IsClicked(mx, my int) bool {
	// Используем круг для определения попадания, так как форма сложная
	return inCircle(float32(mx), float32(my), b.X, b.Y, b.Size*1.5)
}

// SetState синхронизирует кнопку с индексом скорости игры.
func (b *SpeedButton) SetState(index int) {
	if index != b.CurrentState {
		b.CurrentState = index
		b.LastClickTime = time.Now()
	}
}
