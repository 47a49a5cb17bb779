// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"go-pixel-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator — круглая кнопка фазы: в фазе подготовки клик запускает волну.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw отрисовывает индикатор
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	r := i.Radius * clickPulse(time.Since(i.LastClickTime).Seconds())
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1.5, config.IndicatorStroke, true)
}

// IsClicked проверяет, был ли клик внутри индикатора
func (i *StateIndicator) IsClicked(mx, my int) bool {
	return inCircle(float32(mx), float32(my), i.X, i.Y, i.Radius)
}

// HandleClick обрабатывает клик
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

func inCircle(px, py, cx, cy, r float32) bool {
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= r*r
}

func expDecay(x float64) float64 {
	return math.Exp(-x)
}
