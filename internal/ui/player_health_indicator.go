// internal/ui/player_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"go-pixel-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 5.0
	HealthCircleSpacing = 3.0
)

// PlayerHealthIndicator отображает здоровье и золото игрока.
type PlayerHealthIndicator struct {
	X, Y float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y}
}

// healthCellColor — цвет j-го кружка: сверх половины синие, остальные красные, пустые чёрные.
func healthCellColor(j, health, maxHealth int) color.Color {
	if j >= health {
		return color.Black
	}
	half := maxHealth / 2
	if health > half && j < health-half {
		return config.ButtonColor
	}
	return config.HealthColor
}

// Draw рисует индикатор здоровья игрока в виде сетки кружков и строку с золотом.
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth, gold int) {
	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, healthCellColor(j, health, maxHealth), true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, color.White, true)
	}

	textX := int(i.X + float32(HealthCols)*step + 8)
	text.Draw(screen, strconv.Itoa(health)+"/"+strconv.Itoa(maxHealth), Face, textX, int(i.Y)+10, config.HealthColor)
	text.Draw(screen, "Gold: "+strconv.Itoa(gold), Face, textX, int(i.Y)+26, config.GoldColor)
}
