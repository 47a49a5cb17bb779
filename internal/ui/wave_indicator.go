// internal/ui/wave_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"go-pixel-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// WaveIndicator отображает номер текущей волны римскими цифрами и таймер волны.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.ButtonColor,
		OutlineColor:     color.White,
		OutlineThickness: 1,
	}
}

// toRoman конвертирует целое число в римское.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// formatTimer показывает оставшееся время волны как m:ss, округляя вверх.
func formatTimer(seconds float64) string {
	if seconds <= 0 {
		return "0:00"
	}
	total := int(seconds)
	if float64(total) < seconds {
		total++
	}
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Draw отрисовывает индикатор на экране. Последняя волна выделяется красным.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber, totalWaves int, timeLeft float64, active bool) {
	if waveNumber <= 0 {
		return
	}
	label := toRoman(waveNumber) + " / " + toRoman(totalWaves)

	textColor := i.Color
	if waveNumber == totalWaves {
		textColor = config.HealthColor
	}
	x := i.X - textWidth(label)/2
	drawTextOutlined(screen, label, x, i.Y, i.OutlineThickness, textColor, i.OutlineColor)

	if active {
		drawTextCentered(screen, formatTimer(timeLeft), i.X, i.Y+16, config.TextLightColor)
	}
}
