// internal/ui/overlay.go
package ui

import (
	"go-pixel-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawOverlay затемняет экран и выводит заголовок с пояснениями по центру.
func DrawOverlay(screen *ebiten.Image, title string, lines ...string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	cx := int(config.ScreenWidth / 2)
	y := int(config.ScreenHeight/2) - 20
	drawTextOutlined(screen, title, cx-textWidth(title)/2, y, 1, config.GoldColor, config.TextDarkColor)
	for _, l := range lines {
		y += 20
		drawTextCentered(screen, l, cx, y, config.TextLightColor)
	}
}
