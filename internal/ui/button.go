// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"go-pixel-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	SubText    string // вторая строка, например цена
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Accent     color.Color // полоска слева; nil, если не нужна
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHoverColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку. Неактивная кнопка серая, выбранная обведена.
func (b *Button) Draw(screen *ebiten.Image, mx, my int, disabled, selected bool) {
	bg := b.BgColor
	switch {
	case disabled:
		bg = config.ButtonDisabled
	case b.Contains(mx, my):
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	if b.Accent != nil {
		vector.DrawFilledRect(screen, x, y, 6, h, b.Accent, false)
	}
	border, width := color.Color(config.GridLineColor), float32(1)
	if selected {
		border, width = config.GoldColor, 3
	}
	vector.StrokeRect(screen, x, y, w, h, width, border, false)

	cx := b.Rect.Min.X + b.Rect.Dx()/2
	if b.SubText == "" {
		drawTextCentered(screen, b.Text, cx, b.Rect.Min.Y+b.Rect.Dy()/2+config.TextOffsetY, b.TextColor)
		return
	}
	drawTextCentered(screen, b.Text, cx, b.Rect.Min.Y+b.Rect.Dy()/2-2, b.TextColor)
	drawTextCentered(screen, b.SubText, cx, b.Rect.Min.Y+b.Rect.Dy()/2+14, config.GoldColor)
}
