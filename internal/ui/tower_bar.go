// internal/ui/tower_bar.go
package ui

import (
	"fmt"
	"image"

	"go-pixel-defense/internal/defs"
	"go-pixel-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

// TowerBar — нижняя панель выбора башни, по кнопке на тип в порядке defs.TowerOrder.
type TowerBar struct {
	buttons []*Button
	ids     []string
}

// NewTowerBar lays the buttons out in one row inside area.
func NewTowerBar(lib *defs.Library, area image.Rectangle) *TowerBar {
	bar := &TowerBar{}
	var ids []string
	for _, id := range defs.TowerOrder {
		if _, ok := lib.Tower(id); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return bar
	}
	const gap = 8
	w := (area.Dx() - gap*(len(ids)+1)) / len(ids)
	for i, id := range ids {
		def, _ := lib.Tower(id)
		x := area.Min.X + gap + i*(w+gap)
		btn := NewButton(image.Rect(x, area.Min.Y+gap, x+w, area.Max.Y-gap), fmt.Sprintf("%d %s", i+1, def.Name))
		btn.SubText = fmt.Sprintf("%d gold", def.Cost)
		btn.Accent = render.ParseHexColor(def.Visuals.Color)
		bar.buttons = append(bar.buttons, btn)
	}
	bar.ids = ids
	return bar
}

// TowerAt returns the tower type under the point.
func (b *TowerBar) TowerAt(x, y int) (string, bool) {
	for i, btn := range b.buttons {
		if btn.Contains(x, y) {
			return b.ids[i], true
		}
	}
	return "", false
}

// Contains сообщает, попадает ли точка в какую-либо кнопку панели.
func (b *TowerBar) Contains(x, y int) bool {
	_, ok := b.TowerAt(x, y)
	return ok
}

func (b *TowerBar) Draw(screen *ebiten.Image, mx, my int, selected string, canAfford func(string) bool) {
	for i, btn := range b.buttons {
		btn.Draw(screen, mx, my, !canAfford(b.ids[i]), b.ids[i] == selected)
	}
}
