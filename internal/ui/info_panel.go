// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelHeight    = 70
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 16
)

// InfoPanel выезжает снизу поля и описывает выбранный тип башни.
type InfoPanel struct {
	IsVisible bool
	tower     *defs.TowerDefinition
	hiddenY   float64
	currentY  float64
	targetY   float64
}

// NewInfoPanel creates a panel that slides up to sit right above bottomY.
func NewInfoPanel(bottomY float64) *InfoPanel {
	return &InfoPanel{
		hiddenY:  bottomY,
		currentY: bottomY,
		targetY:  bottomY,
	}
}

func (p *InfoPanel) SetTower(def defs.TowerDefinition) {
	p.tower = &def
	p.IsVisible = true
	p.targetY = p.hiddenY - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = p.hiddenY
}

func (p *InfoPanel) Update() {
	// Анимация панели
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= p.hiddenY {
		p.IsVisible = false
		p.tower = nil
	}
}

func (p *InfoPanel) Draw(screen *ebiten.Image) {
	if !p.IsVisible || p.tower == nil {
		return
	}
	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)
	bgColor := color.NRGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, config.SetupStateColor, true)

	x, y := panelRect.Min.X+10, panelRect.Min.Y+lineHeight
	d := p.tower
	text.Draw(screen, fmt.Sprintf("%s  (%d gold)", d.Name, d.Cost), Face, x, y, config.GoldColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Damage %.0f   Range %.1f   Rate %.2f/s   %s",
		d.Damage, d.Range, d.FireRate, describeAbility(d.Ability)), Face, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, d.Description, Face, x, y, config.TextLightColor)
}

// describeAbility — короткое описание способности для панели.
func describeAbility(a defs.Ability) string {
	switch ab := a.(type) {
	case defs.Poison:
		return fmt.Sprintf("Poison %.0f dps for %.1fs", ab.DPS, ab.Duration)
	case defs.Burn:
		return fmt.Sprintf("Burn %.0f dps for %.1fs", ab.DPS, ab.Duration)
	case defs.Slow:
		return fmt.Sprintf("Slow to %.0f%% for %.1fs", ab.Factor*100, ab.Duration)
	case defs.Splash:
		return fmt.Sprintf("Splash radius %.1f", ab.Radius)
	case defs.Chain:
		return fmt.Sprintf("Chains to %d, x%.2f per hop", ab.MaxTargets, ab.FalloffPerHop)
	}
	return ""
}
