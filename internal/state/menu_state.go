// internal/state/menu_state.go
package state

import (
	"fmt"
	"log"

	"go-pixel-defense/internal/app"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/ui"
	"go-pixel-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState — титульный экран со списком башен
type MenuState struct {
	sm  *StateMachine
	lib *defs.Library
}

func NewMenuState(sm *StateMachine, lib *defs.Library) *MenuState {
	return &MenuState{sm: sm, lib: lib}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	if !inpututil.IsKeyJustPressed(ebiten.KeySpace) && !inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		return
	}
	game, err := app.NewGame(m.lib)
	if err != nil {
		log.Printf("MenuState: failed to start game: %v", err)
		return
	}
	m.sm.SetState(NewGameState(m.sm, game))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	ui.DrawOverlay(screen, "PIXEL DEFENSE",
		fmt.Sprintf("%d waves. Keep the enemies off the end of the road.", len(m.lib.Waves)),
		"Press Space to start")

	y := int(config.ScreenHeight/2) + 60
	for i, id := range defs.TowerOrder {
		def, ok := m.lib.Tower(id)
		if !ok {
			continue
		}
		line := fmt.Sprintf("%d  %-14s %4d gold  %s", i+1, def.Name, def.Cost, def.Description)
		text.Draw(screen, line, ui.Face, 80, y, render.ParseHexColor(def.Visuals.ProjectileColor))
		y += 18
	}
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
