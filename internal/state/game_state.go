// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"go-pixel-defense/internal/app"
	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/event"
	"go-pixel-defense/internal/ui"
	"go-pixel-defense/pkg/gridmap"
	"go-pixel-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const messageDuration = 2 * time.Second

// GameState — состояние игры
type GameState struct {
	sm              *StateMachine
	game            *app.Game
	renderer        *render.GridRenderer
	entities        *render.EntityRenderer
	board           *ebiten.Image
	indicator       *ui.StateIndicator
	speedButton     *ui.SpeedButton
	pauseButton     *ui.PauseButton
	waveIndicator   *ui.WaveIndicator
	healthIndicator *ui.PlayerHealthIndicator
	towerBar        *ui.TowerBar
	infoPanel       *ui.InfoPanel
	selected        string // выбранный тип башни или ""
	lastClickTime   time.Time
	message         string
	messageUntil    time.Time
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	mapColors := render.MapColors{
		BackgroundColor: config.BackgroundColor,
		PathColor:       config.PathColor,
		TowerSpotColor:  config.TowerSpotColor,
		GridLineColor:   config.GridLineColor,
		StrokeWidth:     2,
	}
	w, h := game.Board.PixelBounds(config.TileSize)
	boardBottom := config.BoardOffsetY + int(h)

	gs := &GameState{
		sm:       sm,
		game:     game,
		renderer: render.NewGridRenderer(game.Board, config.TileSize, mapColors),
		entities: render.NewEntityRenderer(game.ECS, game.Lib),
		board:    ebiten.NewImage(int(w), int(h)),
		indicator: ui.NewStateIndicator(
			float32(config.ScreenWidth-config.IndicatorOffsetX),
			float32(config.SpeedButtonY),
			float32(config.IndicatorRadius),
		),
		speedButton: ui.NewSpeedButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX),
			float32(config.SpeedButtonY),
			float32(config.SpeedButtonSize),
			config.SpeedButtonColors,
		),
		pauseButton: ui.NewPauseButton(
			float32(config.ScreenWidth-config.SpeedButtonOffsetX-50),
			float32(config.SpeedButtonY),
			float32(config.IndicatorRadius),
			config.ButtonColor, config.GoldColor,
		),
		waveIndicator:   ui.NewWaveIndicator(int(config.ScreenWidth/2), 24),
		healthIndicator: ui.NewPlayerHealthIndicator(10, 12),
		towerBar:        ui.NewTowerBar(game.Lib, image.Rect(0, boardBottom, int(config.ScreenWidth), config.ScreenHeight)),
		infoPanel:       ui.NewInfoPanel(float64(boardBottom)),
		lastClickTime:   time.Now(),
	}

	for _, t := range []event.EventType{event.WaveStarted, event.WaveCleared, event.GameRestarted} {
		game.EventDispatcher.Subscribe(t, gs)
	}
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

// OnEvent показывает короткие сообщения о ходе игры.
func (g *GameState) OnEvent(e event.Event) {
	switch e.Type {
	case event.WaveStarted:
		g.showMessage(fmt.Sprintf("Wave %v started!", e.Data))
	case event.WaveCleared:
		g.showMessage(fmt.Sprintf("Wave %v cleared!", e.Data))
	case event.GameRestarted:
		g.selectTower("")
		g.message = ""
	}
}

func (g *GameState) showMessage(msg string) {
	g.message = msg
	g.messageUntil = time.Now().Add(messageDuration)
}

func (g *GameState) setPaused(paused bool) {
	if g.game.IsPaused() != paused {
		g.game.TogglePause()
	}
	g.pauseButton.SetPaused(paused)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()
	phase := g.game.Phase()

	if phase == component.PhaseGameOver || phase == component.PhaseVictory {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.game.Restart()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.game.Restart()
		return
	}

	if phase == component.PhaseSetup {
		for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
			if inpututil.IsKeyJustPressed(key) && i < len(defs.TowerOrder) {
				g.toggleTower(defs.TowerOrder[i])
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.startWave()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.selectTower("")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.speedButton.SetState(indexOfSpeed(g.game.CycleSpeed()))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) &&
		time.Since(g.lastClickTime) >= config.ClickDebounceTime*time.Millisecond {
		x, y := ebiten.CursorPosition()
		g.lastClickTime = time.Now()
		if !g.handleUIClick(x, y) {
			g.handleBoardClick(x, y)
		}
	}

	g.game.Update(deltaTime)
}

// handleUIClick обрабатывает клики по элементам интерфейса и возвращает false, если клик был мимо UI.
func (g *GameState) handleUIClick(x, y int) bool {
	switch {
	case g.speedButton.IsClicked(x, y):
		g.game.CycleSpeed()
		g.speedButton.SetState(g.game.SpeedIndex())
	case g.pauseButton.IsClicked(x, y):
		g.sm.SetState(NewPauseState(g.sm, g))
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		if g.game.Phase() == component.PhaseSetup {
			g.startWave()
		}
	default:
		id, ok := g.towerBar.TowerAt(x, y)
		if !ok {
			return false
		}
		if g.game.Phase() == component.PhaseSetup {
			g.toggleTower(id)
		}
	}
	return true
}

func (g *GameState) handleBoardClick(x, y int) {
	if g.selected == "" {
		return
	}
	cell, ok := g.cellAt(x, y)
	if !ok {
		return
	}
	if _, err := g.game.PlaceTower(g.selected, cell); err != nil {
		switch {
		case errors.Is(err, app.ErrNotEnoughGold):
			g.showMessage("Not enough gold")
		case errors.Is(err, app.ErrCellOccupied), errors.Is(err, app.ErrNotTowerSpot):
			g.showMessage("Can't build there")
		default:
			g.showMessage(err.Error())
		}
		return
	}
	if !ebiten.IsKeyPressed(ebiten.KeyShift) || !g.game.CanAfford(g.selected) {
		g.selectTower("")
	}
}

func (g *GameState) startWave() {
	g.selectTower("")
	if err := g.game.StartWave(); err != nil {
		g.showMessage(err.Error())
	}
}

func (g *GameState) toggleTower(id string) {
	if g.selected == id {
		g.selectTower("")
		return
	}
	g.selectTower(id)
}

func (g *GameState) selectTower(id string) {
	g.selected = id
	if def, ok := g.game.Lib.Tower(id); ok {
		g.infoPanel.SetTower(def)
		return
	}
	g.infoPanel.Hide()
}

// cellAt переводит экранные координаты в клетку поля.
func (g *GameState) cellAt(x, y int) (gridmap.Cell, bool) {
	cell := gridmap.PixelToCell(float64(x-config.BoardOffsetX), float64(y-config.BoardOffsetY), config.TileSize)
	return cell, g.game.Board.InBounds(cell)
}

func indexOfSpeed(speed float64) int {
	for i, s := range config.GameSpeeds {
		if s == speed {
			return i
		}
	}
	return 0
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)

	g.board.Clear()
	g.renderer.Draw(g.board)
	g.entities.Draw(g.board)
	g.drawHover(g.board)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(config.BoardOffsetX, config.BoardOffsetY)
	screen.DrawImage(g.board, op)

	g.drawHUD(screen)
	g.infoPanel.Draw(screen)
	mx, my := ebiten.CursorPosition()
	g.towerBar.Draw(screen, mx, my, g.selected, g.game.CanAfford)

	switch g.game.Phase() {
	case component.PhaseGameOver:
		s := g.game.Stats
		ui.DrawOverlay(screen, "GAME OVER",
			fmt.Sprintf("Reached wave %d of %d", g.game.CurrentWave(), g.game.TotalWaves()),
			fmt.Sprintf("%d kills, %d leaks, %d towers", s.Kills, s.Leaks, s.TowersBuilt),
			"Press R to restart")
	case component.PhaseVictory:
		s := g.game.Stats
		ui.DrawOverlay(screen, "VICTORY",
			fmt.Sprintf("All %d waves cleared with %d health left", g.game.TotalWaves(), g.game.Health()),
			fmt.Sprintf("%d kills, %d leaks, %d towers", s.Kills, s.Leaks, s.TowersBuilt),
			"Press R to play again")
	}
}

// drawHover подсвечивает клетку под курсором и радиус выбранной башни.
func (g *GameState) drawHover(board *ebiten.Image) {
	if g.selected == "" {
		return
	}
	mx, my := ebiten.CursorPosition()
	cell, ok := g.cellAt(mx, my)
	if !ok {
		return
	}
	var clr color.Color = config.HoverValidColor
	if g.game.CanPlaceTower(g.selected, cell) != nil {
		clr = config.HoverInvalidColor
	}
	ts := float32(config.TileSize)
	vector.DrawFilledRect(board, float32(cell.X)*ts, float32(cell.Y)*ts, ts, ts, clr, false)
	g.entities.DrawRange(board, cell.Center(config.TileSize), g.selected)
}

func (g *GameState) drawHUD(screen *ebiten.Image) {
	g.healthIndicator.Draw(screen, g.game.Health(), config.InitialPlayerHealth, g.game.Gold())

	active := g.game.Phase() == component.PhaseWaveActive
	g.waveIndicator.Draw(screen, g.game.CurrentWave(), g.game.TotalWaves(), g.game.TimeLeft(), active)
	if active {
		label := fmt.Sprintf("Enemies: %d", g.game.EnemiesRemaining())
		text.Draw(screen, label, ui.Face, int(config.ScreenWidth/2)+70, 28, config.TextLightColor)
	}

	var stateColor color.Color
	switch g.game.Phase() {
	case component.PhaseSetup:
		stateColor = config.SetupStateColor
	case component.PhaseWaveActive:
		stateColor = config.WaveStateColor
	default:
		stateColor = config.EndStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	text.Draw(screen, fmt.Sprintf("x%.0f", g.game.Speed()), ui.Face,
		int(g.speedButton.X)-6, int(g.speedButton.Y)+int(g.speedButton.Size)+14, config.TextLightColor)

	if g.message != "" && time.Now().Before(g.messageUntil) {
		text.Draw(screen, g.message, ui.Face, 10, config.BoardOffsetY+16, config.TextLightColor)
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
