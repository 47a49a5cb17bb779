// internal/app/tower_management.go
package app

import (
	"fmt"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/event"
	"go-pixel-defense/pkg/gridmap"
)

// PlaceTower attempts to place a tower of type towerID on the given cell.
// Башни ставятся только в фазе подготовки, на свободную клетку и за золото.
func (g *Game) PlaceTower(towerID string, cell gridmap.Cell) (*component.Tower, error) {
	if err := g.CanPlaceTower(towerID, cell); err != nil {
		return nil, err
	}
	def, _ := g.Lib.Tower(towerID)
	if !g.Simulation.Player.Spend(def.Cost) {
		return nil, ErrNotEnoughGold
	}

	tower := &component.Tower{
		ID:       g.ECS.NewEntity(),
		DefID:    towerID,
		Cell:     cell,
		Position: cell.Center(config.TileSize),
	}
	g.ECS.Towers = append(g.ECS.Towers, tower)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: tower})
	return tower, nil
}

// CanPlaceTower reports why a tower cannot be placed, or nil if it can.
func (g *Game) CanPlaceTower(towerID string, cell gridmap.Cell) error {
	if g.ECS.Phase != component.PhaseSetup {
		return fmt.Errorf("place tower in %s: %w", g.ECS.Phase, ErrWrongPhase)
	}
	def, ok := g.Lib.Tower(towerID)
	if !ok {
		return fmt.Errorf("%q: %w", towerID, ErrUnknownTower)
	}
	if !g.Board.IsTowerSpot(cell) {
		return fmt.Errorf("cell (%d,%d): %w", cell.X, cell.Y, ErrNotTowerSpot)
	}
	if _, occupied := g.ECS.TowerAt(cell.X, cell.Y); occupied {
		return fmt.Errorf("cell (%d,%d): %w", cell.X, cell.Y, ErrCellOccupied)
	}
	if g.ECS.Player.Gold < def.Cost {
		return fmt.Errorf("%s costs %d, have %d: %w", def.Name, def.Cost, g.ECS.Player.Gold, ErrNotEnoughGold)
	}
	return nil
}

// CanAfford сообщает, хватает ли золота на башню.
func (g *Game) CanAfford(towerID string) bool {
	def, ok := g.Lib.Tower(towerID)
	return ok && g.ECS.Player.Gold >= def.Cost
}

// GetTowerAtCell returns the tower standing on the cell.
func (g *Game) GetTowerAtCell(cell gridmap.Cell) (*component.Tower, bool) {
	return g.ECS.TowerAt(cell.X, cell.Y)
}
