// component/tower.go
package component

import (
	"go-pixel-defense/internal/types"
	"go-pixel-defense/pkg/gridmap"
)

// Tower — поставленная игроком башня. Живёт до рестарта игры.
type Tower struct {
	ID       types.EntityID
	DefID    string       // ID из defs.TowerLibrary
	Cell     gridmap.Cell // клетка, на которой стоит башня
	Position Position     // центр клетки в пикселях
	Cooldown float64      // секунд до следующего выстрела, может уйти в минус
}
