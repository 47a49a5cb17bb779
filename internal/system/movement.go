// internal/system/movement.go
package system

import (
	"log"
	"math"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/types"
)

// AdvanceEnemy moves the enemy toward path[PathIndex+1] by speedPx*deltaTime*speedMultiplier
// pixels and reports whether it has reached the last waypoint.
//
// Reaching a waypoint snaps to it; the rest of the frame's distance is not
// carried into the next segment, so low frame rates lose a little distance.
func AdvanceEnemy(enemy *component.Enemy, path []component.Position, speedPx, deltaTime, speedMultiplier float64) (leaked bool) {
	last := len(path) - 1
	if enemy.PathIndex >= last {
		return true
	}

	target := path[enemy.PathIndex+1]
	dx := target.X - enemy.Position.X
	dy := target.Y - enemy.Position.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	moveDistance := speedPx * deltaTime * speedMultiplier

	if dist <= moveDistance {
		enemy.Position = target
		enemy.PathIndex++
	} else {
		enemy.Position.X += (dx / dist) * moveDistance
		enemy.Position.Y += (dy / dist) * moveDistance
	}
	return enemy.PathIndex >= last
}

// MovementSystem обновляет позиции врагов и убирает тех, кто дошёл до конца пути.
type MovementSystem struct {
	ecs  *entity.ECS
	lib  *defs.Library
	path []component.Position
}

func NewMovementSystem(ecs *entity.ECS, lib *defs.Library, path []component.Position) *MovementSystem {
	return &MovementSystem{ecs: ecs, lib: lib, path: path}
}

// Path returns the pixel waypoints enemies follow.
func (s *MovementSystem) Path() []component.Position {
	return s.path
}

// Update moves every enemy and returns the ones that leaked. Leaked enemies are
// removed immediately, so later stages of the frame never see them.
func (s *MovementSystem) Update(deltaTime float64, multipliers map[types.EntityID]float64) []*component.Enemy {
	var leaked []*component.Enemy
	kept := s.ecs.Enemies[:0]
	for _, enemy := range s.ecs.Enemies {
		def, ok := s.lib.Enemy(enemy.DefID)
		if !ok {
			log.Printf("MovementSystem: Could not find enemy definition for ID %s", enemy.DefID)
			kept = append(kept, enemy)
			continue
		}
		mult, ok := multipliers[enemy.ID]
		if !ok {
			mult = 1
		}
		if AdvanceEnemy(enemy, s.path, def.Speed*config.TileSize, deltaTime, mult) {
			leaked = append(leaked, enemy)
			continue
		}
		kept = append(kept, enemy)
	}
	clearTail(s.ecs.Enemies, len(kept))
	s.ecs.Enemies = kept
	return leaked
}

// clearTail nils out the slots left behind by in-place filtering.
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
