// internal/system/targeting.go
package system

import (
	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/types"
)

// FindTarget returns the first enemy, in spawn order, within rangePx of from.
// Порядок спавна, а не расстояние: цель не меняется, пока враг в радиусе.
func FindTarget(from component.Position, rangePx float64, enemies []*component.Enemy) *component.Enemy {
	rangeSq := rangePx * rangePx
	for _, enemy := range enemies {
		if from.DistanceSqTo(enemy.Position) <= rangeSq {
			return enemy
		}
	}
	return nil
}

// FindChainTarget returns the nearest enemy within rangePx of from that is not in hit.
// При равных расстояниях побеждает тот, кто раньше в списке.
func FindChainTarget(from component.Position, rangePx float64, enemies []*component.Enemy, hit map[types.EntityID]struct{}) *component.Enemy {
	rangeSq := rangePx * rangePx
	var (
		best   *component.Enemy
		bestSq float64
	)
	for _, enemy := range enemies {
		if _, seen := hit[enemy.ID]; seen {
			continue
		}
		d := from.DistanceSqTo(enemy.Position)
		if d > rangeSq {
			continue
		}
		if best == nil || d < bestSq {
			best, bestSq = enemy, d
		}
	}
	return best
}
