package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/types"
)

func enemyAt(id types.EntityID, x, y float64) *component.Enemy {
	return &component.Enemy{ID: id, Position: component.Position{X: x, Y: y}, Health: 100, MaxHealth: 100}
}

func TestFindTarget_FirstInSpawnOrder(t *testing.T) {
	from := component.Position{}
	enemies := []*component.Enemy{
		enemyAt(1, 200, 0), // вне радиуса
		enemyAt(2, 90, 0),
		enemyAt(3, 10, 0), // ближе, но позже по порядку
	}
	assert.Equal(t, types.EntityID(2), FindTarget(from, 100, enemies).ID)
}

func TestFindTarget_RangeIsInclusive(t *testing.T) {
	enemies := []*component.Enemy{enemyAt(1, 100, 0)}
	assert.NotNil(t, FindTarget(component.Position{}, 100, enemies))
	assert.Nil(t, FindTarget(component.Position{}, 99.9, enemies))
	assert.Nil(t, FindTarget(component.Position{}, 100, nil))
}

func TestFindChainTarget(t *testing.T) {
	enemies := []*component.Enemy{
		enemyAt(1, 0, 0),
		enemyAt(2, 80, 0),
		enemyAt(3, 50, 0),
		enemyAt(4, 500, 0),
	}
	hit := map[types.EntityID]struct{}{1: {}}

	next := FindChainTarget(component.Position{}, 100, enemies, hit)
	assert.Equal(t, types.EntityID(3), next.ID, "nearest unvisited enemy")

	hit[3] = struct{}{}
	next = FindChainTarget(component.Position{}, 100, enemies, hit)
	assert.Equal(t, types.EntityID(2), next.ID)

	hit[2] = struct{}{}
	assert.Nil(t, FindChainTarget(component.Position{}, 100, enemies, hit))
}

func TestFindChainTarget_TieKeepsListOrder(t *testing.T) {
	enemies := []*component.Enemy{enemyAt(1, -50, 0), enemyAt(2, 50, 0)}
	next := FindChainTarget(component.Position{}, 100, enemies, map[types.EntityID]struct{}{})
	assert.Equal(t, types.EntityID(1), next.ID)
}
