package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/types"
)

func TestAdvanceEnemy(t *testing.T) {
	path := []component.Position{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}}

	t.Run("moves along the segment", func(t *testing.T) {
		e := &component.Enemy{}
		leaked := AdvanceEnemy(e, path, 50, 1, 1)
		assert.False(t, leaked)
		assert.InDelta(t, 50, e.Position.X, 1e-9)
		assert.Equal(t, 0, e.PathIndex)
	})

	t.Run("snaps to waypoint without carrying overshoot", func(t *testing.T) {
		e := &component.Enemy{Position: component.Position{X: 90}}
		leaked := AdvanceEnemy(e, path, 50, 1, 1)
		assert.False(t, leaked)
		assert.Equal(t, component.Position{X: 100, Y: 0}, e.Position)
		assert.Equal(t, 1, e.PathIndex)
	})

	t.Run("speed multiplier scales distance", func(t *testing.T) {
		e := &component.Enemy{}
		AdvanceEnemy(e, path, 50, 1, 0.5)
		assert.InDelta(t, 25, e.Position.X, 1e-9)
	})

	t.Run("leaks on last waypoint", func(t *testing.T) {
		e := &component.Enemy{Position: component.Position{X: 100, Y: 95}, PathIndex: 1}
		assert.True(t, AdvanceEnemy(e, path, 50, 1, 1))
		assert.Equal(t, 2, e.PathIndex)
	})
}

func TestMovementSystem_RemovesLeaked(t *testing.T) {
	f := newFixture(t, testLibrary())
	path := f.sim.Movement.Path()
	require.Len(t, path, 2)

	near := f.addEnemy(defs.EnemyGoblin, path[1].X-1, path[1].Y)
	far := f.addEnemy(defs.EnemyGoblin, path[0].X, path[0].Y)

	leaked := f.sim.Movement.Update(0.1, map[types.EntityID]float64{})
	require.Len(t, leaked, 1)
	assert.Same(t, near, leaked[0])
	require.Len(t, f.ecs.Enemies, 1)
	assert.Same(t, far, f.ecs.Enemies[0])
	// 2.4 клетки/с * 40 px * 0.1 с
	assert.InDelta(t, path[0].X+9.6, far.Position.X, 1e-9)
}

func TestMovementSystem_AppliesSlow(t *testing.T) {
	f := newFixture(t, testLibrary())
	start := f.sim.Movement.Path()[0]
	e := f.addEnemy(defs.EnemyGoblin, start.X, start.Y)

	f.sim.Movement.Update(0.1, map[types.EntityID]float64{e.ID: 0.5})
	assert.InDelta(t, start.X+4.8, e.Position.X, 1e-9)
}
