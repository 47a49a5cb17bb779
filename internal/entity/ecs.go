package entity

import (
	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/types"
)

// ECS — единственный владелец всего изменяемого состояния симуляции.
// Изменяется только внутри шага симуляции и при размещении башен в фазе подготовки;
// шаги выполняются строго последовательно, поэтому блокировки не нужны.
//
// Коллекции хранятся срезами, а не map: порядок врагов (порядок спавна) определяет
// выбор цели башней.
type ECS struct {
	GameTime     float64 // часы симуляции, секунды с учётом скорости игры
	NextID       types.EntityID
	Towers       []*component.Tower
	Enemies      []*component.Enemy
	Projectiles  []*component.Projectile
	DeathEffects []*component.DeathEffect
	ChainEffects []*component.ChainLightningEffect
	Player       *component.PlayerState
	Wave         *component.Wave
	WaveNumber   int // сколько волн уже пройдено
	Phase        component.Phase
}

func NewECS() *ECS {
	ecs := &ECS{}
	ecs.Reset()
	return ecs
}

// Reset возвращает состояние к началу новой игры.
func (ecs *ECS) Reset() {
	ecs.GameTime = 0
	ecs.NextID = 1
	ecs.Towers = nil
	ecs.Enemies = nil
	ecs.Projectiles = nil
	ecs.DeathEffects = nil
	ecs.ChainEffects = nil
	ecs.Player = &component.PlayerState{
		Health: config.InitialPlayerHealth,
		Gold:   config.InitialPlayerGold,
	}
	ecs.Wave = nil
	ecs.WaveNumber = 0
	ecs.Phase = component.PhaseSetup
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// TowerAt returns the tower standing on the cell, if any.
func (ecs *ECS) TowerAt(x, y int) (*component.Tower, bool) {
	for _, t := range ecs.Towers {
		if t.Cell.X == x && t.Cell.Y == y {
			return t, true
		}
	}
	return nil, false
}

// ClearTransient drops projectiles and cosmetic effects between waves.
func (ecs *ECS) ClearTransient() {
	ecs.Projectiles = nil
	ecs.DeathEffects = nil
	ecs.ChainEffects = nil
}
