// internal/system/damage.go
package system

import (
	"log"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/types"
)

// DamageMap accumulates damage per enemy during one frame. Every source adds,
// nothing subtracts, so the order of contributions does not matter.
type DamageMap map[types.EntityID]float64

func (d DamageMap) Add(id types.EntityID, amount float64) {
	if amount <= 0 {
		return
	}
	d[id] += amount
}

// KillInfo описывает одного убитого врага.
type KillInfo struct {
	Enemy *component.Enemy
	Gold  int
}

// ApplyDamage subtracts the accumulated damage from every enemy and splits the
// list into survivors and kills. Health of the dead is clamped to zero.
// goldOf maps an enemy to its bounty. enemies is filtered in place.
func ApplyDamage(enemies []*component.Enemy, damage DamageMap, goldOf func(*component.Enemy) int) (survivors []*component.Enemy, kills []KillInfo) {
	survivors = enemies[:0]
	for _, enemy := range enemies {
		if amount, ok := damage[enemy.ID]; ok {
			enemy.Health -= amount
		}
		if enemy.Health <= 0 {
			enemy.Health = 0
			kills = append(kills, KillInfo{Enemy: enemy, Gold: goldOf(enemy)})
			continue
		}
		survivors = append(survivors, enemy)
	}
	return survivors, kills
}

// DamageSystem применяет накопленный за кадр урон.
type DamageSystem struct {
	ecs *entity.ECS
	lib *defs.Library
}

func NewDamageSystem(ecs *entity.ECS, lib *defs.Library) *DamageSystem {
	return &DamageSystem{ecs: ecs, lib: lib}
}

// Apply removes the dead from the ECS and returns them with their bounty.
func (s *DamageSystem) Apply(damage DamageMap) []KillInfo {
	if len(damage) == 0 {
		return nil
	}
	survivors, kills := ApplyDamage(s.ecs.Enemies, damage, s.bounty)
	clearTail(s.ecs.Enemies, len(survivors))
	s.ecs.Enemies = survivors
	return kills
}

func (s *DamageSystem) bounty(enemy *component.Enemy) int {
	def, ok := s.lib.Enemy(enemy.DefID)
	if !ok {
		log.Printf("DamageSystem: Could not find enemy definition for ID %s", enemy.DefID)
		return 0
	}
	return def.GoldValue
}
