// internal/system/combat.go
package system

import (
	"log"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	ecs *entity.ECS
	lib *defs.Library
}

func NewCombatSystem(ecs *entity.ECS, lib *defs.Library) *CombatSystem {
	return &CombatSystem{ecs: ecs, lib: lib}
}

// Update ticks tower cooldowns and returns the projectiles fired this frame.
// They are not added to the ECS here: new projectiles start moving next frame.
func (s *CombatSystem) Update(deltaTime float64) []*component.Projectile {
	var fired []*component.Projectile
	for _, tower := range s.ecs.Towers {
		towerDef, ok := s.lib.Tower(tower.DefID)
		if !ok {
			log.Printf("CombatSystem: Could not find tower definition for ID %s", tower.DefID)
			continue
		}

		tower.Cooldown -= deltaTime
		if tower.Cooldown > 0 {
			continue
		}

		target := FindTarget(tower.Position, towerDef.Range*config.TileSize, s.ecs.Enemies)
		if target == nil {
			continue
		}
		fired = append(fired, s.createProjectile(tower, target, towerDef))
		tower.Cooldown = towerDef.Cooldown()
	}
	return fired
}

func (s *CombatSystem) createProjectile(tower *component.Tower, target *component.Enemy, towerDef defs.TowerDefinition) *component.Projectile {
	return &component.Projectile{
		ID:       s.ecs.NewEntity(),
		SourceID: tower.ID,
		TargetID: target.ID,
		Position: tower.Position,
		Damage:   towerDef.Damage,
		Speed:    towerDef.ProjectileSpeed * config.TileSize,
		Rotation: angleTo(tower.Position, target.Position),
		Color:    towerDef.Visuals.ProjectileColor,
		Visual:   towerDef.Visuals.ProjectileVisual,
		Ability:  towerDef.Ability,
	}
}
