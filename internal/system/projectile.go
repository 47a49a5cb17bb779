// internal/system/projectile.go
package system

import (
	"math"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/types"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs           *entity.ECS
	resolver      *AbilityResolver
	width, height float64 // игровое поле в пикселях
}

func NewProjectileSystem(ecs *entity.ECS, resolver *AbilityResolver, width, height float64) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:      ecs,
		resolver: resolver,
		width:    width,
		height:   height,
	}
}

// Update moves every projectile toward its target and resolves hits into damage.
// A projectile is discarded when its target is gone, when it hits, or when it
// leaves the play area. Returns chain-lightning visuals created by hits.
func (s *ProjectileSystem) Update(deltaTime float64, damage DamageMap) []*component.ChainLightningEffect {
	if len(s.ecs.Projectiles) == 0 {
		return nil
	}
	live := make(map[types.EntityID]*component.Enemy, len(s.ecs.Enemies))
	for _, e := range s.ecs.Enemies {
		live[e.ID] = e
	}

	var chains []*component.ChainLightningEffect
	kept := s.ecs.Projectiles[:0]
	for _, proj := range s.ecs.Projectiles {
		target, ok := live[proj.TargetID]
		if !ok {
			// Цель пропала, снаряд исчезает.
			continue
		}

		if proj.Position.DistanceSqTo(target.Position) < config.HitRadius*config.HitRadius {
			chains = append(chains, s.resolver.Resolve(Impact{
				Target:  target,
				Damage:  proj.Damage,
				Ability: proj.Ability,
			}, s.ecs.Enemies, damage)...)
			continue
		}

		proj.Rotation = angleTo(proj.Position, target.Position)
		proj.Position.X += math.Cos(proj.Rotation) * proj.Speed * deltaTime
		proj.Position.Y += math.Sin(proj.Rotation) * proj.Speed * deltaTime

		if !s.inBounds(proj.Position) {
			continue
		}
		kept = append(kept, proj)
	}
	clearTail(s.ecs.Projectiles, len(kept))
	s.ecs.Projectiles = kept
	return chains
}

func (s *ProjectileSystem) inBounds(p component.Position) bool {
	return p.X >= 0 && p.X <= s.width && p.Y >= 0 && p.Y <= s.height
}
