// internal/system/ability.go
package system

import (
	"math"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/types"
)

// Impact — попадание снаряда по основной цели.
type Impact struct {
	Target  *component.Enemy
	Damage  float64
	Ability defs.Ability
}

// AbilityResolver turns one projectile impact into damage and status effects.
type AbilityResolver struct {
	ecs      *entity.ECS
	tileSize float64
}

func NewAbilityResolver(ecs *entity.ECS) *AbilityResolver {
	return &AbilityResolver{ecs: ecs, tileSize: config.TileSize}
}

// Resolve adds the direct hit and the ability's extra damage to damage.
// enemies is the current live set; chain hops return the lightning visuals they produce.
func (r *AbilityResolver) Resolve(impact Impact, enemies []*component.Enemy, damage DamageMap) []*component.ChainLightningEffect {
	damage.Add(impact.Target.ID, impact.Damage)

	switch ab := impact.Ability.(type) {
	case defs.Poison, defs.Burn, defs.Slow:
		if eff, ok := StatusEffectFromAbility(ab, r.ecs.GameTime); ok {
			impact.Target.StatusEffects = ApplyStatusEffect(impact.Target.StatusEffects, eff)
		}
	case defs.Splash:
		r.splash(impact, ab, enemies, damage)
	case defs.Chain:
		return r.chain(impact, ab, enemies, damage)
	}
	return nil
}

// splash бьёт всех остальных врагов в радиусе от основной цели полным уроном.
func (r *AbilityResolver) splash(impact Impact, ab defs.Splash, enemies []*component.Enemy, damage DamageMap) {
	radiusSq := math.Pow(ab.Radius*r.tileSize, 2)
	center := impact.Target.Position
	for _, enemy := range enemies {
		if enemy.ID == impact.Target.ID {
			continue
		}
		if center.DistanceSqTo(enemy.Position) <= radiusSq {
			damage.Add(enemy.ID, impact.Damage)
		}
	}
}

// chain jumps from the primary target to the nearest unvisited enemy, up to
// MaxTargets times. Hop i deals Damage * FalloffPerHop^i.
func (r *AbilityResolver) chain(impact Impact, ab defs.Chain, enemies []*component.Enemy, damage DamageMap) []*component.ChainLightningEffect {
	hit := map[types.EntityID]struct{}{impact.Target.ID: {}}
	rangePx := ab.Range * r.tileSize
	last := impact.Target
	var effects []*component.ChainLightningEffect

	for hop := 1; hop <= ab.MaxTargets; hop++ {
		next := FindChainTarget(last.Position, rangePx, enemies, hit)
		if next == nil {
			break
		}
		damage.Add(next.ID, impact.Damage*math.Pow(ab.FalloffPerHop, float64(hop)))
		effects = append(effects, &component.ChainLightningEffect{
			ID:        r.ecs.NewEntity(),
			From:      last.Position,
			To:        next.Position,
			CreatedAt: r.ecs.GameTime,
		})
		hit[next.ID] = struct{}{}
		last = next
	}
	return effects
}
