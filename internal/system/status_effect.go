// internal/system/status_effect.go
package system

import (
	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/types"
)

// StatusResolution — итог обработки эффектов одного врага за кадр.
type StatusResolution struct {
	Active          []component.StatusEffect
	SpeedMultiplier float64 // минимальный из активных Slow, либо 1
	DotDamage       float64 // сумма dps*deltaTime по активным Poison и Burn
}

// ResolveStatusEffects drops expired effects and aggregates the active ones.
// Slows do not multiply: the strongest single slow wins.
func ResolveStatusEffects(effects []component.StatusEffect, now, deltaTime float64) StatusResolution {
	res := StatusResolution{SpeedMultiplier: 1}
	for _, eff := range effects {
		if !eff.Active(now) {
			continue
		}
		res.Active = append(res.Active, eff)
		switch eff.Kind {
		case component.StatusSlow:
			if eff.SlowFactor > 0 && eff.SlowFactor < res.SpeedMultiplier {
				res.SpeedMultiplier = eff.SlowFactor
			}
		case component.StatusPoison, component.StatusBurn:
			res.DotDamage += eff.DPS * deltaTime
		}
	}
	return res
}

// ApplyStatusEffect attaches eff, replacing any effect of the same kind.
// The replaced effect's timer is discarded, so durations and DoT rates never stack.
func ApplyStatusEffect(effects []component.StatusEffect, eff component.StatusEffect) []component.StatusEffect {
	out := make([]component.StatusEffect, 0, len(effects)+1)
	for _, existing := range effects {
		if existing.Kind != eff.Kind {
			out = append(out, existing)
		}
	}
	return append(out, eff)
}

// StatusEffectFromAbility maps an on-hit ability to the status effect it applies.
// Splash and Chain carry no status effect.
func StatusEffectFromAbility(a defs.Ability, now float64) (component.StatusEffect, bool) {
	switch ab := a.(type) {
	case defs.Poison:
		return component.StatusEffect{Kind: component.StatusPoison, StartedAt: now, Duration: ab.Duration, DPS: ab.DPS}, true
	case defs.Burn:
		return component.StatusEffect{Kind: component.StatusBurn, StartedAt: now, Duration: ab.Duration, DPS: ab.DPS}, true
	case defs.Slow:
		return component.StatusEffect{Kind: component.StatusSlow, StartedAt: now, Duration: ab.Duration, SlowFactor: ab.Factor}, true
	}
	return component.StatusEffect{}, false
}

// StatusEffectSystem управляет жизненным циклом эффектов: замедление, яд, горение.
type StatusEffectSystem struct {
	ecs *entity.ECS
}

func NewStatusEffectSystem(ecs *entity.ECS) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs}
}

// Update prunes every enemy's effects, writes DoT into damage and returns the
// movement multiplier of each enemy.
func (s *StatusEffectSystem) Update(deltaTime float64, damage DamageMap) map[types.EntityID]float64 {
	multipliers := make(map[types.EntityID]float64, len(s.ecs.Enemies))
	for _, enemy := range s.ecs.Enemies {
		res := ResolveStatusEffects(enemy.StatusEffects, s.ecs.GameTime, deltaTime)
		enemy.StatusEffects = res.Active
		multipliers[enemy.ID] = res.SpeedMultiplier
		if res.DotDamage > 0 {
			damage.Add(enemy.ID, res.DotDamage)
		}
	}
	return multipliers
}
