// internal/system/visual_effect.go
package system

import (
	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/entity"
)

// VisualEffectSystem управляет короткоживущими эффектами: вспышки смерти и молнии.
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update drops expired effects and appends the ones created this frame.
func (s *VisualEffectSystem) Update(deaths []*component.DeathEffect, chains []*component.ChainLightningEffect) {
	now := s.ecs.GameTime

	keptDeaths := s.ecs.DeathEffects[:0]
	for _, d := range s.ecs.DeathEffects {
		if now-d.CreatedAt < config.DeathEffectLifetime {
			keptDeaths = append(keptDeaths, d)
		}
	}
	clearTail(s.ecs.DeathEffects, len(keptDeaths))
	s.ecs.DeathEffects = append(keptDeaths, deaths...)

	keptChains := s.ecs.ChainEffects[:0]
	for _, c := range s.ecs.ChainEffects {
		if now-c.CreatedAt < config.ChainEffectLifetime {
			keptChains = append(keptChains, c)
		}
	}
	clearTail(s.ecs.ChainEffects, len(keptChains))
	s.ecs.ChainEffects = append(keptChains, chains...)
}

// DeathEffectsFor creates one death flash per kill.
func (s *VisualEffectSystem) DeathEffectsFor(kills []KillInfo) []*component.DeathEffect {
	if len(kills) == 0 {
		return nil
	}
	out := make([]*component.DeathEffect, 0, len(kills))
	for _, k := range kills {
		out = append(out, &component.DeathEffect{
			ID:        s.ecs.NewEntity(),
			Position:  k.Enemy.Position,
			CreatedAt: s.ecs.GameTime,
		})
	}
	return out
}
