package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/defs"
)

func TestApplyStatusEffect_ReplacesSameKind(t *testing.T) {
	var effects []component.StatusEffect
	effects = ApplyStatusEffect(effects, component.StatusEffect{Kind: component.StatusSlow, StartedAt: 0, Duration: 2, SlowFactor: 0.5})
	effects = ApplyStatusEffect(effects, component.StatusEffect{Kind: component.StatusSlow, StartedAt: 1, Duration: 2, SlowFactor: 0.3})

	require.Len(t, effects, 1)
	assert.Equal(t, 1.0, effects[0].StartedAt)
	assert.Equal(t, 0.3, effects[0].SlowFactor)

	// Таймер перезапущен: в 2.5 эффект ещё действует, в 3.0 уже нет.
	res := ResolveStatusEffects(effects, 2.5, 0.1)
	assert.Len(t, res.Active, 1)
	assert.Equal(t, 0.3, res.SpeedMultiplier)

	res = ResolveStatusEffects(effects, 3.0, 0.1)
	assert.Empty(t, res.Active)
	assert.Equal(t, 1.0, res.SpeedMultiplier)
}

func TestApplyStatusEffect_DifferentKindsCoexist(t *testing.T) {
	var effects []component.StatusEffect
	effects = ApplyStatusEffect(effects, component.StatusEffect{Kind: component.StatusPoison, Duration: 3, DPS: 20})
	effects = ApplyStatusEffect(effects, component.StatusEffect{Kind: component.StatusBurn, Duration: 2, DPS: 35})
	effects = ApplyStatusEffect(effects, component.StatusEffect{Kind: component.StatusSlow, Duration: 2, SlowFactor: 0.5})
	require.Len(t, effects, 3)

	res := ResolveStatusEffects(effects, 0.5, 0.1)
	assert.InDelta(t, 5.5, res.DotDamage, 1e-9)
	assert.Equal(t, 0.5, res.SpeedMultiplier)
}

func TestResolveStatusEffects_SlowTakesMinimum(t *testing.T) {
	// Два Slow одновременно возможны только вручную, но множитель всё равно не перемножается.
	effects := []component.StatusEffect{
		{Kind: component.StatusSlow, Duration: 5, SlowFactor: 0.5},
		{Kind: component.StatusSlow, Duration: 5, SlowFactor: 0.3},
	}
	res := ResolveStatusEffects(effects, 1, 0.1)
	assert.Equal(t, 0.3, res.SpeedMultiplier)
}

func TestStatusEffectFromAbility(t *testing.T) {
	eff, ok := StatusEffectFromAbility(defs.Poison{DPS: 20, Duration: 3}, 7)
	require.True(t, ok)
	assert.Equal(t, component.StatusEffect{Kind: component.StatusPoison, StartedAt: 7, Duration: 3, DPS: 20}, eff)

	eff, ok = StatusEffectFromAbility(defs.Slow{Factor: 0.5, Duration: 2}, 1)
	require.True(t, ok)
	assert.Equal(t, 0.5, eff.SlowFactor)

	_, ok = StatusEffectFromAbility(defs.Splash{Radius: 1}, 0)
	assert.False(t, ok)
	_, ok = StatusEffectFromAbility(defs.Chain{MaxTargets: 1, Range: 1}, 0)
	assert.False(t, ok)
}

func TestStatusEffectSystem_PoisonTotalDamage(t *testing.T) {
	f := newFixture(t, testLibrary())
	enemy := f.addEnemy(defs.EnemyOrc, 0, 0)
	enemy.StatusEffects = []component.StatusEffect{{Kind: component.StatusPoison, StartedAt: 0, Duration: 3, DPS: 20}}

	const dt = 0.05
	total := 0.0
	for i := 0; i < 100; i++ {
		f.ecs.GameTime += dt
		damage := make(DamageMap)
		f.sim.Statuses.Update(dt, damage)
		total += damage[enemy.ID]
	}
	// Эффект живёт 3 секунды: последний тик приходится на момент чуть раньше истечения.
	assert.InDelta(t, 60, total, 20*dt+1e-9)
	assert.False(t, enemy.HasEffect(component.StatusPoison))
}

func TestApplyStatusEffect_AtMostOnePerKind(t *testing.T) {
	kinds := []component.StatusKind{component.StatusPoison, component.StatusBurn, component.StatusSlow}
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 30).Draw(t, "n")
		var effects []component.StatusEffect
		last := map[component.StatusKind]float64{}
		for i := 0; i < n; i++ {
			kind := rapid.SampledFrom(kinds).Draw(t, "kind")
			eff := component.StatusEffect{Kind: kind, StartedAt: float64(i), Duration: 1, DPS: 1, SlowFactor: 0.5}
			effects = ApplyStatusEffect(effects, eff)
			last[kind] = float64(i)
		}
		seen := map[component.StatusKind]bool{}
		for _, eff := range effects {
			if seen[eff.Kind] {
				t.Fatalf("duplicate effect of kind %s", eff.Kind)
			}
			seen[eff.Kind] = true
			assert.Equal(t, last[eff.Kind], eff.StartedAt)
		}
		assert.Len(t, effects, len(last))
	})
}
