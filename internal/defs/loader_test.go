package defs

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibrary_IsValid(t *testing.T) {
	lib := DefaultLibrary()
	require.NoError(t, lib.Validate())
	assert.Len(t, lib.Towers, len(TowerOrder))
	for _, id := range TowerOrder {
		_, ok := lib.Tower(id)
		assert.True(t, ok, id)
	}
	assert.Len(t, lib.Waves, 7)
	assert.Equal(t, 31, lib.Waves[6].TotalEnemies())
}

func TestTowerDefinition_Cooldown(t *testing.T) {
	def, ok := DefaultLibrary().Tower(TowerCannon)
	require.True(t, ok)
	assert.InDelta(t, 1/0.75, def.Cooldown(), 1e-12)
}

func TestLoad_Empty(t *testing.T) {
	lib, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultLibrary().Waves, lib.Waves)
}

func TestLoad_Overrides(t *testing.T) {
	src := `
towers:
  - id: ICE_MAGE
    name: Frost Mage
    cost: 10
    damage: 1
    range: 2
    fire_rate: 4
    projectile_speed: 5
    ability: {type: slow, factor: 0.25, duration: 1.5}
  - id: TESLA
    name: Tesla
    cost: 400
    damage: 60
    range: 3
    fire_rate: 1
    projectile_speed: 12
    ability: {type: CHAIN, max_targets: 5, range: 2, falloff_per_hop: 0.5}
enemies:
  - {id: GOBLIN, name: Goblin, health: 50, speed: 3, gold_value: 2}
waves:
  - groups:
      - {enemy: GOBLIN, count: 2, spawn_delay: 250ms}
    time_limit: 10s
`
	lib, err := Load(strings.NewReader(src))
	require.NoError(t, err)

	ice, ok := lib.Tower(TowerIceMage)
	require.True(t, ok)
	assert.Equal(t, "Frost Mage", ice.Name)
	assert.Equal(t, Slow{Factor: 0.25, Duration: 1.5}, ice.Ability)

	tesla, ok := lib.Tower("TESLA")
	require.True(t, ok)
	assert.Equal(t, Chain{MaxTargets: 5, Range: 2, FalloffPerHop: 0.5}, tesla.Ability)

	// Не упомянутые башни остаются.
	_, ok = lib.Tower(TowerCannon)
	assert.True(t, ok)

	goblin, _ := lib.Enemy(EnemyGoblin)
	assert.Equal(t, 50.0, goblin.Health)

	require.Len(t, lib.Waves, 1)
	assert.Equal(t, 250*time.Millisecond, lib.Waves[0].Groups[0].SpawnDelay)
	assert.Equal(t, 10*time.Second, lib.Waves[0].TimeLimit)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "unknown ability",
			src:  "towers:\n  - id: X\n    ability: {type: freeze}\n",
			want: `unknown ability type "freeze"`,
		},
		{
			name: "unknown field",
			src:  "enemies:\n  - {id: GOBLIN, hp: 5}\n",
			want: "field hp not found",
		},
		{
			name: "slow factor out of range",
			src:  "towers:\n  - {id: X, name: X, cost: 1, damage: 1, range: 1, fire_rate: 1, projectile_speed: 1, ability: {type: slow, factor: 1.5, duration: 1}}\n",
			want: "outside (0, 1]",
		},
		{
			name: "wave references unknown enemy",
			src:  "waves:\n  - {groups: [{enemy: DRAGON, count: 1, spawn_delay: 1s}], time_limit: 10s}\n",
			want: `unknown enemy "DRAGON"`,
		},
		{
			name: "group with zero count",
			src:  "waves:\n  - {groups: [{enemy: GOBLIN, count: 0, spawn_delay: 1s}], time_limit: 10s}\n",
			want: "GOBLIN count must be positive, got 0",
		},
		{
			name: "group with negative delay",
			src:  "waves:\n  - {groups: [{enemy: ORC, count: 2, spawn_delay: -500ms}], time_limit: 10s}\n",
			want: "ORC spawn_delay must not be negative, got -500ms",
		},
		{
			name: "wave without time limit",
			src:  "waves:\n  - {groups: [{enemy: GOBLIN, count: 1, spawn_delay: 1s}]}\n",
			want: "time_limit must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestAbility_Validate(t *testing.T) {
	assert.NoError(t, Poison{DPS: 20, Duration: 3}.Validate())
	assert.Error(t, Burn{DPS: -1, Duration: 1}.Validate())
	assert.Error(t, Splash{}.Validate())
	assert.Error(t, Chain{MaxTargets: 1, Range: 1, FalloffPerHop: 1.2}.Validate())
	assert.NoError(t, Chain{MaxTargets: 1, Range: 1, FalloffPerHop: 0}.Validate())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(t.TempDir() + "/nope.yaml")
	assert.Error(t, err)
}

func TestLoadFile_SampleConfig(t *testing.T) {
	lib, err := LoadFile("../../configs/defs.yaml")
	require.NoError(t, err)
	assert.Equal(t, DefaultLibrary().Waves, lib.Waves, "sample mirrors the built-in waves")
	archer, _ := lib.Tower(TowerPoisonArcher)
	assert.Equal(t, VisualArrow, archer.Visuals.ProjectileVisual)
}
