package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/event"
	"go-pixel-defense/pkg/gridmap"
)

const frame = 1.0 / 60

func TestStep_NoopOutsideActiveWave(t *testing.T) {
	phases := []component.Phase{component.PhaseSetup, component.PhaseGameOver, component.PhaseVictory}
	rapid.Check(t, func(t *rapid.T) {
		f := newFixture(t, testLibrary())
		f.addTower(defs.TowerCannon, gridmap.Cell{X: 2, Y: 0})
		e := f.addEnemy(defs.EnemyGoblin, 100, 60)
		f.ecs.Phase = rapid.SampledFrom(phases).Draw(t, "phase")
		dt := rapid.Float64Range(0, 1).Draw(t, "dt")

		res := f.sim.Step(dt)
		assert.True(t, res.Skipped)
		assert.Zero(t, f.ecs.GameTime)
		assert.Equal(t, component.Position{X: 100, Y: 60}, e.Position)
		assert.Equal(t, 100.0, e.Health)
		assert.Empty(t, f.ecs.Projectiles)
		assert.Equal(t, config.InitialPlayerGold, f.ecs.Player.Gold)
	})
}

func TestStep_ZeroDeltaIsSkipped(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	assert.True(t, f.sim.Step(0).Skipped)
	f.sim.SetSpeed(0) // игнорируется
	assert.Equal(t, 1.0, f.sim.Speed())
}

func TestStep_SpeedScalesSimulationTime(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	f.sim.SetSpeed(4)
	f.sim.Step(0.1)
	assert.InDelta(t, 0.4, f.ecs.GameTime, 1e-9)
	assert.InDelta(t, 0.4, f.ecs.Wave.Elapsed, 1e-9)
}

// Гоблин проходит путь в 10 клеток на скорости 2.4 клетки/с примерно за 4.17 с.
func TestStep_GoblinLeaksAndWaveClears(t *testing.T) {
	wave := defs.WaveDefinition{
		Groups:    []defs.SpawnGroup{{EnemyID: defs.EnemyGoblin, Count: 1}},
		TimeLimit: 45 * time.Second,
	}
	f := newFixture(t, testLibrary(wave, wave))
	f.startWave(t, 1)

	var res StepResult
	for i := 0; i < 600 && res.Outcome == OutcomeNone; i++ {
		res = f.sim.Step(frame)
	}

	assert.InDelta(t, 400.0/96.0, f.ecs.GameTime, 0.02)
	assert.Equal(t, OutcomeWaveCleared, res.Outcome)
	assert.Equal(t, 1, res.Leaks)
	assert.Equal(t, 1, res.HealthLost)
	assert.Equal(t, 19, f.ecs.Player.Health)
	assert.Equal(t, config.InitialPlayerGold+110, f.ecs.Player.Gold)
	assert.Equal(t, 110, res.GoldGained)
	assert.Equal(t, component.PhaseSetup, f.ecs.Phase)
	assert.Equal(t, 1, f.ecs.WaveNumber)
	assert.Equal(t, 1, f.rec.count(event.EnemyLeaked))
	assert.Equal(t, 1, f.rec.count(event.WaveCleared))
}

func TestStep_TimerWithOneEnemyForcesLeak(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	f.ecs.Wave.TimeLeft = 0.01
	f.addEnemy(defs.EnemyGoblin, 100, 60)

	res := f.sim.Step(0.02)
	assert.Equal(t, OutcomeWaveCleared, res.Outcome)
	assert.Equal(t, 1, res.Leaks)
	assert.Equal(t, 19, f.ecs.Player.Health)
	assert.Empty(t, f.ecs.Enemies)
	assert.True(t, f.ecs.Wave.Exhausted)
	assert.Zero(t, f.ecs.Wave.TimeLeft)
	assert.Equal(t, 1, f.rec.count(event.WaveTimedOut))
	assert.Equal(t, component.PhaseSetup, f.ecs.Phase)
}

func TestStep_TimerWithTwoEnemiesLoses(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	f.ecs.Wave.TimeLeft = 0.01
	f.addEnemy(defs.EnemyGoblin, 100, 60)
	f.addEnemy(defs.EnemyGoblin, 140, 60)

	res := f.sim.Step(0.02)
	assert.Equal(t, OutcomeGameOverTime, res.Outcome)
	assert.Equal(t, component.PhaseGameOver, f.ecs.Phase)
	assert.Equal(t, config.InitialPlayerHealth, f.ecs.Player.Health)
	assert.Equal(t, 1, f.rec.count(event.GameOver))

	assert.True(t, f.sim.Step(frame).Skipped, "nothing runs after game over")
}

func TestStep_HealthExhausted(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	f.ecs.Player.Health = 1
	end := f.sim.Movement.Path()[1]
	f.addEnemy(defs.EnemyGoblin, end.X-1, end.Y)

	res := f.sim.Step(frame)
	assert.Equal(t, OutcomeGameOverHealth, res.Outcome)
	assert.Equal(t, 0, f.ecs.Player.Health)
	assert.Equal(t, component.PhaseGameOver, f.ecs.Phase)
}

func TestStep_HealthNeverGoesBelowZero(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	f.ecs.Player.Health = 2
	end := f.sim.Movement.Path()[1]
	for i := 0; i < 5; i++ {
		f.addEnemy(defs.EnemyGoblin, end.X-1, end.Y)
	}
	res := f.sim.Step(frame)
	assert.Equal(t, 5, res.HealthLost)
	assert.Equal(t, 0, f.ecs.Player.Health)
}

func TestStep_NewProjectilesDoNotMoveOnFiringFrame(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	tower := f.addTower(defs.TowerPoisonArcher, gridmap.Cell{X: 5, Y: 0})
	f.addEnemy(defs.EnemyOrc, 140, 60)

	f.sim.Step(frame)
	require.Len(t, f.ecs.Projectiles, 1)
	assert.Equal(t, tower.Position, f.ecs.Projectiles[0].Position)

	f.sim.Step(frame)
	require.Len(t, f.ecs.Projectiles, 1)
	assert.NotEqual(t, tower.Position, f.ecs.Projectiles[0].Position)
}

func TestStep_KillPaysBountyAndLeavesDeathEffect(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	e := f.addEnemy(defs.EnemyGoblin, 100, 60)
	e.Health = 1
	e.StatusEffects = []component.StatusEffect{{Kind: component.StatusBurn, Duration: 5, DPS: 100}}

	res := f.sim.Step(frame)
	assert.Equal(t, 1, res.Kills)
	assert.Equal(t, 5, res.GoldGained)
	assert.Equal(t, config.InitialPlayerGold+5, f.ecs.Player.Gold)
	require.Len(t, f.ecs.DeathEffects, 1)
	assert.InDelta(t, f.ecs.GameTime, f.ecs.DeathEffects[0].CreatedAt, 1e-12)
	assert.Equal(t, 1, f.rec.count(event.EnemyKilled))

	// Вспышка живёт DeathEffectLifetime секунд по часам симуляции.
	for i := 0; i < 30; i++ {
		f.sim.Step(frame)
	}
	assert.Empty(t, f.ecs.DeathEffects)
}

func TestStep_LastWaveWins(t *testing.T) {
	empty := defs.WaveDefinition{TimeLimit: time.Minute}
	f := newFixture(t, testLibrary(empty))
	f.startWave(t, 1)
	f.ecs.Projectiles = append(f.ecs.Projectiles, &component.Projectile{ID: f.ecs.NewEntity()})

	res := f.sim.Step(frame)
	assert.Equal(t, OutcomeVictory, res.Outcome)
	assert.Equal(t, component.PhaseVictory, f.ecs.Phase)
	assert.Equal(t, config.InitialPlayerGold, f.ecs.Player.Gold, "no bonus after the last wave")
	assert.Empty(t, f.ecs.Projectiles)
	assert.Equal(t, 1, f.rec.count(event.GameWon))
}

func TestStep_WaveBonusGrowsWithWaveNumber(t *testing.T) {
	empty := defs.WaveDefinition{TimeLimit: time.Minute}
	f := newFixture(t, testLibrary(empty, empty, empty))

	f.startWave(t, 1)
	assert.Equal(t, 110, f.sim.Step(frame).GoldGained)
	f.startWave(t, 2)
	assert.Equal(t, 120, f.sim.Step(frame).GoldGained)
	f.startWave(t, 3)
	assert.Equal(t, OutcomeVictory, f.sim.Step(frame).Outcome)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "none", OutcomeNone.String())
	assert.Equal(t, "game over: time", OutcomeGameOverTime.String())
}

// Ни горение, ни попадание по отдельности не убивают, вместе за один кадр убивают.
func TestStep_CombinedSourcesKillInOneFrame(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	e := f.addEnemy(defs.EnemyGoblin, 100, 60)
	e.Health = 10
	e.StatusEffects = []component.StatusEffect{{Kind: component.StatusBurn, Duration: 5, DPS: 360}} // 6 за кадр
	f.ecs.Projectiles = append(f.ecs.Projectiles, &component.Projectile{
		ID:       f.ecs.NewEntity(),
		TargetID: e.ID,
		Position: component.Position{X: 100, Y: 60},
		Damage:   5,
		Speed:    400,
	})

	res := f.sim.Step(frame)
	assert.Equal(t, 1, res.Kills)
	assert.Equal(t, 5, res.GoldGained)
	assert.Empty(t, f.ecs.Enemies)
	assert.Empty(t, f.ecs.Projectiles)
	assert.Equal(t, config.InitialPlayerGold+5, f.ecs.Player.Gold)
	assert.Equal(t, 0.0, e.Health)
}

func TestStep_SlowHitReplacesWeakerSlow(t *testing.T) {
	f := newFixture(t, testLibrary())
	f.startWave(t, 1)
	e := f.addEnemy(defs.EnemyOrc, 100, 60)
	e.StatusEffects = []component.StatusEffect{{Kind: component.StatusSlow, Duration: 2, SlowFactor: 0.5}}
	f.ecs.Projectiles = append(f.ecs.Projectiles, &component.Projectile{
		ID:       f.ecs.NewEntity(),
		TargetID: e.ID,
		Position: component.Position{X: 100, Y: 60},
		Damage:   1,
		Speed:    400,
		Ability:  defs.Slow{Factor: 0.3, Duration: 2},
	})

	f.sim.Step(frame)
	require.Len(t, e.StatusEffects, 1)
	assert.Equal(t, component.StatusSlow, e.StatusEffects[0].Kind)
	assert.Equal(t, 0.3, e.StatusEffects[0].SlowFactor)
	assert.InDelta(t, f.ecs.GameTime, e.StatusEffects[0].StartedAt, 1e-12)

	// Следующий кадр движется уже с новым множителем.
	before := e.Position.X
	f.sim.Step(frame)
	assert.InDelta(t, 64*0.3*frame, e.Position.X-before, 1e-9)
}
