// internal/system/simulation.go
package system

import (
	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/event"
	"go-pixel-defense/pkg/gridmap"
)

// Outcome — чем закончился шаг симуляции для волны.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWaveCleared
	OutcomeVictory
	OutcomeGameOverHealth
	OutcomeGameOverTime
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWaveCleared:
		return "wave cleared"
	case OutcomeVictory:
		return "victory"
	case OutcomeGameOverHealth:
		return "game over: health"
	case OutcomeGameOverTime:
		return "game over: time"
	}
	return "none"
}

// StepResult summarises one frame.
type StepResult struct {
	Skipped    bool // фаза не WAVE_ACTIVE или нулевой шаг
	HealthLost int
	GoldGained int // награды за убийства и бонус за волну
	Kills      int
	Leaks      int
	Outcome    Outcome
}

// Simulation composes the systems into one frame update.
type Simulation struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
	speed           float64

	Waves       *WaveSystem
	Statuses    *StatusEffectSystem
	Movement    *MovementSystem
	Combat      *CombatSystem
	Projectiles *ProjectileSystem
	Damage      *DamageSystem
	Player      *PlayerSystem
	Visuals     *VisualEffectSystem
	State       *StateSystem
}

func NewSimulation(ecs *entity.ECS, lib *defs.Library, board *gridmap.GridMap, eventDispatcher *event.Dispatcher) *Simulation {
	path := board.PathPixels(config.TileSize)
	width, height := board.PixelBounds(config.TileSize)
	return &Simulation{
		ecs:             ecs,
		lib:             lib,
		eventDispatcher: eventDispatcher,
		speed:           1,
		Waves:           NewWaveSystem(ecs, lib, eventDispatcher, path[0]),
		Statuses:        NewStatusEffectSystem(ecs),
		Movement:        NewMovementSystem(ecs, lib, path),
		Combat:          NewCombatSystem(ecs, lib),
		Projectiles:     NewProjectileSystem(ecs, NewAbilityResolver(ecs), width, height),
		Damage:          NewDamageSystem(ecs, lib),
		Player:          NewPlayerSystem(ecs),
		Visuals:         NewVisualEffectSystem(ecs),
		State:           NewStateSystem(ecs, eventDispatcher),
	}
}

// Speed returns the game speed multiplier.
func (s *Simulation) Speed() float64 { return s.speed }

// SetSpeed sets the game speed multiplier; non-positive values are ignored.
func (s *Simulation) SetSpeed(speed float64) {
	if speed > 0 {
		s.speed = speed
	}
}

// Step advances the simulation by frameDelta wall-clock seconds scaled by the
// game speed. Outside the active wave it does nothing.
//
// Порядок фиксирован: спавн, эффекты, движение и утечки, стрельба, снаряды,
// урон, игрок, визуальные эффекты, таймер волны.
func (s *Simulation) Step(frameDelta float64) StepResult {
	dt := frameDelta * s.speed
	if s.ecs.Phase != component.PhaseWaveActive || dt <= 0 {
		return StepResult{Skipped: true}
	}
	s.ecs.GameTime += dt

	var res StepResult
	damage := make(DamageMap)

	s.Waves.Update(dt)

	multipliers := s.Statuses.Update(dt, damage)
	leaked := s.Movement.Update(dt, multipliers)
	for _, e := range leaked {
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: e})
	}
	res.Leaks = len(leaked)

	fired := s.Combat.Update(dt)
	chains := s.Projectiles.Update(dt, damage)
	s.ecs.Projectiles = append(s.ecs.Projectiles, fired...)

	kills := s.Damage.Apply(damage)
	for _, k := range kills {
		res.GoldGained += k.Gold
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: k})
	}
	res.Kills = len(kills)

	res.HealthLost = res.Leaks
	exhausted := s.Player.Apply(res.Leaks, res.GoldGained)

	s.Visuals.Update(s.Visuals.DeathEffectsFor(kills), chains)

	if exhausted {
		res.Outcome = s.lose(OutcomeGameOverHealth, "health")
		return res
	}
	res.Outcome = s.evaluateWave(dt, &res)
	return res
}

// evaluateWave ticks the wave timer and decides whether the wave is over.
func (s *Simulation) evaluateWave(dt float64, res *StepResult) Outcome {
	wave := s.ecs.Wave
	if wave == nil {
		return OutcomeNone
	}

	wave.TimeLeft -= dt
	if wave.TimeLeft <= 0 {
		wave.TimeLeft = 0
		remaining := len(s.ecs.Enemies) + wave.Remaining()
		s.eventDispatcher.Dispatch(event.Event{Type: event.WaveTimedOut, Data: remaining})
		if len(s.ecs.Enemies) > 1 {
			return s.lose(OutcomeGameOverTime, "time")
		}
		// Один оставшийся враг считается прорвавшимся, волна завершается.
		forced := len(s.ecs.Enemies)
		for _, e := range s.ecs.Enemies {
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: e})
		}
		clearTail(s.ecs.Enemies, 0)
		s.ecs.Enemies = s.ecs.Enemies[:0]
		s.Waves.Exhaust()
		res.Leaks += forced
		res.HealthLost += forced
		if s.Player.Apply(forced, 0) {
			return s.lose(OutcomeGameOverHealth, "health")
		}
	}

	if !wave.Exhausted || len(s.ecs.Enemies) > 0 {
		return OutcomeNone
	}
	return s.clearWave(res)
}

// clearWave закрывает пройденную волну: бонус и возврат к подготовке либо победа.
func (s *Simulation) clearWave(res *StepResult) Outcome {
	s.ecs.ClearTransient()
	s.ecs.WaveNumber = s.ecs.Wave.Number
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: s.ecs.WaveNumber})

	if s.ecs.WaveNumber >= len(s.lib.Waves) {
		_ = s.State.Fire(EventWin)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameWon})
		return OutcomeVictory
	}

	bonus := config.WaveBonusBase + s.ecs.WaveNumber*config.WaveBonusPerWave
	s.Player.Apply(0, bonus)
	res.GoldGained += bonus
	_ = s.State.Fire(EventClearWave)
	return OutcomeWaveCleared
}

func (s *Simulation) lose(outcome Outcome, reason string) Outcome {
	_ = s.State.Fire(EventLose)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: reason})
	return outcome
}
