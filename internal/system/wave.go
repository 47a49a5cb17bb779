// internal/system/wave.go
package system

import (
	"fmt"
	"log"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/event"
)

// BuildSpawnQueue expands a wave definition into spawns with due times.
// Каждый враг ждёт задержку своей группы после предыдущего, включая первого.
func BuildSpawnQueue(def defs.WaveDefinition) []component.PendingSpawn {
	queue := make([]component.PendingSpawn, 0, def.TotalEnemies())
	due := 0.0
	for _, g := range def.Groups {
		for i := 0; i < g.Count; i++ {
			due += g.SpawnDelay.Seconds()
			queue = append(queue, component.PendingSpawn{EnemyID: g.EnemyID, DueAt: due})
		}
	}
	return queue
}

// WaveSystem ведёт очередь спавна текущей волны.
type WaveSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
	spawnPoint      component.Position
}

func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, eventDispatcher *event.Dispatcher, spawnPoint component.Position) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		lib:             lib,
		eventDispatcher: eventDispatcher,
		spawnPoint:      spawnPoint,
	}
}

// TotalWaves returns how many waves the game has.
func (s *WaveSystem) TotalWaves() int {
	return len(s.lib.Waves)
}

// StartWave prepares wave number (1-based) and stores it in the ECS.
// The phase change itself is up to the caller.
func (s *WaveSystem) StartWave(number int) (*component.Wave, error) {
	if number < 1 || number > len(s.lib.Waves) {
		return nil, fmt.Errorf("wave %d of %d: %w", number, len(s.lib.Waves), ErrNoSuchWave)
	}
	def := s.lib.Waves[number-1]
	queue := BuildSpawnQueue(def)
	wave := &component.Wave{
		Number:   number,
		TimeLeft: def.TimeLimit.Seconds(),
		Queue:    queue,
		Total:    len(queue),
	}
	s.ecs.Wave = wave
	return wave, nil
}

// Update spawns every enemy whose due time has come. Spawns are dropped
// silently outside the active-wave phase.
func (s *WaveSystem) Update(deltaTime float64) {
	wave := s.ecs.Wave
	if wave == nil || wave.Exhausted || s.ecs.Phase != component.PhaseWaveActive {
		return
	}
	wave.Elapsed += deltaTime
	for len(wave.Queue) > 0 && wave.Queue[0].DueAt <= wave.Elapsed {
		next := wave.Queue[0]
		wave.Queue = wave.Queue[1:]
		s.spawnEnemy(next.EnemyID)
		wave.Spawned++
	}
	if len(wave.Queue) == 0 {
		wave.Exhausted = true
	}
}

// Exhaust cancels the remaining spawns.
func (s *WaveSystem) Exhaust() {
	if s.ecs.Wave == nil {
		return
	}
	s.ecs.Wave.Queue = nil
	s.ecs.Wave.Exhausted = true
}

func (s *WaveSystem) spawnEnemy(enemyID string) {
	def, ok := s.lib.Enemy(enemyID)
	if !ok {
		log.Printf("WaveSystem: Enemy definition not found for ID: %s", enemyID)
		return
	}
	enemy := &component.Enemy{
		ID:        s.ecs.NewEntity(),
		DefID:     enemyID,
		Position:  s.spawnPoint,
		Health:    def.Health,
		MaxHealth: def.Health,
	}
	s.ecs.Enemies = append(s.ecs.Enemies, enemy)
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: enemy})
}
