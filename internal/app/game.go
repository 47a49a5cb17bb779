// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"github.com/google/uuid"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/event"
	"go-pixel-defense/internal/system"
	"go-pixel-defense/pkg/gridmap"
)

// Game holds the main game state and logic.
type Game struct {
	RunID           string // идентификатор сессии в логах
	Lib             *defs.Library
	Board           *gridmap.GridMap
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Simulation      *system.Simulation
	Stats           *SessionStats

	speedIndex int
	isPaused   bool
	lastResult system.StepResult
}

// NewGame initializes a new game instance.
func NewGame(lib *defs.Library) (*Game, error) {
	board, err := lib.Level.BuildMap()
	if err != nil {
		return nil, fmt.Errorf("failed to build level: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		RunID:           uuid.NewString(),
		Lib:             lib,
		Board:           board,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Simulation:      system.NewSimulation(ecs, lib, board, eventDispatcher),
		Stats:           &SessionStats{},
	}
	g.Simulation.SetSpeed(config.GameSpeeds[0])

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.WaveStarted, event.WaveCleared, event.WaveTimedOut,
		event.TowerPlaced, event.EnemyKilled, event.EnemyLeaked,
		event.GameOver, event.GameWon, event.GameRestarted,
	} {
		eventDispatcher.Subscribe(t, listener)
	}

	log.Printf("[%s] Game: new session, %d waves, %d tower types", g.RunID, len(lib.Waves), len(lib.Towers))
	return g, nil
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) system.StepResult {
	if g.isPaused {
		return system.StepResult{Skipped: true}
	}
	res := g.Simulation.Step(deltaTime)
	if !res.Skipped {
		g.lastResult = res
	}
	return res
}

// StartWave begins the next enemy wave.
func (g *Game) StartWave() error {
	if g.ECS.Phase != component.PhaseSetup {
		return fmt.Errorf("start wave in %s: %w", g.ECS.Phase, ErrWrongPhase)
	}
	next := g.ECS.WaveNumber + 1
	if next > g.TotalWaves() {
		return ErrNoMoreWaves
	}
	if _, err := g.Simulation.Waves.StartWave(next); err != nil {
		return fmt.Errorf("start wave: %w", err)
	}
	if err := g.Simulation.State.Fire(system.EventStartWave); err != nil {
		return fmt.Errorf("start wave: %w", err)
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: next})
	return nil
}

// CycleSpeed switches to the next game speed and returns it.
func (g *Game) CycleSpeed() float64 {
	g.speedIndex = (g.speedIndex + 1) % len(config.GameSpeeds)
	g.Simulation.SetSpeed(config.GameSpeeds[g.speedIndex])
	return g.Simulation.Speed()
}

// TogglePause ставит симуляцию на паузу или снимает с неё.
func (g *Game) TogglePause() {
	g.isPaused = !g.isPaused
}

// IsPaused возвращает текущее состояние паузы.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// Restart сбрасывает игру к первой волне. Скорость игры сохраняется.
func (g *Game) Restart() {
	g.ECS.Reset()
	if err := g.Simulation.State.Fire(system.EventReset); err != nil {
		log.Printf("[%s] Game: restart: %v", g.RunID, err)
	}
	g.isPaused = false
	g.lastResult = system.StepResult{}
	*g.Stats = SessionStats{}
	g.EventDispatcher.Dispatch(event.Event{Type: event.GameRestarted})
}

// --- Public Accessors ---

func (g *Game) Phase() component.Phase { return g.ECS.Phase }
func (g *Game) Health() int            { return g.ECS.Player.Health }
func (g *Game) Gold() int              { return g.ECS.Player.Gold }
func (g *Game) TotalWaves() int        { return g.Simulation.Waves.TotalWaves() }
func (g *Game) SpeedIndex() int        { return g.speedIndex }
func (g *Game) Speed() float64         { return g.Simulation.Speed() }
func (g *Game) GameTime() float64      { return g.ECS.GameTime }

// LastResult returns the result of the most recent non-skipped step.
func (g *Game) LastResult() system.StepResult { return g.lastResult }

// CurrentWave returns the wave being played, or the next one during setup.
func (g *Game) CurrentWave() int {
	if g.ECS.Phase == component.PhaseWaveActive && g.ECS.Wave != nil {
		return g.ECS.Wave.Number
	}
	return min(g.ECS.WaveNumber+1, g.TotalWaves())
}

// TimeLeft returns the seconds left on the wave timer, 0 outside a wave.
func (g *Game) TimeLeft() float64 {
	if g.ECS.Phase != component.PhaseWaveActive || g.ECS.Wave == nil {
		return 0
	}
	return g.ECS.Wave.TimeLeft
}

// EnemiesRemaining counts enemies on the field plus pending spawns.
func (g *Game) EnemiesRemaining() int {
	if g.ECS.Phase != component.PhaseWaveActive {
		return 0
	}
	return len(g.ECS.Enemies) + g.ECS.Wave.Remaining()
}
