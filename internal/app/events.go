// internal/app/events.go
package app

import (
	"log"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/event"
	"go-pixel-defense/internal/system"
)

// SessionStats — счётчики за текущую игру, для экрана итогов.
type SessionStats struct {
	Kills       int
	Leaks       int
	GoldEarned  int
	TowersBuilt int
}

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.WaveStarted:
		log.Printf("[%s] Game: wave %v started", g.RunID, e.Data)
	case event.WaveCleared:
		log.Printf("[%s] Game: wave %v cleared, gold %d, health %d", g.RunID, e.Data, g.Gold(), g.Health())
	case event.WaveTimedOut:
		log.Printf("[%s] Game: wave timer expired with %v enemies left", g.RunID, e.Data)
	case event.TowerPlaced:
		g.Stats.TowersBuilt++
		if t, ok := e.Data.(*component.Tower); ok {
			log.Printf("[%s] Game: placed %s at (%d,%d)", g.RunID, t.DefID, t.Cell.X, t.Cell.Y)
		}
	case event.EnemyKilled:
		g.Stats.Kills++
		if k, ok := e.Data.(system.KillInfo); ok {
			g.Stats.GoldEarned += k.Gold
		}
	case event.EnemyLeaked:
		g.Stats.Leaks++
	case event.GameOver:
		log.Printf("[%s] Game: game over (%v) on wave %d", g.RunID, e.Data, g.CurrentWave())
	case event.GameWon:
		log.Printf("[%s] Game: victory, %d kills, %d leaks", g.RunID, g.Stats.Kills, g.Stats.Leaks)
	case event.GameRestarted:
		log.Printf("[%s] Game: restarted", g.RunID)
	}
}
