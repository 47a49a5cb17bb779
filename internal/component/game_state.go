// internal/component/game_state.go
package component

// Phase — фаза игры. Значения совпадают с именами состояний автомата в system.StateSystem.
type Phase string

const (
	PhaseSetup      Phase = "setup"
	PhaseWaveActive Phase = "wave_active"
	PhaseGameOver   Phase = "game_over"
	PhaseVictory    Phase = "victory"
)

// PlayerState — здоровье и золото игрока.
type PlayerState struct {
	Health int
	Gold   int
}
