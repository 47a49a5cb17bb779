// internal/component/wave.go
package component

// PendingSpawn — один запланированный враг. DueAt отсчитывается от старта волны
// по часам симуляции, поэтому скорость игры влияет и на спавн.
type PendingSpawn struct {
	EnemyID string
	DueAt   float64
}

// Wave — состояние текущей волны.
type Wave struct {
	Number    int // с единицы
	Elapsed   float64
	TimeLeft  float64
	Queue     []PendingSpawn
	Spawned   int
	Total     int
	Exhausted bool
}

// Remaining returns how many spawns are still pending.
func (w *Wave) Remaining() int {
	if w == nil || w.Exhausted {
		return 0
	}
	return len(w.Queue)
}
