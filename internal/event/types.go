// internal/event/types.go
package event

const (
	WaveStarted   EventType = "WaveStarted"  // Волна началась, Data: номер волны
	WaveCleared   EventType = "WaveCleared"  // Волна пройдена, Data: номер волны
	WaveTimedOut  EventType = "WaveTimedOut" // Время волны вышло, Data: число оставшихся врагов
	TowerPlaced   EventType = "TowerPlaced"  // Башня построена, Data: *component.Tower
	EnemySpawned  EventType = "EnemySpawned" // Data: *component.Enemy
	EnemyKilled   EventType = "EnemyKilled"  // Враг убит, Data: KillInfo
	EnemyLeaked   EventType = "EnemyLeaked"  // Враг дошёл до конца пути, Data: *component.Enemy
	PhaseChanged  EventType = "PhaseChanged" // Data: PhaseChange
	GameOver      EventType = "GameOver"     // Data: причина (string)
	GameWon       EventType = "GameWon"
	GameRestarted EventType = "GameRestarted"
)
