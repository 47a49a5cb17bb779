// internal/defs/waves.go
package defs

import "time"

// SpawnGroup — группа одинаковых врагов внутри волны.
type SpawnGroup struct {
	EnemyID    string        `yaml:"enemy"`
	Count      int           `yaml:"count"`
	SpawnDelay time.Duration `yaml:"spawn_delay"` // задержка перед каждым врагом группы
}

// WaveDefinition описывает параметры для одной волны врагов.
type WaveDefinition struct {
	Groups    []SpawnGroup  `yaml:"groups"`
	TimeLimit time.Duration `yaml:"time_limit"`
}

// TotalEnemies returns how many spawns the wave schedules.
func (w WaveDefinition) TotalEnemies() int {
	total := 0
	for _, g := range w.Groups {
		total += g.Count
	}
	return total
}

func defaultWaves() []WaveDefinition {
	ms := time.Millisecond
	return []WaveDefinition{
		{Groups: []SpawnGroup{{EnemyGoblin, 10, 1000 * ms}}, TimeLimit: 45 * time.Second},
		{Groups: []SpawnGroup{{EnemyGoblin, 15, 800 * ms}}, TimeLimit: 50 * time.Second},
		{Groups: []SpawnGroup{{EnemyGoblin, 20, 700 * ms}, {EnemyOrc, 3, 3000 * ms}}, TimeLimit: 60 * time.Second},
		{Groups: []SpawnGroup{{EnemyOrc, 10, 1500 * ms}}, TimeLimit: 60 * time.Second},
		{Groups: []SpawnGroup{{EnemyGoblin, 30, 500 * ms}, {EnemyOrc, 5, 2500 * ms}}, TimeLimit: 75 * time.Second},
		{Groups: []SpawnGroup{{EnemyOrc, 15, 1000 * ms}}, TimeLimit: 75 * time.Second},
		{Groups: []SpawnGroup{{EnemyGoblin, 20, 400 * ms}, {EnemyOrc, 10, 1200 * ms}, {EnemyBoss, 1, 15000 * ms}}, TimeLimit: 90 * time.Second},
	}
}
