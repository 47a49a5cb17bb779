// internal/defs/enemies.go
package defs

const (
	EnemyGoblin = "GOBLIN"
	EnemyOrc    = "ORC"
	EnemyBoss   = "BOSS"
)

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Health    float64 `yaml:"health"`
	Speed     float64 `yaml:"speed"` // grid units per second
	GoldValue int     `yaml:"gold_value"`
	Visuals   Visuals `yaml:"visuals"`
}

func defaultEnemies() map[string]EnemyDefinition {
	return map[string]EnemyDefinition{
		EnemyGoblin: {
			ID: EnemyGoblin, Name: "Goblin", Health: 100, Speed: 2.4, GoldValue: 5,
			Visuals: Visuals{Color: "#4ade80", RadiusFactor: 0.25},
		},
		EnemyOrc: {
			ID: EnemyOrc, Name: "Orc", Health: 300, Speed: 1.6, GoldValue: 15,
			Visuals: Visuals{Color: "#a3a3a3", RadiusFactor: 0.3},
		},
		EnemyBoss: {
			ID: EnemyBoss, Name: "Boss", Health: 5000, Speed: 1.0, GoldValue: 100,
			Visuals: Visuals{Color: "#ef4444", RadiusFactor: 0.4},
		},
	}
}
