// internal/defs/towers.go
package defs

// Идентификаторы башен.
const (
	TowerPoisonArcher = "POISON_ARCHER"
	TowerCannon       = "CANNON"
	TowerChainWizard  = "CHAIN_WIZARD"
	TowerIceMage      = "ICE_MAGE"
	TowerFireMage     = "FIRE_MAGE"
)

// ProjectileVisual is a presentation tag carried by projectiles.
type ProjectileVisual string

const (
	VisualCircle ProjectileVisual = "circle"
	VisualArrow  ProjectileVisual = "arrow"
	VisualSpark  ProjectileVisual = "spark"
)

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	ID              string  `yaml:"id"`
	Name            string  `yaml:"name"`
	Cost            int     `yaml:"cost"`
	Damage          float64 `yaml:"damage"`
	Range           float64 `yaml:"range"`            // in grid units
	FireRate        float64 `yaml:"fire_rate"`        // shots per second
	ProjectileSpeed float64 `yaml:"projectile_speed"` // grid units per second
	Ability         Ability `yaml:"-"`
	Visuals         Visuals `yaml:"visuals"`
	Description     string  `yaml:"description"`
}

// Visuals contains parameters for rendering a tower or an enemy.
type Visuals struct {
	Color            string           `yaml:"color"` // "#rrggbb"
	ProjectileColor  string           `yaml:"projectile_color,omitempty"`
	ProjectileVisual ProjectileVisual `yaml:"projectile_visual,omitempty"`
	RadiusFactor     float64          `yaml:"radius_factor,omitempty"`
}

// Cooldown returns the time between two shots.
func (d TowerDefinition) Cooldown() float64 {
	return 1.0 / d.FireRate
}

// TowerOrder — порядок башен для клавиш 1..5 и панели выбора.
var TowerOrder = []string{
	TowerPoisonArcher,
	TowerCannon,
	TowerChainWizard,
	TowerIceMage,
	TowerFireMage,
}

func defaultTowers() map[string]TowerDefinition {
	return map[string]TowerDefinition{
		TowerPoisonArcher: {
			ID: TowerPoisonArcher, Name: "Poison Archer",
			Cost: 80, Damage: 15, Range: 3.5, FireRate: 2, ProjectileSpeed: 10,
			Ability:     Poison{DPS: 20, Duration: 3},
			Visuals:     Visuals{Color: "#5a6331", ProjectileColor: "#a3e635", ProjectileVisual: VisualArrow},
			Description: "Shots poison enemies, dealing damage over time.",
		},
		TowerCannon: {
			ID: TowerCannon, Name: "Cannon",
			Cost: 180, Damage: 50, Range: 2.5, FireRate: 0.75, ProjectileSpeed: 7,
			Ability:     Splash{Radius: 1.5},
			Visuals:     Visuals{Color: "#9ca3af", ProjectileColor: "#4b5563", ProjectileVisual: VisualCircle},
			Description: "Deals splash damage to enemies near the target.",
		},
		TowerChainWizard: {
			ID: TowerChainWizard, Name: "Chain Wizard",
			Cost: 300, Damage: 40, Range: 4, FireRate: 1.25, ProjectileSpeed: 8,
			Ability:     Chain{MaxTargets: 3, Range: 3, FalloffPerHop: 0.7},
			Visuals:     Visuals{Color: "#6d28d9", ProjectileColor: "#8b5cf6", ProjectileVisual: VisualSpark},
			Description: "Magic bolt chains to multiple nearby enemies.",
		},
		TowerIceMage: {
			ID: TowerIceMage, Name: "Ice Mage",
			Cost: 220, Damage: 20, Range: 3, FireRate: 1, ProjectileSpeed: 9,
			Ability:     Slow{Factor: 0.5, Duration: 2},
			Visuals:     Visuals{Color: "#38bdf8", ProjectileColor: "#7dd3fc", ProjectileVisual: VisualSpark},
			Description: "Slows enemies, making them easier to hit.",
		},
		TowerFireMage: {
			ID: TowerFireMage, Name: "Fire Mage",
			Cost: 260, Damage: 30, Range: 3.5, FireRate: 1.5, ProjectileSpeed: 8,
			Ability:     Burn{DPS: 35, Duration: 2},
			Visuals:     Visuals{Color: "#c2410c", ProjectileColor: "#fb923c", ProjectileVisual: VisualSpark},
			Description: "Burns enemies, dealing heavy damage over time.",
		},
	}
}
