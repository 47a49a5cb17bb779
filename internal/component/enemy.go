package component

import "go-pixel-defense/internal/types"

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID            types.EntityID
	DefID         string // ID из defs.EnemyLibrary
	Position      Position
	Health        float64
	MaxHealth     float64
	PathIndex     int // индекс последнего пройденного узла пути
	StatusEffects []StatusEffect
}

// HasEffect reports whether an effect of the given kind is attached.
func (e *Enemy) HasEffect(kind StatusKind) bool {
	for _, eff := range e.StatusEffects {
		if eff.Kind == kind {
			return true
		}
	}
	return false
}
