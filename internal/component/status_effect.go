// internal/component/status_effect.go
package component

// StatusKind is the kind of a status effect; at most one effect per kind is attached to an enemy.
type StatusKind string

const (
	StatusPoison StatusKind = "POISON"
	StatusBurn   StatusKind = "BURN"
	StatusSlow   StatusKind = "SLOW"
)

// StatusEffect is active while now-StartedAt < Duration (simulation clock, seconds).
type StatusEffect struct {
	Kind       StatusKind
	StartedAt  float64
	Duration   float64
	DPS        float64 // Poison, Burn
	SlowFactor float64 // Slow
}

// Active reports whether the effect is still running at now.
func (s StatusEffect) Active(now float64) bool {
	return now-s.StartedAt < s.Duration
}
