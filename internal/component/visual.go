// internal/component/visual.go
package component

import "go-pixel-defense/internal/types"

// DeathEffect — вспышка на месте гибели врага. Чисто косметика.
type DeathEffect struct {
	ID        types.EntityID
	Position  Position
	CreatedAt float64
}

// ChainLightningEffect — одна молния между двумя целями цепной атаки.
type ChainLightningEffect struct {
	ID        types.EntityID
	From, To  Position
	CreatedAt float64
}
