// internal/component/projectile.go
package component

import (
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/types"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID       types.EntityID
	SourceID types.EntityID
	TargetID types.EntityID // цель по ссылке: может исчезнуть раньше, чем снаряд долетит
	Position Position
	Damage   float64
	Speed    float64 // пикселей в секунду
	Rotation float64 // радианы, для отрисовки
	Color    string
	Visual   defs.ProjectileVisual
	Ability  defs.Ability // копия способности башни на момент выстрела
}
