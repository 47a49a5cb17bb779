// component/movement.go
package component

import "go-pixel-defense/pkg/gridmap"

// Position — позиция в пикселях.
type Position = gridmap.Point
