// internal/system/utils.go
package system

import (
	"math"

	"go-pixel-defense/internal/component"
)

// angleTo returns the heading from one point to another, in radians.
func angleTo(from, to component.Position) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}
