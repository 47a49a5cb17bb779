// pkg/gridmap/cell.go
package gridmap

import "math"

// Cell — клетка сетки в целочисленных координатах (X — столбец, Y — строка).
type Cell struct {
	X, Y int
}

// Point — точка в пиксельных координатах.
type Point struct {
	X, Y float64
}

// Center конвертирует клетку в пиксельные координаты её центра.
func (c Cell) Center(tileSize float64) Point {
	return Point{
		X: (float64(c.X) + 0.5) * tileSize,
		Y: (float64(c.Y) + 0.5) * tileSize,
	}
}

// PixelToCell конвертирует пиксельные координаты в клетку.
func PixelToCell(x, y, tileSize float64) Cell {
	return Cell{
		X: int(math.Floor(x / tileSize)),
		Y: int(math.Floor(y / tileSize)),
	}
}

// DistanceTo returns the Euclidean distance between two points.
func (p Point) DistanceTo(o Point) float64 {
	return math.Sqrt(p.DistanceSqTo(o))
}

// DistanceSqTo returns the squared Euclidean distance between two points.
func (p Point) DistanceSqTo(o Point) float64 {
	dx := o.X - p.X
	dy := o.Y - p.Y
	return dx*dx + dy*dy
}
