// pkg/gridmap/map.go
package gridmap

import (
	"errors"
	"fmt"
)

// CellType — тип клетки карты.
type CellType int

const (
	CellPath CellType = iota
	CellTowerSpot
)

// GridMap is the static board: which cells are road and which accept towers,
// plus the fixed enemy path polyline in cell coordinates.
type GridMap struct {
	Width, Height int
	Tiles         [][]CellType // [y][x]
	Path          []Cell
}

// NewGridMap builds a map from rows where 0 marks a path cell and any other value a tower spot.
func NewGridMap(rows [][]int, path []Cell) (*GridMap, error) {
	if len(rows) == 0 {
		return nil, errors.New("gridmap: no rows")
	}
	width := len(rows[0])
	tiles := make([][]CellType, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("gridmap: row %d has %d cells, want %d", y, len(row), width)
		}
		tiles[y] = make([]CellType, width)
		for x, v := range row {
			if v == 0 {
				tiles[y][x] = CellPath
			} else {
				tiles[y][x] = CellTowerSpot
			}
		}
	}
	if len(path) < 2 {
		return nil, fmt.Errorf("gridmap: path needs at least 2 waypoints, got %d", len(path))
	}
	return &GridMap{
		Width:  width,
		Height: len(rows),
		Tiles:  tiles,
		Path:   path,
	}, nil
}

// InBounds сообщает, лежит ли клетка внутри карты.
func (m *GridMap) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < m.Width && c.Y < m.Height
}

// At returns the cell type; cells outside the map count as path.
func (m *GridMap) At(c Cell) CellType {
	if !m.InBounds(c) {
		return CellPath
	}
	return m.Tiles[c.Y][c.X]
}

// IsTowerSpot reports whether a tower may ever stand on the cell.
func (m *GridMap) IsTowerSpot(c Cell) bool {
	return m.InBounds(c) && m.Tiles[c.Y][c.X] == CellTowerSpot
}

// PathPixels returns the path waypoints as pixel centers.
func (m *GridMap) PathPixels(tileSize float64) []Point {
	out := make([]Point, len(m.Path))
	for i, c := range m.Path {
		out[i] = c.Center(tileSize)
	}
	return out
}

// PixelBounds returns the play area size in pixels.
func (m *GridMap) PixelBounds(tileSize float64) (w, h float64) {
	return float64(m.Width) * tileSize, float64(m.Height) * tileSize
}
