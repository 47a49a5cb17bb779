// internal/defs/level.go
package defs

import "go-pixel-defense/pkg/gridmap"

// LevelDefinition — статическая карта: 0 — дорога, 1 — место под башню.
// Путь задан в координатах клеток и может начинаться за краем карты.
type LevelDefinition struct {
	Rows [][]int        `yaml:"rows"`
	Path []gridmap.Cell `yaml:"path"`
}

// BuildMap converts the level into a GridMap.
func (l LevelDefinition) BuildMap() (*gridmap.GridMap, error) {
	return gridmap.NewGridMap(l.Rows, l.Path)
}

func defaultLevel() LevelDefinition {
	return LevelDefinition{
		Rows: [][]int{
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 0, 1, 1, 0, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 1, 1, 0, 0, 0, 0, 0, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		Path: []gridmap.Cell{
			{X: -1, Y: 2},
			{X: 6, Y: 2},
			{X: 6, Y: 7},
			{X: 9, Y: 7},
			{X: 9, Y: 4},
			{X: 16, Y: 4},
			{X: 16, Y: 7},
			{X: 12, Y: 7},
			{X: 12, Y: 10},
			{X: 2, Y: 10},
			{X: 2, Y: 15},
		},
	}
}
