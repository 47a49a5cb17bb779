package render

import (
	"image/color"

	"go-pixel-defense/pkg/gridmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GridRenderer рисует статичную карту: клетки, сетку и линию пути.
type GridRenderer struct {
	gridMap   *gridmap.GridMap
	tileSize  float64
	colors    MapColors
	strokeImg *ebiten.Image
	strokeVs  []ebiten.Vertex
	strokeIs  []uint16
	mapImage  *ebiten.Image // Поле для предрендеренной карты
}

func NewGridRenderer(gridMap *gridmap.GridMap, tileSize float64, colors MapColors) *GridRenderer {
	strokeImg := ebiten.NewImage(1, 1)
	strokeImg.Fill(color.White)

	w, h := gridMap.PixelBounds(tileSize)
	r := &GridRenderer{
		gridMap:   gridMap,
		tileSize:  tileSize,
		colors:    colors,
		strokeImg: strokeImg,
		mapImage:  ebiten.NewImage(int(w), int(h)),
	}

	// Отрисовываем карту один раз при инициализации
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *GridRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)

	ts := float32(r.tileSize)
	for y := 0; y < r.gridMap.Height; y++ {
		for x := 0; x < r.gridMap.Width; x++ {
			fill := r.colors.TowerSpotColor
			if r.gridMap.At(gridmap.Cell{X: x, Y: y}) == gridmap.CellPath {
				fill = r.colors.PathColor
			}
			px, py := float32(x)*ts, float32(y)*ts
			vector.DrawFilledRect(r.mapImage, px, py, ts, ts, fill, false)
			vector.StrokeRect(r.mapImage, px, py, ts, ts, 1, r.colors.GridLineColor, false)
		}
	}
	r.drawPathLine(r.mapImage)
}

// drawPathLine проводит тонкую линию по центрам клеток пути.
func (r *GridRenderer) drawPathLine(target *ebiten.Image) {
	points := r.gridMap.PathPixels(r.tileSize)
	if len(points) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width:    r.colors.StrokeWidth,
		LineJoin: vector.LineJoinRound,
	})
	c := LightenColor(r.colors.PathColor, 40)
	for i := range r.strokeVs {
		r.strokeVs[i].ColorR = float32(c.R) / 255
		r.strokeVs[i].ColorG = float32(c.G) / 255
		r.strokeVs[i].ColorB = float32(c.B) / 255
		r.strokeVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.strokeImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// Draw копирует предрендеренную карту на target.
func (r *GridRenderer) Draw(target *ebiten.Image) {
	target.DrawImage(r.mapImage, nil)
}
