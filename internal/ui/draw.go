// internal/ui/draw.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — шрифт всего интерфейса.
var Face font.Face = basicfont.Face7x13

var whiteImg *ebiten.Image

func whiteSource() *ebiten.Image {
	if whiteImg == nil {
		whiteImg = ebiten.NewImage(3, 3)
		whiteImg.Fill(color.White)
	}
	return whiteImg
}

// fillPath заливает замкнутый контур одним цветом.
func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	applyColor(vs, clr)
	dst.DrawTriangles(vs, is, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePath обводит контур линией заданной толщины.
func strokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{Width: width})
	applyColor(vs, clr)
	dst.DrawTriangles(vs, is, whiteSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func applyColor(vs []ebiten.Vertex, clr color.Color) {
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}

// triangle строит контур треугольника.
func triangle(x1, y1, x2, y2, x3, y3 float32) *vector.Path {
	p := &vector.Path{}
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()
	return p
}

// textWidth returns the pixel width of s in the UI face.
func textWidth(s string) int {
	b := text.BoundString(Face, s)
	return b.Dx()
}

// drawTextCentered рисует строку с центром по горизонтали в cx; y — базовая линия.
func drawTextCentered(dst *ebiten.Image, s string, cx, y int, clr color.Color) {
	text.Draw(dst, s, Face, cx-textWidth(s)/2, y, clr)
}

// drawTextOutlined рисует текст с обводкой толщиной thickness пикселей.
func drawTextOutlined(dst *ebiten.Image, s string, x, y, thickness int, fg, outline color.Color) {
	for dy := -thickness; dy <= thickness; dy++ {
		for dx := -thickness; dx <= thickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(dst, s, Face, x+dx, y+dy, outline)
		}
	}
	text.Draw(dst, s, Face, x, y, fg)
}

// clickPulse — масштаб «отскока» элемента после клика.
func clickPulse(elapsedSeconds float64) float32 {
	return float32(1.0 + 0.3*expDecay(elapsedSeconds*8))
}
