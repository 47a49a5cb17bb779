// pkg/render/color.go
package render

import (
	"image/color"
	"strconv"
	"strings"
	"sync"
)

// MapColors holds all the color definitions needed to render the static map background.
type MapColors struct {
	BackgroundColor color.RGBA
	PathColor       color.RGBA
	TowerSpotColor  color.RGBA
	GridLineColor   color.RGBA
	StrokeWidth     float32
}

var (
	hexColorMu    sync.Mutex
	hexColorCache = map[string]color.RGBA{}
)

// ParseHexColor converts "#rrggbb" or "#rrggbbaa" into a color.
// Malformed input yields magenta so that broken definitions are visible on screen.
func ParseHexColor(s string) color.RGBA {
	hexColorMu.Lock()
	defer hexColorMu.Unlock()
	if c, ok := hexColorCache[s]; ok {
		return c
	}
	c := parseHexColor(s)
	hexColorCache[s] = c
	return c
}

func parseHexColor(s string) color.RGBA {
	magenta := color.RGBA{255, 0, 255, 255}
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return magenta
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return magenta
	}
	if len(h) == 6 {
		return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds amount to every channel, saturating at 255.
func LightenColor(c color.RGBA, amount int) color.RGBA {
	return color.RGBA{
		R: uint8(min(255, int(c.R)+amount)),
		G: uint8(min(255, int(c.G)+amount)),
		B: uint8(min(255, int(c.B)+amount)),
		A: c.A,
	}
}
