// pkg/render/entity_renderer.go
package render

import (
	"image/color"
	"math"

	"go-pixel-defense/internal/component"
	"go-pixel-defense/internal/config"
	"go-pixel-defense/internal/defs"
	"go-pixel-defense/internal/entity"
	"go-pixel-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EntityRenderer рисует сущности в координатах игрового поля. Только чтение ECS.
type EntityRenderer struct {
	ecs *entity.ECS
	lib *defs.Library
}

func NewEntityRenderer(ecs *entity.ECS, lib *defs.Library) *EntityRenderer {
	return &EntityRenderer{ecs: ecs, lib: lib}
}

func (s *EntityRenderer) Draw(screen *ebiten.Image) {
	for _, t := range s.ecs.Towers {
		s.drawTower(screen, t)
	}
	for _, e := range s.ecs.Enemies {
		s.drawEnemy(screen, e)
	}
	for _, p := range s.ecs.Projectiles {
		drawProjectile(screen, p)
	}
	s.drawEffects(screen)
}

// DrawRange обводит радиус атаки башни с центром в клетке.
func (s *EntityRenderer) DrawRange(screen *ebiten.Image, center component.Position, towerID string) {
	def, ok := s.lib.Tower(towerID)
	if !ok {
		return
	}
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(def.Range*config.TileSize),
		config.RangeStrokeWidth, config.RangeStrokeColor, true)
}

func (s *EntityRenderer) drawTower(screen *ebiten.Image, t *component.Tower) {
	def, ok := s.lib.Tower(t.DefID)
	if !ok {
		return
	}
	fill := ParseHexColor(def.Visuals.Color)
	inset := float32(config.TileSize * config.TowerInsetFactor)
	size := float32(config.TileSize) - 2*inset
	x := float32(t.Position.X-config.TileSize/2) + inset
	y := float32(t.Position.Y-config.TileSize/2) + inset
	vector.DrawFilledRect(screen, x, y, size, size, fill, false)
	vector.StrokeRect(screen, x, y, size, size, 2, DarkenColor(fill), false)
	// Цвет снаряда в центре, чтобы башни различались с первого взгляда.
	vector.DrawFilledCircle(screen, float32(t.Position.X), float32(t.Position.Y), size/6,
		ParseHexColor(def.Visuals.ProjectileColor), true)
}

func (s *EntityRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	def, ok := s.lib.Enemy(e.DefID)
	if !ok {
		return
	}
	radius := float32(config.TileSize * config.EnemySizeFactor / 2)
	if def.Visuals.RadiusFactor > 0 {
		radius = float32(config.TileSize * def.Visuals.RadiusFactor)
	}
	x, y := float32(e.Position.X), float32(e.Position.Y)
	vector.DrawFilledCircle(screen, x, y, radius, ParseHexColor(def.Visuals.Color), true)

	if tint, ok := statusTint(e); ok {
		vector.DrawFilledCircle(screen, x, y, radius+2, tint, true)
	}

	if e.Health < e.MaxHealth && e.MaxHealth > 0 {
		w := radius * 2
		top := y - radius - config.HealthBarHeight - 2
		vector.DrawFilledRect(screen, x-radius, top, w, config.HealthBarHeight, config.HealthBarBackColor, false)
		vector.DrawFilledRect(screen, x-radius, top, w*float32(e.Health/e.MaxHealth), config.HealthBarHeight, config.HealthBarColor, false)
	}
}

// statusTint выбирает один оттенок: яд важнее горения, горение важнее замедления.
func statusTint(e *component.Enemy) (color.Color, bool) {
	switch {
	case e.HasEffect(component.StatusPoison):
		return config.PoisonTint, true
	case e.HasEffect(component.StatusBurn):
		return config.BurnTint, true
	case e.HasEffect(component.StatusSlow):
		return config.SlowTint, true
	}
	return nil, false
}

func drawProjectile(screen *ebiten.Image, p *component.Projectile) {
	c := ParseHexColor(p.Color)
	x, y := float32(p.Position.X), float32(p.Position.Y)
	switch p.Visual {
	case defs.VisualArrow:
		const length = 10
		dx := float32(math.Cos(p.Rotation)) * length / 2
		dy := float32(math.Sin(p.Rotation)) * length / 2
		vector.StrokeLine(screen, x-dx, y-dy, x+dx, y+dy, 2, c, true)
	case defs.VisualSpark:
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, c, true)
		vector.StrokeCircle(screen, x, y, config.ProjectileRadius+2, 1, LightenColor(c, 60), true)
	default:
		vector.DrawFilledCircle(screen, x, y, config.ProjectileRadius, c, true)
	}
}

func (s *EntityRenderer) drawEffects(screen *ebiten.Image) {
	now := s.ecs.GameTime
	for _, d := range s.ecs.DeathEffects {
		progress := float32(utils.Clamp01((now - d.CreatedAt) / config.DeathEffectLifetime))
		radius := utils.Lerp(config.DeathEffectRadius*0.3, config.DeathEffectRadius, progress)
		c := color.NRGBA{
			R: config.DeathColor.R, G: config.DeathColor.G, B: config.DeathColor.B,
			A: uint8(utils.Lerp(255, 0, progress)),
		}
		vector.StrokeCircle(screen, float32(d.Position.X), float32(d.Position.Y), radius, 2, c, true)
	}
	for _, ch := range s.ecs.ChainEffects {
		vector.StrokeLine(screen, float32(ch.From.X), float32(ch.From.Y), float32(ch.To.X), float32(ch.To.Y),
			config.ChainStrokeWidth, config.ChainColor, true)
	}
}
