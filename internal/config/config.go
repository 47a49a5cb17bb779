// internal/config/config.go
package config

import "image/color"

const (
	TileSize   = 40.0 // пикселей на клетку сетки
	GridWidth  = 20
	GridHeight = 15

	BoardOffsetX = 0
	BoardOffsetY = 60 // место под верхнюю панель
	HandPanelH   = 90

	ScreenWidth  = GridWidth * TileSize
	ScreenHeight = BoardOffsetY + GridHeight*TileSize + HandPanelH

	MaxDeltaTime = 0.1

	InitialPlayerHealth = 20
	InitialPlayerGold   = 200

	// Бонус за завершённую волну: WaveBonusBase + WaveBonusPerWave*номер следующей волны.
	WaveBonusBase    = 100
	WaveBonusPerWave = 10

	// HitRadius одинаков для всех типов врагов.
	HitRadius = TileSize / 3

	DeathEffectLifetime = 0.3  // секунды
	ChainEffectLifetime = 0.15 // секунды

	EnemySizeFactor   = 0.6
	HealthBarHeight   = 4.0
	ProjectileRadius  = 4.0 // pixels
	TowerInsetFactor  = 0.1
	ChainStrokeWidth  = 3.0
	RangeStrokeWidth  = 2.0
	DeathEffectRadius = TileSize * 0.6

	IndicatorOffsetX   = 30
	IndicatorRadius    = 10.0
	SpeedButtonOffsetX = 80
	SpeedButtonY       = 30
	SpeedButtonSize    = 14.0
	TextOffsetY        = 4
	ClickDebounceTime  = 100 // ms
)

// GameSpeeds — множители скорости, между которыми переключается кнопка.
var GameSpeeds = []float64{1.0, 2.0, 4.0}

var (
	BackgroundColor    = color.RGBA{42, 51, 68, 255}
	PathColor          = color.RGBA{83, 60, 47, 255}
	TowerSpotColor     = color.RGBA{58, 84, 42, 255}
	GridLineColor      = color.RGBA{26, 26, 26, 255}
	HoverValidColor    = color.NRGBA{59, 130, 246, 60}
	HoverInvalidColor  = color.NRGBA{220, 60, 60, 60}
	RangeStrokeColor   = color.NRGBA{96, 165, 250, 200}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	GoldColor          = color.RGBA{250, 204, 21, 255}
	HealthColor        = color.RGBA{239, 68, 68, 255}
	HealthBarBackColor = color.RGBA{153, 27, 27, 255}
	HealthBarColor     = color.RGBA{239, 68, 68, 255}
	PoisonTint         = color.NRGBA{34, 197, 94, 80}
	BurnTint           = color.NRGBA{249, 115, 22, 80}
	SlowTint           = color.NRGBA{147, 197, 253, 80}
	ChainColor         = color.RGBA{196, 181, 253, 255}
	DeathColor         = color.RGBA{250, 250, 250, 255}
	OverlayColor       = color.NRGBA{0, 0, 0, 190}
	SetupStateColor    = color.NRGBA{70, 130, 180, 220}
	WaveStateColor     = color.NRGBA{220, 60, 60, 220}
	EndStateColor      = color.NRGBA{128, 128, 128, 220}
	IndicatorStroke    = color.RGBA{240, 240, 240, 255}
	PanelColor         = color.RGBA{31, 41, 55, 255}
	ButtonColor        = color.RGBA{37, 99, 235, 255}
	ButtonHoverColor   = color.RGBA{29, 78, 216, 255}
	ButtonDisabled     = color.RGBA{75, 85, 99, 255}
	SpeedButtonColors  = []color.Color{
		color.NRGBA{70, 130, 180, 220}, // x1
		color.NRGBA{220, 60, 60, 220},  // x2
		color.RGBA{194, 178, 128, 255}, // x4, песочно-жёлтый
	}
)
