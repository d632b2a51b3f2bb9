// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1160
	ScreenHeight = 640
	PanelX       = 960 // левый край боковой панели (после поля 20x48)
	MaxDeltaTime = 0.06

	StartingMoney = 400
	StartingLives = 20

	MapCols  = 20
	MapRows  = 12
	TileSize = 48.0

	// Экономика
	SellRefundPercent = 70  // целые проценты
	ComboWindow       = 1.5 // seconds without a kill before the combo resets
	ComboBonusPercent = 10
	RewardPerWave     = 2

	// Эффекты урона
	SplashFactor       = 0.5
	ChainRadius        = 100.0
	ChainFactor        = 0.7
	SlowDuration       = 2.0
	SlowFactor         = 0.5
	PoisonTickInterval = 1.0

	// Лечение от врагов с "heals-nearby"
	HealRadius = 80.0
	HealRate   = 31.25 // hp per second

	ProjectileSpeed     = 500.0 // units per second
	ProjectileHitRadius = 12.0
	ProjectileRadius    = 4.0

	HealthBarWidth  = 24.0
	HealthBarHeight = 4.0
	TowerRadius     = 16.0
	ClickCooldown   = 150 // ms

	SpeedButtonX    = PanelX + 130
	SpeedButtonY    = 30
	SpeedButtonSize = 12.0
	WaveButtonX     = PanelX + 16
	WaveButtonY     = 560
	WaveButtonW     = 148
	WaveButtonH     = 40
	PauseButtonX    = PanelX + 170
	PauseButtonY    = 30
	PauseButtonSize = 10.0
	IndicatorX      = PanelX + 30
	IndicatorY      = 30
	IndicatorRadius = 14.0

	BuildPanelY     = 200
	BuildRowHeight  = 36
	InfoPanelY      = 430
	InfoPanelHeight = 120

	FontSize      = 14.0
	TitleFontSize = 20.0
)

// SpeedMultipliers - поддерживаемые множители скорости, по возрастанию.
var SpeedMultipliers = []float64{0.5, 1, 2, 3}

// DefaultPath is the route in cell coordinates. The first and last points lie off-grid.
var DefaultPath = [][2]int{
	{-1, 6}, {3, 6}, {3, 2}, {7, 2}, {7, 9}, {11, 9}, {11, 4}, {15, 4}, {15, 8}, {20, 8},
}

var (
	BackgroundColor = color.RGBA{26, 47, 26, 255}
	GridLineColor   = color.RGBA{45, 74, 45, 80}
	PathColor       = color.RGBA{92, 64, 51, 255}
	PathEdgeColor   = color.RGBA{62, 39, 35, 255}
	PanelColor      = color.RGBA{20, 20, 30, 240}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextMutedColor  = color.RGBA{149, 165, 166, 255}
	MoneyColor      = color.RGBA{241, 196, 15, 255}
	LivesColor      = color.RGBA{231, 76, 60, 255}
	ComboColor      = color.RGBA{155, 89, 182, 255}
	ValidColor      = color.RGBA{39, 174, 96, 200}
	InvalidColor    = color.RGBA{231, 76, 60, 200}
	SlowTintColor   = color.RGBA{52, 152, 219, 160}
	HealthBarBg     = color.RGBA{40, 40, 40, 255}
	HealthHigh      = color.RGBA{46, 204, 113, 255}
	HealthMid       = color.RGBA{243, 156, 18, 255}
	HealthLow       = color.RGBA{231, 76, 60, 255}
	EntryColor      = color.RGBA{46, 204, 113, 255}
	ExitColor       = color.RGBA{192, 57, 43, 255}
	RangeColor      = color.RGBA{255, 255, 255, 90}
	PoisonTintColor = color.RGBA{22, 160, 133, 180}
	SelectedColor   = color.RGBA{241, 196, 15, 255}
	BorderColor     = color.RGBA{70, 130, 180, 255}
	BuildStateColor = color.RGBA{39, 174, 96, 255}
	WaveStateColor  = color.RGBA{192, 57, 43, 255}
	BossWaveColor   = color.RGBA{231, 76, 60, 255}
	PauseColor      = color.RGBA{70, 130, 180, 220}
	PlayColor       = color.RGBA{39, 174, 96, 220}
	OverlayColor    = color.RGBA{0, 0, 0, 150}

	SpeedButtonColors = []color.Color{
		color.RGBA{127, 140, 141, 220}, // x0.5
		color.RGBA{70, 130, 180, 220},  // x1
		color.RGBA{220, 60, 60, 220},   // x2
		color.RGBA{194, 178, 128, 255}, // x3, песочно-жёлтый
	}
)
