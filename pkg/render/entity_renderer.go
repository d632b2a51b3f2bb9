package render

import (
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	levelPipRadius  = 2.5
	levelPipSpacing = 7
)

func (r *BoardRenderer) drawTowers(screen *ebiten.Image, towers []app.TowerView, selected types.EntityID) {
	inset := float32(4)
	ts := float32(r.tileMap.TileSize)
	for _, t := range towers {
		sw := r.palette.Tower(t.Kind)
		x, y := float32(t.X), float32(t.Y)

		// Основание башни - затемнённый квадрат клетки
		vector.DrawFilledRect(screen, float32(t.Cell.X)*ts+inset, float32(t.Cell.Y)*ts+inset, ts-inset*2, ts-inset*2, DarkenColor(sw.Fill), false)
		vector.DrawFilledCircle(screen, x, y, config.TowerRadius, sw.Fill, true)
		vector.StrokeCircle(screen, x, y, config.TowerRadius, 2, sw.Accent, true)

		r.drawCenteredText(screen, sw.Glyph, x, y, config.TextLightColor)

		// Уровень: точки под башней
		count := t.Level + 1
		startX := x - float32(count-1)*levelPipSpacing/2
		for i := 0; i < count; i++ {
			vector.DrawFilledCircle(screen, startX+float32(i)*levelPipSpacing, y+config.TowerRadius+1, levelPipRadius, sw.Accent, true)
		}

		if t.ID == selected {
			vector.StrokeCircle(screen, x, y, float32(t.Range), 1.5, config.RangeColor, true)
			vector.StrokeCircle(screen, x, y, config.TowerRadius+3, 2, config.SelectedColor, true)
		}
	}
}

func (r *BoardRenderer) drawEnemies(screen *ebiten.Image, enemies []app.EnemyView) {
	for _, e := range enemies {
		sw := r.palette.Enemy(e.Kind)
		x, y := float32(e.X), float32(e.Y)
		radius := enemyRadius(e.Size)

		vector.DrawFilledCircle(screen, x, y, radius, sw.Fill, true)
		vector.StrokeCircle(screen, x, y, radius, 1.5, sw.Accent, true)
		if e.Slowed {
			vector.StrokeCircle(screen, x, y, radius+3, 2, config.SlowTintColor, true)
		}
		if e.Poisoned {
			vector.StrokeCircle(screen, x, y, radius+6, 2, config.PoisonTintColor, true)
		}

		barX := x - config.HealthBarWidth/2
		barY := y - radius - config.HealthBarHeight - 4
		vector.DrawFilledRect(screen, barX, barY, config.HealthBarWidth, config.HealthBarHeight, config.HealthBarBg, false)
		vector.DrawFilledRect(screen, barX, barY, float32(config.HealthBarWidth*e.HealthFraction), config.HealthBarHeight, HealthColor(e.HealthFraction), false)
	}
}

func (r *BoardRenderer) drawProjectiles(screen *ebiten.Image, projectiles []app.ProjectileView) {
	for _, p := range projectiles {
		sw := r.palette.Tower(p.Kind)
		radius := float32(config.ProjectileRadius)
		switch p.Effect {
		case defs.EffectSplash:
			radius *= 1.5
		case defs.EffectChain:
			vector.StrokeCircle(screen, float32(p.X), float32(p.Y), radius+3, 1, sw.Fill, true)
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), radius, sw.Accent, true)
	}
}

func (r *BoardRenderer) drawCenteredText(screen *ebiten.Image, s string, x, y float32, clr color.Color) {
	if s == "" {
		return
	}
	bounds := text.BoundString(r.fontFace, s)
	tx := int(x) - bounds.Dx()/2 - bounds.Min.X
	ty := int(y) - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(screen, s, r.fontFace, tx, ty, clr)
}

// enemyRadius maps the catalog size onto the 48-unit grid.
func enemyRadius(size float64) float32 {
	if size <= 0 {
		return 8
	}
	return float32(size*0.6 + 3)
}
