// internal/ui/build_panel.go
package ui

import (
	"fmt"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/pkg/render"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// BuildPanel - список доступных башен в боковой панели.
// Строки идут в порядке каталога, горячие клавиши 1..9 совпадают с номером строки.
type BuildPanel struct {
	X, Y      float32
	Width     float32
	RowHeight float32
	Selected  string // выбранный вид башни, "" - ничего
	fontFace  font.Face
	catalog   *defs.Catalog
	palette   *render.Palette
}

func NewBuildPanel(x, y, width, rowHeight float32, fontFace font.Face, catalog *defs.Catalog, palette *render.Palette) *BuildPanel {
	return &BuildPanel{
		X:         x,
		Y:         y,
		Width:     width,
		RowHeight: rowHeight,
		fontFace:  fontFace,
		catalog:   catalog,
		palette:   palette,
	}
}

// Toggle selects kind, or clears the selection if it was already selected.
func (bp *BuildPanel) Toggle(kind string) {
	if bp.Selected == kind {
		bp.Selected = ""
		return
	}
	bp.Selected = kind
}

// SelectIndex toggles the i-th tower of the catalog order.
func (bp *BuildPanel) SelectIndex(i int) {
	if i < 0 || i >= len(bp.catalog.TowerOrder) {
		return
	}
	bp.Toggle(bp.catalog.TowerOrder[i])
}

// RowAt returns the tower kind under the point.
func (bp *BuildPanel) RowAt(x, y int) (string, bool) {
	fx, fy := float32(x), float32(y)
	if fx < bp.X || fx > bp.X+bp.Width || fy < bp.Y {
		return "", false
	}
	row := int((fy - bp.Y) / bp.RowHeight)
	if row >= len(bp.catalog.TowerOrder) {
		return "", false
	}
	return bp.catalog.TowerOrder[row], true
}

// Draw отрисовывает панель. Башни дороже текущего баланса приглушены.
func (bp *BuildPanel) Draw(screen *ebiten.Image, money int) {
	for i, id := range bp.catalog.TowerOrder {
		def := bp.catalog.Towers[id]
		sw := bp.palette.Tower(id)
		rowY := bp.Y + float32(i)*bp.RowHeight
		cost := def.Levels[0].Cost

		if id == bp.Selected {
			vector.DrawFilledRect(screen, bp.X, rowY, bp.Width, bp.RowHeight-4, render.WithAlpha(config.SelectedColor, 60), false)
			vector.StrokeRect(screen, bp.X, rowY, bp.Width, bp.RowHeight-4, 1, config.SelectedColor, false)
		}

		iconX := bp.X + 16
		iconY := rowY + (bp.RowHeight-4)/2
		vector.DrawFilledCircle(screen, iconX, iconY, 10, sw.Fill, true)
		vector.StrokeCircle(screen, iconX, iconY, 10, 1.5, sw.Accent, true)

		var textColor color.Color = config.TextLightColor
		if money < cost {
			textColor = config.TextMutedColor
		}
		label := fmt.Sprintf("%d %s", i+1, def.Name)
		baseline := int(iconY) + 5
		text.Draw(screen, label, bp.fontFace, int(bp.X)+34, baseline, textColor)

		costLabel := fmt.Sprintf("$%d", cost)
		costBounds := text.BoundString(bp.fontFace, costLabel)
		costColor := color.Color(config.MoneyColor)
		if money < cost {
			costColor = config.TextMutedColor
		}
		text.Draw(screen, costLabel, bp.fontFace, int(bp.X+bp.Width)-costBounds.Dx()-6, baseline, costColor)
	}
}
