// internal/ui/combo_indicator.go
package ui

import (
	"go-wave-defense/internal/config"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ComboIndicator отображает серию убийств: полоса - остаток окна комбо,
// прямоугольники - длина серии.
type ComboIndicator struct {
	X, Y float32
}

const (
	comboBarWidth    = 90
	comboBarHeight   = 12
	comboRectWidth   = 12
	comboRectHeight  = 12
	comboRectGap     = 7
	maxComboRects    = 5
	comboBorderWidth = 1
)

var comboBorderColor = color.White

func NewComboIndicator(x, y float32) *ComboIndicator {
	return &ComboIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор.
func (i *ComboIndicator) Draw(screen *ebiten.Image, combo int, remaining float64) {
	vector.StrokeRect(screen, i.X, i.Y, comboBarWidth, comboBarHeight, comboBorderWidth, comboBorderColor, true)

	fillRatio := remaining / config.ComboWindow
	if fillRatio > 1.0 {
		fillRatio = 1.0
	}
	fillWidth := float32(float64(comboBarWidth-comboBorderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+comboBorderWidth, i.Y+comboBorderWidth, fillWidth, comboBarHeight-comboBorderWidth*2, config.ComboColor, true)
	}

	rectY := i.Y + comboBarHeight + 10
	for j := 0; j < maxComboRects; j++ {
		rectX := i.X + float32(j)*(comboRectWidth+comboRectGap)
		vector.StrokeRect(screen, rectX, rectY, comboRectWidth, comboRectHeight, comboBorderWidth, comboBorderColor, true)
		if j < combo {
			vector.DrawFilledRect(screen, rectX+comboBorderWidth, rectY+comboBorderWidth, comboRectWidth-comboBorderWidth*2, comboRectHeight-comboBorderWidth*2, config.ComboColor, true)
		}
	}
}
