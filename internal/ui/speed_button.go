// internal/ui/speed_button.go
package ui

import (
	"go-wave-defense/pkg/render"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpeedButton - кнопка "перемотки": две стрелки, цвет зависит от множителя.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.Color
	CurrentState   int

	shapes render.ShapeBuffer
}

func NewSpeedButton(x, y, size float32, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	fill := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	left := render.Triangle(b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2)
	b.shapes.FillPath(screen, left, fill)
	b.shapes.StrokePath(screen, left, 1, color.White)

	right := render.Triangle(b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2)
	b.shapes.FillPath(screen, right, fill)
	b.shapes.StrokePath(screen, right, 1, color.White)
}

// IsClicked использует круг для определения попадания, так как форма сложная
func (b *SpeedButton) IsClicked(x, y int) bool {
	dx := float32(x) - b.X
	dy := float32(y) - b.Y
	r := b.Size * 1.5
	return dx*dx+dy*dy <= r*r
}

// SetState shows the given multiplier index and animates if it changed.
func (b *SpeedButton) SetState(index int) {
	if index == b.CurrentState {
		return
	}
	b.CurrentState = index
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
