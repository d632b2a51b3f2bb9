// internal/ui/lives_indicator.go
package ui

import (
	"go-wave-defense/internal/config"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	LivesCols          = 4
	LivesCircleRadius  = 8.0
	LivesCircleSpacing = 4.0
	livesTextHeight    = 22
)

// LivesIndicator отображает жизни игрока сеткой кружков.
type LivesIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewLivesIndicator(x, y float32, fontFace font.Face) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y, fontFace: fontFace}
}

// Draw рисует индикатор. Первая половина жизней синяя, вторая красная.
func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	if maxLives <= 0 {
		return
	}
	label := strconv.Itoa(lives) + "/" + strconv.Itoa(maxLives)
	text.Draw(screen, label, i.fontFace, int(i.X), int(i.Y)+14, config.LivesColor)

	startY := i.Y + livesTextHeight
	halfLives := maxLives / 2
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)

	for j := 0; j < maxLives; j++ {
		row := j / LivesCols
		col := j % LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := startY + float32(row)*step + LivesCircleRadius

		var fill color.Color = color.Black
		if j < lives {
			fill = config.LivesColor
			if lives > halfLives && j < lives-halfLives {
				fill = config.PauseColor
			}
		}
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, fill, true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
}

// Height возвращает общую высоту индикатора.
func (i *LivesIndicator) Height(maxLives int) float32 {
	rows := (maxLives + LivesCols - 1) / LivesCols
	return livesTextHeight + float32(rows)*(LivesCircleRadius*2+LivesCircleSpacing)
}
