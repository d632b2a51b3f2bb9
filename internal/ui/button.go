// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.Color
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  color.White,
		BgColor:    color.RGBA{R: 52, G: 73, B: 94, A: 255},
		HoverColor: color.RGBA{R: 70, G: 130, B: 180, A: 255},
	}
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports a click on an enabled button.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.BgColor
	cx, cy := ebiten.CursorPosition()
	if b.Disabled {
		bg = color.RGBA{R: 60, G: 60, B: 60, A: 255}
	} else if b.Contains(cx, cy) {
		bg = b.HoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 30, G: 30, B: 30, A: 255}, false)

	textBounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-textBounds.Dx())/2 - textBounds.Min.X
	textY := b.Rect.Min.Y + (b.Rect.Dy()-textBounds.Dy())/2 - textBounds.Min.Y
	textColor := b.TextColor
	if b.Disabled {
		textColor = color.RGBA{R: 140, G: 140, B: 140, A: 255}
	}
	text.Draw(screen, b.Text, face, textX, textY, textColor)
}
