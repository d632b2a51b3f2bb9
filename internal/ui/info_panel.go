// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	panelMargin   = 8
	lineHeight    = 16
	buttonHeight  = 26
	buttonSpacing = 8
)

// PanelAction is what a click on the info panel asks the game to do.
type PanelAction int

const (
	PanelNone PanelAction = iota
	PanelUpgrade
	PanelSell
)

// InfoPanel displays the selected tower with its upgrade and sell buttons.
type InfoPanel struct {
	X, Y, Width, Height float32
	TargetTower         types.EntityID
	fontFace            font.Face
	titleFontFace       font.Face
	catalog             *defs.Catalog
	UpgradeButton       *Button
	SellButton          *Button
}

// NewInfoPanel creates a new information panel.
func NewInfoPanel(x, y, width, height float32, fontFace, titleFontFace font.Face, catalog *defs.Catalog) *InfoPanel {
	buttonY := int(y+height) - buttonHeight - panelMargin
	buttonW := (int(width) - panelMargin*2 - buttonSpacing) / 2
	left := int(x) + panelMargin

	return &InfoPanel{
		X:             x,
		Y:             y,
		Width:         width,
		Height:        height,
		fontFace:      fontFace,
		titleFontFace: titleFontFace,
		catalog:       catalog,
		UpgradeButton: NewButton(image.Rect(left, buttonY, left+buttonW, buttonY+buttonHeight), "Upgrade"),
		SellButton:    NewButton(image.Rect(left+buttonW+buttonSpacing, buttonY, left+buttonW*2+buttonSpacing, buttonY+buttonHeight), "Sell"),
	}
}

func (p *InfoPanel) SetTarget(id types.EntityID) {
	p.TargetTower = id
}

func (p *InfoPanel) Hide() {
	p.TargetTower = types.NilEntity
}

func (p *InfoPanel) IsVisible() bool {
	return p.TargetTower != types.NilEntity
}

// Contains reports whether the point is over the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	if !p.IsVisible() {
		return false
	}
	fx, fy := float32(x), float32(y)
	return fx >= p.X && fx <= p.X+p.Width && fy >= p.Y && fy <= p.Y+p.Height
}

// HandleClick maps a click to an action on the selected tower.
func (p *InfoPanel) HandleClick(x, y int) PanelAction {
	if !p.IsVisible() {
		return PanelNone
	}
	if p.UpgradeButton.IsClicked(x, y) {
		return PanelUpgrade
	}
	if p.SellButton.IsClicked(x, y) {
		return PanelSell
	}
	return PanelNone
}

// findTower ищет выбранную башню в снимке; она могла быть продана.
func (p *InfoPanel) findTower(snap app.Snapshot) (app.TowerView, bool) {
	for _, t := range snap.Towers {
		if t.ID == p.TargetTower {
			return t, true
		}
	}
	return app.TowerView{}, false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, snap app.Snapshot) {
	tower, ok := p.findTower(snap)
	if !ok {
		return
	}
	towerDef, ok := p.catalog.Tower(tower.Kind)
	if !ok {
		return
	}

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, p.X, p.Y, p.Width, p.Height, bgColor, true)
	vector.StrokeRect(screen, p.X, p.Y, p.Width, p.Height, 2, config.BorderColor, true)

	startX := int(p.X) + panelMargin
	y := int(p.Y) + panelMargin + 14
	title := fmt.Sprintf("%s  L%d", towerDef.Name, tower.Level+1)
	text.Draw(screen, title, p.titleFontFace, startX, y, config.TextLightColor)
	y += lineHeight + 4

	level := towerDef.Level(tower.Level)
	lines := []string{
		fmt.Sprintf("Damage %.0f  Rate %.1f/s", level.Damage, level.FireRate),
		fmt.Sprintf("Range %.0f  Kills %d", level.Range, tower.Kills),
	}
	if special := describeSpecial(towerDef.Effect, level.Special); special != "" {
		lines = append(lines, special)
	}
	for _, line := range lines {
		text.Draw(screen, line, p.fontFace, startX, y, config.TextMutedColor)
		y += lineHeight
	}

	p.UpgradeButton.Text = "Max level"
	p.UpgradeButton.Disabled = tower.UpgradeFor == 0
	if tower.UpgradeFor > 0 {
		p.UpgradeButton.Text = fmt.Sprintf("Up $%d", tower.UpgradeFor)
		p.UpgradeButton.Disabled = snap.Money < tower.UpgradeFor
	}
	p.SellButton.Text = fmt.Sprintf("Sell $%d", tower.SellFor)

	p.UpgradeButton.Draw(screen, p.fontFace)
	p.SellButton.Draw(screen, p.fontFace)
}

func describeSpecial(effect defs.EffectKind, special float64) string {
	switch effect {
	case defs.EffectSplash:
		return fmt.Sprintf("Splash radius %.0f", special)
	case defs.EffectChain:
		return fmt.Sprintf("Chains %.0f targets", special)
	case defs.EffectSlow:
		return fmt.Sprintf("Slows for %.0fs", config.SlowDuration)
	case defs.EffectDot:
		return fmt.Sprintf("Poison %.0fs", special)
	}
	return ""
}
