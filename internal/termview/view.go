// Package termview renders a game snapshot onto a tcell screen.
package termview

import (
	"fmt"
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/tilemap"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// CellWidth - ширина одной клетки поля в колонках терминала.
const CellWidth = 2

const hudGap = 2

var (
	fieldStyle   = tcell.StyleDefault.Background(tcell.GetColor("#1a2f1a")).Foreground(tcell.GetColor("#2d4a2d"))
	routeStyle   = tcell.StyleDefault.Background(tcell.GetColor("#5c4033")).Foreground(tcell.GetColor("#3e2723"))
	textStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	headerStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	moneyStyle   = tcell.StyleDefault.Foreground(tcell.GetColor("#f1c40f")).Bold(true)
	livesStyle   = tcell.StyleDefault.Foreground(tcell.GetColor("#e74c3c"))
	mutedStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	errorStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	slowedColor  = tcell.GetColor("#3498db")
	poisonColor  = tcell.GetColor("#16a085")
	bulletStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	selectedMark = '>'
)

// Overlay is the input-driven part of a frame.
type Overlay struct {
	Cursor    types.Cell
	BuildKind string
	Selected  types.EntityID
	Message   string
}

// View draws snapshots. It never touches the simulation.
type View struct {
	screen  tcell.Screen
	tileMap *tilemap.TileMap
	catalog *defs.Catalog
}

func NewView(screen tcell.Screen, tileMap *tilemap.TileMap, catalog *defs.Catalog) *View {
	return &View{screen: screen, tileMap: tileMap, catalog: catalog}
}

// CellAt maps a screen position back to a board cell.
func (v *View) CellAt(x, y int) (types.Cell, bool) {
	cell := types.Cell{X: x / CellWidth, Y: y}
	if x < 0 || !v.tileMap.InBounds(cell) {
		return types.Cell{}, false
	}
	return cell, true
}

// Draw renders the whole frame and shows it.
func (v *View) Draw(snap app.Snapshot, overlay Overlay) {
	v.screen.Clear()
	v.drawBoard()
	v.drawProjectiles(snap.Projectiles)
	v.drawTowers(snap.Towers)
	v.drawEnemies(snap.Enemies)
	v.drawCursor(overlay.Cursor)
	v.drawHUD(snap, overlay)
	v.screen.Show()
}

func (v *View) drawBoard() {
	for y := 0; y < v.tileMap.Rows; y++ {
		for x := 0; x < v.tileMap.Cols; x++ {
			cell := types.Cell{X: x, Y: y}
			if v.tileMap.IsBlocked(cell) {
				v.putCell(cell, '·', ' ', routeStyle)
			} else {
				v.putCell(cell, ' ', ' ', fieldStyle)
			}
		}
	}
}

func (v *View) drawTowers(towers []app.TowerView) {
	for _, t := range towers {
		glyph, style := '?', fieldStyle.Foreground(tcell.ColorWhite)
		if towerDef, ok := v.catalog.Tower(t.Kind); ok {
			glyph = firstRune(towerDef.Visuals.Glyph, glyph)
			style = style.Foreground(tcell.GetColor(towerDef.Visuals.Color))
		}
		v.putCell(t.Cell, glyph, rune('1'+t.Level), style.Bold(true))
	}
}

func (v *View) drawEnemies(enemies []app.EnemyView) {
	for _, e := range enemies {
		cell := v.tileMap.PixelToCell(e.X, e.Y)
		if !v.tileMap.InBounds(cell) {
			continue
		}
		glyph, style := '?', routeStyle.Foreground(tcell.ColorWhite)
		if enemyDef, ok := v.catalog.Enemy(e.Kind); ok {
			glyph = firstRune(enemyDef.Visuals.Glyph, glyph)
			style = style.Foreground(tcell.GetColor(enemyDef.Visuals.Color)).Bold(true)
		}
		switch {
		case e.Poisoned:
			style = style.Background(poisonColor)
		case e.Slowed:
			style = style.Background(slowedColor)
		}
		v.putCell(cell, glyph, healthRune(e.HealthFraction), style)
	}
}

func (v *View) drawProjectiles(projectiles []app.ProjectileView) {
	for _, p := range projectiles {
		cell := v.tileMap.PixelToCell(p.X, p.Y)
		if !v.tileMap.InBounds(cell) {
			continue
		}
		_, _, style, _ := v.screen.GetContent(cell.X*CellWidth, cell.Y)
		_, bg, _ := style.Decompose()
		v.screen.SetContent(cell.X*CellWidth+1, cell.Y, '*', nil, bulletStyle.Background(bg))
	}
}

// drawCursor инвертирует клетку под курсором, не трогая её содержимое.
func (v *View) drawCursor(cursor types.Cell) {
	if !v.tileMap.InBounds(cursor) {
		return
	}
	for i := 0; i < CellWidth; i++ {
		x := cursor.X*CellWidth + i
		mainc, combc, style, _ := v.screen.GetContent(x, cursor.Y)
		v.screen.SetContent(x, cursor.Y, mainc, combc, style.Reverse(true))
	}
}

func (v *View) drawHUD(snap app.Snapshot, overlay Overlay) {
	x := v.tileMap.Cols*CellWidth + hudGap
	y := 0

	v.putText(x, y, fmt.Sprintf("$%d", snap.Money), moneyStyle)
	v.putText(x+10, y, fmt.Sprintf("Lives %d", snap.Lives), livesStyle)
	y++
	wave := fmt.Sprintf("Wave %d", snap.Wave)
	if snap.Wave > 0 && snap.Wave%defs.BossWavePeriod == 0 {
		wave += " (boss)"
	}
	v.putText(x, y, wave, headerStyle)
	y++
	if snap.WaveInProgress {
		v.putText(x, y, fmt.Sprintf("%d incoming", snap.QueuedEnemies+len(snap.Enemies)), textStyle)
	} else {
		v.putText(x, y, "Building", mutedStyle)
	}
	y++
	v.putText(x, y, fmt.Sprintf("Speed x%.1f  Kills %d", snap.Speed, snap.TotalKills), textStyle)
	y++
	if snap.Combo > 0 {
		v.putText(x, y, fmt.Sprintf("Combo x%d %.1fs", snap.Combo, snap.ComboRemaining), headerStyle)
	}
	y += 2

	for i, id := range v.catalog.TowerOrder {
		towerDef := v.catalog.Towers[id]
		style := textStyle
		if towerDef.Levels[0].Cost > snap.Money {
			style = mutedStyle
		}
		line := fmt.Sprintf(" %d %-8s $%d", i+1, towerDef.Name, towerDef.Levels[0].Cost)
		if id == overlay.BuildKind {
			line = string(selectedMark) + line[1:]
			style = style.Bold(true)
		}
		v.putText(x, y, line, style)
		y++
	}
	y++

	if tower, ok := findTower(snap.Towers, overlay.Selected); ok {
		v.drawTowerInfo(x, y, tower)
	}

	bottom := v.tileMap.Rows + 1
	if snap.GameOver {
		v.putText(0, bottom, fmt.Sprintf("GAME OVER: %d waves survived, %d kills. r restart, q quit", snap.WavesSurvived, snap.TotalKills), errorStyle)
	} else if overlay.Message != "" {
		v.putText(0, bottom, overlay.Message, errorStyle)
	}
	v.putText(0, bottom+1, "arrows move  1-9 build  enter place  u upgrade  s sell  space wave  +/- speed  q quit", mutedStyle)
}

func (v *View) drawTowerInfo(x, y int, tower app.TowerView) {
	name := tower.Kind
	if towerDef, ok := v.catalog.Tower(tower.Kind); ok {
		name = towerDef.Name
	}
	v.putText(x, y, fmt.Sprintf("%s L%d", name, tower.Level+1), headerStyle)
	y++
	v.putText(x, y, fmt.Sprintf("Range %.0f  Kills %d", tower.Range, tower.Kills), textStyle)
	y++
	if tower.UpgradeFor > 0 {
		v.putText(x, y, fmt.Sprintf("u: upgrade $%d", tower.UpgradeFor), textStyle)
	} else {
		v.putText(x, y, "max level", mutedStyle)
	}
	y++
	v.putText(x, y, fmt.Sprintf("s: sell $%d", tower.SellFor), textStyle)
}

func (v *View) putCell(cell types.Cell, first, second rune, style tcell.Style) {
	v.screen.SetContent(cell.X*CellWidth, cell.Y, first, nil, style)
	v.screen.SetContent(cell.X*CellWidth+1, cell.Y, second, nil, style)
}

// putText пишет строку с учётом ширины рун и обрезает её по правому краю экрана.
func (v *View) putText(x, y int, s string, style tcell.Style) {
	sw, _ := v.screen.Size()
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > sw {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

func findTower(towers []app.TowerView, id types.EntityID) (app.TowerView, bool) {
	if id == types.NilEntity {
		return app.TowerView{}, false
	}
	for _, t := range towers {
		if t.ID == id {
			return t, true
		}
	}
	return app.TowerView{}, false
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}

// healthRune - полоска здоровья в одну колонку.
func healthRune(fraction float64) rune {
	switch {
	case fraction > 0.6:
		return '█'
	case fraction > 0.3:
		return '▄'
	default:
		return '▁'
	}
}
