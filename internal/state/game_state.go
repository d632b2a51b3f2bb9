// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/interfaces"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/ui"
	"go-wave-defense/pkg/render"
	"go-wave-defense/pkg/tilemap"
	"image"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameState)(nil)

// messageDuration - сколько секунд висит сообщение об отклонённой команде
const messageDuration = 2.0

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// GameState - состояние игры: ввод превращается в команды, кадр рисуется по снимку.
type GameState struct {
	sm   *StateMachine
	res  *Resources
	game interfaces.Game
	seed int64

	tileMap  *tilemap.TileMap
	renderer *render.BoardRenderer
	snap     app.Snapshot
	selected types.EntityID

	indicator      *ui.StateIndicator
	speedButton    *ui.SpeedButton
	pauseButton    *ui.PauseButton
	waveButton     *ui.Button
	livesIndicator *ui.LivesIndicator
	comboIndicator *ui.ComboIndicator
	waveIndicator  *ui.WaveIndicator
	buildPanel     *ui.BuildPanel
	infoPanel      *ui.InfoPanel

	message      string
	messageTimer float64
}

func NewGameState(sm *StateMachine, res *Resources) *GameState {
	core := app.NewGame(res.Catalog, res.Settings)
	palette := render.NewPalette(res.Catalog)
	face := res.Fonts.Face(config.FontSize)
	titleFace := res.Fonts.BoldFace(config.TitleFontSize)

	renderer := render.NewBoardRenderer(core.TileMap, palette, face, render.DefaultBoardColors())
	renderer.RenderMapImage()

	panelWidth := float32(config.ScreenWidth - config.PanelX - 32)
	waveRect := image.Rect(config.WaveButtonX, config.WaveButtonY, config.WaveButtonX+config.WaveButtonW, config.WaveButtonY+config.WaveButtonH)

	gs := &GameState{
		sm:             sm,
		res:            res,
		game:           core,
		seed:           core.Rng.Seed(),
		tileMap:        core.TileMap,
		renderer:       renderer,
		indicator:      ui.NewStateIndicator(config.IndicatorX, config.IndicatorY, config.IndicatorRadius),
		speedButton:    ui.NewSpeedButton(config.SpeedButtonX, config.SpeedButtonY, config.SpeedButtonSize, config.SpeedButtonColors),
		pauseButton:    ui.NewPauseButton(config.PauseButtonX, config.PauseButtonY, config.PauseButtonSize, config.PauseColor, config.PlayColor),
		waveButton:     ui.NewButton(waveRect, "Next wave"),
		livesIndicator: ui.NewLivesIndicator(config.PanelX+112, 70, face),
		comboIndicator: ui.NewComboIndicator(config.PanelX+16, 140),
		waveIndicator:  ui.NewWaveIndicator(config.PanelX+50, 118, titleFace),
		buildPanel:     ui.NewBuildPanel(config.PanelX+16, config.BuildPanelY, panelWidth, config.BuildRowHeight, face, res.Catalog, palette),
		infoPanel:      ui.NewInfoPanel(config.PanelX+16, config.InfoPanelY, panelWidth, config.InfoPanelHeight, face, titleFace, res.Catalog),
	}
	gs.speedButton.SetState(gs.speedIndex(core.Speed()))
	gs.snap = core.Snapshot()
	return gs
}

func (g *GameState) Enter() {
	log.Printf("new game, seed %d", g.seed)
}

func (g *GameState) Update(deltaTime float64) {
	g.pauseButton.SetPaused(false)
	if g.messageTimer > 0 {
		g.messageTimer -= deltaTime
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.pause()
		return
	}
	g.handleKeys()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if x >= config.PanelX {
			if g.handlePanelClick(x, y) {
				return
			}
		} else {
			g.handleBoardClick(x, y)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		if x < config.PanelX {
			g.sellAt(g.tileMap.PixelToCell(float64(x), float64(y)))
		}
	}

	g.game.Tick(deltaTime)
	g.snap = g.game.Snapshot()

	if g.snap.GameOver {
		g.sm.SetState(NewGameOverState(g.sm, g.res, g, g.snap))
	}
}

func (g *GameState) handleKeys() {
	for i, key := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.buildPanel.SelectIndex(i)
			g.selectTower(types.NilEntity)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.startWave()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.speedButton.SetState(g.speedIndex(g.game.CycleSpeed(1)))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.speedButton.SetState(g.speedIndex(g.game.CycleSpeed(-1)))
	}
	if tower, ok := g.selectedView(); ok {
		if inpututil.IsKeyJustPressed(ebiten.KeyU) {
			g.report(g.game.UpgradeTower(tower.Cell))
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			g.sellAt(tower.Cell)
		}
	}
}

// handlePanelClick обрабатывает клик по боковой панели. true - состояние сменилось.
func (g *GameState) handlePanelClick(x, y int) bool {
	switch {
	case g.pauseButton.IsClicked(x, y):
		g.pause()
		return true
	case g.speedButton.IsClicked(x, y):
		g.cycleSpeedWrapped()
	case g.indicator.IsClicked(x, y), g.waveButton.IsClicked(x, y):
		g.indicator.HandleClick()
		g.startWave()
	case g.infoPanel.Contains(x, y):
		tower, ok := g.selectedView()
		if !ok {
			break
		}
		switch g.infoPanel.HandleClick(x, y) {
		case ui.PanelUpgrade:
			g.report(g.game.UpgradeTower(tower.Cell))
		case ui.PanelSell:
			g.sellAt(tower.Cell)
		}
	default:
		if kind, ok := g.buildPanel.RowAt(x, y); ok {
			g.buildPanel.Toggle(kind)
			g.selectTower(types.NilEntity)
		}
	}
	return false
}

func (g *GameState) handleBoardClick(x, y int) {
	cell := g.tileMap.PixelToCell(float64(x), float64(y))
	if tower, ok := g.towerAt(cell); ok {
		if tower.ID == g.selected {
			g.selectTower(types.NilEntity)
		} else {
			g.selectTower(tower.ID)
		}
		return
	}
	if g.buildPanel.Selected != "" {
		_, err := g.game.PlaceTower(g.buildPanel.Selected, cell)
		g.report(err)
		return
	}
	g.selectTower(types.NilEntity)
}

// cycleSpeedWrapped - кнопка скорости идёт по кругу, клавиши упираются в края.
func (g *GameState) cycleSpeedWrapped() {
	current := g.game.Snapshot().Speed
	last := config.SpeedMultipliers[len(config.SpeedMultipliers)-1]
	var speed float64
	if current >= last {
		speed = g.game.SetSpeed(config.SpeedMultipliers[0])
	} else {
		speed = g.game.CycleSpeed(1)
	}
	g.speedButton.SetState(g.speedIndex(speed))
}

func (g *GameState) speedIndex(speed float64) int {
	for i, m := range config.SpeedMultipliers {
		if m == speed {
			return i
		}
	}
	return 0
}

func (g *GameState) startWave() {
	g.report(g.game.StartWave())
}

func (g *GameState) sellAt(cell types.Cell) {
	refund, err := g.game.SellTower(cell)
	if err != nil {
		g.report(err)
		return
	}
	g.selectTower(types.NilEntity)
	g.showMessage(fmt.Sprintf("Sold for $%d", refund))
}

func (g *GameState) pause() {
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) selectTower(id types.EntityID) {
	g.selected = id
	if id == types.NilEntity {
		g.infoPanel.Hide()
		return
	}
	g.buildPanel.Selected = ""
	g.infoPanel.SetTarget(id)
}

func (g *GameState) selectedView() (app.TowerView, bool) {
	for _, t := range g.snap.Towers {
		if t.ID == g.selected {
			return t, true
		}
	}
	return app.TowerView{}, false
}

func (g *GameState) towerAt(cell types.Cell) (app.TowerView, bool) {
	for _, t := range g.snap.Towers {
		if t.Cell == cell {
			return t, true
		}
	}
	return app.TowerView{}, false
}

// report показывает отклонённую команду игроку; nil игнорируется.
func (g *GameState) report(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, app.ErrGameOver) {
		return
	}
	g.showMessage(err.Error())
}

func (g *GameState) showMessage(msg string) {
	g.message = msg
	g.messageTimer = messageDuration
}

func (g *GameState) overlay() render.Overlay {
	overlay := render.Overlay{SelectedTower: g.selected}
	x, y := ebiten.CursorPosition()
	kind := g.buildPanel.Selected
	if kind == "" || x >= config.PanelX {
		return overlay
	}
	cell := g.tileMap.PixelToCell(float64(x), float64(y))
	overlay.HoverCell = cell
	overlay.HasHover = g.tileMap.InBounds(cell)
	overlay.HoverValid = g.game.CanPlace(kind, cell) == nil
	if towerDef, ok := g.res.Catalog.Tower(kind); ok {
		overlay.HoverRange = towerDef.Level(0).Range
	}
	return overlay
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.snap, g.overlay())
	g.drawPanel(screen)

	if g.messageTimer > 0 && g.message != "" {
		face := g.res.Fonts.Face(config.FontSize)
		bounds := text.BoundString(face, g.message)
		x := (config.PanelX - bounds.Dx()) / 2
		vector.DrawFilledRect(screen, float32(x-8), float32(config.ScreenHeight-44), float32(bounds.Dx()+16), 26, config.OverlayColor, false)
		text.Draw(screen, g.message, face, x, config.ScreenHeight-26, config.InvalidColor)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.1f  seed: %d", ebiten.ActualTPS(), g.seed), 4, 4)
}

func (g *GameState) drawPanel(screen *ebiten.Image) {
	panelW := float32(config.ScreenWidth - config.PanelX)
	vector.DrawFilledRect(screen, config.PanelX, 0, panelW, config.ScreenHeight, config.PanelColor, false)
	vector.StrokeLine(screen, config.PanelX, 0, config.PanelX, config.ScreenHeight, 2, config.BorderColor, false)

	var stateColor color.Color = config.BuildStateColor
	if g.snap.WaveInProgress {
		stateColor = config.WaveStateColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.waveIndicator.Draw(screen, g.snap.Wave)

	face := g.res.Fonts.Face(config.FontSize)
	text.Draw(screen, fmt.Sprintf("$%d", g.snap.Money), g.res.Fonts.BoldFace(config.TitleFontSize), config.PanelX+16, 80, config.MoneyColor)
	text.Draw(screen, fmt.Sprintf("x%.1f", g.snap.Speed), face, config.SpeedButtonX-10, config.SpeedButtonY+30, config.TextMutedColor)

	g.livesIndicator.Draw(screen, g.snap.Lives, g.res.Settings.StartingLives)
	g.comboIndicator.Draw(screen, g.snap.Combo, g.snap.ComboRemaining)
	g.buildPanel.Draw(screen, g.snap.Money)
	g.infoPanel.Draw(screen, g.snap)

	g.waveButton.Disabled = g.snap.WaveInProgress
	if g.snap.WaveInProgress {
		g.waveButton.Text = fmt.Sprintf("%d incoming", g.snap.QueuedEnemies+len(g.snap.Enemies))
	} else {
		g.waveButton.Text = fmt.Sprintf("Start wave %d", g.snap.Wave+1)
	}
	g.waveButton.Draw(screen, face)
}

func (g *GameState) Exit() {}
