// internal/state/menu_state.go
package state

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/ui"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// MenuState - титульный экран
type MenuState struct {
	sm          *StateMachine
	res         *Resources
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine, res *Resources) *MenuState {
	w, h := 220, 48
	x := (config.ScreenWidth - w) / 2
	y := config.ScreenHeight/2 + 20
	return &MenuState{
		sm:          sm,
		res:         res,
		startButton: ui.NewButton(image.Rect(x, y, x+w, y+h), "Start"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.IsClicked(x, y)
	}
	if start {
		m.sm.SetState(NewGameState(m.sm, m.res))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	title := "WAVE DEFENSE"
	face := m.res.Fonts.BoldFace(40)
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-40, config.TextLightColor)

	hint := "Space to start"
	small := m.res.Fonts.Face(config.FontSize)
	hb := text.BoundString(small, hint)
	text.Draw(screen, hint, small, (config.ScreenWidth-hb.Dx())/2, config.ScreenHeight/2+100, config.TextMutedColor)

	m.startButton.Draw(screen, m.res.Fonts.Face(config.TitleFontSize))
}

func (m *MenuState) Exit() {}
