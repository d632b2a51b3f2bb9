package state

import (
	"fmt"
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final board with a summary. R restarts, Esc returns to the menu.
type GameOverState struct {
	sm       *StateMachine
	res      *Resources
	previous *GameState
	final    app.Snapshot
}

func NewGameOverState(sm *StateMachine, res *Resources, previous *GameState, final app.Snapshot) *GameOverState {
	return &GameOverState{sm: sm, res: res, previous: previous, final: final}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sm.SetState(NewGameState(s.sm, s.res))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.sm.SetState(NewMenuState(s.sm, s.res))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)

	title := "GAME OVER"
	face := s.res.Fonts.BoldFace(40)
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-30, config.LivesColor)

	lines := []string{
		fmt.Sprintf("Waves survived: %d", s.final.WavesSurvived),
		fmt.Sprintf("Enemies killed: %d", s.final.TotalKills),
		"R to restart, Esc for menu",
	}
	small := s.res.Fonts.Face(config.TitleFontSize)
	y := config.ScreenHeight/2 + 10
	for _, line := range lines {
		lb := text.BoundString(small, line)
		text.Draw(screen, line, small, (config.ScreenWidth-lb.Dx())/2, y, config.TextLightColor)
		y += 28
	}
}

func (s *GameOverState) Exit() {}
