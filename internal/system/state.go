// internal/system/state.go
package system

import (
	"go-wave-defense/internal/event"
	"log"
)

// StateSystem следит за утечками врагов и переводит игру в состояние поражения.
type StateSystem struct {
	economy         *EconomySystem
	eventDispatcher *event.Dispatcher
	gameOver        bool
}

func NewStateSystem(economy *EconomySystem, eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{
		economy:         economy,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.EnemyLeaked, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if e.Type != event.EnemyLeaked || s.gameOver {
		return
	}
	if s.economy.LoseLife() == 0 {
		s.gameOver = true
		log.Printf("Game over: %d waves survived, %d kills", s.economy.WavesCompleted, s.economy.TotalKills)
		s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver})
	}
}

// IsGameOver reports whether lives have run out.
func (s *StateSystem) IsGameOver() bool {
	return s.gameOver
}
