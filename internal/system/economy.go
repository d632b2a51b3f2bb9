package system

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
)

// EconomySystem хранит деньги, жизни и комбо; начисляет награды и бонусы.
type EconomySystem struct {
	ecs *entity.ECS

	Money          int
	Lives          int
	Combo          int
	LastKillTime   float64
	LastKillPayout int // reward + combo bonus of the most recent kill
	TotalKills     int
	WavesCompleted int
}

func NewEconomySystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, money, lives int) *EconomySystem {
	s := &EconomySystem{ecs: ecs, Money: money, Lives: lives}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	eventDispatcher.Subscribe(event.WaveEnded, s)
	return s
}

func (s *EconomySystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if info, ok := e.Data.(event.KillInfo); ok {
			s.rewardKill(info.Reward)
		}
	case event.WaveEnded:
		if info, ok := e.Data.(event.WaveInfo); ok {
			s.Money += info.Bonus
			s.WavesCompleted++
		}
	}
}

// rewardKill grants the kill reward plus floor(reward * (combo-1) * ComboBonusPercent / 100).
// An expired window is checked here too: a kill may land in the tick that crosses it,
// before Update gets to reset the combo.
func (s *EconomySystem) rewardKill(reward int) {
	s.Update(0)
	s.TotalKills++
	s.Combo++
	s.LastKillTime = s.ecs.GameTime

	bonus := reward * (s.Combo - 1) * config.ComboBonusPercent / 100
	s.Money += reward + bonus
	s.LastKillPayout = reward + bonus
}

// Update resets the combo once ComboWindow has passed without a kill.
func (s *EconomySystem) Update(deltaTime float64) {
	if s.Combo > 0 && s.ecs.GameTime-s.LastKillTime > config.ComboWindow {
		s.Combo = 0
	}
}

func (s *EconomySystem) CanAfford(cost int) bool {
	return s.Money >= cost
}

// Spend debits cost when affordable and reports whether it did.
func (s *EconomySystem) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.Money -= cost
	return true
}

func (s *EconomySystem) Credit(amount int) {
	s.Money += amount
}

// LoseLife deducts one life and returns the lives left, never below zero.
func (s *EconomySystem) LoseLife() int {
	if s.Lives > 0 {
		s.Lives--
	}
	return s.Lives
}
