// internal/component/status_effect.go
package component

import "go-wave-defense/internal/types"

// SlowEffect indicates that an entity is slowed until the given game time.
type SlowEffect struct {
	Until float64
}

// Active reports whether the slow is still in force at game time now.
func (s *SlowEffect) Active(now float64) bool {
	return s.Until > now
}

// PoisonEffect deals DamagePerTick every tick interval until TicksLeft reaches zero.
type PoisonEffect struct {
	DamagePerTick float64
	TicksLeft     int
	TickTimer     float64 // Time until the next damage tick.
	SourceID      types.EntityID
}
