// internal/system/status_effect.go
package system

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
)

// StatusEffectSystem управляет жизненным циклом эффектов: замедление и яд.
type StatusEffectSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewStatusEffectSystem(ecs *entity.ECS, damage *DamageSystem) *StatusEffectSystem {
	return &StatusEffectSystem{ecs: ecs, damage: damage}
}

// Update обрабатывает все активные эффекты.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	// Истёкшие замедления больше не нужны
	for id, effect := range s.ecs.SlowEffects {
		if !effect.Active(s.ecs.GameTime) {
			delete(s.ecs.SlowEffects, id)
		}
	}

	for _, id := range s.ecs.PoisonedIDs() {
		effect, ok := s.ecs.PoisonEffects[id]
		if !ok {
			continue
		}
		effect.TickTimer -= deltaTime
		for effect.TickTimer <= 0 && effect.TicksLeft > 0 {
			effect.TicksLeft--
			effect.TickTimer += config.PoisonTickInterval
			if s.damage.Apply(id, effect.DamagePerTick, effect.SourceID) {
				break
			}
		}
		if _, alive := s.ecs.Enemy(id); alive && effect.TicksLeft <= 0 {
			delete(s.ecs.PoisonEffects, id)
		}
	}
}
