// internal/system/aura.go
package system

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/utils"
	"math"
)

// HealAuraSystem обрабатывает врагов со способностью "heals-nearby".
type HealAuraSystem struct {
	ecs *entity.ECS
}

func NewHealAuraSystem(ecs *entity.ECS) *HealAuraSystem {
	return &HealAuraSystem{ecs: ecs}
}

// Update heals every other wounded enemy within HealRadius of each healer.
// Runs after movement and before targeting, so healed enemies can still die this tick.
func (s *HealAuraSystem) Update(deltaTime float64) {
	ids := s.ecs.EnemyIDs()
	for _, healerID := range ids {
		healer, ok := s.ecs.Enemy(healerID)
		if !ok || healer.Ability != defs.AbilityHealsNearby {
			continue
		}
		healerPos := s.ecs.Positions[healerID]

		for _, otherID := range ids {
			if otherID == healerID {
				continue
			}
			health, alive := s.ecs.Healths[otherID]
			if !alive || health.Value >= health.Max {
				continue
			}
			otherPos := s.ecs.Positions[otherID]
			if utils.Distance(healerPos.X, healerPos.Y, otherPos.X, otherPos.Y) >= config.HealRadius {
				continue
			}
			health.Value = math.Min(health.Max, health.Value+config.HealRate*deltaTime)
		}
	}
}
