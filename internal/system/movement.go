// internal/system/movement.go
package system

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/tilemap"
)

// MovementGameContext определяет методы, которые MovementSystem требует от игры.
// Это помогает избежать циклических зависимостей.
type MovementGameContext interface {
	IsGameOver() bool
}

// MovementSystem продвигает врагов по маршруту.
type MovementSystem struct {
	ecs             *entity.ECS
	route           *tilemap.Route
	eventDispatcher *event.Dispatcher
	game            MovementGameContext
}

func NewMovementSystem(ecs *entity.ECS, route *tilemap.Route, eventDispatcher *event.Dispatcher, game MovementGameContext) *MovementSystem {
	return &MovementSystem{ecs: ecs, route: route, eventDispatcher: eventDispatcher, game: game}
}

// Update advances every enemy. Enemies that finish the route are removed without reward
// and reported as EnemyLeaked; once that ends the game, the rest of the pass is skipped.
func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		path, vel, pos := s.ecs.Paths[id], s.ecs.Velocities[id], s.ecs.Positions[id]
		if path == nil || vel == nil || pos == nil {
			continue
		}

		speed := s.EffectiveSpeed(id)
		segLen := s.route.SegmentLength(path.Segment)
		if segLen > 0 {
			path.Progress += speed * deltaTime / segLen
		} else {
			path.Progress = 1
		}
		if path.Progress >= 1 {
			path.Progress = 0
			path.Segment++
		}

		if path.Segment >= s.route.Segments() {
			s.ecs.RemoveEnemy(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyLeaked, Data: enemy.DefID})
			if s.game.IsGameOver() {
				return
			}
			continue
		}

		p := s.route.PositionAt(path.Segment, path.Progress)
		pos.X, pos.Y = p.X, p.Y
	}
}

// EffectiveSpeed returns the enemy's current speed: base speed, halved while a slow is
// active unless the kind ignores slows.
func (s *MovementSystem) EffectiveSpeed(id types.EntityID) float64 {
	vel, ok := s.ecs.Velocities[id]
	if !ok {
		return 0
	}
	speed := vel.Speed
	enemy, isEnemy := s.ecs.Enemy(id)
	if !isEnemy || enemy.Ability == defs.AbilityImmuneSlow {
		return speed
	}
	if slowEffect, isSlowed := s.ecs.SlowEffects[id]; isSlowed && slowEffect.Active(s.ecs.GameTime) {
		speed *= config.SlowFactor
	}
	return speed
}
