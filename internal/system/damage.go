package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"math"
)

// DamageSystem применяет урон и эффекты попадания снарядов.
type DamageSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewDamageSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *DamageSystem {
	return &DamageSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Apply subtracts damage from one enemy and processes the kill immediately when its
// health drops to zero. It reports whether the enemy died. A missing enemy is a no-op.
func (s *DamageSystem) Apply(enemyID types.EntityID, damage float64, sourceID types.EntityID) bool {
	health, ok := s.ecs.Healths[enemyID]
	if !ok {
		return false
	}
	health.Value -= damage
	if health.Value > 0 {
		return false
	}
	s.kill(enemyID, sourceID)
	return true
}

func (s *DamageSystem) kill(enemyID, sourceID types.EntityID) {
	enemy := s.ecs.Enemies[enemyID]
	info := event.KillInfo{
		EnemyID: enemyID,
		DefID:   enemy.DefID,
		Reward:  enemy.Reward,
		TowerID: sourceID,
	}
	if pos, ok := s.ecs.Positions[enemyID]; ok {
		info.X, info.Y = pos.X, pos.Y
	}
	s.ecs.RemoveEnemy(enemyID)

	if tower, ok := s.ecs.Tower(sourceID); ok {
		tower.Kills++
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: info})
}

// ResolveImpact dispatches a projectile hit on its (live) target by effect kind.
func (s *DamageSystem) ResolveImpact(proj *component.Projectile) {
	targetPos, ok := s.ecs.Positions[proj.TargetID]
	if !ok {
		return
	}
	// Копия: цель может быть удалена до окончания расчёта
	center := *targetPos

	switch proj.Effect {
	case defs.EffectSingle:
		s.Apply(proj.TargetID, proj.Damage, proj.SourceID)

	case defs.EffectSplash:
		s.Apply(proj.TargetID, proj.Damage, proj.SourceID)
		for _, id := range s.ecs.EnemyIDs() {
			if id == proj.TargetID {
				continue
			}
			pos, alive := s.ecs.Positions[id]
			if !alive {
				continue
			}
			if utils.Distance(center.X, center.Y, pos.X, pos.Y) < proj.Special {
				s.Apply(id, proj.Damage*config.SplashFactor, proj.SourceID)
			}
		}

	case defs.EffectSlow:
		if s.Apply(proj.TargetID, proj.Damage, proj.SourceID) {
			return
		}
		if enemy, alive := s.ecs.Enemy(proj.TargetID); alive && enemy.Ability != defs.AbilityImmuneSlow {
			s.ecs.SlowEffects[proj.TargetID] = &component.SlowEffect{Until: s.ecs.GameTime + config.SlowDuration}
		}

	case defs.EffectChain:
		s.chain(proj, center)

	case defs.EffectDot:
		if _, alive := s.ecs.Enemy(proj.TargetID); !alive {
			return
		}
		ticks := int(math.Round(proj.Special / config.PoisonTickInterval))
		if ticks < 1 {
			ticks = 1
		}
		// Повторное попадание обновляет яд, а не складывает его
		s.ecs.PoisonEffects[proj.TargetID] = &component.PoisonEffect{
			DamagePerTick: proj.Damage * config.PoisonTickInterval,
			TicksLeft:     ticks,
			TickTimer:     config.PoisonTickInterval,
			SourceID:      proj.SourceID,
		}
	}
}

// chain hits the target, then jumps up to Special-1 times to the nearest enemy not yet hit
// within ChainRadius of the previous victim, dealing ChainFactor of the base damage.
func (s *DamageSystem) chain(proj *component.Projectile, center component.Position) {
	hit := map[types.EntityID]bool{proj.TargetID: true}
	s.Apply(proj.TargetID, proj.Damage, proj.SourceID)

	last := center
	for jumps := int(proj.Special) - 1; jumps > 0; jumps-- {
		var closest types.EntityID
		closestDist := config.ChainRadius
		for _, id := range s.ecs.EnemyIDs() {
			if hit[id] {
				continue
			}
			pos := s.ecs.Positions[id]
			if d := utils.Distance(last.X, last.Y, pos.X, pos.Y); d < closestDist {
				closestDist = d
				closest = id
			}
		}
		if closest == types.NilEntity {
			break
		}
		hit[closest] = true
		last = *s.ecs.Positions[closest]
		s.Apply(closest, proj.Damage*config.ChainFactor, proj.SourceID)
	}
}
