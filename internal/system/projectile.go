// internal/system/projectile.go
package system

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/entity"
	"math"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs    *entity.ECS
	damage *DamageSystem
}

func NewProjectileSystem(ecs *entity.ECS, damage *DamageSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:    ecs,
		damage: damage,
	}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		pos := s.ecs.Positions[id]
		if pos == nil {
			s.ecs.RemoveProjectile(id)
			continue
		}

		// Цель пропала (уже убита или ушла) - снаряд исчезает без эффекта
		targetPos, targetExists := s.ecs.Positions[proj.TargetID]
		if _, isEnemy := s.ecs.Enemy(proj.TargetID); !isEnemy || !targetExists {
			s.ecs.RemoveProjectile(id)
			continue
		}

		dx := targetPos.X - pos.X
		dy := targetPos.Y - pos.Y
		dist := math.Sqrt(dx*dx + dy*dy)
		step := proj.Speed * deltaTime

		if dist < config.ProjectileHitRadius || dist <= step {
			s.damage.ResolveImpact(proj)
			s.ecs.RemoveProjectile(id)
			continue
		}
		pos.X += dx / dist * step
		pos.Y += dy / dist * step
	}
}
