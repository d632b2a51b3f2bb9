package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"log"
)

// CombatSystem управляет атакой башен: перезарядка, выбор цели, выстрел.
type CombatSystem struct {
	ecs             *entity.ECS
	catalog         *defs.Catalog
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, catalog *defs.Catalog, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		catalog:         catalog,
		eventDispatcher: eventDispatcher,
	}
}

func (s *CombatSystem) Update(deltaTime float64) {
	now := s.ecs.GameTime
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		towerDef, ok := s.catalog.Tower(tower.DefID)
		if !ok {
			log.Printf("CombatSystem: Could not find tower definition for ID %s", tower.DefID)
			continue
		}
		level := towerDef.Level(tower.Level)

		if now-tower.LastFired < level.FireInterval() {
			continue
		}

		towerPos := s.ecs.Positions[id]
		enemyID := s.FindTarget(towerPos, level.Range)
		if enemyID == types.NilEntity {
			continue
		}
		tower.LastFired = now
		s.createProjectile(id, enemyID, towerDef, level)
	}
}

// FindTarget returns the enemy within rangeRadius that is furthest along the route.
// Ties go to the lowest id, since enemies are scanned in id order.
func (s *CombatSystem) FindTarget(from *component.Position, rangeRadius float64) types.EntityID {
	best := types.NilEntity
	bestScore := -1.0
	for _, enemyID := range s.ecs.EnemyIDs() {
		enemyPos, path := s.ecs.Positions[enemyID], s.ecs.Paths[enemyID]
		if enemyPos == nil || path == nil {
			continue
		}
		if utils.Distance(from.X, from.Y, enemyPos.X, enemyPos.Y) > rangeRadius {
			continue
		}
		if score := path.Score(); score > bestScore {
			bestScore = score
			best = enemyID
		}
	}
	return best
}

func (s *CombatSystem) createProjectile(towerID, enemyID types.EntityID, towerDef *defs.TowerDefinition, level defs.TowerLevel) {
	projID := s.ecs.NewEntity()
	towerPos := s.ecs.Positions[towerID]

	s.ecs.Positions[projID] = &component.Position{X: towerPos.X, Y: towerPos.Y}
	s.ecs.Projectiles[projID] = &component.Projectile{
		TargetID: enemyID,
		SourceID: towerID,
		TowerID:  towerDef.ID,
		Speed:    config.ProjectileSpeed,
		Damage:   level.Damage,
		Effect:   towerDef.Effect,
		Special:  level.Special,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: projID})
}
