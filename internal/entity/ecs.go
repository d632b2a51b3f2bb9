// internal/entity/ecs.go
package entity

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"sort"
)

// ECS owns every live tower, enemy and projectile. Components are stored in maps
// keyed by EntityID; an entity is an enemy/tower/projectile while it has that component.
type ECS struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Velocities    map[types.EntityID]*component.Velocity
	Paths         map[types.EntityID]*component.Path
	Healths       map[types.EntityID]*component.Health
	Towers        map[types.EntityID]*component.Tower
	Enemies       map[types.EntityID]*component.Enemy
	Projectiles   map[types.EntityID]*component.Projectile
	SlowEffects   map[types.EntityID]*component.SlowEffect
	PoisonEffects map[types.EntityID]*component.PoisonEffect
	Wave          *component.Wave

	towerCells map[types.Cell]types.EntityID
}

func NewECS() *ECS {
	return &ECS{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Velocities:    make(map[types.EntityID]*component.Velocity),
		Paths:         make(map[types.EntityID]*component.Path),
		Healths:       make(map[types.EntityID]*component.Health),
		Towers:        make(map[types.EntityID]*component.Tower),
		Enemies:       make(map[types.EntityID]*component.Enemy),
		Projectiles:   make(map[types.EntityID]*component.Projectile),
		SlowEffects:   make(map[types.EntityID]*component.SlowEffect),
		PoisonEffects: make(map[types.EntityID]*component.PoisonEffect),
		Wave:          &component.Wave{},
		towerCells:    make(map[types.Cell]types.EntityID),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddTower registers a tower at its cell. The caller guarantees the cell is free.
func (ecs *ECS) AddTower(tower *component.Tower, center component.Position) types.EntityID {
	id := ecs.NewEntity()
	ecs.Towers[id] = tower
	ecs.Positions[id] = &center
	ecs.towerCells[tower.Cell] = id
	return id
}

// TowerAt returns the tower occupying a cell, if any.
func (ecs *ECS) TowerAt(cell types.Cell) (types.EntityID, *component.Tower, bool) {
	id, ok := ecs.towerCells[cell]
	if !ok {
		return types.NilEntity, nil, false
	}
	return id, ecs.Towers[id], true
}

// Tower returns a tower by id. A missing tower (e.g. sold) is a normal outcome.
func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.Towers[id]
	return t, ok
}

func (ecs *ECS) RemoveTower(id types.EntityID) {
	if tower, ok := ecs.Towers[id]; ok {
		delete(ecs.towerCells, tower.Cell)
	}
	delete(ecs.Towers, id)
	delete(ecs.Positions, id)
}

// Enemy returns the live enemy with the given id. Callers must expect ok == false
// for enemies destroyed earlier in the same tick.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.Enemies[id]
	return e, ok
}

// RemoveEnemy deletes the enemy and all of its components.
func (ecs *ECS) RemoveEnemy(id types.EntityID) {
	delete(ecs.Enemies, id)
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Healths, id)
	delete(ecs.SlowEffects, id)
	delete(ecs.PoisonEffects, id)
}

func (ecs *ECS) RemoveProjectile(id types.EntityID) {
	delete(ecs.Projectiles, id)
	delete(ecs.Positions, id)
}

// EnemyIDs returns live enemy ids in ascending order.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedKeys(ecs.Enemies)
}

// TowerIDs returns tower ids in ascending order.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedKeys(ecs.Towers)
}

// ProjectileIDs returns projectile ids in ascending order.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedKeys(ecs.Projectiles)
}

// PoisonedIDs returns ids of enemies carrying a poison, in ascending order.
func (ecs *ECS) PoisonedIDs() []types.EntityID {
	return sortedKeys(ecs.PoisonEffects)
}

func sortedKeys[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
