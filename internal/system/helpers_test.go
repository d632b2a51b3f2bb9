package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/tilemap"
	"testing"
)

// testWorld собирает системы так же, как app.NewGame, но на маленькой карте.
type testWorld struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	catalog    *defs.Catalog
	tileMap    *tilemap.TileMap
	economy    *EconomySystem
	state      *StateSystem
	damage     *DamageSystem
	movement   *MovementSystem
	combat     *CombatSystem
	projectile *ProjectileSystem
	status     *StatusEffectSystem
	aura       *HealAuraSystem
	waves      *WaveSystem

	events map[event.EventType][]event.Event
}

func newTestWorld(t *testing.T, lives int) *testWorld {
	t.Helper()
	catalog, err := defs.DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}
	// Прямой маршрут длиной 1000 вдоль y = 5
	path := []types.Cell{{X: 0, Y: 0}, {X: 100, Y: 0}}
	tm := tilemap.NewTileMap(101, 10, 10, path)

	w := &testWorld{
		ecs:        entity.NewECS(),
		dispatcher: event.NewDispatcher(),
		catalog:    catalog,
		tileMap:    tm,
		events:     map[event.EventType][]event.Event{},
	}
	for _, et := range []event.EventType{event.EnemySpawned, event.EnemyKilled, event.EnemyLeaked, event.WaveStarted, event.WaveEnded, event.ProjectileFired, event.GameOver} {
		w.dispatcher.SubscribeFunc(et, func(e event.Event) {
			w.events[e.Type] = append(w.events[e.Type], e)
		})
	}
	w.economy = NewEconomySystem(w.ecs, w.dispatcher, 0, lives)
	w.state = NewStateSystem(w.economy, w.dispatcher)
	w.damage = NewDamageSystem(w.ecs, w.dispatcher)
	w.movement = NewMovementSystem(w.ecs, tm.Route, w.dispatcher, w.state)
	w.combat = NewCombatSystem(w.ecs, catalog, w.dispatcher)
	w.projectile = NewProjectileSystem(w.ecs, w.damage)
	w.status = NewStatusEffectSystem(w.ecs, w.damage)
	w.aura = NewHealAuraSystem(w.ecs)
	w.waves = NewWaveSystem(w.ecs, tm, catalog, utils.NewPRNGService(1), w.dispatcher)
	return w
}

// addEnemy places an enemy of the given kind directly at (x, y) on segment 0.
func (w *testWorld) addEnemy(kind string, x, y, health float64) types.EntityID {
	def, _ := w.catalog.Enemy(kind)
	id := w.ecs.NewEntity()
	w.ecs.Enemies[id] = &component.Enemy{DefID: kind, Reward: def.Reward, Ability: def.Ability, Size: def.Size}
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	w.ecs.Paths[id] = &component.Path{Progress: x / 1000}
	w.ecs.Healths[id] = &component.Health{Value: health, Max: health}
	return id
}

func (w *testWorld) addTower(kind string, cell types.Cell, level int) types.EntityID {
	center := w.tileMap.CellCenter(cell)
	return w.ecs.AddTower(&component.Tower{DefID: kind, Cell: cell, Level: level},
		component.Position{X: center.X, Y: center.Y})
}

func (w *testWorld) health(id types.EntityID) float64 {
	h, ok := w.ecs.Healths[id]
	if !ok {
		return 0
	}
	return h.Value
}
