package entity

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/types"
	"reflect"
	"testing"
)

func TestNewEntityMonotonic(t *testing.T) {
	ecs := NewECS()
	prev := types.NilEntity
	for i := 0; i < 10; i++ {
		id := ecs.NewEntity()
		if id <= prev {
			t.Fatalf("expected ids to grow, got %d after %d", id, prev)
		}
		prev = id
	}
}

func TestTowerRegistry(t *testing.T) {
	ecs := NewECS()
	cell := types.Cell{X: 2, Y: 3}
	id := ecs.AddTower(&component.Tower{DefID: "laser", Cell: cell}, component.Position{X: 10, Y: 20})

	gotID, tower, ok := ecs.TowerAt(cell)
	if !ok || gotID != id || tower.DefID != "laser" {
		t.Fatalf("expected laser %d at %v, got %d %v %v", id, cell, gotID, tower, ok)
	}
	if pos := ecs.Positions[id]; pos == nil || pos.X != 10 || pos.Y != 20 {
		t.Errorf("expected tower position (10,20), got %v", pos)
	}

	ecs.RemoveTower(id)
	if _, _, ok := ecs.TowerAt(cell); ok {
		t.Error("expected cell to be free after RemoveTower")
	}
	if _, ok := ecs.Tower(id); ok {
		t.Error("expected removed tower lookup to fail")
	}
	if _, ok := ecs.Positions[id]; ok {
		t.Error("expected tower position to be removed")
	}
}

func TestRemoveEnemyDropsAllComponents(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity()
	ecs.Enemies[id] = &component.Enemy{DefID: "gooner"}
	ecs.Positions[id] = &component.Position{}
	ecs.Velocities[id] = &component.Velocity{Speed: 50}
	ecs.Paths[id] = &component.Path{}
	ecs.Healths[id] = &component.Health{Value: 10, Max: 10}
	ecs.SlowEffects[id] = &component.SlowEffect{Until: 5}
	ecs.PoisonEffects[id] = &component.PoisonEffect{TicksLeft: 3}

	ecs.RemoveEnemy(id)

	if _, ok := ecs.Enemy(id); ok {
		t.Error("expected enemy to be gone")
	}
	if len(ecs.Positions)+len(ecs.Velocities)+len(ecs.Paths)+len(ecs.Healths)+len(ecs.SlowEffects)+len(ecs.PoisonEffects) != 0 {
		t.Error("expected every component of the enemy to be removed")
	}
}

func TestSortedIDs(t *testing.T) {
	ecs := NewECS()
	var want []types.EntityID
	for i := 0; i < 20; i++ {
		id := ecs.NewEntity()
		ecs.Enemies[id] = &component.Enemy{}
		want = append(want, id)
	}
	if got := ecs.EnemyIDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected ascending ids %v, got %v", want, got)
	}
	if got := ecs.ProjectileIDs(); len(got) != 0 {
		t.Errorf("expected no projectiles, got %v", got)
	}
}
