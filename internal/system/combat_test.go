package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"testing"
)

func TestFindTarget(t *testing.T) {
	w := newTestWorld(t, 20)
	from := &component.Position{X: 105, Y: 15}

	behind := w.addEnemy(defs.EnemyGooner, 100, 5, 100)
	ahead := w.addEnemy(defs.EnemyGooner, 200, 5, 100)
	w.addEnemy(defs.EnemyGooner, 400, 5, 100) // вне радиуса

	if got := w.combat.FindTarget(from, 130); got != ahead {
		t.Errorf("expected the enemy furthest along (%d), got %d", ahead, got)
	}
	if got := w.combat.FindTarget(from, 20); got != behind {
		t.Errorf("expected the only enemy in short range (%d), got %d", behind, got)
	}
	if got := w.combat.FindTarget(&component.Position{X: 900, Y: 900}, 50); got != types.NilEntity {
		t.Errorf("expected no target, got %d", got)
	}
}

func TestFindTargetTieGoesToLowestID(t *testing.T) {
	w := newTestWorld(t, 20)
	first := w.addEnemy(defs.EnemyGooner, 150, 5, 100)
	w.addEnemy(defs.EnemyGooner, 150, 5, 100)

	if got := w.combat.FindTarget(&component.Position{X: 150, Y: 50}, 100); got != first {
		t.Errorf("expected lowest id %d on a tie, got %d", first, got)
	}
}

func TestTowerCooldown(t *testing.T) {
	w := newTestWorld(t, 20)
	tower := w.addTower("laser", types.Cell{X: 10, Y: 1}, 0)
	w.addEnemy(defs.EnemyGooner, 150, 5, 1000)

	w.ecs.GameTime = 1
	w.combat.Update(0)
	w.combat.Update(0)
	if got := len(w.ecs.Projectiles); got != 1 {
		t.Fatalf("expected one projectile within the cooldown, got %d", got)
	}
	if w.ecs.Towers[tower].LastFired != 1 {
		t.Errorf("expected LastFired 1, got %v", w.ecs.Towers[tower].LastFired)
	}

	w.ecs.GameTime = 1.25
	w.combat.Update(0)
	if got := len(w.ecs.Projectiles); got != 2 {
		t.Errorf("expected a second shot after 1/fireRate, got %d projectiles", got)
	}
	if got := len(w.events[event.ProjectileFired]); got != 2 {
		t.Errorf("expected 2 ProjectileFired events, got %d", got)
	}
}

func TestTowerWithoutTargetKeepsCooldown(t *testing.T) {
	w := newTestWorld(t, 20)
	tower := w.addTower("laser", types.Cell{X: 10, Y: 1}, 0)

	w.ecs.GameTime = 5
	w.combat.Update(0)
	if len(w.ecs.Projectiles) != 0 {
		t.Fatal("expected no shot without enemies")
	}
	if w.ecs.Towers[tower].LastFired != 0 {
		t.Errorf("expected LastFired untouched, got %v", w.ecs.Towers[tower].LastFired)
	}
}

func TestProjectileKeepsStatsAfterUpgrade(t *testing.T) {
	w := newTestWorld(t, 20)
	tower := w.addTower("cannon", types.Cell{X: 10, Y: 1}, 0)
	w.addEnemy(defs.EnemyGooner, 150, 5, 1000)

	w.ecs.GameTime = 1
	w.combat.Update(0)
	w.ecs.Towers[tower].Level = 2

	for _, proj := range w.ecs.Projectiles {
		if proj.Damage != 30 || proj.Special != 30 || proj.Effect != defs.EffectSplash {
			t.Errorf("expected level-0 stats on the in-flight projectile, got %+v", proj)
		}
		if proj.SourceID != tower || proj.TowerID != "cannon" {
			t.Errorf("expected projectile to remember its tower, got %+v", proj)
		}
	}
}
