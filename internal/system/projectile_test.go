package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"testing"
)

func addProjectile(w *testWorld, x, y float64, proj component.Projectile) {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Projectiles[id] = &proj
}

func TestProjectileMovesTowardTarget(t *testing.T) {
	w := newTestWorld(t, 20)
	target := w.addEnemy(defs.EnemyGooner, 1000, 5, 100)
	addProjectile(w, 0, 5, component.Projectile{TargetID: target, Speed: 500, Damage: 10, Effect: defs.EffectSingle})

	w.projectile.Update(0.1)

	for id := range w.ecs.Projectiles {
		if pos := w.ecs.Positions[id]; pos.X != 50 || pos.Y != 5 {
			t.Errorf("expected projectile at (50,5), got (%v,%v)", pos.X, pos.Y)
		}
	}
	if w.health(target) != 100 {
		t.Error("expected no damage before impact")
	}
}

func TestProjectileHit(t *testing.T) {
	w := newTestWorld(t, 20)
	target := w.addEnemy(defs.EnemyGooner, 100, 5, 100)
	addProjectile(w, 95, 5, component.Projectile{TargetID: target, Speed: 500, Damage: 10, Effect: defs.EffectSingle})

	w.projectile.Update(0.001)

	if len(w.ecs.Projectiles) != 0 {
		t.Error("expected projectile to be consumed on impact")
	}
	if w.health(target) != 90 {
		t.Errorf("expected health 90, got %v", w.health(target))
	}
}

func TestProjectileLosesTarget(t *testing.T) {
	w := newTestWorld(t, 20)
	target := w.addEnemy(defs.EnemyGooner, 100, 5, 100)
	bystander := w.addEnemy(defs.EnemyGooner, 100, 5, 100)
	addProjectile(w, 95, 5, component.Projectile{TargetID: target, Speed: 500, Damage: 10, Effect: defs.EffectSplash, Special: 50})

	w.ecs.RemoveEnemy(target)
	w.projectile.Update(0.1)

	if len(w.ecs.Projectiles) != 0 {
		t.Error("expected orphaned projectile to be discarded")
	}
	if w.health(bystander) != 100 {
		t.Errorf("expected no effect from a projectile without a target, got health %v", w.health(bystander))
	}
}
