package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
	"testing"
)

func TestSplashRadius(t *testing.T) {
	w := newTestWorld(t, 20)
	target := w.addEnemy(defs.EnemyGooner, 100, 100, 100)
	inside := w.addEnemy(defs.EnemyGooner, 120, 100, 100)
	edge := w.addEnemy(defs.EnemyGooner, 130, 100, 100)
	outside := w.addEnemy(defs.EnemyGooner, 200, 100, 100)

	w.damage.ResolveImpact(&component.Projectile{TargetID: target, Damage: 30, Effect: defs.EffectSplash, Special: 30})

	tests := []struct {
		name string
		id   types.EntityID
		want float64
	}{
		{"target takes full damage", target, 70},
		{"neighbour inside radius takes half", inside, 85},
		{"enemy exactly at radius is untouched", edge, 100},
		{"enemy outside radius is untouched", outside, 100},
	}
	for _, tt := range tests {
		if got := w.health(tt.id); got != tt.want {
			t.Errorf("%s: expected health %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSplashKillsAreCredited(t *testing.T) {
	w := newTestWorld(t, 20)
	tower := w.addTower("cannon", types.Cell{X: 10, Y: 3}, 0)
	target := w.addEnemy(defs.EnemyGooner, 100, 100, 10)
	w.addEnemy(defs.EnemyGooner, 110, 100, 10)

	w.damage.ResolveImpact(&component.Projectile{TargetID: target, SourceID: tower, Damage: 30, Effect: defs.EffectSplash, Special: 30})

	if got := len(w.events[event.EnemyKilled]); got != 2 {
		t.Fatalf("expected 2 kills, got %d", got)
	}
	if len(w.ecs.Enemies) != 0 {
		t.Errorf("expected all enemies removed, got %d", len(w.ecs.Enemies))
	}
	if got := w.ecs.Towers[tower].Kills; got != 2 {
		t.Errorf("expected tower to be credited 2 kills, got %d", got)
	}
}

func TestChainHitsAtMostSpecialTargets(t *testing.T) {
	w := newTestWorld(t, 20)
	var ids []types.EntityID
	for i := 0; i < 5; i++ {
		ids = append(ids, w.addEnemy(defs.EnemyGooner, float64(100+i*50), 100, 100))
	}

	w.damage.ResolveImpact(&component.Projectile{TargetID: ids[0], Damage: 20, Effect: defs.EffectChain, Special: 3})

	want := []float64{80, 86, 86, 100, 100}
	for i, id := range ids {
		if got := w.health(id); got != want[i] {
			t.Errorf("enemy %d: expected health %v, got %v", i, want[i], got)
		}
	}
}

func TestChainNeverRevisits(t *testing.T) {
	w := newTestWorld(t, 20)
	a := w.addEnemy(defs.EnemyGooner, 100, 100, 100)
	b := w.addEnemy(defs.EnemyGooner, 150, 100, 100)

	w.damage.ResolveImpact(&component.Projectile{TargetID: a, Damage: 20, Effect: defs.EffectChain, Special: 5})

	if got := w.health(a); got != 80 {
		t.Errorf("expected primary hit exactly once, got health %v", got)
	}
	if got := w.health(b); got != 86 {
		t.Errorf("expected secondary hit exactly once, got health %v", got)
	}
}

func TestChainStopsWithoutNeighbour(t *testing.T) {
	w := newTestWorld(t, 20)
	a := w.addEnemy(defs.EnemyGooner, 100, 100, 100)
	far := w.addEnemy(defs.EnemyGooner, 250, 100, 100)

	w.damage.ResolveImpact(&component.Projectile{TargetID: a, Damage: 20, Effect: defs.EffectChain, Special: 3})

	if got := w.health(far); got != 100 {
		t.Errorf("expected chain not to reach enemy 150 away, got health %v", got)
	}
}

func TestChainJumpsFromDeadVictim(t *testing.T) {
	w := newTestWorld(t, 20)
	a := w.addEnemy(defs.EnemyGooner, 100, 100, 5)
	b := w.addEnemy(defs.EnemyGooner, 180, 100, 100)
	c := w.addEnemy(defs.EnemyGooner, 260, 100, 100)

	w.damage.ResolveImpact(&component.Projectile{TargetID: a, Damage: 20, Effect: defs.EffectChain, Special: 3})

	if _, alive := w.ecs.Enemy(a); alive {
		t.Error("expected primary target to die")
	}
	if w.health(b) != 86 || w.health(c) != 86 {
		t.Errorf("expected chain to continue past the dead target, got %v and %v", w.health(b), w.health(c))
	}
}

func TestSlowApplication(t *testing.T) {
	w := newTestWorld(t, 20)
	w.ecs.GameTime = 10
	gooner := w.addEnemy(defs.EnemyGooner, 100, 100, 100)
	boss := w.addEnemy(defs.EnemyBoss, 300, 100, 1000)

	w.damage.ResolveImpact(&component.Projectile{TargetID: gooner, Damage: 10, Effect: defs.EffectSlow, Special: 30})
	w.damage.ResolveImpact(&component.Projectile{TargetID: boss, Damage: 10, Effect: defs.EffectSlow, Special: 30})

	slow, ok := w.ecs.SlowEffects[gooner]
	if !ok {
		t.Fatal("expected gooner to be slowed")
	}
	if slow.Until != 12 {
		t.Errorf("expected slow until 12, got %v", slow.Until)
	}
	if _, ok := w.ecs.SlowEffects[boss]; ok {
		t.Error("expected boss to shrug off the slow")
	}
	if w.health(boss) != 990 {
		t.Errorf("expected boss to still take damage, got %v", w.health(boss))
	}

	// Повторное попадание продлевает, а не складывает
	w.ecs.GameTime = 11
	w.damage.ResolveImpact(&component.Projectile{TargetID: gooner, Damage: 10, Effect: defs.EffectSlow, Special: 30})
	if got := w.ecs.SlowEffects[gooner].Until; got != 13 {
		t.Errorf("expected refreshed slow until 13, got %v", got)
	}
}

func TestDotAttachesPoison(t *testing.T) {
	w := newTestWorld(t, 20)
	id := w.addEnemy(defs.EnemyGooner, 100, 100, 100)

	w.damage.ResolveImpact(&component.Projectile{TargetID: id, Damage: 12, Effect: defs.EffectDot, Special: 3})

	if w.health(id) != 100 {
		t.Errorf("expected no impact damage, got health %v", w.health(id))
	}
	poison, ok := w.ecs.PoisonEffects[id]
	if !ok {
		t.Fatal("expected poison to be attached")
	}
	if poison.TicksLeft != 3 || poison.DamagePerTick != 12 {
		t.Errorf("expected 3 ticks of 12, got %d ticks of %v", poison.TicksLeft, poison.DamagePerTick)
	}
}

func TestApplyMissingEnemyIsNoop(t *testing.T) {
	w := newTestWorld(t, 20)
	if w.damage.Apply(types.EntityID(42), 100, types.NilEntity) {
		t.Error("expected no kill for a missing enemy")
	}
	if len(w.events[event.EnemyKilled]) != 0 {
		t.Error("expected no kill event")
	}
}
