package system

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"math"
	"testing"
)

func TestMovementSpeed(t *testing.T) {
	tests := []struct {
		name         string
		kind         string
		slowed       bool
		wantProgress float64
	}{
		{name: "base speed", kind: defs.EnemyGooner, wantProgress: 0.05},
		{name: "slowed halves speed", kind: defs.EnemyGooner, slowed: true, wantProgress: 0.025},
		{name: "boss ignores slow", kind: defs.EnemyBoss, slowed: true, wantProgress: 0.018},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, 20)
			id := w.addEnemy(tt.kind, 5, 5, 100)
			w.ecs.Paths[id] = &component.Path{}
			if tt.slowed {
				w.ecs.SlowEffects[id] = &component.SlowEffect{Until: w.ecs.GameTime + 2}
			}

			w.movement.Update(1)

			path := w.ecs.Paths[id]
			if math.Abs(path.Progress-tt.wantProgress) > 1e-9 {
				t.Errorf("expected progress %v, got %v", tt.wantProgress, path.Progress)
			}
			pos := w.ecs.Positions[id]
			wantX := 5 + 1000*tt.wantProgress
			if math.Abs(pos.X-wantX) > 1e-9 || pos.Y != 5 {
				t.Errorf("expected position (%v,5), got (%v,%v)", wantX, pos.X, pos.Y)
			}
		})
	}
}

func TestSlowExpires(t *testing.T) {
	w := newTestWorld(t, 20)
	id := w.addEnemy(defs.EnemyGooner, 5, 5, 100)
	w.ecs.SlowEffects[id] = &component.SlowEffect{Until: 2}

	w.ecs.GameTime = 2
	if got := w.movement.EffectiveSpeed(id); got != 50 {
		t.Errorf("expected full speed once the slow expired, got %v", got)
	}
	w.status.Update(0)
	if _, ok := w.ecs.SlowEffects[id]; ok {
		t.Error("expected expired slow to be cleaned up")
	}
}

func TestMovementLeak(t *testing.T) {
	w := newTestWorld(t, 20)
	id := w.addEnemy(defs.EnemyGooner, 995, 5, 100)
	w.ecs.Paths[id] = &component.Path{Progress: 0.99}

	w.movement.Update(1)

	if _, ok := w.ecs.Enemy(id); ok {
		t.Fatal("expected enemy to leave the map")
	}
	if w.economy.Lives != 19 {
		t.Errorf("expected 19 lives, got %d", w.economy.Lives)
	}
	if len(w.events[event.EnemyLeaked]) != 1 {
		t.Errorf("expected one leak event, got %d", len(w.events[event.EnemyLeaked]))
	}
	if w.economy.Money != 0 || w.economy.TotalKills != 0 {
		t.Error("expected no reward for a leaked enemy")
	}
}

func TestMovementStopsOnGameOver(t *testing.T) {
	w := newTestWorld(t, 1)
	first := w.addEnemy(defs.EnemyGooner, 995, 5, 100)
	second := w.addEnemy(defs.EnemyGooner, 995, 5, 100)
	w.ecs.Paths[first] = &component.Path{Progress: 0.99}
	w.ecs.Paths[second] = &component.Path{Progress: 0.99}

	w.movement.Update(1)

	if !w.state.IsGameOver() {
		t.Fatal("expected game over")
	}
	if w.economy.Lives != 0 {
		t.Errorf("expected 0 lives, got %d", w.economy.Lives)
	}
	if len(w.events[event.GameOver]) != 1 {
		t.Errorf("expected exactly one GameOver event, got %d", len(w.events[event.GameOver]))
	}
	if path, ok := w.ecs.Paths[second]; !ok || path.Progress != 0.99 {
		t.Error("expected the rest of the pass to be skipped after game over")
	}
}
