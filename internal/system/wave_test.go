package system

import (
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"testing"
)

func TestStartWave(t *testing.T) {
	w := newTestWorld(t, 20)

	waveDef, ok := w.waves.StartWave()
	if !ok {
		t.Fatal("expected first wave to start")
	}
	if waveDef.Number != 1 || w.ecs.Wave.Number != 1 {
		t.Errorf("expected wave 1, got %d", w.ecs.Wave.Number)
	}
	if len(w.ecs.Wave.Queue) != waveDef.TotalEnemies() {
		t.Errorf("expected %d queued enemies, got %d", waveDef.TotalEnemies(), len(w.ecs.Wave.Queue))
	}
	if _, ok := w.waves.StartWave(); ok {
		t.Error("expected second StartWave to be rejected while in progress")
	}
	if w.ecs.Wave.Number != 1 {
		t.Errorf("expected rejected start to change nothing, got wave %d", w.ecs.Wave.Number)
	}
}

func TestWaveQueueKeepsComposition(t *testing.T) {
	w := newTestWorld(t, 20)
	w.ecs.Wave.Number = 9
	waveDef, _ := w.waves.StartWave()
	if waveDef.Number != defs.BossWavePeriod {
		t.Fatalf("expected boss wave %d, got %d", defs.BossWavePeriod, waveDef.Number)
	}

	counts := map[string]int{}
	for _, entry := range w.ecs.Wave.Queue {
		counts[entry.EnemyID]++
	}
	for _, g := range waveDef.Groups {
		if counts[g.EnemyID] != g.Count {
			t.Errorf("%s: expected %d in queue, got %d", g.EnemyID, g.Count, counts[g.EnemyID])
		}
		for _, entry := range w.ecs.Wave.Queue {
			if entry.EnemyID == g.EnemyID && entry.Delay != g.SpawnInterval.Seconds() {
				t.Errorf("%s: expected delay %v to travel with the entry, got %v", g.EnemyID, g.SpawnInterval.Seconds(), entry.Delay)
			}
		}
	}
}

func TestWaveSpawning(t *testing.T) {
	w := newTestWorld(t, 20)
	w.waves.StartWave()

	w.waves.Update(0.5)
	if len(w.ecs.Enemies) != 0 {
		t.Fatal("expected no spawn before the head delay elapsed")
	}
	w.waves.Update(0.3)
	if len(w.ecs.Enemies) != 1 {
		t.Fatalf("expected one spawn after 0.8s, got %d", len(w.ecs.Enemies))
	}
	if w.ecs.Wave.SpawnTimer != 0 {
		t.Errorf("expected spawn timer reset, got %v", w.ecs.Wave.SpawnTimer)
	}

	w.waves.Update(10)
	if len(w.ecs.Enemies) != 2 {
		t.Errorf("expected at most one spawn per update, got %d enemies", len(w.ecs.Enemies))
	}

	for _, id := range w.ecs.EnemyIDs() {
		enemy := w.ecs.Enemies[id]
		if enemy.Reward != 10+2 {
			t.Errorf("expected reward fixed at spawn to 12, got %d", enemy.Reward)
		}
		if h := w.ecs.Healths[id]; h.Value != 100 || h.Max != 100 {
			t.Errorf("expected wave-1 gooner health 100, got %+v", h)
		}
		pos := w.ecs.Positions[id]
		start := w.tileMap.Route.Start()
		if pos.X != start.X || pos.Y != start.Y {
			t.Errorf("expected spawn at route start, got (%v,%v)", pos.X, pos.Y)
		}
	}
	if len(w.events[event.EnemySpawned]) != 2 {
		t.Errorf("expected 2 spawn events, got %d", len(w.events[event.EnemySpawned]))
	}
}

func TestWaveCompletesOnce(t *testing.T) {
	w := newTestWorld(t, 20)
	w.waves.StartWave()

	w.waves.CheckCompletion()
	if !w.ecs.Wave.InProgress {
		t.Fatal("expected wave to stay in progress while the queue is not empty")
	}

	w.ecs.Wave.Queue = nil
	id := w.addEnemy(defs.EnemyGooner, 100, 5, 100)
	w.waves.CheckCompletion()
	if !w.ecs.Wave.InProgress {
		t.Fatal("expected wave to stay in progress while enemies are alive")
	}

	w.ecs.RemoveEnemy(id)
	w.waves.CheckCompletion()
	w.waves.CheckCompletion()
	if w.ecs.Wave.InProgress {
		t.Error("expected wave to end")
	}
	if got := len(w.events[event.WaveEnded]); got != 1 {
		t.Errorf("expected exactly one WaveEnded, got %d", got)
	}
	if w.economy.Money != 65 {
		t.Errorf("expected wave-1 bonus 65, got %d", w.economy.Money)
	}
}

func TestWaveNumbersAdvance(t *testing.T) {
	w := newTestWorld(t, 20)
	for want := 1; want <= 3; want++ {
		waveDef, ok := w.waves.StartWave()
		if !ok || waveDef.Number != want {
			t.Fatalf("expected wave %d to start, got %d (ok=%v)", want, waveDef.Number, ok)
		}
		w.ecs.Wave.Queue = nil
		w.waves.CheckCompletion()
	}
}
