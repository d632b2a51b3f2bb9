package defs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("DefaultCatalog: %v", err)
	}

	wantTowers := []string{"cannon", "laser", "frost", "missile", "tesla", "venom"}
	if len(catalog.TowerOrder) != len(wantTowers) {
		t.Fatalf("expected %d towers, got %v", len(wantTowers), catalog.TowerOrder)
	}
	for i, id := range wantTowers {
		if catalog.TowerOrder[i] != id {
			t.Errorf("tower %d: expected %s, got %s", i, id, catalog.TowerOrder[i])
		}
	}
	for _, id := range WaveEnemyIDs() {
		if _, ok := catalog.Enemy(id); !ok {
			t.Errorf("expected enemy %s in default catalog", id)
		}
	}

	cannon, _ := catalog.Tower("cannon")
	if cannon.Effect != EffectSplash {
		t.Errorf("expected cannon to splash, got %s", cannon.Effect)
	}
	if got := cannon.InvestedCost(2); got != 500 {
		t.Errorf("expected cannon invested cost 500 at max level, got %d", got)
	}
	if got := cannon.Level(99).Damage; got != 80 {
		t.Errorf("expected Level to clamp to max level, got damage %v", got)
	}
}

const validCatalog = `
towers:
  - id: laser
    name: Laser
    effect: single
    levels:
      - { damage: 15, range: 130, fireRate: 4, cost: 120 }
enemies:
  - { id: gooner, name: G, health: 100, speed: 50, reward: 10, healthScaling: 1.15 }
  - { id: edgelord, name: E, health: 50, speed: 110, reward: 8, healthScaling: 1.12 }
  - { id: chonker, name: C, health: 500, speed: 22, reward: 30, healthScaling: 1.2 }
  - { id: copium, name: H, health: 80, speed: 40, reward: 25, healthScaling: 1.1, ability: heals-nearby }
  - { id: final_boss, name: B, health: 3000, speed: 18, reward: 300, healthScaling: 1.5, ability: immune-to-slow }
`

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{name: "valid", mutate: func(s string) string { return s }},
		{
			name:    "unknown effect",
			mutate:  func(s string) string { return strings.Replace(s, "effect: single", "effect: laser", 1) },
			wantErr: "unknown effect",
		},
		{
			name:    "zero fire rate",
			mutate:  func(s string) string { return strings.Replace(s, "fireRate: 4", "fireRate: 0", 1) },
			wantErr: "fireRate must be > 0",
		},
		{
			name: "splash without radius",
			mutate: func(s string) string {
				return strings.Replace(s, "effect: single", "effect: splash", 1)
			},
			wantErr: "needs special > 0",
		},
		{
			name:    "shrinking health",
			mutate:  func(s string) string { return strings.Replace(s, "healthScaling: 1.15", "healthScaling: 0.9", 1) },
			wantErr: "healthScaling must be >= 1",
		},
		{
			name:    "unknown ability",
			mutate:  func(s string) string { return strings.Replace(s, "ability: heals-nearby", "ability: teleports", 1) },
			wantErr: "unknown ability",
		},
		{
			name:    "missing wave enemy",
			mutate:  func(s string) string { return strings.Replace(s, "id: copium", "id: hopium", 1) },
			wantErr: `needs enemy "copium"`,
		},
		{
			name: "duplicate tower",
			mutate: func(s string) string {
				return strings.Replace(s, "enemies:", `  - id: laser
    name: Laser2
    effect: single
    levels:
      - { damage: 1, range: 1, fireRate: 1, cost: 1 }
enemies:`, 1)
			},
			wantErr: `duplicate tower id "laser"`,
		},
		{
			name:    "broken yaml",
			mutate:  func(s string) string { return s + "\n  - [" },
			wantErr: "failed to unmarshal catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := ParseCatalog([]byte(tt.mutate(validCatalog)))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				if _, ok := catalog.Tower("laser"); !ok {
					t.Error("expected laser in parsed catalog")
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(validCatalog), 0o644); err != nil {
		t.Fatal(err)
	}
	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(catalog.Towers) != 1 || len(catalog.Enemies) != 5 {
		t.Errorf("expected 1 tower and 5 enemies, got %d and %d", len(catalog.Towers), len(catalog.Enemies))
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
