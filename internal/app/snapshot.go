package app

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/types"
	"math"
)

// Snapshot is a read-only copy of the simulation state for presentation.
// Entity slices are ordered by id.
type Snapshot struct {
	Money          int
	Lives          int
	Wave           int
	Combo          int
	ComboRemaining float64 // seconds left in the combo window, 0 without a combo
	Speed          float64
	WaveInProgress bool
	GameOver       bool
	TotalKills     int
	WavesSurvived  int
	QueuedEnemies  int

	Towers      []TowerView
	Enemies     []EnemyView
	Projectiles []ProjectileView
}

type TowerView struct {
	ID         types.EntityID
	Kind       string
	Cell       types.Cell
	X, Y       float64
	Level      int
	Range      float64
	Kills      int
	UpgradeFor int // cost of the next level, 0 at max level
	SellFor    int
}

type EnemyView struct {
	ID             types.EntityID
	Kind           string
	X, Y           float64
	HealthFraction float64
	Size           float64
	Slowed         bool
	Poisoned       bool
}

type ProjectileView struct {
	ID     types.EntityID
	Kind   string // tower kind that fired it
	Effect defs.EffectKind
	X, Y   float64
}

// Snapshot copies the current state. It never mutates the game.
func (g *Game) Snapshot() Snapshot {
	ecs := g.ECS
	eco := g.EconomySystem
	snap := Snapshot{
		Money:          eco.Money,
		Lives:          eco.Lives,
		Wave:           ecs.Wave.Number,
		Combo:          eco.Combo,
		Speed:          g.gameSpeed,
		WaveInProgress: ecs.Wave.InProgress,
		GameOver:       g.IsGameOver(),
		TotalKills:     eco.TotalKills,
		WavesSurvived:  eco.WavesCompleted,
		QueuedEnemies:  len(ecs.Wave.Queue),
	}
	if eco.Combo > 0 {
		snap.ComboRemaining = math.Max(0, config.ComboWindow-(ecs.GameTime-eco.LastKillTime))
	}

	for _, id := range ecs.TowerIDs() {
		tower := ecs.Towers[id]
		pos := ecs.Positions[id]
		view := TowerView{
			ID:    id,
			Kind:  tower.DefID,
			Cell:  tower.Cell,
			X:     pos.X,
			Y:     pos.Y,
			Level: tower.Level,
			Kills: tower.Kills,
		}
		if towerDef, ok := g.Catalog.Tower(tower.DefID); ok {
			view.Range = towerDef.Level(tower.Level).Range
			view.SellFor = SellValue(towerDef, tower.Level)
			if tower.Level < towerDef.MaxLevel() {
				view.UpgradeFor = towerDef.Levels[tower.Level+1].Cost
			}
		}
		snap.Towers = append(snap.Towers, view)
	}

	for _, id := range ecs.EnemyIDs() {
		enemy := ecs.Enemies[id]
		pos := ecs.Positions[id]
		view := EnemyView{
			ID:   id,
			Kind: enemy.DefID,
			X:    pos.X,
			Y:    pos.Y,
			Size: enemy.Size,
		}
		if health, ok := ecs.Healths[id]; ok {
			view.HealthFraction = health.Fraction()
		}
		if slow, ok := ecs.SlowEffects[id]; ok {
			view.Slowed = slow.Active(ecs.GameTime)
		}
		_, view.Poisoned = ecs.PoisonEffects[id]
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range ecs.ProjectileIDs() {
		proj := ecs.Projectiles[id]
		pos := ecs.Positions[id]
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			ID:     id,
			Kind:   proj.TowerID,
			Effect: proj.Effect,
			X:      pos.X,
			Y:      pos.Y,
		})
	}
	return snap
}
