// internal/app/game.go
package app

import (
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/entity"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/system"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/tilemap"
	"math"
)

// Game is the simulation core. It owns every entity and counter; collaborators drive it
// with Tick and mutate it only through the command methods.
type Game struct {
	TileMap         *tilemap.TileMap
	Catalog         *defs.Catalog
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	WaveSystem         *system.WaveSystem
	MovementSystem     *system.MovementSystem
	HealAuraSystem     *system.HealAuraSystem
	StatusEffectSystem *system.StatusEffectSystem
	CombatSystem       *system.CombatSystem
	ProjectileSystem   *system.ProjectileSystem
	DamageSystem       *system.DamageSystem
	EconomySystem      *system.EconomySystem
	StateSystem        *system.StateSystem

	gameSpeed float64
}

// NewGame initializes a new game instance.
func NewGame(catalog *defs.Catalog, settings config.Settings) *Game {
	if catalog == nil {
		panic("catalog cannot be nil")
	}

	path := make([]types.Cell, len(settings.Map.Path))
	for i, p := range settings.Map.Path {
		path[i] = types.Cell{X: p[0], Y: p[1]}
	}
	tileMap := tilemap.NewTileMap(settings.Map.Cols, settings.Map.Rows, settings.Map.TileSize, path)

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(settings.Seed)

	g := &Game{
		TileMap:         tileMap,
		Catalog:         catalog,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Rng:             rng,
		gameSpeed:       1,
	}
	g.EconomySystem = system.NewEconomySystem(ecs, eventDispatcher, settings.StartingMoney, settings.StartingLives)
	g.StateSystem = system.NewStateSystem(g.EconomySystem, eventDispatcher)
	g.DamageSystem = system.NewDamageSystem(ecs, eventDispatcher)
	g.WaveSystem = system.NewWaveSystem(ecs, tileMap, catalog, rng, eventDispatcher)
	g.MovementSystem = system.NewMovementSystem(ecs, tileMap.Route, eventDispatcher, g.StateSystem)
	g.HealAuraSystem = system.NewHealAuraSystem(ecs)
	g.StatusEffectSystem = system.NewStatusEffectSystem(ecs, g.DamageSystem)
	g.CombatSystem = system.NewCombatSystem(ecs, catalog, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g.DamageSystem)
	return g
}

// Tick runs one fixed-order update pass. realDelta is unscaled seconds since the last
// tick; the speed multiplier is applied here and nowhere else.
func (g *Game) Tick(realDelta float64) {
	if g.IsGameOver() || realDelta <= 0 {
		return
	}
	deltaTime := realDelta * g.gameSpeed
	g.ECS.GameTime += deltaTime

	g.WaveSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	if g.IsGameOver() {
		return
	}
	g.HealAuraSystem.Update(deltaTime)
	g.StatusEffectSystem.Update(deltaTime)
	g.CombatSystem.Update(deltaTime)
	g.ProjectileSystem.Update(deltaTime)
	g.EconomySystem.Update(deltaTime)
	g.WaveSystem.CheckCompletion()
}

// StartWave begins the next wave. Rejected while a wave is running.
func (g *Game) StartWave() error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	if _, ok := g.WaveSystem.StartWave(); !ok {
		return ErrWaveInProgress
	}
	return nil
}

// SetSpeed snaps the multiplier to the nearest supported value and returns it.
func (g *Game) SetSpeed(multiplier float64) float64 {
	best := config.SpeedMultipliers[0]
	for _, m := range config.SpeedMultipliers {
		if math.Abs(m-multiplier) < math.Abs(best-multiplier) {
			best = m
		}
	}
	g.gameSpeed = best
	return best
}

// CycleSpeed steps through the supported multipliers by delta, clamped at both ends.
func (g *Game) CycleSpeed(delta int) float64 {
	idx := 0
	for i, m := range config.SpeedMultipliers {
		if m == g.gameSpeed {
			idx = i
		}
	}
	idx += delta
	if idx < 0 {
		idx = 0
	}
	if idx >= len(config.SpeedMultipliers) {
		idx = len(config.SpeedMultipliers) - 1
	}
	g.gameSpeed = config.SpeedMultipliers[idx]
	return g.gameSpeed
}

// Speed returns the current speed multiplier.
func (g *Game) Speed() float64 {
	return g.gameSpeed
}

// IsGameOver reports whether lives have run out; ticking stops from then on.
func (g *Game) IsGameOver() bool {
	return g.StateSystem.IsGameOver()
}
