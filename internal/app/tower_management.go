// internal/app/tower_management.go
package app

import (
	"go-wave-defense/internal/component"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/event"
	"go-wave-defense/internal/types"
)

// PlaceTower attempts to place a level-0 tower of the given kind at the cell.
func (g *Game) PlaceTower(kind string, cell types.Cell) (types.EntityID, error) {
	if g.IsGameOver() {
		return types.NilEntity, ErrGameOver
	}
	towerDef, ok := g.Catalog.Tower(kind)
	if !ok {
		return types.NilEntity, ErrUnknownTowerKind
	}
	if err := g.canPlaceTower(cell); err != nil {
		return types.NilEntity, err
	}
	if !g.EconomySystem.Spend(towerDef.Levels[0].Cost) {
		return types.NilEntity, ErrInsufficientFunds
	}

	id := g.createTowerEntity(towerDef, cell)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: id})
	return id, nil
}

// SellTower removes the tower in the cell and refunds floor(invested * SellRefundPercent / 100).
func (g *Game) SellTower(cell types.Cell) (int, error) {
	if g.IsGameOver() {
		return 0, ErrGameOver
	}
	id, tower, ok := g.ECS.TowerAt(cell)
	if !ok {
		return 0, ErrNoTower
	}
	refund := 0
	if towerDef, known := g.Catalog.Tower(tower.DefID); known {
		refund = SellValue(towerDef, tower.Level)
	}

	g.ECS.RemoveTower(id)
	g.EconomySystem.Credit(refund)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerSold, Data: id})
	return refund, nil
}

// UpgradeTower raises the tower in the cell by one level, paying that level's cost.
// Projectiles already in flight keep the stats they were fired with.
func (g *Game) UpgradeTower(cell types.Cell) error {
	if g.IsGameOver() {
		return ErrGameOver
	}
	id, tower, ok := g.ECS.TowerAt(cell)
	if !ok {
		return ErrNoTower
	}
	towerDef, known := g.Catalog.Tower(tower.DefID)
	if !known {
		return ErrUnknownTowerKind
	}
	if tower.Level >= towerDef.MaxLevel() {
		return ErrMaxLevel
	}
	if !g.EconomySystem.Spend(towerDef.Levels[tower.Level+1].Cost) {
		return ErrInsufficientFunds
	}

	tower.Level++
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerUpgraded, Data: id})
	return nil
}

// CanPlace reports whether a tower of the given kind could be placed right now.
func (g *Game) CanPlace(kind string, cell types.Cell) error {
	towerDef, ok := g.Catalog.Tower(kind)
	if !ok {
		return ErrUnknownTowerKind
	}
	if err := g.canPlaceTower(cell); err != nil {
		return err
	}
	if !g.EconomySystem.CanAfford(towerDef.Levels[0].Cost) {
		return ErrInsufficientFunds
	}
	return nil
}

// SellValue returns the refund for a tower of the given definition and level.
func SellValue(towerDef *defs.TowerDefinition, level int) int {
	return towerDef.InvestedCost(level) * config.SellRefundPercent / 100
}

func (g *Game) canPlaceTower(cell types.Cell) error {
	if !g.TileMap.InBounds(cell) {
		return ErrOutOfBounds
	}
	if g.TileMap.IsBlocked(cell) {
		return ErrCellBlocked
	}
	if _, _, occupied := g.ECS.TowerAt(cell); occupied {
		return ErrCellOccupied
	}
	return nil
}

func (g *Game) createTowerEntity(towerDef *defs.TowerDefinition, cell types.Cell) types.EntityID {
	center := g.TileMap.CellCenter(cell)
	return g.ECS.AddTower(&component.Tower{
		DefID: towerDef.ID,
		Cell:  cell,
	}, component.Position{X: center.X, Y: center.Y})
}
