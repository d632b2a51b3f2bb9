package interfaces

import (
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/types"
)

// Game is the command and snapshot surface a frontend drives.
// *app.Game implements it.
type Game interface {
	Tick(realDelta float64)
	PlaceTower(kind string, cell types.Cell) (types.EntityID, error)
	SellTower(cell types.Cell) (int, error)
	UpgradeTower(cell types.Cell) error
	StartWave() error
	SetSpeed(multiplier float64) float64
	CycleSpeed(delta int) float64
	CanPlace(kind string, cell types.Cell) error
	Snapshot() app.Snapshot
}

var _ Game = (*app.Game)(nil)
