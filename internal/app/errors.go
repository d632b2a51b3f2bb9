package app

import "errors"

// Command rejection reasons. A rejected command leaves the game untouched.
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutOfBounds       = errors.New("cell is out of bounds")
	ErrCellBlocked       = errors.New("cell is on the enemy route")
	ErrCellOccupied      = errors.New("cell already has a tower")
	ErrNoTower           = errors.New("no tower in cell")
	ErrMaxLevel          = errors.New("tower is at max level")
	ErrWaveInProgress    = errors.New("wave already in progress")
	ErrUnknownTowerKind  = errors.New("unknown tower kind")
	ErrGameOver          = errors.New("game is over")
)
