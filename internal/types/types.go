// internal/types/types.go
package types

// EntityID - уникальный идентификатор сущности. Ноль никогда не выдаётся.
type EntityID uint64

// NilEntity is the zero value; no live entity carries it.
const NilEntity EntityID = 0

// Cell is a grid coordinate in tiles.
type Cell struct {
	X, Y int
}
