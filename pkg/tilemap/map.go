// pkg/tilemap/map.go
package tilemap

import (
	"go-wave-defense/internal/types"
	"go-wave-defense/pkg/utils"
	"math"
)

type Tile struct {
	OnRoute       bool
	CanPlaceTower bool
}

// TileMap - прямоугольная сетка клеток вместе с маршрутом врагов.
// Один экземпляр на игру; все системы получают его по указателю.
type TileMap struct {
	Cols, Rows int
	TileSize   float64
	Tiles      [][]Tile // [y][x]
	Route      *Route
}

// NewTileMap builds the grid and marks every in-bounds cell crossed by the path as blocked.
// Path points are cell coordinates; they may lie outside the grid (spawn and exit gates).
func NewTileMap(cols, rows int, tileSize float64, path []types.Cell) *TileMap {
	tiles := make([][]Tile, rows)
	for y := range tiles {
		tiles[y] = make([]Tile, cols)
		for x := range tiles[y] {
			tiles[y][x] = Tile{CanPlaceTower: true}
		}
	}

	tm := &TileMap{
		Cols:     cols,
		Rows:     rows,
		TileSize: tileSize,
		Tiles:    tiles,
	}
	for i := 0; i+1 < len(path); i++ {
		tm.blockLine(path[i], path[i+1])
	}

	waypoints := make([]Point, len(path))
	for i, c := range path {
		waypoints[i] = tm.CellCenter(c)
	}
	tm.Route = NewRoute(waypoints)
	return tm
}

// blockLine помечает клетки отрезка маршрута как непригодные для башен.
func (tm *TileMap) blockLine(from, to types.Cell) {
	dx := utils.Sign(to.X - from.X)
	dy := utils.Sign(to.Y - from.Y)
	x, y := from.X, from.Y
	for x != to.X || y != to.Y {
		tm.markRoute(x, y)
		if x != to.X {
			x += dx
		}
		if y != to.Y {
			y += dy
		}
	}
	tm.markRoute(x, y)
}

func (tm *TileMap) markRoute(x, y int) {
	if !tm.InBounds(types.Cell{X: x, Y: y}) {
		return
	}
	tm.Tiles[y][x] = Tile{OnRoute: true, CanPlaceTower: false}
}

// InBounds reports whether the cell lies on the grid.
func (tm *TileMap) InBounds(c types.Cell) bool {
	return c.X >= 0 && c.X < tm.Cols && c.Y >= 0 && c.Y < tm.Rows
}

// IsBlocked reports whether the route passes through an in-bounds cell.
func (tm *TileMap) IsBlocked(c types.Cell) bool {
	if !tm.InBounds(c) {
		return false
	}
	return !tm.Tiles[c.Y][c.X].CanPlaceTower
}

// CellCenter returns the pixel centre of a cell.
func (tm *TileMap) CellCenter(c types.Cell) Point {
	return Point{
		X: float64(c.X)*tm.TileSize + tm.TileSize/2,
		Y: float64(c.Y)*tm.TileSize + tm.TileSize/2,
	}
}

// PixelToCell converts a pixel position into the cell that contains it.
func (tm *TileMap) PixelToCell(x, y float64) types.Cell {
	return types.Cell{
		X: int(math.Floor(x / tm.TileSize)),
		Y: int(math.Floor(y / tm.TileSize)),
	}
}
