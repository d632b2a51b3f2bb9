// pkg/render/board_renderer.go
package render

import (
	"go-wave-defense/internal/app"
	"go-wave-defense/internal/config"
	"go-wave-defense/internal/types"
	"go-wave-defense/internal/utils"
	"go-wave-defense/pkg/tilemap"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Overlay describes the transient, input-driven parts of a frame.
type Overlay struct {
	SelectedTower types.EntityID
	HoverCell     types.Cell
	HasHover      bool
	HoverValid    bool
	HoverRange    float64 // радиус башни, выбранной для постройки; 0 - без превью
}

// BoardRenderer рисует поле: фон предрендерен один раз, сущности - каждый кадр.
type BoardRenderer struct {
	tileMap  *tilemap.TileMap
	colors   BoardColors
	palette  *Palette
	fontFace font.Face
	shapes   ShapeBuffer
	mapImage *ebiten.Image
}

func NewBoardRenderer(tileMap *tilemap.TileMap, palette *Palette, fontFace font.Face, colors BoardColors) *BoardRenderer {
	width := int(math.Ceil(float64(tileMap.Cols) * tileMap.TileSize))
	height := int(math.Ceil(float64(tileMap.Rows) * tileMap.TileSize))

	renderer := &BoardRenderer{
		tileMap:  tileMap,
		colors:   colors,
		palette:  palette,
		fontFace: fontFace,
		mapImage: ebiten.NewImage(width, height),
	}
	renderer.RenderMapImage()
	return renderer
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *BoardRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	ts := float32(r.tileMap.TileSize)

	for y, row := range r.tileMap.Tiles {
		for x, tile := range row {
			if !tile.OnRoute {
				continue
			}
			vector.DrawFilledRect(r.mapImage, float32(x)*ts, float32(y)*ts, ts, ts, r.colors.PathColor, false)
		}
	}

	// Кромка дороги: линия по центру маршрута поверх заливки
	wps := r.tileMap.Route.Waypoints
	for i := 0; i+1 < len(wps); i++ {
		vector.StrokeLine(r.mapImage, float32(wps[i].X), float32(wps[i].Y), float32(wps[i+1].X), float32(wps[i+1].Y),
			ts*0.15, r.colors.PathEdgeColor, true)
	}

	for x := 0; x <= r.tileMap.Cols; x++ {
		vector.StrokeLine(r.mapImage, float32(x)*ts, 0, float32(x)*ts, float32(r.tileMap.Rows)*ts, r.colors.StrokeWidth, r.colors.GridLineColor, false)
	}
	for y := 0; y <= r.tileMap.Rows; y++ {
		vector.StrokeLine(r.mapImage, 0, float32(y)*ts, float32(r.tileMap.Cols)*ts, float32(y)*ts, r.colors.StrokeWidth, r.colors.GridLineColor, false)
	}

	if len(wps) >= 2 {
		r.drawGate(wps[0], wps[1], r.colors.EntryColor)
		r.drawGate(wps[len(wps)-1], wps[len(wps)-2], r.colors.ExitColor)
	}
}

// drawGate рисует стрелку на краю поля там, где маршрут входит или выходит.
func (r *BoardRenderer) drawGate(gate, neighbour tilemap.Point, clr color.RGBA) {
	bounds := r.mapImage.Bounds()
	x := utils.Clamp(gate.X, 0, float64(bounds.Dx()))
	y := utils.Clamp(gate.Y, 0, float64(bounds.Dy()))
	size := float32(r.tileMap.TileSize) * 0.3

	dx, dy := neighbour.X-gate.X, neighbour.Y-gate.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	dx, dy = dx/length, dy/length
	fx, fy := float32(x), float32(y)
	tipX, tipY := fx+float32(dx)*size, fy+float32(dy)*size
	// Перпендикуляр к направлению маршрута
	px, py := float32(-dy)*size, float32(dx)*size
	r.shapes.FillPath(r.mapImage, Triangle(tipX, tipY, fx+px, fy+py, fx-px, fy-py), clr)
}

// Draw renders the board, the entities of the snapshot and the overlay.
func (r *BoardRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, overlay Overlay) {
	screen.DrawImage(r.mapImage, nil)

	r.drawPlacementPreview(screen, overlay)
	r.drawTowers(screen, snap.Towers, overlay.SelectedTower)
	r.drawEnemies(screen, snap.Enemies)
	r.drawProjectiles(screen, snap.Projectiles)
}

func (r *BoardRenderer) drawPlacementPreview(screen *ebiten.Image, overlay Overlay) {
	if !overlay.HasHover || !r.tileMap.InBounds(overlay.HoverCell) {
		return
	}
	ts := float32(r.tileMap.TileSize)
	x := float32(overlay.HoverCell.X) * ts
	y := float32(overlay.HoverCell.Y) * ts

	clr := config.InvalidColor
	if overlay.HoverValid {
		clr = config.ValidColor
	}
	vector.DrawFilledRect(screen, x, y, ts, ts, WithAlpha(clr, 90), false)
	vector.StrokeRect(screen, x, y, ts, ts, 2, clr, false)

	if overlay.HoverRange > 0 {
		center := r.tileMap.CellCenter(overlay.HoverCell)
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(overlay.HoverRange), 1.5, clr, true)
	}
}
