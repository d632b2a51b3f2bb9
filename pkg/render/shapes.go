package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// whiteImg - источник 1x1 для DrawTriangles, цвет задаётся в вершинах.
// Берём центр картинки 3x3, чтобы сглаживание не захватывало край.
var whiteImg = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// ShapeBuffer keeps vertex/index slices between frames to avoid reallocating.
type ShapeBuffer struct {
	vs []ebiten.Vertex
	is []uint16
}

// FillPath fills a closed vector path with a solid color.
func (b *ShapeBuffer) FillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	b.vs, b.is = path.AppendVerticesAndIndicesForFilling(b.vs[:0], b.is[:0])
	b.draw(dst, clr)
}

// StrokePath outlines a vector path.
func (b *ShapeBuffer) StrokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.Color) {
	b.vs, b.is = path.AppendVerticesAndIndicesForStroke(b.vs[:0], b.is[:0], &vector.StrokeOptions{Width: width})
	b.draw(dst, clr)
}

func (b *ShapeBuffer) draw(dst *ebiten.Image, clr color.Color) {
	r, g, bl, a := clr.RGBA()
	for i := range b.vs {
		b.vs[i].SrcX, b.vs[i].SrcY = 1, 1
		b.vs[i].ColorR = float32(r) / 0xffff
		b.vs[i].ColorG = float32(g) / 0xffff
		b.vs[i].ColorB = float32(bl) / 0xffff
		b.vs[i].ColorA = float32(a) / 0xffff
	}
	dst.DrawTriangles(b.vs, b.is, whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Triangle builds a closed triangle path.
func Triangle(x1, y1, x2, y2, x3, y3 float32) *vector.Path {
	var path vector.Path
	path.MoveTo(x1, y1)
	path.LineTo(x2, y2)
	path.LineTo(x3, y3)
	path.Close()
	return &path
}
