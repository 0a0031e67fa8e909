// Package glyphbox computes ink bounding boxes of shaped glyph runs.
//
// Glyph metrics come from github.com/go-text/typesetting/shaping in 26.6
// fixed point and y-up font space. Run places each glyph at its pen
// position and maps the resulting boxes through a text matrix, so the
// returned rectangle is in whatever space the matrix targets (usually
// device space with y pointing down).
package glyphbox

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/geom"
)

// Glyph returns the ink box of g with its pen at origin, in font space.
// Offsets are applied before the bearings. Glyphs without ink (zero width
// or height, such as spaces) return geom.EmptyRect.
func Glyph(g shaping.Glyph, origin geom.Point) geom.Rect {
	if g.Width == 0 || g.Height == 0 {
		return geom.EmptyRect
	}
	dot := origin.Add(fixedPt(g.XOffset, g.YOffset))
	p0 := dot.Add(fixedPt(g.XBearing, g.YBearing))
	p1 := p0.Add(fixedPt(g.Width, g.Height))
	return geom.RectFromPoints(p0, p1)
}

// Run returns the union of the ink boxes of glyphs transformed by trm.
// The pen starts at the origin and moves by each glyph's Advance, along y
// for vertical directions and along x otherwise.
// An empty run, or one made only of blank glyphs, returns geom.EmptyRect.
func Run(glyphs []shaping.Glyph, dir di.Direction, trm geom.Matrix) geom.Rect {
	bounds := geom.EmptyRect
	var pen geom.Point
	vertical := dir.IsVertical()

	for i := range glyphs {
		g := &glyphs[i]
		if box := Glyph(*g, pen); !box.IsEmpty() {
			bounds = bounds.Union(box.Transform(trm))
		}
		adv := geom.PointFromFixed(fixed.Point26_6{X: g.Advance}).X
		if vertical {
			pen.Y += adv
		} else {
			pen.X += adv
		}
	}
	return bounds
}

func fixedPt(x, y fixed.Int26_6) geom.Point {
	return geom.PointFromFixed(fixed.Point26_6{X: x, Y: y})
}
