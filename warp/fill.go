package warp

import (
	"image"
	"image/draw"

	"github.com/gogpu/geom"
	"golang.org/x/image/vector"
)

// FillRect paints src through the rectangle r mapped by m. Under a
// rotation or shear the filled shape is the transformed quadrilateral, not
// its bounding box, and its edges are anti-aliased. src is aligned with
// destination space, so an image.Uniform gives a solid fill.
//
// geom.InfiniteRect fills everything inside the destination and clip.
// It returns the destination rectangle that may have been modified, or
// geom.EmptyIRect when nothing was drawn. WithInterpolator has no effect.
func FillRect(dst draw.Image, m geom.Matrix, r geom.Rect, src image.Image, opts ...Option) geom.IRect {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if r.IsEmpty() {
		return geom.EmptyIRect
	}

	area := geom.InfiniteIRect
	if !r.IsInfinite() {
		area = r.Transform(m).Cover()
	}
	area = area.
		Intersect(geom.IRectFromImage(dst.Bounds())).
		Intersect(o.clip)
	if area.Width() == 0 || area.Height() == 0 {
		return geom.EmptyIRect
	}

	// The rasterizer covers exactly area, with its origin at area's corner.
	toArea := geom.Translate(-float64(area.X0), -float64(area.Y0))
	var quad [4]geom.Point
	if r.IsInfinite() {
		quad = corners(geom.RectFromIRect(area))
		m = geom.Identity
	} else {
		quad = corners(r)
	}
	m = m.Concat(toArea)

	z := vector.NewRasterizer(int(area.Width()), int(area.Height()))
	z.DrawOp = o.op
	for i, p := range quad {
		p = m.TransformPoint(p)
		if i == 0 {
			z.MoveTo(float32(p.X), float32(p.Y))
		} else {
			z.LineTo(float32(p.X), float32(p.Y))
		}
	}
	z.ClosePath()

	rect := area.Image()
	z.Draw(dst, rect, src, rect.Min)
	return area
}

func corners(r geom.Rect) [4]geom.Point {
	return [4]geom.Point{
		{X: r.X0, Y: r.Y0},
		{X: r.X1, Y: r.Y0},
		{X: r.X1, Y: r.Y1},
		{X: r.X0, Y: r.Y1},
	}
}
