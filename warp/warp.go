// Package warp draws images through geom matrices.
//
// The destination footprint is computed with geom rectangle arithmetic
// (transformed bounding box, covering integer conversion, intersection
// with the destination and the clip) and the resampling itself is done by
// golang.org/x/image/draw.
package warp

import (
	"image"
	"image/draw"

	"github.com/gogpu/geom"
	xdraw "golang.org/x/image/draw"
)

// Footprint returns the destination pixels that the source rectangle sr
// can touch when mapped through m, before any clipping.
// An empty source gives geom.EmptyIRect.
func Footprint(m geom.Matrix, sr image.Rectangle) geom.IRect {
	src := geom.IRectFromImage(sr)
	if src.IsEmpty() {
		return geom.EmptyIRect
	}
	return geom.RectFromIRect(src).Transform(m).Cover()
}

// Draw maps the sr part of src into dst through m, where m takes source
// pixel coordinates to destination pixel coordinates.
//
// It returns the destination rectangle that may have been modified, or
// geom.EmptyIRect when nothing was drawn: no overlap with the destination
// or clip, an empty source, or a matrix that cannot be inverted (resampling
// needs the destination to source mapping).
func Draw(dst draw.Image, m geom.Matrix, src image.Image, sr image.Rectangle, opts ...Option) geom.IRect {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if _, err := m.Inverse(); err != nil {
		geom.Logger().Debug("warp: skipping draw", "matrix", m, "err", err)
		return geom.EmptyIRect
	}

	sr = sr.Intersect(src.Bounds())
	area := Footprint(m, sr).
		Intersect(geom.IRectFromImage(dst.Bounds())).
		Intersect(o.clip)
	if area.Width() == 0 || area.Height() == 0 {
		return geom.EmptyIRect
	}

	var xopts *xdraw.Options
	if !o.clip.IsInfinite() {
		// image.Rectangle is itself an opaque-inside mask image.
		xopts = &xdraw.Options{DstMask: area.Image()}
	}
	o.interp.Transform(dst, m.Aff3(), src, sr, o.op, xopts)

	geom.Logger().Debug("warp: drew", "area", area)
	return area
}
