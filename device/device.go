// Package device converts device-space rectangles into the unsigned sizes
// and scissor boxes that GPU APIs expect.
package device

import (
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/geom"
)

// Extent returns the texture size needed to hold r, with a single layer.
// Sentinel and inverted rectangles have zero width and height.
func Extent(r geom.IRect) gputypes.Extent3D {
	return gputypes.Extent3D{
		Width:              clampUint32(r.Width()),
		Height:             clampUint32(r.Height()),
		DepthOrArrayLayers: 1,
	}
}

// Scissor is a scissor rectangle relative to the top-left corner of a
// render target.
type Scissor struct {
	X, Y          uint32
	Width, Height uint32
}

// Rect returns s as an IRect in the device space of target.
func (s Scissor) Rect(target geom.IRect) geom.IRect {
	if s.Width == 0 || s.Height == 0 {
		return geom.EmptyIRect
	}
	x0 := int64(target.X0) + int64(s.X)
	y0 := int64(target.Y0) + int64(s.Y)
	return geom.IRect{
		X0: clampInt32(x0), Y0: clampInt32(y0),
		X1: clampInt32(x0 + int64(s.Width)), Y1: clampInt32(y0 + int64(s.Height)),
	}
}

// ScissorFor clips r to target and returns the result relative to target's
// origin. The boolean is false when nothing of r is visible, or when
// target itself is not a bounded, non-empty rectangle.
// An infinite r selects the whole target.
func ScissorFor(r, target geom.IRect) (Scissor, bool) {
	if target.IsInfinite() || target.Width() == 0 || target.Height() == 0 {
		return Scissor{}, false
	}
	x := r.Intersect(target)
	if x.Width() == 0 || x.Height() == 0 {
		return Scissor{}, false
	}
	return Scissor{
		X:      clampUint32(int64(x.X0) - int64(target.X0)),
		Y:      clampUint32(int64(x.Y0) - int64(target.Y0)),
		Width:  clampUint32(x.Width()),
		Height: clampUint32(x.Height()),
	}, true
}

func clampUint32(v int64) uint32 {
	if v < 0 {
		return 0
	}
	if v > int64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}

func clampInt32(v int64) int32 {
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}
