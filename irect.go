package geom

import (
	"fmt"
	"image"
	"math"
)

// IRect is an axis-aligned rectangle in device (pixel) space.
//
// Coordinates are 32-bit so that overflow behaviour is the same on every
// platform. IRect shares the sentinel patterns of Rect: EmptyIRect
// {0, 0, 0, 0} and InfiniteIRect {1, 1, -1, -1}, both compared by exact
// equality and both checked before any arithmetic.
type IRect struct {
	X0, Y0 int32
	X1, Y1 int32
}

var (
	// EmptyIRect is the integer rectangle that contains nothing.
	EmptyIRect = IRect{0, 0, 0, 0}

	// InfiniteIRect is the integer rectangle that contains everything.
	InfiniteIRect = IRect{1, 1, -1, -1}

	// UnitIRect covers the single pixel at the origin.
	UnitIRect = IRect{0, 0, 1, 1}
)

// IR is a convenience function to create an IRect.
func IR(x0, y0, x1, y1 int32) IRect {
	return IRect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// IsEmpty reports whether r is exactly EmptyIRect.
func (r IRect) IsEmpty() bool {
	return r == EmptyIRect
}

// IsInfinite reports whether r is exactly InfiniteIRect.
func (r IRect) IsInfinite() bool {
	return r == InfiniteIRect
}

// IsInverted reports whether r is a non-sentinel rectangle with a maximum
// coordinate below its minimum.
func (r IRect) IsInverted() bool {
	if r.IsInfinite() {
		return false
	}
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// Width returns X1-X0, or 0 for sentinels and inverted rectangles.
// The result is 64-bit because the span of two int32 values can exceed
// the int32 range.
func (r IRect) Width() int64 {
	if r.IsInfinite() {
		return 0
	}
	return max(int64(r.X1)-int64(r.X0), 0)
}

// Height returns Y1-Y0, or 0 for sentinels and inverted rectangles.
func (r IRect) Height() int64 {
	if r.IsInfinite() {
		return 0
	}
	return max(int64(r.Y1)-int64(r.Y0), 0)
}

// Intersect returns the area common to r and o, with the same sentinel
// precedence as Rect.Intersect.
func (r IRect) Intersect(o IRect) IRect {
	if r.IsEmpty() || o.IsEmpty() {
		return EmptyIRect
	}
	if r.IsInfinite() {
		return o
	}
	if o.IsInfinite() {
		return r
	}
	x := IRect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if x.X1 < x.X0 || x.Y1 < x.Y0 {
		return EmptyIRect
	}
	return x
}

// Union returns the smallest integer rectangle containing r and o, with the
// same sentinel precedence as Rect.Union.
func (r IRect) Union(o IRect) IRect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	if r.IsInfinite() {
		return r
	}
	if o.IsInfinite() {
		return o
	}
	return IRect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Translate shifts r by (dx, dy) with saturating addition: a coordinate
// pushed past the int32 range sticks at math.MaxInt32 or math.MinInt32
// instead of wrapping to the opposite sign. Sentinels are returned
// unchanged.
func (r IRect) Translate(dx, dy int32) IRect {
	if r.IsEmpty() || r.IsInfinite() {
		return r
	}
	return IRect{
		X0: addSat(r.X0, dx), Y0: addSat(r.Y0, dy),
		X1: addSat(r.X1, dx), Y1: addSat(r.Y1, dy),
	}
}

// addSat returns a+x saturated to the int32 range.
func addSat(a, x int32) int32 {
	s := int64(a) + int64(x)
	switch {
	case s > math.MaxInt32:
		return math.MaxInt32
	case s < math.MinInt32:
		return math.MinInt32
	}
	return int32(s)
}

// Image converts r to an image.Rectangle.
// EmptyIRect maps to the zero rectangle and InfiniteIRect to the full
// int32 range. Inverted rectangles keep their coordinates, which
// image.Rectangle.Empty reports as empty.
func (r IRect) Image() image.Rectangle {
	if r.IsInfinite() {
		return image.Rectangle{
			Min: image.Point{X: math.MinInt32, Y: math.MinInt32},
			Max: image.Point{X: math.MaxInt32, Y: math.MaxInt32},
		}
	}
	return image.Rectangle{
		Min: image.Point{X: int(r.X0), Y: int(r.Y0)},
		Max: image.Point{X: int(r.X1), Y: int(r.Y1)},
	}
}

// IRectFromImage converts an image.Rectangle, clamping coordinates into the
// int32 range. Every empty image rectangle maps to EmptyIRect, so the
// infinite pattern is never produced by accident.
func IRectFromImage(r image.Rectangle) IRect {
	if r.Empty() {
		return EmptyIRect
	}
	return IRect{
		X0: clampInt32(r.Min.X), Y0: clampInt32(r.Min.Y),
		X1: clampInt32(r.Max.X), Y1: clampInt32(r.Max.Y),
	}
}

func clampInt32(v int) int32 {
	return int32(min(max(v, math.MinInt32), math.MaxInt32))
}

func (r IRect) String() string {
	switch {
	case r.IsEmpty():
		return "IRect(empty)"
	case r.IsInfinite():
		return "IRect(infinite)"
	}
	return fmt.Sprintf("IRect(%d, %d, %d, %d)", r.X0, r.Y0, r.X1, r.Y1)
}
