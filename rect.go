package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// SafeInt is the largest magnitude integer that float32 represents exactly.
// Float to integer rectangle conversions clamp every coordinate into
// [-SafeInt, SafeInt] so downstream integer arithmetic cannot overflow.
const SafeInt = 1 << 24

// roundBias nudges Round toward the tighter integer box so that values a
// hair past an integer boundary do not grow the result by a whole pixel.
const roundBias = 0.001

// Rect is an axis-aligned rectangle with float64 coordinates.
// (X0, Y0) is the minimum corner and (X1, Y1) the maximum corner.
//
// Two coordinate patterns are reserved:
//
//	EmptyRect    {0, 0, 0, 0}     no area
//	InfiniteRect {1, 1, -1, -1}   unbounded, covers everything
//
// Both are recognised by exact field equality. Any other rectangle with
// X1 < X0 or Y1 < Y0 is inverted: it encloses nothing but IsEmpty does not
// report it, use IsInverted for that. Code that builds rectangles by hand
// must not produce either pattern unless that state is intended.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

var (
	// EmptyRect is the rectangle that contains nothing.
	EmptyRect = Rect{0, 0, 0, 0}

	// InfiniteRect is the rectangle that contains everything.
	InfiniteRect = Rect{1, 1, -1, -1}

	// UnitRect spans [0, 1] on both axes.
	UnitRect = Rect{0, 0, 1, 1}
)

// R is a convenience function to create a Rect.
func R(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// RectFromIRect converts an integer rectangle. Sentinels map to sentinels.
func RectFromIRect(r IRect) Rect {
	return Rect{
		X0: float64(r.X0), Y0: float64(r.Y0),
		X1: float64(r.X1), Y1: float64(r.Y1),
	}
}

// RectFromPoints returns the smallest rectangle containing every point,
// or EmptyRect when called without points.
func RectFromPoints(pts ...Point) Rect {
	if len(pts) == 0 {
		return EmptyRect
	}
	r := Rect{X0: pts[0].X, Y0: pts[0].Y, X1: pts[0].X, Y1: pts[0].Y}
	for _, p := range pts[1:] {
		r = r.IncludePoint(p)
	}
	return r
}

// IsEmpty reports whether r is exactly EmptyRect.
func (r Rect) IsEmpty() bool {
	return r == EmptyRect
}

// IsInfinite reports whether r is exactly InfiniteRect.
func (r Rect) IsInfinite() bool {
	return r == InfiniteRect
}

// IsInverted reports whether r is a non-sentinel rectangle with a maximum
// coordinate below its minimum, as Expand with a large negative delta
// produces.
func (r Rect) IsInverted() bool {
	if r.IsInfinite() {
		return false
	}
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// Width returns X1-X0. It is +Inf for InfiniteRect and 0 for inverted
// rectangles.
func (r Rect) Width() float64 {
	if r.IsInfinite() {
		return math.Inf(1)
	}
	return max(r.X1-r.X0, 0)
}

// Height returns Y1-Y0. It is +Inf for InfiniteRect and 0 for inverted
// rectangles.
func (r Rect) Height() float64 {
	if r.IsInfinite() {
		return math.Inf(1)
	}
	return max(r.Y1-r.Y0, 0)
}

// Contains reports whether p lies inside r. The minimum edges are inclusive
// and the maximum edges exclusive, matching pixel ownership.
func (r Rect) Contains(p Point) bool {
	if r.IsInfinite() {
		return true
	}
	return p.X >= r.X0 && p.X < r.X1 && p.Y >= r.Y0 && p.Y < r.Y1
}

// IncludePoint returns r grown to contain p.
// InfiniteRect is returned unchanged. EmptyRect is treated as the
// degenerate rectangle at the origin; start from RectFromPoints to avoid
// pulling the origin in.
func (r Rect) IncludePoint(p Point) Rect {
	if r.IsInfinite() {
		return r
	}
	r.X0 = min(r.X0, p.X)
	r.Y0 = min(r.Y0, p.Y)
	r.X1 = max(r.X1, p.X)
	r.Y1 = max(r.Y1, p.Y)
	return r
}

// Intersect returns the area common to r and o.
//
// Empty is checked before infinite: the intersection of anything with
// EmptyRect is EmptyRect, and InfiniteRect is the identity. A result with
// no area collapses to EmptyRect.
func (r Rect) Intersect(o Rect) Rect {
	if r.IsEmpty() || o.IsEmpty() {
		return EmptyRect
	}
	if r.IsInfinite() {
		return o
	}
	if o.IsInfinite() {
		return r
	}
	x := Rect{
		X0: max(r.X0, o.X0),
		Y0: max(r.Y0, o.Y0),
		X1: min(r.X1, o.X1),
		Y1: min(r.Y1, o.Y1),
	}
	if x.X1 < x.X0 || x.Y1 < x.Y0 {
		return EmptyRect
	}
	return x
}

// Union returns the smallest rectangle containing both r and o.
//
// EmptyRect is the identity and InfiniteRect absorbs everything.
func (r Rect) Union(o Rect) Rect {
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
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// Transform returns the axis-aligned bounding box of r mapped through m.
// All four corners are transformed because a rotation or shear tilts the
// rectangle. InfiniteRect stays infinite. EmptyRect is not special-cased
// and maps to the degenerate box at m's translation, so check IsEmpty first
// when that matters.
func (r Rect) Transform(m Matrix) Rect {
	if r.IsInfinite() {
		return r
	}
	s := m.TransformPoint(Point{r.X0, r.Y0})
	t := m.TransformPoint(Point{r.X0, r.Y1})
	u := m.TransformPoint(Point{r.X1, r.Y1})
	v := m.TransformPoint(Point{r.X1, r.Y0})
	return Rect{
		X0: min(s.X, t.X, u.X, v.X),
		Y0: min(s.Y, t.Y, u.Y, v.Y),
		X1: max(s.X, t.X, u.X, v.X),
		Y1: max(s.Y, t.Y, u.Y, v.Y),
	}
}

// Translate shifts r by (dx, dy). Sentinels are returned unchanged.
func (r Rect) Translate(dx, dy float64) Rect {
	if r.IsEmpty() || r.IsInfinite() {
		return r
	}
	return Rect{
		X0: r.X0 + dx, Y0: r.Y0 + dy,
		X1: r.X1 + dx, Y1: r.Y1 + dy,
	}
}

// Expand grows r by d on every side. A negative d shrinks it; shrinking
// past the centre leaves an inverted rectangle, which is not clamped to
// EmptyRect. Sentinels are returned unchanged.
func (r Rect) Expand(d float64) Rect {
	if r.IsEmpty() || r.IsInfinite() {
		return r
	}
	return Rect{
		X0: r.X0 - d, Y0: r.Y0 - d,
		X1: r.X1 + d, Y1: r.Y1 + d,
	}
}

// Round converts r to the integer rectangle that best approximates it.
// The minimum corner is biased up and the maximum corner down by a small
// epsilon before floor/ceil, favouring the tighter box when a coordinate
// sits on an integer boundary within float error.
func (r Rect) Round() IRect {
	return toIRect(
		math.Floor(r.X0+roundBias),
		math.Floor(r.Y0+roundBias),
		math.Ceil(r.X1-roundBias),
		math.Ceil(r.Y1-roundBias),
	)
}

// Cover converts r to the smallest integer rectangle that fully covers it.
func (r Rect) Cover() IRect {
	return toIRect(
		math.Floor(r.X0),
		math.Floor(r.Y0),
		math.Ceil(r.X1),
		math.Ceil(r.Y1),
	)
}

func toIRect(x0, y0, x1, y1 float64) IRect {
	b := IRect{
		X0: clampSafe(x0), Y0: clampSafe(y0),
		X1: clampSafe(x1), Y1: clampSafe(y1),
	}
	if debugEnabled() && (float64(b.X0) != x0 || float64(b.Y0) != y0 || float64(b.X1) != x1 || float64(b.Y1) != y1) {
		Logger().Debug("geom: rectangle clamped to safe integer range", "x0", x0, "y0", y0, "x1", x1, "y1", y1)
	}
	return b
}

// clampSafe clamps an integral float into [-SafeInt, SafeInt].
// NaN has no meaningful integer value and maps to 0.
func clampSafe(v float64) int32 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < -SafeInt:
		return -SafeInt
	case v > SafeInt:
		return SafeInt
	}
	return int32(v)
}

// Fixed converts r to a 26.6 fixed point rectangle for glyph rasterizers.
// InfiniteRect maps to the full representable range.
func (r Rect) Fixed() fixed.Rectangle26_6 {
	if r.IsInfinite() {
		return fixed.Rectangle26_6{
			Min: fixed.Point26_6{X: math.MinInt32, Y: math.MinInt32},
			Max: fixed.Point26_6{X: math.MaxInt32, Y: math.MaxInt32},
		}
	}
	return fixed.Rectangle26_6{
		Min: Point{r.X0, r.Y0}.Fixed(),
		Max: Point{r.X1, r.Y1}.Fixed(),
	}
}

// RectFromFixed converts a 26.6 fixed point rectangle.
func RectFromFixed(f fixed.Rectangle26_6) Rect {
	return Rect{
		X0: fromFixed(f.Min.X), Y0: fromFixed(f.Min.Y),
		X1: fromFixed(f.Max.X), Y1: fromFixed(f.Max.Y),
	}
}

func (r Rect) String() string {
	switch {
	case r.IsEmpty():
		return "Rect(empty)"
	case r.IsInfinite():
		return "Rect(infinite)"
	}
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X0, r.Y0, r.X1, r.Y1)
}
