package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Point represents a 2D point or vector.
//
// Whether a Point is a position or a direction is decided by the caller:
// positions go through Matrix.TransformPoint, directions through
// Matrix.TransformVector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Fixed converts p to 26.6 fixed point, truncating toward zero and
// saturating at the representable range.
func (p Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// PointFromFixed converts a 26.6 fixed point to a Point.
func PointFromFixed(f fixed.Point26_6) Point {
	return Point{X: fromFixed(f.X), Y: fromFixed(f.Y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// toFixed saturates at the int32 range; NaN maps to 0.
func toFixed(v float64) fixed.Int26_6 {
	v *= 64
	switch {
	case math.IsNaN(v):
		return 0
	case v <= math.MinInt32:
		return math.MinInt32
	case v >= math.MaxInt32:
		return math.MaxInt32
	}
	return fixed.Int26_6(v)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
