// Package geom provides the 2D affine geometry kernel of a page renderer.
//
// # Overview
//
// The package has three families of plain value types:
//   - [Matrix]: a 2x3 affine transformation in PDF coefficient order
//   - [Point]: a position or a direction
//   - [Rect] and [IRect]: float and device-space rectangles
//
// Every operation is a pure function over values and may be called from any
// number of goroutines. The only shared state is the debug logger installed
// with [SetLogger].
//
// # Composition order
//
// Points are row vectors. a.Concat(b) applies a first, then b:
//
//	ctm := geom.Scale(2, 2).Concat(geom.Rotate(90)).Concat(geom.Translate(10, 0))
//
// scales, then rotates, then translates.
//
// # Positions and directions
//
// [Matrix.TransformPoint] applies translation, [Matrix.TransformVector]
// does not. Choosing the wrong one is a silent bug, not a type error.
//
// # Sentinel rectangles
//
// [EmptyRect] {0, 0, 0, 0} and [InfiniteRect] {1, 1, -1, -1} are reserved
// coordinate patterns, compared by exact equality and checked (empty first,
// then infinite) before any arithmetic. Other rectangles whose maximum is
// below their minimum are "inverted"; [Rect.IsEmpty] does not report them,
// [Rect.IsInverted] does. [IRect] uses the same patterns.
//
// # Numeric policy
//
// Nothing here fails. Degenerate inputs are handled by policy:
//   - [Matrix.Invert] returns a near-singular matrix unchanged
//     ([Matrix.Inverse] reports [ErrSingularMatrix] instead)
//   - [IRect.Translate] saturates on int32 overflow
//   - [Rect.Round] and [Rect.Cover] clamp into [-SafeInt, SafeInt]
//   - [Rect.Expand] with a large negative delta leaves an inverted rectangle
//
// # Angles
//
// [Rotate] takes degrees. Multiples of 90 degrees produce exact
// coefficients.
package geom
