package geom

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Epsilon is the tolerance used for singularity and axis-alignment tests.
// It equals the single-precision machine epsilon, so classification matches
// engines that store coordinates as float32.
const Epsilon = 0x1p-23

// Matrix represents a 2D affine transformation matrix.
// The six coefficients are laid out as in PDF content streams:
//
//	| A  B  0 |
//	| C  D  0 |
//	| E  F  1 |
//
// A point is treated as the row vector (x, y, 1), so the transformation is:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//
// Matrix is a value type. Every operation returns a new Matrix.
type Matrix struct {
	A, B float64
	C, D float64
	E, F float64
}

// Identity is the transformation that leaves every point unchanged.
var Identity = Matrix{A: 1, D: 1}

// Scale creates a scaling matrix.
func Scale(sx, sy float64) Matrix {
	return Matrix{
		A: sx, B: 0,
		C: 0, D: sy,
	}
}

// Shear creates a shear matrix. h skews x by y, v skews y by x.
func Shear(h, v float64) Matrix {
	return Matrix{
		A: 1, B: v,
		C: h, D: 1,
	}
}

// Translate creates a translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{
		A: 1, B: 0,
		C: 0, D: 1,
		E: tx, F: ty,
	}
}

// Rotate creates a rotation matrix. theta is in degrees and may be any
// finite value; it is reduced into [0, 360) first.
//
// Multiples of 90 degrees produce exact 0 and ±1 coefficients so that
// axis-aligned rotations stay rectilinear. The snapping window is Epsilon
// degrees on either side of each multiple, an absolute width that does not
// scale with the angle.
func Rotate(theta float64) Matrix {
	theta = math.Mod(theta, 360)
	if theta < 0 {
		theta += 360
	}
	if theta >= 360 {
		theta -= 360
	}

	var s, c float64
	switch {
	case theta < Epsilon || 360-theta < Epsilon:
		s, c = 0, 1
	case math.Abs(90-theta) < Epsilon:
		s, c = 1, 0
	case math.Abs(180-theta) < Epsilon:
		s, c = 0, -1
	case math.Abs(270-theta) < Epsilon:
		s, c = -1, 0
	default:
		s, c = math.Sincos(theta * math.Pi / 180)
	}

	return Matrix{
		A: c, B: s,
		C: -s, D: c,
	}
}

// Concat returns the matrix that applies m first and then next:
//
//	m.Concat(next).TransformPoint(p) == next.TransformPoint(m.TransformPoint(p))
//
// In the row-vector convention this is the product m × next.
// Concat is associative but not commutative.
func (m Matrix) Concat(next Matrix) Matrix {
	return Matrix{
		A: m.A*next.A + m.B*next.C,
		B: m.A*next.B + m.B*next.D,
		C: m.C*next.A + m.D*next.C,
		D: m.C*next.B + m.D*next.D,
		E: m.E*next.A + m.F*next.C + next.E,
		F: m.E*next.B + m.F*next.D + next.F,
	}
}

// PreScale returns Scale(sx, sy) followed by m.
func (m Matrix) PreScale(sx, sy float64) Matrix {
	return Scale(sx, sy).Concat(m)
}

// PostScale returns m followed by Scale(sx, sy).
func (m Matrix) PostScale(sx, sy float64) Matrix {
	return m.Concat(Scale(sx, sy))
}

// PreTranslate returns Translate(tx, ty) followed by m.
func (m Matrix) PreTranslate(tx, ty float64) Matrix {
	return Translate(tx, ty).Concat(m)
}

// PostTranslate returns m followed by Translate(tx, ty).
func (m Matrix) PostTranslate(tx, ty float64) Matrix {
	return m.Concat(Translate(tx, ty))
}

// PreRotate returns Rotate(theta) followed by m.
func (m Matrix) PreRotate(theta float64) Matrix {
	return Rotate(theta).Concat(m)
}

// PreShear returns Shear(h, v) followed by m.
func (m Matrix) PreShear(h, v float64) Matrix {
	return Shear(h, v).Concat(m)
}

// Determinant returns A*D - B*C.
func (m Matrix) Determinant() float64 {
	return m.A*m.D - m.B*m.C
}

// Invert returns the inverse matrix.
//
// If the matrix is near-singular (|det| <= Epsilon) m is returned unchanged.
// Callers that need to know whether inversion succeeded should use Inverse.
func (m Matrix) Invert() Matrix {
	inv, ok := m.inverse()
	if !ok {
		if debugEnabled() {
			Logger().Debug("geom: matrix not invertible, returning input", "matrix", m)
		}
		return m
	}
	return inv
}

// Inverse returns the inverse matrix, or an error wrapping ErrSingularMatrix
// if the determinant is within Epsilon of zero.
func (m Matrix) Inverse() (Matrix, error) {
	inv, ok := m.inverse()
	if !ok {
		return m, fmt.Errorf("%w: det=%g", ErrSingularMatrix, m.Determinant())
	}
	return inv, nil
}

func (m Matrix) inverse() (Matrix, bool) {
	det := m.Determinant()
	// NaN fails both comparisons and is treated as singular.
	if !(det < -Epsilon || det > Epsilon) {
		return m, false
	}

	rdet := 1 / det
	inv := Matrix{
		A: m.D * rdet,
		B: -m.B * rdet,
		C: -m.C * rdet,
		D: m.A * rdet,
	}
	inv.E = -m.E*inv.A - m.F*inv.C
	inv.F = -m.E*inv.B - m.F*inv.D
	return inv, true
}

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// IsTranslationOnly returns true if the linear part is exactly the identity.
func (m Matrix) IsTranslationOnly() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// IsRectilinear reports whether m maps axis-aligned rectangles to
// axis-aligned rectangles: either both shear terms are (near) zero, or
// both diagonal terms are (near) zero, as for a 90 degree rotation.
func (m Matrix) IsRectilinear() bool {
	return (math.Abs(m.B) < Epsilon && math.Abs(m.C) < Epsilon) ||
		(math.Abs(m.A) < Epsilon && math.Abs(m.D) < Epsilon)
}

// Expansion returns the area scaling factor sqrt(|det|).
func (m Matrix) Expansion() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// MaxExpansion returns the largest of |A|, |B|, |C| and |D|.
// It bounds the stretch along any single axis and is used to size
// buffers conservatively.
func (m Matrix) MaxExpansion() float64 {
	return max(math.Abs(m.A), math.Abs(m.B), math.Abs(m.C), math.Abs(m.D))
}

// TransformPoint applies the full transformation, translation included,
// to a position.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: p.X*m.A + p.Y*m.C + m.E,
		Y: p.X*m.B + p.Y*m.D + m.F,
	}
}

// TransformVector applies only the linear part of the transformation.
// Use it for directions and distances, never for positions: a vector has
// no location, so translation must not move it.
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: p.X*m.A + p.Y*m.C,
		Y: p.X*m.B + p.Y*m.D,
	}
}

// Aff3 returns m in the row-major layout used by golang.org/x/image:
//
//	x' = aff[0]*x + aff[1]*y + aff[2]
//	y' = aff[3]*x + aff[4]*y + aff[5]
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{
		m.A, m.C, m.E,
		m.B, m.D, m.F,
	}
}

// MatrixFromAff3 is the inverse of Matrix.Aff3.
func MatrixFromAff3(aff f64.Aff3) Matrix {
	return Matrix{
		A: aff[0], B: aff[3],
		C: aff[1], D: aff[4],
		E: aff[2], F: aff[5],
	}
}

// String returns the coefficients in PDF array order.
func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g %g %g]", m.A, m.B, m.C, m.D, m.E, m.F)
}
