package geom

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"golang.org/x/image/math/f64"
)

func matrixNear(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps && math.Abs(a.B-b.B) <= eps &&
		math.Abs(a.C-b.C) <= eps && math.Abs(a.D-b.D) <= eps &&
		math.Abs(a.E-b.E) <= eps && math.Abs(a.F-b.F) <= eps
}

func pointNear(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func randomMatrix(r *rand.Rand) Matrix {
	f := func() float64 { return r.Float64()*20 - 10 }
	return Matrix{A: f(), B: f(), C: f(), D: f(), E: f(), F: f()}
}

func TestElementaryConstructors(t *testing.T) {
	tests := []struct {
		name string
		got  Matrix
		want Matrix
	}{
		{"identity", Identity, Matrix{1, 0, 0, 1, 0, 0}},
		{"scale", Scale(2, 3), Matrix{2, 0, 0, 3, 0, 0}},
		{"shear", Shear(0.5, 0.25), Matrix{1, 0.25, 0.5, 1, 0, 0}},
		{"translate", Translate(10, -20), Matrix{1, 0, 0, 1, 10, -20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestIdentityLeavesPointsUnchanged(t *testing.T) {
	pts := []Point{
		{0, 0}, {1, 2}, {-3.5, 7.25}, {1e9, -1e9}, {math.SmallestNonzeroFloat64, 0},
	}
	for _, p := range pts {
		if got := Identity.TransformPoint(p); got != p {
			t.Errorf("Identity.TransformPoint(%v) = %v", p, got)
		}
		if got := Identity.TransformVector(p); got != p {
			t.Errorf("Identity.TransformVector(%v) = %v", p, got)
		}
	}
}

func TestRotateExactAngles(t *testing.T) {
	tests := []struct {
		theta float64
		want  Matrix
	}{
		{0, Identity},
		{90, Matrix{0, 1, -1, 0, 0, 0}},
		{180, Matrix{-1, 0, 0, -1, 0, 0}},
		{270, Matrix{0, -1, 1, 0, 0, 0}},
		{360, Identity},
		{-90, Matrix{0, -1, 1, 0, 0, 0}},
		{450, Matrix{0, 1, -1, 0, 0, 0}},
		{-720, Identity},
		{90 + 1e-9, Matrix{0, 1, -1, 0, 0, 0}},
		{90 - 1e-9, Matrix{0, 1, -1, 0, 0, 0}},
		{1e-9, Identity},
		{-1e-9, Identity},
		{360 - 1e-9, Identity},
		{720 - 1e-10, Identity},
		{-360 + 1e-9, Identity},
	}
	for _, tt := range tests {
		got := Rotate(tt.theta)
		if got != tt.want {
			t.Errorf("Rotate(%v) = %v, want %v", tt.theta, got, tt.want)
		}
		if !got.IsRectilinear() {
			t.Errorf("Rotate(%v) should be rectilinear", tt.theta)
		}
	}
}

func TestRotateMapsXAxisToYAxis(t *testing.T) {
	got := Rotate(90).TransformPoint(Pt(1, 0))
	if !pointNear(got, Pt(0, 1), 1e-12) {
		t.Errorf("Rotate(90) maps (1,0) to %v, want (0,1)", got)
	}
}

func TestRotateGeneralAngle(t *testing.T) {
	m := Rotate(30)
	if math.Abs(m.B-0.5) > 1e-12 || math.Abs(m.A-math.Sqrt(3)/2) > 1e-12 {
		t.Errorf("Rotate(30) = %v", m)
	}
	if m.C != -m.B || m.D != m.A {
		t.Errorf("Rotate(30) is not a rotation: %v", m)
	}
}

func TestRotatePeriodic(t *testing.T) {
	for _, k := range []float64{-725.5, -360, -33, 0, 12.5, 45, 90, 133.7, 359.9, 1000} {
		a := Rotate(360 + k)
		b := Rotate(k)
		if !matrixNear(a, b, 1e-9) {
			t.Errorf("Rotate(360+%v) = %v, Rotate(%v) = %v", k, a, k, b)
		}
	}
}

func TestRotateHugeAngleTerminates(t *testing.T) {
	m := Rotate(1e300)
	if math.Abs(m.Determinant()-1) > 1e-9 {
		t.Errorf("Rotate(1e300) determinant = %v, want 1", m.Determinant())
	}
}

func TestConcatOrder(t *testing.T) {
	// Translate first, then scale: the translation is scaled too.
	m := Translate(10, 0).Concat(Scale(2, 2))
	if got := m.TransformPoint(Pt(0, 0)); got != Pt(20, 0) {
		t.Errorf("Translate.Concat(Scale) maps origin to %v, want (20, 0)", got)
	}

	// Scale first, then translate.
	m = Scale(2, 2).Concat(Translate(10, 0))
	if got := m.TransformPoint(Pt(0, 0)); got != Pt(10, 0) {
		t.Errorf("Scale.Concat(Translate) maps origin to %v, want (10, 0)", got)
	}
}

func TestConcatMatchesSequentialTransform(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for range 100 {
		a, b := randomMatrix(r), randomMatrix(r)
		p := Pt(r.Float64()*100, r.Float64()*100)
		want := b.TransformPoint(a.TransformPoint(p))
		got := a.Concat(b).TransformPoint(p)
		if !pointNear(got, want, 1e-8) {
			t.Fatalf("a.Concat(b)(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestConcatAssociative(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		a, b, c := randomMatrix(r), randomMatrix(r), randomMatrix(r)
		left := a.Concat(b).Concat(c)
		right := a.Concat(b.Concat(c))
		if !matrixNear(left, right, 1e-9) {
			t.Fatalf("(ab)c = %v, a(bc) = %v", left, right)
		}
	}
}

func TestConcatIdentity(t *testing.T) {
	m := Matrix{1.5, -2, 0.25, 4, 10, -7}
	if got := m.Concat(Identity); got != m {
		t.Errorf("m.Concat(Identity) = %v, want %v", got, m)
	}
	if got := Identity.Concat(m); got != m {
		t.Errorf("Identity.Concat(m) = %v, want %v", got, m)
	}
}

func TestPrePostHelpers(t *testing.T) {
	m := Matrix{2, 1, -1, 3, 5, 6}
	tests := []struct {
		name string
		got  Matrix
		want Matrix
	}{
		{"PreScale", m.PreScale(2, 3), Scale(2, 3).Concat(m)},
		{"PostScale", m.PostScale(2, 3), m.Concat(Scale(2, 3))},
		{"PreTranslate", m.PreTranslate(4, -1), Translate(4, -1).Concat(m)},
		{"PostTranslate", m.PostTranslate(4, -1), m.Concat(Translate(4, -1))},
		{"PreRotate", m.PreRotate(30), Rotate(30).Concat(m)},
		{"PreShear", m.PreShear(0.5, 0.1), Shear(0.5, 0.1).Concat(m)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want Matrix
	}{
		{"identity", Identity, Identity},
		{"translate", Translate(3, 4), Translate(-3, -4)},
		{"scale", Scale(2, 4), Scale(0.5, 0.25)},
		{"rotate 90", Rotate(90), Rotate(270)},
		{"scale and translate", Scale(2, 2).Concat(Translate(10, 20)), Translate(-10, -20).Concat(Scale(0.5, 0.5))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.Invert()
			if !matrixNear(got, tt.want, 1e-12) {
				t.Errorf("Invert() = %v, want %v", got, tt.want)
			}
			if prod := tt.m.Concat(got); !matrixNear(prod, Identity, 1e-12) {
				t.Errorf("m.Concat(m.Invert()) = %v, want identity", prod)
			}
		})
	}
}

func TestInvertRoundTrip(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	checked := 0
	for range 200 {
		m := randomMatrix(r)
		if math.Abs(m.Determinant()) < 1e-2 {
			continue
		}
		checked++
		if got := m.Invert().Invert(); !matrixNear(got, m, 1e-6) {
			t.Fatalf("Invert(Invert(%v)) = %v", m, got)
		}
	}
	if checked == 0 {
		t.Fatal("no invertible matrices generated")
	}
}

func TestInvertSingularReturnsInput(t *testing.T) {
	singular := []Matrix{
		{},
		{1, 2, 2, 4, 5, 6},
		Scale(0, 1),
		Scale(Epsilon/2, 1),
		{math.NaN(), 0, 0, 1, 0, 0},
	}
	for _, m := range singular {
		got := m.Invert()
		if got != m && !math.IsNaN(m.A) {
			t.Errorf("Invert(%v) = %v, want input unchanged", m, got)
		}
		if _, err := m.Inverse(); !errors.Is(err, ErrSingularMatrix) {
			t.Errorf("Inverse(%v) error = %v, want ErrSingularMatrix", m, err)
		}
	}
}

func TestInverse(t *testing.T) {
	inv, err := Scale(4, 5).Inverse()
	if err != nil {
		t.Fatalf("Inverse() error = %v", err)
	}
	if !matrixNear(inv, Scale(0.25, 0.2), 1e-15) {
		t.Errorf("Inverse() = %v", inv)
	}
}

func TestIsRectilinear(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity, true},
		{"scale", Scale(2, -3), true},
		{"translate", Translate(5, 5), true},
		{"rotate 90", Rotate(90), true},
		{"rotate 270 with scale", Rotate(270).Concat(Scale(2, 3)), true},
		{"rotate 45", Rotate(45), false},
		{"shear x", Shear(0.5, 0), false},
		{"shear y", Shear(0, 0.5), false},
		{"tiny shear", Shear(Epsilon/2, 0), true},
		{"zero matrix", Matrix{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsRectilinear(); got != tt.want {
				t.Errorf("Matrix%v.IsRectilinear() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestExpansion(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity, 1},
		{"translate", Translate(100, 100), 1},
		{"uniform scale", Scale(3, 3), 3},
		{"non-uniform scale", Scale(2, 8), 4},
		{"negative scale", Scale(-2, 3), math.Sqrt(6)},
		{"rotation", Rotate(33), 1},
		{"singular", Matrix{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Expansion(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Expansion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxExpansion(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want float64
	}{
		{"identity", Identity, 1},
		{"ignores translation", Matrix{1, -5, 3, 2, 100, 100}, 5},
		{"scale", Scale(0.5, -7), 7},
		{"shear", Shear(4, 0), 4},
		{"zero", Matrix{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MaxExpansion(); got != tt.want {
				t.Errorf("MaxExpansion() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	if !Identity.IsIdentity() || Translate(1, 0).IsIdentity() {
		t.Error("IsIdentity misclassified")
	}
	if !Translate(3, 4).IsTranslationOnly() || Scale(2, 1).IsTranslationOnly() {
		t.Error("IsTranslationOnly misclassified")
	}
}

func TestTransformVectorIgnoresTranslation(t *testing.T) {
	m := Scale(2, 3).Concat(Translate(100, 200))
	if got := m.TransformVector(Pt(1, 1)); got != Pt(2, 3) {
		t.Errorf("TransformVector = %v, want (2, 3)", got)
	}
	if got := m.TransformPoint(Pt(1, 1)); got != Pt(102, 203) {
		t.Errorf("TransformPoint = %v, want (102, 203)", got)
	}
}

func TestAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	aff := m.Aff3()
	if want := (f64.Aff3{1, 3, 5, 2, 4, 6}); aff != want {
		t.Fatalf("Aff3() = %v, want %v", aff, want)
	}
	if back := MatrixFromAff3(aff); back != m {
		t.Errorf("MatrixFromAff3(Aff3()) = %v, want %v", back, m)
	}

	p := Pt(7, -2)
	want := m.TransformPoint(p)
	got := Pt(aff[0]*p.X+aff[1]*p.Y+aff[2], aff[3]*p.X+aff[4]*p.Y+aff[5])
	if got != want {
		t.Errorf("Aff3 applied = %v, TransformPoint = %v", got, want)
	}
}

func TestMatrixString(t *testing.T) {
	if got, want := Translate(1.5, -2).String(), "[1 0 0 1 1.5 -2]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func BenchmarkConcat(b *testing.B) {
	m := Rotate(30)
	n := Scale(2, 3).Concat(Translate(10, 20))
	b.ReportAllocs()
	for b.Loop() {
		m = m.Concat(n).Invert()
	}
	_ = m
}

func BenchmarkRotate(b *testing.B) {
	b.ReportAllocs()
	theta := 0.0
	for b.Loop() {
		_ = Rotate(theta)
		theta += 7.5
	}
}
