package geom

import (
	"errors"
	"fmt"
)

// ErrNotUnimodular is returned when inverting a transform whose linear part
// does not have determinant +1 or -1.
var ErrNotUnimodular = errors.New("geom: transform is not unimodular")

// Transform represents a 2D integer affine transformation.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// with an implicit third row of 0 0 1.
type Transform struct {
	A, B, C int
	D, E, F int
}

// Identity returns the identity transformation.
func Identity() Transform {
	return Transform{A: 1, E: 1}
}

// Translate creates a translation by (x, y).
func Translate(x, y int) Transform {
	return Transform{A: 1, C: x, E: 1, F: y}
}

// TranslateBy creates a translation by the vector v.
func TranslateBy(v Point) Transform {
	return Translate(v.X, v.Y)
}

// Multiply composes two transforms (t * o): o is applied first.
func (t Transform) Multiply(o Transform) Transform {
	return Transform{
		A: t.A*o.A + t.B*o.D,
		B: t.A*o.B + t.B*o.E,
		C: t.A*o.C + t.B*o.F + t.C,
		D: t.D*o.A + t.E*o.D,
		E: t.D*o.B + t.E*o.E,
		F: t.D*o.C + t.E*o.F + t.F,
	}
}

// Apply maps p through the transform.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// ApplyAll maps every point of ps through the transform.
func (t Transform) ApplyAll(ps []Point) []Point {
	out := make([]Point, len(ps))
	for i, p := range ps {
		out[i] = t.Apply(p)
	}
	return out
}

// Det returns the determinant of the linear part.
func (t Transform) Det() int {
	return t.A*t.E - t.B*t.D
}

// Invert returns the inverse transform. Only unimodular transforms have an
// integer inverse; anything else fails with ErrNotUnimodular.
func (t Transform) Invert() (Transform, error) {
	det := t.Det()
	if det != 1 && det != -1 {
		return Transform{}, fmt.Errorf("%w: %v has determinant %d", ErrNotUnimodular, t, det)
	}
	return Transform{
		A: t.E / det,
		B: -t.B / det,
		C: (t.B*t.F - t.C*t.E) / det,
		D: -t.D / det,
		E: t.A / det,
		F: (t.C*t.D - t.A*t.F) / det,
	}, nil
}

// IsIdentity returns true if the transform is the identity.
func (t Transform) IsIdentity() bool {
	return t == Identity()
}

// Coefficients returns a, b, c, d, e, f in row-major order.
func (t Transform) Coefficients() [6]int {
	return [6]int{t.A, t.B, t.C, t.D, t.E, t.F}
}

// FromCoefficients builds a transform from six row-major coefficients.
func FromCoefficients(m [6]int) Transform {
	return Transform{A: m[0], B: m[1], C: m[2], D: m[3], E: m[4], F: m[5]}
}

func (t Transform) String() string {
	return fmt.Sprintf("<%d,%d,%d,%d,%d,%d>", t.A, t.B, t.C, t.D, t.E, t.F)
}
