// Package geom provides integer points and affine transforms over the
// oblique basis of the kite grid. All arithmetic is exact.
package geom

import (
	"fmt"
	"slices"
)

// Point represents a grid cell or a vector between cells, in the basis
// (1,0), (1/2,sqrt(3)/2).
type Point struct {
	X, Y int
}

// Pt is a convenience function to create a Point.
func Pt(x, y int) Point {
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

// Mul returns the point scaled by an integer.
func (p Point) Mul(d int) Point {
	return Point{X: p.X * d, Y: p.Y * d}
}

// Less orders points by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Compare returns -1, 0 or +1 following Less.
func (p Point) Compare(q Point) int {
	switch {
	case p.Less(q):
		return -1
	case q.Less(p):
		return 1
	}
	return 0
}

func (p Point) String() string {
	return fmt.Sprintf("<%d %d>", p.X, p.Y)
}

// SortPoints sorts ps in place by Less.
func SortPoints(ps []Point) {
	slices.SortFunc(ps, Point.Compare)
}
