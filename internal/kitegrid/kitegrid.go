// Package kitegrid manages cells of the [3.4.6.4] kite tiling using integer
// coordinates.
//
// Hexagons of the regular [3^6] tiling get coordinates relative to the basis
// (1,0), (1/2,sqrt(3)/2). A scaled-up kite tiling is superimposed on them so
// that every kite is uniquely associated with a hexagon; a fraction of the
// hexagons have no kite.
package kitegrid

import (
	"fmt"

	"hat-surround/internal/geom"
)

var (
	// R60 rotates 60 degrees counter-clockwise about the origin.
	R60 = geom.Transform{A: 0, B: -1, C: 0, D: 1, E: 1, F: 0}
	// R300 rotates 60 degrees clockwise about the origin.
	R300 = geom.Transform{A: 1, B: 1, C: 0, D: -1, E: 0, F: 0}
	// ReflectX reflects the hex lattice across the X axis.
	ReflectX = geom.Transform{A: 1, B: 1, C: 0, D: 0, E: -1, F: 0}
)

type centreOffset struct {
	v    geom.Point
	kite bool
}

// Offsets from a kite to its sixfold centre, keyed on y mod 2 and
// (x-y) mod 6.
var centreOffsets = [2][6]centreOffset{
	{{}, {geom.Pt(-1, 0), true}, {}, {}, {}, {geom.Pt(1, 0), true}},
	{{}, {geom.Pt(0, 1), true}, {geom.Pt(-1, 1), true}, {}, {geom.Pt(1, -1), true}, {geom.Pt(0, -1), true}},
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}

func offset(p geom.Point) centreOffset {
	return centreOffsets[mod(p.Y, 2)][mod(p.X-p.Y, 6)]
}

// IsKite reports whether the hexagon at p carries a kite.
func IsKite(p geom.Point) bool {
	return offset(p).kite
}

// SixfoldCentre returns the centre of sixfold rotation adjacent to the kite
// at p. Every kite touches exactly one. It panics if p is not a kite.
func SixfoldCentre(p geom.Point) geom.Point {
	o := offset(p)
	if !o.kite {
		panic(fmt.Sprintf("kitegrid: %v is not a kite cell", p))
	}
	return p.Add(o.v)
}

// CanTranslate reports whether p and q are related by a translation of the
// kite grid.
func CanTranslate(p, q geom.Point) bool {
	return p.Sub(SixfoldCentre(p)) == q.Sub(SixfoldCentre(q))
}

func frame(p geom.Point) (c, v, left, right geom.Point) {
	c = SixfoldCentre(p)
	v = p.Sub(c)
	return c, v, R60.Apply(v), R300.Apply(v)
}

// Adjacents returns the four kite cells that share an edge with p.
func Adjacents(p geom.Point) [4]geom.Point {
	c, v, left, right := frame(p)
	return [4]geom.Point{
		c.Add(left),
		c.Add(right),
		p.Add(v).Add(left),
		p.Add(v).Add(right),
	}
}

// Neighbours returns the nine kite cells that share an edge or a vertex with
// p, in cyclic order around it.
func Neighbours(p geom.Point) [9]geom.Point {
	c, v, left, right := frame(p)
	return [9]geom.Point{
		c.Add(left),
		c.Sub(right),
		c.Sub(v),
		c.Sub(left),
		c.Add(right),
		p.Add(right.Mul(2)),
		p.Add(v).Add(right),
		p.Add(v).Add(left),
		p.Add(left.Mul(2)),
	}
}

// Orientations returns the twelve transforms taking a shape to every
// orientation it can have in the kite grid: six rotations, each with and
// without a reflection.
func Orientations() []geom.Transform {
	return append([]geom.Transform(nil), orientations...)
}

var orientations = func() []geom.Transform {
	ret := make([]geom.Transform, 0, 12)
	T := geom.Identity()
	for i := 0; i < 6; i++ {
		ret = append(ret, T, ReflectX.Multiply(T))
		T = R60.Multiply(T)
	}
	return ret
}()
