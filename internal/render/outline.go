// Package render draws hat outlines as SVG documents and PNG images.
//
// Grid coordinates are oblique, in the basis (1,0), (1/2,sqrt(3)/2); they
// are projected to Cartesian coordinates with Y pointing up, then flipped
// for output formats whose Y axis points down.
package render

import (
	"math"

	jgeom "github.com/jbeda/geom"

	"hat-surround/internal/geom"
	"hat-surround/internal/hat"
)

// Project maps a grid point to Cartesian coordinates at the given scale,
// with Y pointing down.
func Project(p geom.Point, scale float64) jgeom.Coord {
	x := float64(p.X) + 0.5*float64(p.Y)
	y := 0.5 * math.Sqrt(3) * float64(p.Y)
	return jgeom.Coord{X: x * scale, Y: -y * scale}
}

// Outline returns the outline of the hat placed by T.
func Outline(T geom.Transform, scale float64) []jgeom.Coord {
	vs := hat.Outline()
	out := make([]jgeom.Coord, len(vs))
	for i, v := range vs {
		out[i] = Project(T.Apply(v), scale)
	}
	return out
}

// Bounds returns the smallest rectangle containing every outline.
func Bounds(outlines ...[]jgeom.Coord) jgeom.Rect {
	var r jgeom.Rect
	first := true
	for _, o := range outlines {
		for _, c := range o {
			if first {
				r = jgeom.Rect{Min: c, Max: c}
				first = false
				continue
			}
			r.ExpandToContainCoord(c)
		}
	}
	return r
}

func centre(r jgeom.Rect) jgeom.Coord {
	return jgeom.Coord{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

func offset(cs []jgeom.Coord, d jgeom.Coord) []jgeom.Coord {
	out := make([]jgeom.Coord, len(cs))
	for i, c := range cs {
		out[i] = c.Plus(d)
	}
	return out
}
