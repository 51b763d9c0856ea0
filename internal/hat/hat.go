// Package hat holds the fixed description of the hat polykite in kite-grid
// coordinates.
package hat

import "hat-surround/internal/geom"

var cells = []geom.Point{
	{X: 0, Y: -1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 2},
	{X: 2, Y: 1},
	{X: 3, Y: -1},
	{X: 4, Y: -1},
}

// Vertices of the outline, in hex-lattice coordinates. Each vertex of the
// [3.4.6.4] tiling coincides with a hexagon of the underlying lattice, so the
// outline can share the cell coordinate system.
var outline = []geom.Point{
	{X: 0, Y: 0},
	{X: -1, Y: -1},
	{X: 0, Y: -2},
	{X: 2, Y: -2},
	{X: 2, Y: -1},
	{X: 4, Y: -2},
	{X: 5, Y: -1},
	{X: 4, Y: 0},
	{X: 3, Y: 0},
	{X: 2, Y: 2},
	{X: 0, Y: 3},
	{X: 0, Y: 2},
	{X: -1, Y: 2},
}

// Cells returns the kite cells covered by the untransformed hat, sorted.
func Cells() []geom.Point {
	ps := append([]geom.Point(nil), cells...)
	geom.SortPoints(ps)
	return ps
}

// CellSet returns the untransformed hat as a set.
func CellSet() geom.CellSet {
	return geom.NewCellSet(cells...)
}

// Outline returns the outline vertices of the untransformed hat in
// boundary order.
func Outline() []geom.Point {
	return append([]geom.Point(nil), outline...)
}

// Place returns the cells covered by the hat under T, sorted.
func Place(T geom.Transform) []geom.Point {
	ps := T.ApplyAll(cells)
	geom.SortPoints(ps)
	return ps
}
