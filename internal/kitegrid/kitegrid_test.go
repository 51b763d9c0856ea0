package kitegrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hat-surround/internal/geom"
)

// kites returns every kite cell in a square window around the origin.
func kites(r int) []geom.Point {
	var ps []geom.Point
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if p := geom.Pt(x, y); IsKite(p) {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

func TestSixfoldCentre(t *testing.T) {
	tests := []struct {
		p, want geom.Point
	}{
		{geom.Pt(0, -1), geom.Pt(0, 0)},
		{geom.Pt(1, 0), geom.Pt(0, 0)},
		{geom.Pt(4, -1), geom.Pt(4, -2)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SixfoldCentre(tt.p), "centre of %v", tt.p)
	}
}

func TestSixfoldCentrePanicsOffGrid(t *testing.T) {
	require.False(t, IsKite(geom.Pt(0, 0)))
	assert.Panics(t, func() { SixfoldCentre(geom.Pt(0, 0)) })
}

func TestKiteDensity(t *testing.T) {
	// Half of the hexagons carry a kite.
	assert.Len(t, kites(12), 304)
}

func TestCanTranslate(t *testing.T) {
	assert.True(t, CanTranslate(geom.Pt(0, -1), geom.Pt(30, -1)))
	assert.True(t, CanTranslate(geom.Pt(0, -1), geom.Pt(0, -1)))
	assert.False(t, CanTranslate(geom.Pt(0, -1), geom.Pt(1, 0)))
}

func TestAdjacents(t *testing.T) {
	assert.Equal(t,
		[4]geom.Point{{X: 1, Y: -1}, {X: -1, Y: 0}, {X: 1, Y: -3}, {X: -1, Y: -2}},
		Adjacents(geom.Pt(0, -1)))
	assert.Equal(t,
		[4]geom.Point{{X: 0, Y: 1}, {X: 1, Y: -1}, {X: 2, Y: 1}, {X: 3, Y: -1}},
		Adjacents(geom.Pt(1, 0)))
}

func TestNeighbours(t *testing.T) {
	assert.Equal(t, [9]geom.Point{
		{X: 1, Y: -1}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 0},
		{X: -2, Y: -1}, {X: -1, Y: -2}, {X: 1, Y: -3}, {X: 2, Y: -3},
	}, Neighbours(geom.Pt(0, -1)))
}

func TestAdjacencyProperties(t *testing.T) {
	for _, p := range kites(12) {
		adj := Adjacents(p)
		ns := Neighbours(p)
		nset := geom.NewCellSet(ns[:]...)

		assert.Len(t, geom.NewCellSet(adj[:]...), 4, "adjacents of %v", p)
		assert.Len(t, nset, 9, "neighbours of %v", p)
		assert.False(t, nset.Has(p), "%v is its own neighbour", p)

		for _, a := range adj {
			assert.True(t, nset.Has(a), "adjacent %v of %v is not a neighbour", a, p)
			assert.Contains(t, Adjacents(a), p, "adjacency of %v and %v is not symmetric", p, a)
		}
		for _, n := range ns {
			assert.True(t, IsKite(n))
			assert.Contains(t, Neighbours(n), p)
		}
	}
}

func TestOrientations(t *testing.T) {
	os := Orientations()
	require.Len(t, os, 12)
	assert.True(t, os[0].IsIdentity())
	assert.Equal(t, ReflectX, os[1])
	assert.Equal(t, R60, os[2])
	assert.Equal(t, geom.Transform{A: 0, B: 1, C: 0, D: 1, E: 0, F: 0}, os[11])

	seen := make(map[geom.Transform]bool)
	for _, T := range os {
		assert.False(t, seen[T], "duplicate orientation %v", T)
		seen[T] = true

		inv, err := T.Invert()
		require.NoError(t, err)
		assert.True(t, inv.Multiply(T).IsIdentity())

		// Orientations fix the sixfold centre at the origin and carry kites
		// to kites.
		for _, p := range kites(6) {
			assert.True(t, IsKite(T.Apply(p)), "%v carries %v off the grid", T, p)
		}
	}

	os[0] = R60
	assert.True(t, Orientations()[0].IsIdentity(), "callers must not be able to modify the table")
}
