package patchmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hat-surround/internal/geom"
	"hat-surround/internal/hat"
	"hat-surround/internal/kitegrid"
)

func testUniverse() []geom.Transform {
	return []geom.Transform{
		geom.Identity(),
		geom.Translate(6, 0),
		geom.Translate(-6, 0),
		geom.Transform{A: 1, B: 1, C: -4, D: 0, E: -1, F: 2},
		geom.Translate(30, 0),
	}
}

func TestNew(t *testing.T) {
	ts := testUniverse()
	m := New(append(ts, geom.Identity()))
	assert.Equal(t, len(ts), m.Len(), "duplicates must be ignored")
	assert.Equal(t, ts, m.Transforms())
	assert.Zero(t, m.OccupiedCount())

	ps, err := m.Shape(geom.Identity())
	require.NoError(t, err)
	assert.Equal(t, hat.Cells(), ps)

	for _, T := range ts {
		ps, err := m.Shape(T)
		require.NoError(t, err)
		for _, p := range ps {
			users, err := m.CellUsers(p)
			require.NoError(t, err)
			assert.Contains(t, users, T)
		}
	}
}

func TestCellUsersOrder(t *testing.T) {
	a := geom.Identity()
	b := geom.Translate(2, 2)

	m := New([]geom.Transform{b, a})
	cells := geom.NewCellSet(hat.Place(a)...)
	shared := 0
	for _, p := range hat.Place(b) {
		if !cells.Has(p) {
			continue
		}
		shared++
		users, err := m.CellUsers(p)
		require.NoError(t, err)
		assert.Equal(t, []geom.Transform{b, a}, users)
	}
	assert.Equal(t, 1, shared)
}

func TestLookupFailures(t *testing.T) {
	m := New(testUniverse())

	_, err := m.Shape(geom.Translate(100, 0))
	assert.ErrorIs(t, err, ErrUnknownPlacement)
	_, err = m.IsPlacementOccupied(geom.Translate(100, 0))
	assert.ErrorIs(t, err, ErrUnknownPlacement)
	assert.ErrorIs(t, m.Occupy(geom.Translate(100, 0)), ErrUnknownPlacement)
	assert.ErrorIs(t, m.Vacate(geom.Translate(100, 0)), ErrUnknownPlacement)

	_, err = m.CellUsers(geom.Pt(500, 500))
	assert.ErrorIs(t, err, ErrUncoveredCell)
}

func TestOccupyRoundTrip(t *testing.T) {
	m := New(testUniverse())
	require.NoError(t, m.Occupy(geom.Identity()))
	before := m.Occupied()

	for _, T := range testUniverse()[1:] {
		require.NoError(t, m.Occupy(T))
		occ, err := m.IsPlacementOccupied(T)
		require.NoError(t, err)
		assert.True(t, occ)

		require.NoError(t, m.Vacate(T))
		occ, err = m.IsPlacementOccupied(T)
		require.NoError(t, err)
		assert.False(t, occ, "%v still occupied", T)
		assert.True(t, before.Equal(m.Occupied()), "vacating %v did not restore occupancy", T)
	}
}

func TestIsPlacementOccupiedAnyCell(t *testing.T) {
	m := New(testUniverse())
	ps, err := m.Shape(geom.Identity())
	require.NoError(t, err)

	m.OccupyCell(ps[3])
	assert.True(t, m.IsCellOccupied(ps[3]))
	occ, err := m.IsPlacementOccupied(geom.Identity())
	require.NoError(t, err)
	assert.True(t, occ)

	m.VacateCell(ps[3])
	occ, err = m.IsPlacementOccupied(geom.Identity())
	require.NoError(t, err)
	assert.False(t, occ)
}

func TestValid(t *testing.T) {
	m := New(testUniverse())
	_, err := m.Valid()
	assert.ErrorIs(t, err, kitegrid.ErrEmptyCellSet)

	require.NoError(t, m.Occupy(geom.Identity()))
	ok, err := m.Valid()
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.Occupy(geom.Translate(30, 0)))
	ok, err = m.Valid()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	m := New(testUniverse())
	require.NoError(t, m.Occupy(geom.Identity()))

	c := m.Clone()
	require.NoError(t, c.Occupy(geom.Translate(30, 0)))
	assert.Equal(t, 8, m.OccupiedCount())
	assert.Equal(t, 16, c.OccupiedCount())
	assert.Same(t, m.u, c.u, "clones share the universe")

	occ, err := m.IsPlacementOccupied(geom.Translate(30, 0))
	require.NoError(t, err)
	assert.False(t, occ)
}

func TestBoundary(t *testing.T) {
	m := New(testUniverse())
	require.NoError(t, m.Occupy(geom.Identity()))
	b, err := m.Boundary()
	require.NoError(t, err)
	want, err := kitegrid.OrderedHalo(hat.CellSet())
	require.NoError(t, err)
	assert.Equal(t, want, b)
}
