// Package patchmap tracks a fixed universe of candidate hat placements and
// the set of kite cells currently covered by the placed ones.
//
// The universe (each placement's cells, and for every cell the placements
// that cover it) is computed once and shared read-only by every Map cloned
// from the same constructor call. Only the occupancy set is per-Map.
package patchmap

import (
	"errors"
	"fmt"

	"hat-surround/internal/geom"
	"hat-surround/internal/hat"
	"hat-surround/internal/kitegrid"
)

var (
	// ErrUnknownPlacement is returned for a transform outside the universe.
	ErrUnknownPlacement = errors.New("patchmap: placement not in universe")
	// ErrUncoveredCell is returned for a cell that no placement in the
	// universe covers.
	ErrUncoveredCell = errors.New("patchmap: no placement covers cell")
)

type universe struct {
	order  []geom.Transform
	shapes map[geom.Transform][]geom.Point
	users  map[geom.Point][]geom.Transform
}

// Map is a patch under construction over a fixed universe of placements.
// A Map must not be mutated from more than one goroutine at a time; use
// Clone to hand an independent copy to another search.
type Map struct {
	u        *universe
	occupied geom.CellSet
}

// New builds a Map whose universe is ts. Users of every cell are listed in
// the order their placements appear in ts; repeated transforms are ignored.
func New(ts []geom.Transform) *Map {
	u := &universe{
		shapes: make(map[geom.Transform][]geom.Point, len(ts)),
		users:  make(map[geom.Point][]geom.Transform),
	}
	for _, T := range ts {
		if _, ok := u.shapes[T]; ok {
			continue
		}
		ps := hat.Place(T)
		u.order = append(u.order, T)
		u.shapes[T] = ps
		for _, p := range ps {
			u.users[p] = append(u.users[p], T)
		}
	}
	return &Map{u: u, occupied: make(geom.CellSet)}
}

// Clone returns a Map sharing the universe of m with its own copy of the
// occupancy set.
func (m *Map) Clone() *Map {
	return &Map{u: m.u, occupied: m.occupied.Clone()}
}

// Len returns the number of placements in the universe.
func (m *Map) Len() int {
	return len(m.u.order)
}

// Transforms returns the universe in construction order.
func (m *Map) Transforms() []geom.Transform {
	return append([]geom.Transform(nil), m.u.order...)
}

// Shape returns the cells covered by placement T. The slice is shared and
// must not be modified.
func (m *Map) Shape(T geom.Transform) ([]geom.Point, error) {
	ps, ok := m.u.shapes[T]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownPlacement, T)
	}
	return ps, nil
}

// CellUsers returns the placements whose shape includes p. The slice is
// shared and must not be modified.
func (m *Map) CellUsers(p geom.Point) ([]geom.Transform, error) {
	ts, ok := m.u.users[p]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUncoveredCell, p)
	}
	return ts, nil
}

// IsCellOccupied reports whether cell p is covered.
func (m *Map) IsCellOccupied(p geom.Point) bool {
	return m.occupied.Has(p)
}

// IsPlacementOccupied reports whether any cell of placement T is occupied.
func (m *Map) IsPlacementOccupied(T geom.Transform) (bool, error) {
	ps, err := m.Shape(T)
	if err != nil {
		return false, err
	}
	for _, p := range ps {
		if m.occupied.Has(p) {
			return true, nil
		}
	}
	return false, nil
}

// OccupyCell marks cell p as covered.
func (m *Map) OccupyCell(p geom.Point) {
	m.occupied.Add(p)
}

// VacateCell marks cell p as uncovered.
func (m *Map) VacateCell(p geom.Point) {
	m.occupied.Remove(p)
}

// Occupy marks every cell of placement T as covered.
func (m *Map) Occupy(T geom.Transform) error {
	ps, err := m.Shape(T)
	if err != nil {
		return err
	}
	for _, p := range ps {
		m.occupied.Add(p)
	}
	return nil
}

// Vacate marks every cell of placement T as uncovered.
func (m *Map) Vacate(T geom.Transform) error {
	ps, err := m.Shape(T)
	if err != nil {
		return err
	}
	for _, p := range ps {
		m.occupied.Remove(p)
	}
	return nil
}

// Valid reports whether the occupied cells form a legitimate patch, which
// here means they are simply connected.
func (m *Map) Valid() (bool, error) {
	return kitegrid.SimplyConnected(m.occupied)
}

// Boundary returns the ordered halo of the occupied cells.
func (m *Map) Boundary() ([]geom.Point, error) {
	return kitegrid.OrderedHalo(m.occupied)
}

// Occupied returns a copy of the occupied cells.
func (m *Map) Occupied() geom.CellSet {
	return m.occupied.Clone()
}

// OccupiedCount returns the number of occupied cells.
func (m *Map) OccupiedCount() int {
	return len(m.occupied)
}
