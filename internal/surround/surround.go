package surround

import (
	"iter"

	"hat-surround/internal/geom"
	"hat-surround/internal/patchmap"
)

// Surrounds returns the sequence of every way to surround patch, whose tiles
// must already be placed in m, with one more corona.
//
// Before searching, every boundary cell is checked for at least one candidate
// placement that does not overlap the patch; if some cell has none the
// sequence is empty. Boundary cells are covered in ordered-halo order and
// candidates are tried in the order m lists them, so the sequence is
// deterministic.
//
// An error (an empty map, or a boundary cell outside m's universe) is yielded
// once as the second value and ends the sequence.
func Surrounds(m *patchmap.Map, patch Patch, opts ...Option) iter.Seq2[Patch, error] {
	o := buildOptions(opts)
	return func(yield func(Patch, error) bool) {
		boundary, err := m.Boundary()
		if err != nil {
			yield(nil, err)
			return
		}

		ok, err := feasible(m, boundary)
		if err != nil {
			yield(nil, err)
			return
		}
		if !ok {
			return
		}

		s := &search{
			m:     m,
			level: patch.LastLevel() + 1,
			obs:   o.observer,
			yield: yield,
		}
		s.from(boundary, patch.Clone())
	}
}

// feasible reports whether every cell of boundary has at least one candidate
// placement that is still free.
func feasible(m *patchmap.Map, boundary []geom.Point) (bool, error) {
	for _, p := range boundary {
		users, err := m.CellUsers(p)
		if err != nil {
			return false, err
		}
		found := false
		for _, T := range users {
			occ, err := m.IsPlacementOccupied(T)
			if err != nil {
				return false, err
			}
			if !occ {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

type search struct {
	m     *patchmap.Map
	level int
	obs   Observer
	yield func(Patch, error) bool
}

// from covers boundary in order, extending patch. It returns false once the
// consumer has stopped or an error was reported.
func (s *search) from(boundary []geom.Point, patch Patch) bool {
	// Cells covered by an earlier placement need nothing more.
	for len(boundary) > 0 && s.m.IsCellOccupied(boundary[0]) {
		boundary = boundary[1:]
	}
	if len(boundary) == 0 {
		s.obs.SurroundFound()
		return s.yield(patch.Clone(), nil)
	}

	users, err := s.m.CellUsers(boundary[0])
	if err != nil {
		return s.fail(err)
	}
	for _, T := range users {
		occ, err := s.m.IsPlacementOccupied(T)
		if err != nil {
			return s.fail(err)
		}
		if occ {
			continue
		}
		if !s.try(T, boundary[1:], patch) {
			return false
		}
	}
	return true
}

// try places T, recurses if the result is still valid, and always removes T
// again before returning.
func (s *search) try(T geom.Transform, rest []geom.Point, patch Patch) bool {
	if err := s.m.Occupy(T); err != nil {
		return s.fail(err)
	}
	// T is in the universe, so Vacate cannot fail.
	defer func() { _ = s.m.Vacate(T) }()
	s.obs.PlacementTried()

	ok, err := s.m.Valid()
	if err != nil {
		return s.fail(err)
	}
	if !ok {
		s.obs.PlacementPruned()
		return true
	}
	return s.from(rest, append(patch, Placement{Level: s.level, T: T}))
}

func (s *search) fail(err error) bool {
	s.yield(nil, err)
	return false
}
