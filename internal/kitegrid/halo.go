package kitegrid

import (
	"errors"
	"fmt"

	"hat-surround/internal/geom"
)

// ErrEmptyCellSet is returned by operations that need at least one cell to
// locate a boundary.
var ErrEmptyCellSet = errors.New("kitegrid: empty cell set")

const neighbourCount = 9

// Halo returns every cell that is a neighbour of some cell in s but is not
// itself in s.
func Halo(s geom.CellSet) geom.CellSet {
	h := make(geom.CellSet)
	for p := range s {
		for _, n := range Neighbours(p) {
			if !s.Has(n) {
				h.Add(n)
			}
		}
	}
	return h
}

// rainbow returns the arc of p's neighbours outside s that contains h,
// followed by the first cell of s after the arc. When no neighbour of p lies
// in s the arc is all nine neighbours and the cell after it is p itself.
func rainbow(p, h geom.Point, s geom.CellSet) ([]geom.Point, geom.Point, error) {
	ns := Neighbours(p)
	n := len(ns)

	i := -1
	for k, q := range ns {
		if q == h {
			i = k + n
			break
		}
	}
	if i < 0 {
		return nil, geom.Point{}, fmt.Errorf("kitegrid: %v is not a neighbour of %v", h, p)
	}

	// Walk back to the first cell of the arc.
	back := 0
	for back < n && !s.Has(ns[(i-1)%n]) {
		i--
		back++
	}
	if back == n {
		arc := make([]geom.Point, n)
		for k := range arc {
			arc[k] = ns[(i+k)%n]
		}
		return arc, p, nil
	}

	var arc []geom.Point
	for !s.Has(ns[i%n]) {
		arc = append(arc, ns[i%n])
		i++
	}
	return arc, ns[i%n], nil
}

// haloStart returns the first cell of s, in point order, that shares an edge
// with a cell outside s, together with that outside cell. Starting across an
// edge rather than a vertex guarantees the walk begins on the true boundary.
func haloStart(s geom.CellSet) (geom.Point, geom.Point, bool) {
	for _, p := range s.Sorted() {
		for _, a := range Adjacents(p) {
			if !s.Has(a) {
				return p, a, true
			}
		}
	}
	return geom.Point{}, geom.Point{}, false
}

// OrderedHalo walks once around the border of s and returns the cells
// outside s in the order they are met. Cells already passed are not
// repeated, so for shapes whose boundary touches itself the list may omit
// cells that an unordered Halo would include.
func OrderedHalo(s geom.CellSet) ([]geom.Point, error) {
	if len(s) == 0 {
		return nil, ErrEmptyCellSet
	}
	start, h, ok := haloStart(s)
	if !ok {
		return nil, fmt.Errorf("kitegrid: no boundary cell found for %d cells", len(s))
	}

	used := s.Clone()
	var ret []geom.Point
	cur := start

	for steps := 0; ; steps++ {
		if steps > neighbourCount*len(s) {
			return nil, fmt.Errorf("kitegrid: halo walk from %v did not close", start)
		}
		arc, next, err := rainbow(cur, h, s)
		if err != nil {
			return nil, err
		}
		for _, p := range arc {
			if !used.Has(p) {
				ret = append(ret, p)
				used.Add(p)
			}
		}
		cur = next
		h = arc[len(arc)-1]
		if cur == start {
			break
		}
	}
	return ret, nil
}

// SimplyConnected reports whether s has no holes, by checking that its halo
// forms a single component under edge adjacency.
func SimplyConnected(s geom.CellSet) (bool, error) {
	if len(s) == 0 {
		return false, ErrEmptyCellSet
	}
	halo := Halo(s)

	var first geom.Point
	for p := range halo {
		first = p
		break
	}
	visited := geom.NewCellSet(first)
	work := []geom.Point{first}

	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]
		for _, n := range Adjacents(p) {
			if halo.Has(n) && !visited.Has(n) {
				visited.Add(n)
				work = append(work, n)
			}
		}
	}
	return len(visited) == len(halo), nil
}
