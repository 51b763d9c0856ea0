package geom

// CellSet is a set of grid cells.
type CellSet map[Point]struct{}

// NewCellSet returns a set holding ps.
func NewCellSet(ps ...Point) CellSet {
	s := make(CellSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

func (s CellSet) Has(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s CellSet) Add(p Point) {
	s[p] = struct{}{}
}

func (s CellSet) Remove(p Point) {
	delete(s, p)
}

// Clone returns an independent copy of s.
func (s CellSet) Clone() CellSet {
	c := make(CellSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Union returns a new set holding the cells of s and o.
func (s CellSet) Union(o CellSet) CellSet {
	u := s.Clone()
	for p := range o {
		u[p] = struct{}{}
	}
	return u
}

// Disjoint reports whether s and o share no cell.
func (s CellSet) Disjoint(o CellSet) bool {
	if len(o) < len(s) {
		s, o = o, s
	}
	for p := range s {
		if o.Has(p) {
			return false
		}
	}
	return true
}

// Equal reports whether s and o hold exactly the same cells.
func (s CellSet) Equal(o CellSet) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the cells of s ordered by Point.Less.
func (s CellSet) Sorted() []Point {
	ps := make([]Point, 0, len(s))
	for p := range s {
		ps = append(ps, p)
	}
	SortPoints(ps)
	return ps
}
