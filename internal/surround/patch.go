package surround

import (
	"slices"

	"hat-surround/internal/geom"
)

// Placement is one tile of a patch: its transform and the corona it was
// added in (0 for the seed).
type Placement struct {
	Level int
	T     geom.Transform
}

// Patch lists placements in the order they were added.
type Patch []Placement

// Seed returns the 0-patch holding only the identity hat.
func Seed() Patch {
	return Patch{{Level: 0, T: geom.Identity()}}
}

// LastLevel returns the level of the last placement, or -1 for an empty
// patch.
func (p Patch) LastLevel() int {
	if len(p) == 0 {
		return -1
	}
	return p[len(p)-1].Level
}

// Transforms returns the transforms of p in placement order.
func (p Patch) Transforms() []geom.Transform {
	ts := make([]geom.Transform, len(p))
	for i, pl := range p {
		ts[i] = pl.T
	}
	return ts
}

// Levels maps every transform of p to its level.
func (p Patch) Levels() map[geom.Transform]int {
	m := make(map[geom.Transform]int, len(p))
	for _, pl := range p {
		m[pl.T] = pl.Level
	}
	return m
}

// Clone returns a copy of p that does not share storage with it.
func (p Patch) Clone() Patch {
	return slices.Clone(p)
}
