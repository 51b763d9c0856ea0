package surround

import (
	"slices"

	"hat-surround/internal/geom"
	"hat-surround/internal/hat"
	"hat-surround/internal/kitegrid"
)

// LegalNeighbours returns every transform that carries the identity hat to
// a position touching it without overlap. Unless allowHoles is set, the union
// of the two hats must also be simply connected.
//
// For every orientation of the hat, each of its cells is translated onto
// each halo cell of the identity hat, provided the translation is a symmetry
// of the kite grid. Results keep the order in which they are first found.
func LegalNeighbours(allowHoles bool) []geom.Transform {
	base := hat.CellSet()
	halo := kitegrid.Halo(base).Sorted()

	var ret []geom.Transform
	seen := make(map[geom.Transform]bool)

	for _, O := range kitegrid.Orientations() {
		oriented := hat.Place(O)
		for _, hp := range halo {
			for _, op := range oriented {
				// Not all integer vectors are translations of the kite grid.
				if !kitegrid.CanTranslate(op, hp) {
					continue
				}
				T := geom.TranslateBy(hp.Sub(op)).Multiply(O)
				if seen[T] {
					continue
				}

				placed := geom.NewCellSet(hat.Place(T)...)
				if !placed.Disjoint(base) {
					continue
				}
				if !allowHoles {
					// base is never empty, so the error is always nil.
					if ok, _ := kitegrid.SimplyConnected(base.Union(placed)); !ok {
						continue
					}
				}

				seen[T] = true
				ret = append(ret, T)
			}
		}
	}
	return ret
}

// PatchTransforms returns every transform that could position a hat in an
// n-patch around the identity hat: n rounds of composing the set so far with
// the legal neighbours. The result is a superset of what any n-patch uses and
// is meant to size a patchmap universe once, up front.
func PatchTransforms(n int) []geom.Transform {
	ret := []geom.Transform{geom.Identity()}
	seen := map[geom.Transform]bool{geom.Identity(): true}
	ln := LegalNeighbours(false)

	for i := 0; i < n; i++ {
		for _, T := range slices.Clone(ret) {
			for _, S := range ln {
				X := T.Multiply(S)
				if !seen[X] {
					seen[X] = true
					ret = append(ret, X)
				}
			}
		}
	}
	return ret
}
