package surround

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hat-surround/internal/geom"
	"hat-surround/internal/hat"
	"hat-surround/internal/kitegrid"
)

func TestLegalNeighboursCount(t *testing.T) {
	assert.Len(t, LegalNeighbours(false), 54)
	assert.Len(t, LegalNeighbours(true), 58)
}

func TestLegalNeighboursOrder(t *testing.T) {
	want := []geom.Transform{
		{A: 1, B: 0, C: 2, D: 0, E: 1, F: -4},
		{A: 1, B: 0, C: -6, D: 0, E: 1, F: 0},
		{A: 1, B: 0, C: 6, D: 0, E: 1, F: 0},
		{A: 1, B: 0, C: -2, D: 0, E: 1, F: 4},
		{A: 1, B: 1, C: -4, D: 0, E: -1, F: 2},
	}
	got := LegalNeighbours(false)
	require.GreaterOrEqual(t, len(got), len(want))
	if diff := cmp.Diff(want, got[:len(want)]); diff != "" {
		t.Errorf("LegalNeighbours prefix mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, got, LegalNeighbours(false), "order must be reproducible")
}

func TestLegalNeighboursProperties(t *testing.T) {
	base := hat.CellSet()
	withHoles := make(map[geom.Transform]bool)
	for _, T := range LegalNeighbours(true) {
		withHoles[T] = true
	}

	for _, T := range LegalNeighbours(false) {
		placed := geom.NewCellSet(hat.Place(T)...)
		assert.True(t, placed.Disjoint(base), "%v overlaps the identity hat", T)
		assert.False(t, placed.Disjoint(kitegrid.Halo(base)), "%v does not touch the identity hat", T)

		ok, err := kitegrid.SimplyConnected(base.Union(placed))
		require.NoError(t, err)
		assert.True(t, ok, "%v leaves a hole", T)
		assert.True(t, withHoles[T], "%v missing when holes are allowed", T)

		inv, err := T.Invert()
		require.NoError(t, err)
		assert.True(t, inv.Multiply(T).IsIdentity())
	}
}

func TestPatchTransforms(t *testing.T) {
	assert.Equal(t, []geom.Transform{geom.Identity()}, PatchTransforms(0))

	one := PatchTransforms(1)
	assert.Len(t, one, 55)
	assert.True(t, one[0].IsIdentity())
	assert.Equal(t, LegalNeighbours(false), one[1:])

	three := PatchTransforms(3)
	assert.Len(t, three, 972)
	assert.Equal(t, one, three[:len(one)], "closure keeps first-insertion order")
}
