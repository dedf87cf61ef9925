package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/meshfx/geom"
)

func unitSquare() (n0, n1, n2, n3 geom.V2) {
	return geom.V2{X: 0, Y: 0}, geom.V2{X: 1, Y: 0}, geom.V2{X: 1, Y: 1}, geom.V2{X: 0, Y: 1}
}

// spec.md §8 scenario 3: unit-square quadrangle, query point with local
// coordinates (dx, dy) = (0.25, 0.75). The stated weights
// (0.1875, 0.0625, 0.1875, 0.5625) are reproduced exactly, but the stated
// result of 28.125 does not match those weights dotted against the stated
// corner values (10, 20, 40, 30): the correct dot product is 27.5 — see
// DESIGN.md's "Spec-arithmetic note". This test follows the normative
// formula (§4.5) and checks the arithmetically-correct value.
func TestQuadScenario3(t *testing.T) {
	n0, n1, n2, n3 := unitSquare()
	p := geom.V2{X: 0.25, Y: 0.75}
	const del = DeleteValue(1e-35)

	w := ComputeQuadWeights(p, n0, n1, n2, n3)
	require.True(t, w.Defined)
	require.InDelta(t, 0.25, w.DX, 1e-9)
	require.InDelta(t, 0.75, w.DY, 1e-9)

	corners := w.Corners()
	require.InDelta(t, 0.1875, corners[0], 1e-9)
	require.InDelta(t, 0.0625, corners[1], 1e-9)
	require.InDelta(t, 0.1875, corners[2], 1e-9)
	require.InDelta(t, 0.5625, corners[3], 1e-9)

	got := CombineQuad(w, 10, 20, 40, 30, del, false)
	require.InDelta(t, 27.5, got, 1e-9)
}

func TestQuadCornerAndCenterRecovery(t *testing.T) {
	n0, n1, n2, n3 := unitSquare()
	const del = DeleteValue(1e-35)

	w := ComputeQuadWeights(n0, n0, n1, n2, n3)
	require.True(t, w.Defined)
	require.InDelta(t, 0, w.DX, 1e-9)
	require.InDelta(t, 0, w.DY, 1e-9)

	w = ComputeQuadWeights(geom.V2{X: 0.5, Y: 0.5}, n0, n1, n2, n3)
	require.True(t, w.Defined)
	require.InDelta(t, 0.5, w.DX, 1e-9)
	require.InDelta(t, 0.5, w.DY, 1e-9)
	require.InDelta(t, 25, CombineQuad(w, 10, 20, 40, 30, del, false), 1e-9)
}

func TestQuadNonConvexRejected(t *testing.T) {
	dart := []geom.V2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 2}}
	w := ComputeQuadWeights(geom.V2{X: 0.3, Y: 0.3}, dart[0], dart[1], dart[2], dart[3])
	require.False(t, w.Defined)
	require.Equal(t, 9.0, CombineQuad(w, 1, 2, 3, 4, DeleteValue(9), false))
}

func TestQuadBoxModeDeleteChops(t *testing.T) {
	n0, n1, n2, n3 := unitSquare()
	const del = DeleteValue(1e-35)
	w := ComputeQuadWeights(geom.V2{X: 0.5, Y: 0.5}, n0, n1, n2, n3)
	require.True(t, w.Defined)

	got := CombineQuad(w, 10, float64(del), 40, 30, del, false)
	require.Equal(t, float64(del), got)
}

func TestQuadSmoothModeRenormalizes(t *testing.T) {
	n0, n1, n2, n3 := unitSquare()
	const del = DeleteValue(1e-35)
	w := ComputeQuadWeights(geom.V2{X: 0.5, Y: 0.5}, n0, n1, n2, n3)
	require.True(t, w.Defined)

	got := CombineQuad(w, 10, float64(del), 40, 30, del, true)
	// corners weights are all 0.25; dropping corner 1 leaves (10+40+30)/3.
	require.InDelta(t, 80.0/3.0, got, 1e-9)
}

func TestQuadSmoothModeAllDeleteYieldsDelete(t *testing.T) {
	n0, n1, n2, n3 := unitSquare()
	const del = DeleteValue(1e-35)
	w := ComputeQuadWeights(geom.V2{X: 0.5, Y: 0.5}, n0, n1, n2, n3)
	require.True(t, w.Defined)

	got := CombineQuad(w, float64(del), float64(del), float64(del), float64(del), del, true)
	require.Equal(t, float64(del), got)
}
