package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/meshfx/geom"
)

// spec.md §8 scenario 1: triangle (0,0),(1,0),(0,1), center value 10, node
// values 1 and 2. The interpolation sub-triangle is (element center, (1,0),
// (0,1)), with the element center at the triangle's centroid (1/3, 1/3).
func TestTriangleScenario1(t *testing.T) {
	p0 := geom.V2{X: 1.0 / 3, Y: 1.0 / 3}
	p1 := geom.V2{X: 1, Y: 0}
	p2 := geom.V2{X: 0, Y: 1}
	const del = DeleteValue(1e-35)

	// Query (0.5, 0.5): exactly on the edge opposite the center.
	w := ComputeTriangleWeights(geom.V2{X: 0.5, Y: 0.5}, p0, p1, p2)
	require.True(t, w.Defined)
	require.InDelta(t, 0, w.W0, 1e-12)
	require.InDelta(t, 0.5, w.W1, 1e-12)
	require.InDelta(t, 0.5, w.W2, 1e-12)
	require.InDelta(t, 1.5, CombineTriangle(w, 10, 1, 2, del), 1e-12)

	// Query (1/3, 1/3): the centroid.
	w = ComputeTriangleWeights(geom.V2{X: 1.0 / 3, Y: 1.0 / 3}, p0, p1, p2)
	require.InDelta(t, 1, w.W0, 1e-12)
	require.InDelta(t, 0, w.W1, 1e-12)
	require.InDelta(t, 0, w.W2, 1e-12)
	require.InDelta(t, 10, CombineTriangle(w, 10, 1, 2, del), 1e-12)
}

// spec.md §8 scenario 2: values (1, delete, 2), delete-value = 1e-35.
func TestTriangleScenario2(t *testing.T) {
	p0 := geom.V2{X: 0, Y: 0}
	p1 := geom.V2{X: 1, Y: 0}
	p2 := geom.V2{X: 0, Y: 1}
	const del = DeleteValue(1e-35)

	w := ComputeTriangleWeights(geom.V2{X: 0.51, Y: 0}, p0, p1, p2)
	require.Greater(t, w.W1, 0.5)
	got := CombineTriangle(w, 1, float64(del), 2, del)
	require.Equal(t, float64(del), got)

	w = ComputeTriangleWeights(geom.V2{X: 0.49, Y: 0}, p0, p1, p2)
	require.Less(t, w.W1, 0.5)
	got = CombineTriangle(w, 1, float64(del), 2, del)
	require.NotEqual(t, float64(del), got)
}

func TestTriangleDegenerate(t *testing.T) {
	p0 := geom.V2{X: 0, Y: 0}
	p1 := geom.V2{X: 1, Y: 0}
	p2 := geom.V2{X: 2, Y: 0} // colinear, zero area
	w := ComputeTriangleWeights(geom.V2{X: 0.5, Y: 0}, p0, p1, p2)
	require.False(t, w.Defined)
	require.Equal(t, 5.0, CombineTriangle(w, 1, 2, 3, DeleteValue(5)))
}

func TestTriangleTwoOrThreeDeletesAlwaysDelete(t *testing.T) {
	p0 := geom.V2{X: 0, Y: 0}
	p1 := geom.V2{X: 1, Y: 0}
	p2 := geom.V2{X: 0, Y: 1}
	const del = DeleteValue(1e-35)
	w := ComputeTriangleWeights(geom.V2{X: 0.2, Y: 0.2}, p0, p1, p2)

	require.Equal(t, float64(del), CombineTriangle(w, float64(del), float64(del), 2, del))
	require.Equal(t, float64(del), CombineTriangle(w, float64(del), float64(del), float64(del), del))
}

func TestTriangleCentroidRecovery(t *testing.T) {
	p0 := geom.V2{X: 0, Y: 0}
	p1 := geom.V2{X: 3, Y: 1}
	p2 := geom.V2{X: 1, Y: 4}
	const del = DeleteValue(1e-35)

	for _, p := range []geom.V2{{X: 1, Y: 1}, {X: 0.8, Y: 2.1}, p0, p1, p2} {
		w := ComputeTriangleWeights(p, p0, p1, p2)
		require.True(t, w.Defined)
		require.InDelta(t, 1, w.W0+w.W1+w.W2, 1e-9) // partition of unity
		got := CombineTriangle(w, 7, 7, 7, del)
		require.InDelta(t, 7, got, 1e-9) // constant recovery
	}
}
