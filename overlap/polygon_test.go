package overlap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/meshfx/mesh"
	"github.com/gomesh/meshfx/spatial"
)

func unitSquareMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.New("local",
		[]float64{0, 1, 1, 0},
		[]float64{0, 0, 1, 1},
		[]float64{0, 0, 0, 0},
		[]int{1, 1, 1, 1},
		nil,
		[][]int{{0, 1, 2, 3}},
		nil,
	)
	require.NoError(t, err)
	return m
}

func newCalculator(t *testing.T, m *mesh.Mesh) *Calculator {
	t.Helper()
	idx := spatial.NewRTreeIndex(spatial.MeshAdapter{Mesh: m})
	return NewCalculator(m, idx, PlanarGeometry{})
}

// spec.md §8 scenario 6: a single square element of area 1, queried with a
// polygon covering its left half (area 0.5).
func TestCalculateHalfOverlap(t *testing.T) {
	m := unitSquareMesh(t)
	c := newCalculator(t, m)
	half := Polygon{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 1}, {X: 0, Y: 1}}

	weightResults, total, err := c.Calculate(half, Weight)
	require.NoError(t, err)
	require.InDelta(t, 0.5, total, 1e-9)
	require.Len(t, weightResults, 1)
	require.Equal(t, 0, weightResults[0].Element)
	require.InDelta(t, 1.0, weightResults[0].Weight, 1e-9)

	areaResults, _, err := c.Calculate(half, Area)
	require.NoError(t, err)
	require.InDelta(t, 0.5, areaResults[0].Weight, 1e-9)

	fractionResults, _, err := c.Calculate(half, Fraction)
	require.NoError(t, err)
	require.InDelta(t, 0.5, fractionResults[0].Weight, 1e-9)
}

func TestCalculateNoOverlapReturnsEmpty(t *testing.T) {
	m := unitSquareMesh(t)
	c := newCalculator(t, m)
	elsewhere := Polygon{{X: 10, Y: 10}, {X: 11, Y: 10}, {X: 11, Y: 11}, {X: 10, Y: 11}}

	results, total, err := c.Calculate(elsewhere, Weight)
	require.NoError(t, err)
	require.Empty(t, results)
	require.Equal(t, 0.0, total)
}

func TestCalculateRejectsUnsupportedGeometry(t *testing.T) {
	m := unitSquareMesh(t)
	c := newCalculator(t, m)

	_, _, err := c.Calculate("not-a-polygon", Weight)
	require.ErrorIs(t, err, ErrUnsupportedGeometry)
}

func TestCalculateMultiPolygonSumsPieces(t *testing.T) {
	m := unitSquareMesh(t)
	c := newCalculator(t, m)
	left := Polygon{{X: 0, Y: 0}, {X: 0.5, Y: 0}, {X: 0.5, Y: 1}, {X: 0, Y: 1}}
	right := Polygon{{X: 0.5, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0.5, Y: 1}}

	results, total, err := c.Calculate([]Polygon{left, right}, Area)
	require.NoError(t, err)
	require.InDelta(t, 1.0, total, 1e-9)
	require.Len(t, results, 1)
	require.InDelta(t, 1.0, results[0].Weight, 1e-9)
}
