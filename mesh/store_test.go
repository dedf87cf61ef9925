package mesh

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func unitTriangleMesh(t *testing.T) *Mesh {
	t.Helper()
	m, err := New("local",
		[]float64{0, 1, 0},
		[]float64{0, 0, 1},
		[]float64{0, 0, 0},
		[]int{1, 1, 2},
		nil,
		[][]int{{0, 1, 2}},
		nil,
	)
	require.NoError(t, err)
	return m
}

func TestNewComputesElementCenter(t *testing.T) {
	m := unitTriangleMesh(t)
	require.Equal(t, 1, m.ElementCount())
	c := m.ElementCenter(0)
	require.InDelta(t, 1.0/3.0, c.X, 1e-12)
	require.InDelta(t, 1.0/3.0, c.Y, 1e-12)
}

func TestNewRejectsBadElementNodeCount(t *testing.T) {
	_, err := New("local",
		[]float64{0, 1, 0, 1},
		[]float64{0, 0, 1, 1},
		[]float64{0, 0, 0, 0},
		[]int{0, 0, 0, 0},
		nil,
		[][]int{{0, 1}},
		nil,
	)
	require.ErrorIs(t, err, ErrInvalidMesh)
}

func TestNewRejectsOutOfRangeNode(t *testing.T) {
	_, err := New("local",
		[]float64{0, 1, 0},
		[]float64{0, 0, 1},
		[]float64{0, 0, 0},
		[]int{0, 0, 0},
		nil,
		[][]int{{0, 1, 5}},
		nil,
	)
	require.ErrorIs(t, err, ErrInvalidMesh)
}

func TestNewRejectsNonFiniteCoordinate(t *testing.T) {
	_, err := New("local",
		[]float64{0, 1, 0},
		[]float64{0, 0, 1},
		[]float64{0, 0, 0},
		[]int{0, 0, 0},
		nil,
		[][]int{{0, 1, 2}},
		nil,
	)
	require.NoError(t, err)

	nan := []float64{0, 1, 0}
	nan[0] = nanValue()
	_, err = New("local", nan, []float64{0, 0, 1}, []float64{0, 0, 0}, []int{0, 0, 0}, nil, [][]int{{0, 1, 2}}, nil)
	require.ErrorIs(t, err, ErrInvalidMesh)
}

func TestNewRejectsIncompatibleLengths(t *testing.T) {
	_, err := New("local",
		[]float64{0, 1, 0},
		[]float64{0, 0},
		[]float64{0, 0, 0},
		[]int{0, 0, 0},
		nil,
		[][]int{{0, 1, 2}},
		nil,
	)
	require.ErrorIs(t, err, ErrIncompatibleInputs)
}

func nanValue() float64 {
	var zero float64
	return zero / zero
}
