package spatial

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gomesh/meshfx/geom"
)

func TestInTriangleInteriorAndVertex(t *testing.T) {
	a := geom.V2{X: 0, Y: 0}
	b := geom.V2{X: 1, Y: 0}
	c := geom.V2{X: 0, Y: 1}

	require.True(t, InTriangle(geom.V2{X: 0.25, Y: 0.25}, a, b, c))
	require.True(t, InTriangle(a, a, b, c)) // vertex
	require.True(t, InTriangle(geom.V2{X: 0.5, Y: 0}, a, b, c)) // on edge
	require.False(t, InTriangle(geom.V2{X: -0.1, Y: -0.1}, a, b, c))
}

func TestInQuadUnitSquare(t *testing.T) {
	n0 := geom.V2{X: 0, Y: 0}
	n1 := geom.V2{X: 1, Y: 0}
	n2 := geom.V2{X: 1, Y: 1}
	n3 := geom.V2{X: 0, Y: 1}

	require.True(t, InQuad(geom.V2{X: 0.5, Y: 0.5}, n0, n1, n2, n3))
	require.False(t, InQuad(geom.V2{X: 1.5, Y: 0.5}, n0, n1, n2, n3))
}

func TestIsConvexQuad(t *testing.T) {
	square := []geom.V2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	require.True(t, IsConvexQuad(square[0], square[1], square[2], square[3]))

	// A dart / non-convex quad: one vertex pulled inward.
	dart := []geom.V2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0.5, Y: 0.5}, {X: 0, Y: 2}}
	require.False(t, IsConvexQuad(dart[0], dart[1], dart[2], dart[3]))
}
