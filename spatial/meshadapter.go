package spatial

import (
	"github.com/gomesh/meshfx/geom"
	"github.com/gomesh/meshfx/mesh"
)

// MeshAdapter adapts a *mesh.Mesh to MeshView, using InTriangle/InQuad for
// point containment. It is the adapter every index implementation in this
// package is built and tested against.
type MeshAdapter struct {
	Mesh *mesh.Mesh
}

// ElementCount implements MeshView.
func (a MeshAdapter) ElementCount() int { return a.Mesh.ElementCount() }

// ElementEnvelope implements MeshView.
func (a MeshAdapter) ElementEnvelope(i int) geom.Box2 {
	return geom.BoundingBox(a.Mesh.ElementPositions(i))
}

// Contains implements MeshView.
func (a MeshAdapter) Contains(i int, p geom.V2) bool {
	el := a.Mesh.Element(i)
	pts := a.Mesh.ElementPositions(i)
	switch el.Kind {
	case mesh.Triangle:
		return InTriangle(p, pts[0], pts[1], pts[2])
	case mesh.Quadrangle:
		return InQuad(p, pts[0], pts[1], pts[2], pts[3])
	default:
		return false
	}
}
