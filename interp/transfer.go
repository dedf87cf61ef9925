package interp

import (
	"github.com/gomesh/meshfx/geom"
	"github.com/gomesh/meshfx/mesh"
	"github.com/gomesh/meshfx/spatial"
)

// Transfer is the mesh-to-mesh interpolator (component G): it locates the
// source element containing a target point, picks the sub-triangle of
// that element the point falls in, and blends the element-center value
// with the two bracketing node values (component D).
//
// Transfer carries one mutable configuration field, SmoothDeleteChop,
// fixed at construction; per spec.md §5, changing modes means building a
// new Transfer rather than mutating this one mid-batch.
type Transfer struct {
	Mesh       *mesh.Mesh
	Topology   *mesh.Topology
	Index      spatial.Index
	Laplacian  *LaplacianTable
	Delete     DeleteValue
	// SmoothDeleteChop selects the quadrangle delete-value policy (§4.5)
	// used by InterpolateQuadDirect; the triangle sub-element path (§4.7)
	// always applies the triangle policy of §4.4.
	SmoothDeleteChop bool
}

// NewTransfer builds a Transfer over a source mesh, its derived topology,
// a spatial index, and the node-value table produced by BuildLaplacian.
func NewTransfer(m *mesh.Mesh, topo *mesh.Topology, idx spatial.Index, lap *LaplacianTable, del DeleteValue, smoothDeleteChop bool) *Transfer {
	return &Transfer{Mesh: m, Topology: topo, Index: idx, Laplacian: lap, Delete: del, SmoothDeleteChop: smoothDeleteChop}
}

// Interpolate evaluates the source field (centerValues, one per source
// element) at point p, per spec.md §4.7:
//
//  1. Locate the source element E containing p; none found -> del.
//  2. Split E into sub-triangles anchored at its center and pick the one
//     containing p.
//  3. Apply the triangle interpolator (§4.4) in that sub-triangle, with
//     z0 the element-center value and z1, z2 the node values (via F) at
//     the sub-triangle's two non-center corners.
func (tr *Transfer) Interpolate(p geom.V2, centerValues []float64) float64 {
	ei, ok := tr.Index.Locate(p)
	if !ok {
		return float64(tr.Delete)
	}
	return tr.interpolateInElement(ei, p, centerValues)
}

func (tr *Transfer) interpolateInElement(ei int, p geom.V2, centerValues []float64) float64 {
	el := tr.Mesh.Element(ei)
	center := el.Center
	centerVal := centerValues[ei]
	pts := tr.Mesh.ElementPositions(ei)
	n := len(el.Nodes)

	for k := 0; k < n; k++ {
		left := k
		right := (k + 1) % n
		if !spatial.InTriangle(p, center, pts[left], pts[right]) {
			continue
		}
		leftVal := tr.Laplacian.NodeValue(el.Nodes[left], centerValues)
		rightVal := tr.Laplacian.NodeValue(el.Nodes[right], centerValues)
		w := ComputeTriangleWeights(p, center, pts[left], pts[right])
		return CombineTriangle(w, centerVal, leftVal, rightVal, tr.Delete)
	}
	// Point was inside the element's envelope/containment test but not in
	// any sub-triangle (can happen only at the numerical edge of a
	// degenerate element); treat as outside.
	return float64(tr.Delete)
}

// InterpolateToTargets is the vectorized form (spec.md §6
// interpolate_to_target): evaluates Interpolate at every target point,
// writing into out (which must have the same length as targets).
func (tr *Transfer) InterpolateToTargets(targets []geom.V2, centerValues []float64, out []float64) {
	for i, p := range targets {
		out[i] = tr.Interpolate(p, centerValues)
	}
}

// InterpolateQuadDirect is the "alternative path" of spec.md §4.7: pure
// node interpolation via the quadrangle interpolator (§4.5), used when the
// caller wants a full bilinear mapping instead of the center-anchored
// sub-triangle blend. p must lie inside a quadrangle element; nodeValues
// is indexed by node, typically populated via LaplacianTable.NodeValue.
func (tr *Transfer) InterpolateQuadDirect(ei int, p geom.V2, nodeValues []float64) float64 {
	el := tr.Mesh.Element(ei)
	if el.Kind != mesh.Quadrangle {
		return float64(tr.Delete)
	}
	pts := tr.Mesh.ElementPositions(ei)
	w := ComputeQuadWeights(p, pts[0], pts[1], pts[2], pts[3])
	return CombineQuad(w,
		nodeValues[el.Nodes[0]], nodeValues[el.Nodes[1]], nodeValues[el.Nodes[2]], nodeValues[el.Nodes[3]],
		tr.Delete, tr.SmoothDeleteChop)
}
