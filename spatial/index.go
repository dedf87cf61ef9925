package spatial

import "github.com/gomesh/meshfx/geom"

// MeshView is the minimal read-only view of a mesh an Index needs: element
// count, envelope and point-containment test. mesh.Mesh does not implement
// it directly (it has no ElementEnvelope or Contains); MeshAdapter wraps a
// *mesh.Mesh and supplies envelopes and InTriangle/InQuad containment.
type MeshView interface {
	ElementCount() int
	ElementEnvelope(i int) geom.Box2
	// Contains reports whether p lies inside element i.
	Contains(i int, p geom.V2) bool
}

// Index answers point and envelope queries over a mesh's elements
// (component C). Implementations must offer both an accelerated mode and
// the linear-scan fallback described in spec.md §4.3; LinearIndex is that
// fallback, RTreeIndex is the accelerated mode.
type Index interface {
	// Locate returns the index of the element containing p, or false if no
	// element contains it. Ties between adjacent elements are resolved by
	// smallest element index.
	Locate(p geom.V2) (int, bool)
	// Envelope returns the indices of every element whose bounding box
	// intersects bb, in ascending order.
	Envelope(bb geom.Box2) []int
}

// LinearIndex is the uninitialized fallback mode: every query scans all
// elements. It requires no build step and is correct for any mesh size; it
// exists so the core is usable (if not fast) without ever constructing a
// tree, matching spec.md §4.3's "un-initialized fallback" contract.
type LinearIndex struct {
	mesh MeshView
}

// NewLinearIndex wraps mesh for linear-scan queries.
func NewLinearIndex(mesh MeshView) *LinearIndex {
	return &LinearIndex{mesh: mesh}
}

// Locate implements Index.
func (l *LinearIndex) Locate(p geom.V2) (int, bool) {
	for i := 0; i < l.mesh.ElementCount(); i++ {
		if l.mesh.Contains(i, p) {
			return i, true
		}
	}
	return 0, false
}

// Envelope implements Index.
func (l *LinearIndex) Envelope(bb geom.Box2) []int {
	var out []int
	for i := 0; i < l.mesh.ElementCount(); i++ {
		if l.mesh.ElementEnvelope(i).Intersects(bb) {
			out = append(out, i)
		}
	}
	return out
}
