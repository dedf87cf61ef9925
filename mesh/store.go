// Package mesh owns the raw mesh data (nodes, elements, element centers)
// and the derived topology built from it (node->element inverse index,
// element->element neighbors, boundary faces/polylines).
//
// Mesh and Topology are built once from caller-supplied arrays and are
// logically immutable afterward; they may be shared read-only across
// goroutines (spec.md §5).
package mesh

import (
	"errors"
	"fmt"
	"math"

	"github.com/gomesh/meshfx/geom"
)

// ErrInvalidMesh is returned by New when the input arrays fail structural
// validation: an out-of-range node index, an element with neither 3 nor 4
// nodes, or a non-finite coordinate.
var ErrInvalidMesh = errors.New("mesh: invalid mesh")

// ErrIncompatibleInputs is returned when parallel input arrays disagree in
// length.
var ErrIncompatibleInputs = errors.New("mesh: incompatible input lengths")

// Mesh is a struct-of-arrays store of nodes and elements, plus the
// projection descriptor callers should forward to collaborators (e.g. a
// GeometryOps implementation) that need it. The teacher's class-based vs.
// array-based mesh split collapses here into one struct; callers never
// branch on a concrete mesh kind.
type Mesh struct {
	// Projection is an opaque string forwarded to collaborators; the core
	// never interprets it.
	Projection string
	Nodes      []Node
	Elements   []Element
}

// New validates the input arrays and builds a Mesh. Element centers are
// computed and cached here.
//
// x, y, z, code are parallel per-node arrays. nodeIDs may be nil, in which
// case node i's ID defaults to i. elementNodes holds, per element, the
// counter-clockwise node indices (length 3 or 4); elementIDs may be nil,
// defaulting to the element's index.
func New(projection string, x, y, z []float64, code []int, nodeIDs []int, elementNodes [][]int, elementIDs []int) (*Mesh, error) {
	n := len(x)
	if len(y) != n || len(z) != n || len(code) != n {
		return nil, fmt.Errorf("%w: node arrays have lengths x=%d y=%d z=%d code=%d", ErrIncompatibleInputs, n, len(y), len(z), len(code))
	}
	if nodeIDs != nil && len(nodeIDs) != n {
		return nil, fmt.Errorf("%w: nodeIDs has length %d, want %d", ErrIncompatibleInputs, len(nodeIDs), n)
	}
	if elementIDs != nil && len(elementIDs) != len(elementNodes) {
		return nil, fmt.Errorf("%w: elementIDs has length %d, want %d", ErrIncompatibleInputs, len(elementIDs), len(elementNodes))
	}

	nodes := make([]Node, n)
	for i := 0; i < n; i++ {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) || math.IsNaN(z[i]) || math.IsInf(z[i], 0) {
			return nil, fmt.Errorf("%w: node %d has a non-finite coordinate", ErrInvalidMesh, i)
		}
		id := i
		if nodeIDs != nil {
			id = nodeIDs[i]
		}
		nodes[i] = Node{ID: id, Pos: geom.V2{X: x[i], Y: y[i]}, Z: z[i], Code: code[i]}
	}

	elements := make([]Element, len(elementNodes))
	for i, idxs := range elementNodes {
		if len(idxs) != 3 && len(idxs) != 4 {
			return nil, fmt.Errorf("%w: element %d has %d nodes, want 3 or 4", ErrInvalidMesh, i, len(idxs))
		}
		for _, idx := range idxs {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("%w: element %d references out-of-range node %d", ErrInvalidMesh, i, idx)
			}
		}
		kind := Triangle
		if len(idxs) == 4 {
			kind = Quadrangle
		}
		id := i
		if elementIDs != nil {
			id = elementIDs[i]
		}
		nodeCopy := append([]int(nil), idxs...)
		elements[i] = Element{
			ID:     id,
			Nodes:  nodeCopy,
			Kind:   kind,
			Center: elementCenter(nodes, nodeCopy),
		}
	}

	return &Mesh{Projection: projection, Nodes: nodes, Elements: elements}, nil
}

func elementCenter(nodes []Node, idxs []int) geom.V2 {
	var sum geom.V2
	for _, idx := range idxs {
		sum = sum.Add(nodes[idx].Pos)
	}
	n := float64(len(idxs))
	return geom.V2{X: sum.X / n, Y: sum.Y / n}
}

// NodeCount returns the number of nodes in the mesh.
func (m *Mesh) NodeCount() int { return len(m.Nodes) }

// ElementCount returns the number of elements in the mesh.
func (m *Mesh) ElementCount() int { return len(m.Elements) }

// Node returns node i.
func (m *Mesh) Node(i int) Node { return m.Nodes[i] }

// Element returns element i.
func (m *Mesh) Element(i int) Element { return m.Elements[i] }

// ElementCenter returns the cached center of element i.
func (m *Mesh) ElementCenter(i int) geom.V2 { return m.Elements[i].Center }

// ElementPositions returns the node positions of element i, in order.
func (m *Mesh) ElementPositions(i int) geom.V2Set {
	el := m.Elements[i]
	pts := make(geom.V2Set, len(el.Nodes))
	for j, idx := range el.Nodes {
		pts[j] = m.Nodes[idx].Pos
	}
	return pts
}
