package mesh

import "github.com/gomesh/meshfx/geom"

// Type tags the shape of an element.
type Type int

const (
	// Triangle is a 3-node element.
	Triangle Type = iota
	// Quadrangle is a 4-node element.
	Quadrangle
	// Other is any element kind the core does not interpolate over; it is
	// carried through the mesh store for completeness but Topology and the
	// interpolators never produce it.
	Other
)

func (t Type) String() string {
	switch t {
	case Triangle:
		return "triangle"
	case Quadrangle:
		return "quadrangle"
	default:
		return "other"
	}
}

// Element is a mesh face: an ordered, counter-clockwise list of node
// indices (into the owning Mesh's Nodes slice), its type tag, and its
// cached center.
type Element struct {
	// ID is the caller-supplied element identifier (defaults to index).
	ID int
	// Nodes holds 3 or 4 node indices, counter-clockwise.
	Nodes []int
	// Kind is Triangle or Quadrangle (or Other).
	Kind Type
	// Center is the arithmetic mean of the element's node coordinates,
	// computed once at construction and cached (spec.md §4.1).
	Center geom.V2
}

// NodeCount returns the number of nodes in the element (3 or 4).
func (e *Element) NodeCount() int { return len(e.Nodes) }
