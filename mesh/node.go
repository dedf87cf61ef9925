package mesh

import "github.com/gomesh/meshfx/geom"

// Node is a mesh vertex: identity, Cartesian/projected position, and a
// boundary code (0 = interior, positive = boundary-segment identifier).
type Node struct {
	// ID is the caller-supplied node identifier (opaque; defaults to the
	// node's index if the caller didn't supply one).
	ID int
	// Pos is the node's (x, y) position. Z is carried separately since
	// interpolation math never touches elevation.
	Pos geom.V2
	// Z is the node's elevation. Not used by any interpolation math.
	Z float64
	// Code is 0 for interior nodes, a positive boundary-segment id otherwise.
	Code int
}
