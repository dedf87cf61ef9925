package mesh

import (
	"sort"
	"strconv"
)

// edgeKey is a normalized (undirected) node-index pair, used to detect
// shared edges between elements.
type edgeKey struct {
	lo, hi int
}

func makeEdgeKey(a, b int) edgeKey {
	if a < b {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

type edgeRef struct {
	element int
	a, b    int // original (directed) node order within that element
}

// BoundaryFace is one boundary edge, in the directed order induced by its
// owning element's node ordering (counter-clockwise interior => boundary
// traversal with the interior on the left, spec.md §4.2).
type BoundaryFace struct {
	NodeA, NodeB int
	Code         int
}

// Polyline is a connected chain of boundary faces sharing one derived code.
type Polyline struct {
	Code  int
	Nodes []int // node indices, in traversal order; len = len(faces)+1 for an open chain
}

// Topology is the derived, immutable-once-built adjacency structure over a
// Mesh: the node->element inverse index, the element->element neighbor
// list, and the boundary face/polyline extraction (component B).
type Topology struct {
	// NodeToElements[n] lists the elements touching node n.
	NodeToElements [][]int
	// ElementNeighbors[e][k] is the neighbor across element e's k-th edge,
	// or -1 if that edge is a boundary.
	ElementNeighbors [][]int
	// BoundaryFaces are the boundary edges, each tagged with a derived code.
	BoundaryFaces []BoundaryFace
	// Warnings records non-fatal anomalies found while building the
	// topology (e.g. a boundary edge whose both endpoints have code 0).
	Warnings []string
}

// Build computes the derived topology for m. Build is the only place the
// module does O(|nodes|+|elements|) scatter/hash work; the result is meant
// to be built once and reused (spec.md §5).
func Build(m *Mesh) *Topology {
	t := &Topology{
		NodeToElements:   make([][]int, len(m.Nodes)),
		ElementNeighbors: make([][]int, len(m.Elements)),
	}

	edges := make(map[edgeKey][]edgeRef)

	for ei, el := range m.Elements {
		t.ElementNeighbors[ei] = make([]int, len(el.Nodes))
		for k := range t.ElementNeighbors[ei] {
			t.ElementNeighbors[ei][k] = -1
		}
		for _, nIdx := range el.Nodes {
			t.NodeToElements[nIdx] = append(t.NodeToElements[nIdx], ei)
		}
		n := len(el.Nodes)
		for k := 0; k < n; k++ {
			a, b := el.Nodes[k], el.Nodes[(k+1)%n]
			key := makeEdgeKey(a, b)
			edges[key] = append(edges[key], edgeRef{element: ei, a: a, b: b})
		}
	}

	for key, refs := range edges {
		switch len(refs) {
		case 1:
			face := BoundaryFace{NodeA: refs[0].a, NodeB: refs[0].b, Code: t.boundaryCode(m, refs[0].a, refs[0].b)}
			t.BoundaryFaces = append(t.BoundaryFaces, face)
		case 2:
			t.setNeighbor(m, refs[0].element, key, refs[1].element)
			t.setNeighbor(m, refs[1].element, key, refs[0].element)
		default:
			// Non-manifold edge (shared by 3+ elements): not a conforming
			// mesh per spec.md §4.1's invariants. Leave neighbors
			// unresolved for these elements rather than guessing.
		}
	}

	// Deterministic order: callers diffing boundary extraction across runs
	// shouldn't see map-iteration-order churn.
	sort.Slice(t.BoundaryFaces, func(i, j int) bool {
		fi, fj := t.BoundaryFaces[i], t.BoundaryFaces[j]
		if fi.NodeA != fj.NodeA {
			return fi.NodeA < fj.NodeA
		}
		return fi.NodeB < fj.NodeB
	})

	return t
}

func (t *Topology) setNeighbor(m *Mesh, element int, key edgeKey, neighbor int) {
	el := m.Elements[element]
	n := len(el.Nodes)
	for k := 0; k < n; k++ {
		a, b := el.Nodes[k], el.Nodes[(k+1)%n]
		if makeEdgeKey(a, b) == key {
			t.ElementNeighbors[element][k] = neighbor
			return
		}
	}
}

// boundaryCode derives a boundary face's code from its two endpoint node
// codes, per spec.md §4.2:
//   - both positive and equal                -> that code
//   - both positive and different            -> the smaller positive code
//   - one is 0                               -> the other's code
//   - both 0                                 -> 0, and a warning is logged
func (t *Topology) boundaryCode(m *Mesh, a, b int) int {
	ca, cb := m.Nodes[a].Code, m.Nodes[b].Code
	switch {
	case ca == cb:
		if ca == 0 {
			t.Warnings = append(t.Warnings, boundaryZeroCodeWarning(a, b))
		}
		return ca
	case ca > 0 && cb > 0:
		if ca < cb {
			return ca
		}
		return cb
	case ca == 0:
		return cb
	default: // cb == 0
		return ca
	}
}

func boundaryZeroCodeWarning(a, b int) string {
	return "boundary edge between node indices with code 0 on both ends: " + strconv.Itoa(a) + "-" + strconv.Itoa(b)
}

// BoundaryPolylines groups boundary faces by their derived code and walks
// each group's connected chains into ordered polylines.
//
// Open question (spec.md §9): when two adjacent boundary nodes carry
// different positive codes, the two sides are never merged into one
// polyline — each code's faces are walked independently, so a node shared
// by two differently-coded segments simply becomes the shared endpoint of
// two separate Polyline values. This preserves both codes rather than
// picking one to win.
func (t *Topology) BoundaryPolylines() []Polyline {
	byCode := make(map[int][]BoundaryFace)
	for _, f := range t.BoundaryFaces {
		byCode[f.Code] = append(byCode[f.Code], f)
	}

	codes := make([]int, 0, len(byCode))
	for c := range byCode {
		codes = append(codes, c)
	}
	sort.Ints(codes)

	var out []Polyline
	for _, code := range codes {
		out = append(out, walkPolylines(code, byCode[code])...)
	}
	return out
}

func walkPolylines(code int, faces []BoundaryFace) []Polyline {
	next := make(map[int]int, len(faces))
	hasIncoming := make(map[int]bool, len(faces))
	for _, f := range faces {
		next[f.NodeA] = f.NodeB
		hasIncoming[f.NodeB] = true
	}

	visited := make(map[int]bool, len(faces))
	var out []Polyline

	walk := func(start int) Polyline {
		p := Polyline{Code: code, Nodes: []int{start}}
		cur := start
		for {
			nxt, ok := next[cur]
			if !ok || visited[cur] {
				break
			}
			visited[cur] = true
			p.Nodes = append(p.Nodes, nxt)
			cur = nxt
			if cur == start {
				break // closed loop
			}
		}
		return p
	}

	// Open chains first: starts are nodes with an outgoing edge but no
	// incoming one.
	starts := make([]int, 0)
	for _, f := range faces {
		if !hasIncoming[f.NodeA] {
			starts = append(starts, f.NodeA)
		}
	}
	sort.Ints(starts)
	for _, s := range starts {
		if visited[s] {
			continue
		}
		out = append(out, walk(s))
	}

	// Remaining faces belong to closed loops; walk each starting from an
	// arbitrary unvisited node in deterministic (sorted) order.
	remaining := make([]int, 0)
	for n := range next {
		if !visited[n] {
			remaining = append(remaining, n)
		}
	}
	sort.Ints(remaining)
	for _, s := range remaining {
		if visited[s] {
			continue
		}
		out = append(out, walk(s))
	}

	return out
}
