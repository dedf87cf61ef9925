package interp

import (
	"gonum.org/v1/gonum/mat"

	"github.com/gomesh/meshfx/geom"
	"github.com/gomesh/meshfx/mesh"
)

// NodeWeight is one (element index, weight) pair in a node's pseudo-
// Laplacian weight table.
type NodeWeight struct {
	Element int
	Weight  float64
}

// LaplacianTable is the pseudo-Laplacian node-value builder's output
// (component F): a per-node vector of (element, weight) pairs such that
//
//	v_node = Σ_e w_e · v_center(e)
//
// minimizes a discrete Laplacian residual subject to w_e >= 0, Σ w_e = 1.
// Built once per mesh and reused across time steps (spec.md §4.6, §5).
type LaplacianTable struct {
	Weights  [][]NodeWeight
	fellBack []bool
}

// Fallback reports whether node n's weights came from the inverse-distance
// fallback (spec.md §4.6 step 4, colinear adjacent centers) rather than the
// 2x2 least-squares solve. Exposed for QA reporting (SPEC_FULL.md §3).
func (t *LaplacianTable) Fallback(n int) bool {
	if n < 0 || n >= len(t.fellBack) {
		return false
	}
	return t.fellBack[n]
}

// NodeValue evaluates Σ_e w_e·centerValues[e] for node n.
func (t *LaplacianTable) NodeValue(n int, centerValues []float64) float64 {
	var sum float64
	for _, nw := range t.Weights[n] {
		sum += nw.Weight * centerValues[nw.Element]
	}
	return sum
}

// BuildLaplacian computes the pseudo-Laplacian weight table for every node
// of m, given its derived topology.
func BuildLaplacian(m *mesh.Mesh, topo *mesh.Topology) *LaplacianTable {
	t := &LaplacianTable{
		Weights:  make([][]NodeWeight, m.NodeCount()),
		fellBack: make([]bool, m.NodeCount()),
	}
	for n := 0; n < m.NodeCount(); n++ {
		adj := topo.NodeToElements[n]
		t.Weights[n], t.fellBack[n] = nodeWeights(m, n, adj)
	}
	return t
}

func nodeWeights(m *mesh.Mesh, n int, adj []int) ([]NodeWeight, bool) {
	k := len(adj)
	if k == 0 {
		return nil, false
	}
	if k == 1 {
		return []NodeWeight{{Element: adj[0], Weight: 1}}, false
	}

	nodePos := m.Node(n).Pos
	rx := make([]float64, k)
	ry := make([]float64, k)
	var ixx, iyy, ixy, ix, iy float64
	for i, e := range adj {
		c := m.ElementCenter(e)
		rx[i] = c.X - nodePos.X
		ry[i] = c.Y - nodePos.Y
		ixx += rx[i] * rx[i]
		iyy += ry[i] * ry[i]
		ixy += rx[i] * ry[i]
		ix += rx[i]
		iy += ry[i]
	}

	det := ixx*iyy - ixy*ixy
	if geom.Abs(det) < geom.EPSILON {
		return inverseDistanceWeights(adj, rx, ry), true
	}

	a := mat.NewDense(2, 2, []float64{ixx, ixy, ixy, iyy})
	b := mat.NewVecDense(2, []float64{-ix / float64(k), -iy / float64(k)})
	var x mat.VecDense
	if err := x.SolveVec(a, b); err != nil {
		return inverseDistanceWeights(adj, rx, ry), true
	}
	ax, ay := x.AtVec(0), x.AtVec(1)

	raw := make([]float64, k)
	for i := range adj {
		raw[i] = 1/float64(k) + ax*rx[i] + ay*ry[i]
	}

	return clampAndNormalize(adj, raw), false
}

// inverseDistanceWeights is the fallback of spec.md §4.6 step 4: used when
// the adjacent element centers are colinear with the node, making the 2x2
// system singular.
func inverseDistanceWeights(adj []int, rx, ry []float64) []NodeWeight {
	inv := make([]float64, len(adj))
	var sum float64
	for i := range adj {
		d := geom.V2{X: rx[i], Y: ry[i]}.Length()
		if d < geom.EPSILON {
			// Node coincides with an element center: that element owns
			// the node value outright.
			out := make([]NodeWeight, len(adj))
			for j, e := range adj {
				w := 0.0
				if j == i {
					w = 1
				}
				out[j] = NodeWeight{Element: e, Weight: w}
			}
			return out
		}
		inv[i] = 1 / d
		sum += inv[i]
	}
	out := make([]NodeWeight, len(adj))
	for i, e := range adj {
		out[i] = NodeWeight{Element: e, Weight: inv[i] / sum}
	}
	return out
}

// clampAndNormalize enforces the maximum-principle clamp of spec.md §4.6
// step 2: any raw weight outside [0,1] is clamped to it. The two normal
// equations solved in nodeWeights only pin down the raw weights' first
// moments (Σw·(x_e-x_n)=0, Σw·(y_e-y_n)=0); they say nothing about Σw, so
// the clamped weights are renormalized unconditionally — not only when
// clamping actually changed a value — to restore partition of unity. The
// clamped, renormalized solution no longer minimizes the least-squares
// residual exactly — that is the intentional trade for no-overshoot.
func clampAndNormalize(adj []int, raw []float64) []NodeWeight {
	clamped := make([]float64, len(raw))
	for i, w := range raw {
		c := w
		if c < 0 {
			c = 0
		} else if c > 1 {
			c = 1
		}
		clamped[i] = c
	}
	var sum float64
	for _, c := range clamped {
		sum += c
	}
	if sum > 0 {
		for i := range clamped {
			clamped[i] /= sum
		}
	}
	out := make([]NodeWeight, len(adj))
	for i, e := range adj {
		out[i] = NodeWeight{Element: e, Weight: clamped[i]}
	}
	return out
}
