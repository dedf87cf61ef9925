package interp

import "github.com/gomesh/meshfx/geom"

// EpsilonOwn is the ε_w threshold from spec.md §4.4: a value's weight must
// exceed 0.5 to be considered the "owner" of the query point's influence
// zone for delete-value propagation purposes.
const EpsilonOwn = 0.5

// TriangleWeights holds the three barycentric-like weights for a point in
// a (element-center, node, node) triangle, summing to 1 when Defined.
type TriangleWeights struct {
	W0, W1, W2 float64
	// Defined is false for a degenerate (zero-area) triangle, per
	// spec.md §4.4; the weights are meaningless in that case.
	Defined bool
}

// ComputeTriangleWeights computes (w0, w1, w2) for point p against the
// triangle (p0, p1, p2), using standard barycentric coordinates:
//
//	w_i = signed_area(p, p_j, p_k) / signed_area(p0, p1, p2)
//
// with (i, j, k) a cyclic permutation of (0, 1, 2).
func ComputeTriangleWeights(p, p0, p1, p2 geom.V2) TriangleWeights {
	total := geom.SignedArea2(p0, p1, p2)
	if geom.Abs(total) < geom.EPSILON {
		return TriangleWeights{}
	}
	w0 := geom.SignedArea2(p, p1, p2) / total
	w1 := geom.SignedArea2(p, p2, p0) / total
	w2 := geom.SignedArea2(p, p0, p1) / total
	return TriangleWeights{W0: w0, W1: w1, W2: w2, Defined: true}
}

// CombineTriangle blends (z0, z1, z2) using w and the delete-value policy
// of spec.md §4.4:
//
//	0 deletes among inputs                                -> Σ wᵢ·zᵢ
//	1 delete, and its weight <= EpsilonOwn                -> renormalize over the other two
//	1 delete, and its weight >  EpsilonOwn                -> del
//	2 or 3 deletes                                        -> del
//
// An undefined weight set (degenerate triangle) always yields del.
func CombineTriangle(w TriangleWeights, z0, z1, z2 float64, del DeleteValue) float64 {
	if !w.Defined {
		return float64(del)
	}

	vals := [3]float64{z0, z1, z2}
	weights := [3]float64{w.W0, w.W1, w.W2}

	var missing []int
	for i, v := range vals {
		if IsDelete(v, del) {
			missing = append(missing, i)
		}
	}

	switch len(missing) {
	case 0:
		return weights[0]*vals[0] + weights[1]*vals[1] + weights[2]*vals[2]
	case 1:
		idx := missing[0]
		if weights[idx] > EpsilonOwn {
			return float64(del)
		}
		remaining := 1 - weights[idx]
		if remaining <= 0 {
			return float64(del)
		}
		var sum float64
		for i := 0; i < 3; i++ {
			if i == idx {
				continue
			}
			sum += (weights[i] / remaining) * vals[i]
		}
		return sum
	default: // 2 or 3 deletes
		return float64(del)
	}
}
