package interp

import (
	"math"

	"github.com/gomesh/meshfx/geom"
	"github.com/gomesh/meshfx/spatial"
)

// QuadWeights holds the local bilinear coordinates (dx, dy) in [0,1]^2 for
// a point inside a convex quadrangle, per spec.md §4.5.
type QuadWeights struct {
	DX, DY  float64
	Defined bool
}

// Corners returns the four corner weights
// ((1-dx)(1-dy), dx(1-dy), dx·dy, (1-dx)dy) implied by w.
func (w QuadWeights) Corners() [4]float64 {
	return [4]float64{
		(1 - w.DX) * (1 - w.DY),
		w.DX * (1 - w.DY),
		w.DX * w.DY,
		(1 - w.DX) * w.DY,
	}
}

// ComputeQuadWeights solves the bilinear-inverse problem for point p inside
// the convex quadrangle (n0, n1, n2, n3) (counter-clockwise), per spec.md
// §4.5:
//
//	p = (1-dx)(1-dy)·n0 + dx(1-dy)·n1 + dx·dy·n2 + (1-dx)dy·n3
//
// Non-convex quadrangles are rejected outright (spec.md §9 Open Question
// 2): the quadratic bilinear-inverse has two roots only in the pathological
// non-convex case, so this implementation never has to disambiguate them —
// it simply never attempts the solve there.
//
// The standard inverse-bilinear reduction (e.g. Quilez, "inverse bilinear
// interpolation") turns the 2-equation system into one quadratic in dy;
// when it has two roots in [0,1]^2 the one whose local coordinate is
// closer to the parameter-space centroid (0.5, 0.5) is kept.
func ComputeQuadWeights(p, n0, n1, n2, n3 geom.V2) QuadWeights {
	if !spatial.IsConvexQuad(n0, n1, n2, n3) {
		return QuadWeights{}
	}

	e := n1.Sub(n0)
	f := n3.Sub(n0)
	g := n0.Sub(n1).Add(n2).Sub(n3)
	h := p.Sub(n0)

	k2 := geom.Cross(g, f)
	k1 := geom.Cross(e, f) + geom.Cross(h, g)
	k0 := geom.Cross(h, e)

	type candidate struct{ dx, dy float64 }
	var candidates []candidate

	solveU := func(v float64) (float64, bool) {
		denom := e.X + g.X*v
		if geom.Abs(denom) < geom.EPSILON {
			denom = e.Y + g.Y*v
			if geom.Abs(denom) < geom.EPSILON {
				return 0, false
			}
			return (h.Y - f.Y*v) / denom, true
		}
		return (h.X - f.X*v) / denom, true
	}

	if geom.Abs(k2) < geom.EPSILON {
		// Linear case (g ~ 0, i.e. a parallelogram): single root.
		if geom.Abs(k1) < geom.EPSILON {
			return QuadWeights{}
		}
		v := -k0 / k1
		if u, ok := solveU(v); ok {
			candidates = append(candidates, candidate{u, v})
		}
	} else {
		disc := k1*k1 - 4*k0*k2
		if disc < 0 {
			return QuadWeights{}
		}
		sq := math.Sqrt(disc)
		for _, v := range []float64{(-k1 - sq) / (2 * k2), (-k1 + sq) / (2 * k2)} {
			if u, ok := solveU(v); ok {
				candidates = append(candidates, candidate{u, v})
			}
		}
	}

	const tol = 1e-9
	inRange := func(x float64) bool { return x >= -tol && x <= 1+tol }

	var best *candidate
	bestDist := math.Inf(1)
	for i := range candidates {
		c := candidates[i]
		if !inRange(c.dx) || !inRange(c.dy) {
			continue
		}
		dist := math.Hypot(c.dx-0.5, c.dy-0.5)
		if dist < bestDist {
			bestDist = dist
			best = &c
		}
	}
	if best == nil {
		return QuadWeights{}
	}
	return QuadWeights{DX: clamp01(best.dx), DY: clamp01(best.dy), Defined: true}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// CombineQuad blends the four corner values using w and the mode selected
// by smoothDeleteChop, per spec.md §4.5:
//
//	smoothDeleteChop == true  (smooth mode): a delete corner contributes
//	  weight 0 and the remaining weights renormalize; if nothing survives,
//	  the result is del.
//	smoothDeleteChop == false (box mode): any delete corner makes the whole
//	  element's influence region del.
func CombineQuad(w QuadWeights, z0, z1, z2, z3 float64, del DeleteValue, smoothDeleteChop bool) float64 {
	if !w.Defined {
		return float64(del)
	}

	vals := [4]float64{z0, z1, z2, z3}
	weights := w.Corners()

	if !smoothDeleteChop {
		for _, v := range vals {
			if IsDelete(v, del) {
				return float64(del)
			}
		}
		var sum float64
		for i := range vals {
			sum += weights[i] * vals[i]
		}
		return sum
	}

	var sum, weightSum float64
	for i := range vals {
		if IsDelete(vals[i], del) {
			continue
		}
		sum += weights[i] * vals[i]
		weightSum += weights[i]
	}
	if weightSum <= 0 {
		return float64(del)
	}
	return sum / weightSum
}
