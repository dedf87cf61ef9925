// Package spatial provides element-envelope spatial acceleration for point
// and envelope queries over a mesh (component C), plus the point-in-element
// tests the interpolators rely on.
package spatial

import "github.com/gomesh/meshfx/geom"

// InTriangle reports whether p lies inside (or on the boundary of) the
// triangle (a, b, c), using the signed-area/cross-product test of
// spec.md §4.3: the point is inside iff all three edge signs agree (are
// non-negative) with the triangle's own orientation. Points exactly on an
// edge are considered inside.
func InTriangle(p, a, b, c geom.V2) bool {
	d1 := geom.SignedArea2(a, b, p)
	d2 := geom.SignedArea2(b, c, p)
	d3 := geom.SignedArea2(c, a, p)

	hasNeg := d1 < -geom.EPSILON || d2 < -geom.EPSILON || d3 < -geom.EPSILON
	hasPos := d1 > geom.EPSILON || d2 > geom.EPSILON || d3 > geom.EPSILON
	return !(hasNeg && hasPos)
}

// InQuad reports whether p lies inside the quadrangle (n0, n1, n2, n3),
// decomposed into two triangles by the (n0, n2) diagonal, per spec.md
// §4.3. A convex quadrangle's all-four-cross-products test would give the
// same answer; the decomposition is used for every quadrangle, convex or
// not.
func InQuad(p, n0, n1, n2, n3 geom.V2) bool {
	return InTriangle(p, n0, n1, n2) || InTriangle(p, n0, n2, n3)
}

// IsConvexQuad reports whether (n0, n1, n2, n3), taken counter-clockwise,
// is convex: every interior angle's cross product has the same sign. Used
// by the quadrangle interpolator (component E) to reject the non-convex
// case outright, per spec.md §9 Open Question 2.
func IsConvexQuad(n0, n1, n2, n3 geom.V2) bool {
	pts := [4]geom.V2{n0, n1, n2, n3}
	sign := 0
	for i := 0; i < 4; i++ {
		a := pts[i]
		b := pts[(i+1)%4]
		c := pts[(i+2)%4]
		cr := geom.Cross(b.Sub(a), c.Sub(b))
		if cr > geom.EPSILON {
			if sign < 0 {
				return false
			}
			sign = 1
		} else if cr < -geom.EPSILON {
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
