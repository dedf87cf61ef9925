// Package overlap implements the polygon-overlap weight calculator
// (component H): given a polygon, find every source element with
// non-empty geometric intersection and assign it a weight under one of
// three modes.
package overlap

import "github.com/gomesh/meshfx/geom"

// Polygon is a single closed ring, given as an ordered point list (the
// ring is implicitly closed by wrapping back to index 0).
type Polygon []geom.V2

// GeometryOps is the external collaborator spec.md §1 and §6 place out of
// the core's scope: polygon/polygon intersection, envelope computation,
// and geometry-kind classification. It is injected so component H is
// testable without a real geometry engine.
type GeometryOps interface {
	// IntersectionArea returns the area shared by a and b.
	IntersectionArea(a, b Polygon) float64
	// EnvelopeOf returns p's axis-aligned bounding box.
	EnvelopeOf(p Polygon) geom.Box2
	// IsPolygon reports whether g is a polygon or multi-polygon this
	// collaborator can operate on.
	IsPolygon(g any) bool
	// Polygons extracts g's constituent rings (length 1 for a simple
	// polygon, >1 for a multi-polygon). Only called once IsPolygon(g)
	// is true.
	Polygons(g any) []Polygon
}

// PlanarGeometry is a minimal, stdlib-only GeometryOps used by this
// package's own tests (spec.md §6 requires the core be testable without a
// real geometry engine; it is not meant as a production collaborator —
// callers should inject a real geometry library instead, see
// SPEC_FULL.md §2).
//
// IntersectionArea clips query against element using Sutherland-Hodgman,
// which requires the clip polygon to be convex; every mesh element this
// package clips against (triangle or quadrangle) satisfies that.
type PlanarGeometry struct{}

// IntersectionArea implements GeometryOps.
func (PlanarGeometry) IntersectionArea(element, query Polygon) float64 {
	clipped := sutherlandHodgman(query, element)
	if len(clipped) < 3 {
		return 0
	}
	return polygonArea(clipped)
}

// EnvelopeOf implements GeometryOps.
func (PlanarGeometry) EnvelopeOf(p Polygon) geom.Box2 {
	return geom.BoundingBox(geom.V2Set(p))
}

// IsPolygon implements GeometryOps.
func (PlanarGeometry) IsPolygon(g any) bool {
	switch v := g.(type) {
	case Polygon:
		return len(v) >= 3
	case []Polygon:
		return len(v) > 0
	default:
		return false
	}
}

// Polygons implements GeometryOps.
func (PlanarGeometry) Polygons(g any) []Polygon {
	switch v := g.(type) {
	case Polygon:
		return []Polygon{v}
	case []Polygon:
		return v
	default:
		return nil
	}
}

// polygonArea returns the unsigned area of a simple polygon via the
// shoelace formula.
func polygonArea(p Polygon) float64 {
	var sum float64
	n := len(p)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return geom.Abs(sum) / 2
}

// sutherlandHodgman clips subject against the convex polygon clip,
// returning the intersection polygon (possibly empty).
func sutherlandHodgman(subject, clip Polygon) Polygon {
	output := subject
	n := len(clip)
	for i := 0; i < n && len(output) > 0; i++ {
		a := clip[i]
		b := clip[(i+1)%n]
		input := output
		output = nil
		for j := 0; j < len(input); j++ {
			cur := input[j]
			prev := input[(j-1+len(input))%len(input)]
			curIn := isInside(a, b, cur)
			prevIn := isInside(a, b, prev)
			if curIn {
				if !prevIn {
					output = append(output, lineIntersect(prev, cur, a, b))
				}
				output = append(output, cur)
			} else if prevIn {
				output = append(output, lineIntersect(prev, cur, a, b))
			}
		}
	}
	return output
}

// isInside reports whether p is on the left (interior, for a
// counter-clockwise clip polygon) side of directed edge a->b.
func isInside(a, b, p geom.V2) bool {
	return geom.SignedArea2(a, b, p) >= -geom.EPSILON
}

func lineIntersect(p1, p2, a, b geom.V2) geom.V2 {
	d1 := p2.Sub(p1)
	d2 := b.Sub(a)
	denom := geom.Cross(d1, d2)
	if geom.Abs(denom) < geom.EPSILON {
		return p1
	}
	t := geom.Cross(a.Sub(p1), d2) / denom
	return p1.Add(d1.Scale(t))
}
