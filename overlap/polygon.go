package overlap

import (
	"errors"
	"sort"

	"github.com/gomesh/meshfx/geom"
	"github.com/gomesh/meshfx/mesh"
	"github.com/gomesh/meshfx/spatial"
)

// ErrUnsupportedGeometry is returned when Calculate receives a geometry
// that is not a polygon or multi-polygon (spec.md §7).
var ErrUnsupportedGeometry = errors.New("overlap: unsupported geometry, want polygon or multi-polygon")

// Mode selects how Calculate turns per-element intersection areas into
// weights (spec.md §4.8).
type Mode int

const (
	// Weight normalizes by the total intersecting area; weights sum to 1.
	Weight Mode = iota
	// Area reports the raw intersection area in absolute units.
	Area
	// Fraction reports intersection area as a fraction of the element's
	// own area; weights do not sum to 1.
	Fraction
)

// Result is one (element, weight) pair produced by Calculate.
type Result struct {
	Element int
	Weight  float64
}

// Calculator is the polygon-overlap weight calculator (component H): for a
// query polygon, it finds every source element with non-empty geometric
// intersection via the spatial index (component C) and assigns a weight
// per Mode, delegating the actual intersection-area computation to an
// injected GeometryOps.
type Calculator struct {
	Mesh  *mesh.Mesh
	Index spatial.Index
	Ops   GeometryOps
}

// NewCalculator builds a Calculator over mesh m, its spatial index, and a
// geometry collaborator.
func NewCalculator(m *mesh.Mesh, idx spatial.Index, ops GeometryOps) *Calculator {
	return &Calculator{Mesh: m, Index: idx, Ops: ops}
}

// Calculate returns the (element, weight) pairs overlapping geometry g
// under mode, plus the total intersecting area (Σ pieces, an observable
// property per spec.md §4.8 independent of mode). Returns ErrUnsupportedGeometry
// if g is not a polygon or multi-polygon; returns an empty result (no
// error) when g is a valid geometry with no overlap.
func (c *Calculator) Calculate(g any, mode Mode) ([]Result, float64, error) {
	if !c.Ops.IsPolygon(g) {
		return nil, 0, ErrUnsupportedGeometry
	}
	rings := c.Ops.Polygons(g)

	var envelope geom.Box2
	for i, r := range rings {
		bb := c.Ops.EnvelopeOf(r)
		if i == 0 {
			envelope = bb
		} else {
			envelope = envelope.Union(bb)
		}
	}

	candidates := c.Index.Envelope(envelope)

	type piece struct {
		elem int
		area float64
	}
	var pieces []piece
	var totalArea float64
	for _, ei := range candidates {
		elemPoly := elementPolygon(c.Mesh, ei)
		var area float64
		for _, r := range rings {
			area += c.Ops.IntersectionArea(elemPoly, r)
		}
		if area <= 0 {
			continue
		}
		pieces = append(pieces, piece{elem: ei, area: area})
		totalArea += area
	}

	if len(pieces) == 0 {
		return nil, 0, nil
	}

	results := make([]Result, len(pieces))
	for i, p := range pieces {
		var w float64
		switch mode {
		case Area:
			w = p.area
		case Fraction:
			w = p.area / polygonArea(elementPolygon(c.Mesh, p.elem))
		default: // Weight
			w = p.area / totalArea
		}
		results[i] = Result{Element: p.elem, Weight: w}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Element < results[j].Element })
	return results, totalArea, nil
}

func elementPolygon(m *mesh.Mesh, ei int) Polygon {
	return Polygon(m.ElementPositions(ei))
}
