// Package viz renders the outputs of the core packages for debugging and
// delivery: SVG/PNG heatmaps of an interpolated field, DXF export of
// extracted boundary polylines, and a 3MF heightfield export of a scalar
// field draped over the mesh. These are presentation-layer conveniences
// over mesh/interp/overlap's outputs, not part of the interpolation core
// itself (SPEC_FULL.md §3).
package viz

import (
	"fmt"
	"io"

	"github.com/ajstarks/svgo"

	"github.com/gomesh/meshfx/interp"
	"github.com/gomesh/meshfx/mesh"
)

// Field is a scalar value per mesh element, with the sentinel used to mark
// missing values.
type Field struct {
	Values []float64
	Delete interp.DeleteValue
}

// Palette maps a normalized [0,1] field value to a display color, and a
// distinct color for delete-value elements.
type Palette struct {
	Low, High RGB
	DeleteRGB RGB
}

// RGB is a display color; kept separate from image/color.RGBA so callers
// building a Palette don't need to import image/color.
type RGB struct{ R, G, B uint8 }

// DefaultPalette is a blue-to-red heatmap with a neutral gray for deletes.
var DefaultPalette = Palette{
	Low:       RGB{33, 102, 172},
	High:      RGB{178, 24, 43},
	DeleteRGB: RGB{160, 160, 160},
}

func (p Palette) colorFor(v, lo, hi float64, isDelete bool) RGB {
	if isDelete {
		return p.DeleteRGB
	}
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + t*(float64(b)-float64(a))) }
	return RGB{lerp(p.Low.R, p.High.R), lerp(p.Low.G, p.High.G), lerp(p.Low.B, p.High.B)}
}

// RenderSVG draws m's elements, filled by f's values under palette, plus
// boundary polylines, to w as an SVG document of the given pixel size.
// Coordinates are mapped from the mesh's bounding box to the canvas with a
// small margin.
func RenderSVG(w io.Writer, m *mesh.Mesh, topo *mesh.Topology, f Field, palette Palette, width, height int) error {
	if len(f.Values) != m.ElementCount() {
		return fmt.Errorf("viz: field has %d values, want %d", len(f.Values), m.ElementCount())
	}

	proj := newProjector(m, width, height)

	lo, hi := fieldRange(f)

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:white")

	for ei := 0; ei < m.ElementCount(); ei++ {
		pts := m.ElementPositions(ei)
		xs := make([]int, len(pts))
		ys := make([]int, len(pts))
		for i, p := range pts {
			xs[i], ys[i] = proj.project(p)
		}
		isDel := interp.IsDelete(f.Values[ei], f.Delete)
		c := palette.colorFor(f.Values[ei], lo, hi, isDel)
		style := fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:black;stroke-width:0.5", c.R, c.G, c.B)
		canvas.Polygon(xs, ys, style)
	}

	if topo != nil {
		for _, pl := range topo.BoundaryPolylines() {
			xs := make([]int, len(pl.Nodes))
			ys := make([]int, len(pl.Nodes))
			for i, n := range pl.Nodes {
				xs[i], ys[i] = proj.project(m.Node(n).Pos)
			}
			canvas.Polyline(xs, ys, "fill:none;stroke:black;stroke-width:2")
		}
	}

	canvas.End()
	return nil
}

func fieldRange(f Field) (lo, hi float64) {
	lo, hi = 0, 0
	first := true
	for _, v := range f.Values {
		if interp.IsDelete(v, f.Delete) {
			continue
		}
		if first {
			lo, hi = v, v
			first = false
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
