package viz

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"

	"github.com/gomesh/meshfx/mesh"
)

// ExportBoundaryDXF writes extract_boundary()'s polylines (spec.md §4.2,
// §6) to a DXF document at path, one layer per boundary code, so the
// result can be imported into CAD/GIS tooling. yofu/dxf has no native
// multi-vertex-polyline-per-ring helper in the version this module
// targets, so each polyline segment is emitted as its own LINE entity on
// its code's layer.
func ExportBoundaryDXF(path string, m *mesh.Mesh, topo *mesh.Topology) error {
	d := dxf.NewDrawing()

	seen := make(map[int]bool)
	for _, pl := range topo.BoundaryPolylines() {
		layer := layerName(pl.Code)
		if !seen[pl.Code] {
			d.Layer(layer, color.Get(uint8(1+pl.Code%250)), true)
			seen[pl.Code] = true
		}
		d.ChangeLayer(layer)
		for i := 0; i+1 < len(pl.Nodes); i++ {
			a := m.Node(pl.Nodes[i])
			b := m.Node(pl.Nodes[i+1])
			d.Line(a.Pos.X, a.Pos.Y, a.Z, b.Pos.X, b.Pos.Y, b.Z)
		}
	}

	return d.SaveAs(path)
}

func layerName(code int) string {
	return fmt.Sprintf("BOUNDARY_%d", code)
}
