package viz

import (
	"os"

	"github.com/hpinc/go3mf"

	"github.com/gomesh/meshfx/interp"
	"github.com/gomesh/meshfx/mesh"
)

// ExportHeightfield3MF lofts an interpolated node-value field into a
// 3D-printable heightfield (z = zScale * value above each node's planar
// position) and writes it as a 3MF model at path — the 2D-interpolation
// analogue of the teacher's whole STL/3MF export pipeline
// (render/finiteelements/mesh), here exporting a field instead of a
// solid's marching-cubes surface. Nodes whose value is the delete sentinel
// are lofted to z=0 rather than skipped, so the triangulation stays valid.
func ExportHeightfield3MF(path string, m *mesh.Mesh, nodeValues []float64, del interp.DeleteValue, zScale float64) error {
	model := new(go3mf.Model)

	vertices := make([]go3mf.Point3D, m.NodeCount())
	for i := 0; i < m.NodeCount(); i++ {
		n := m.Node(i)
		z := 0.0
		if !interp.IsDelete(nodeValues[i], del) {
			z = nodeValues[i] * zScale
		}
		vertices[i] = go3mf.Point3D{X: float32(n.Pos.X), Y: float32(n.Pos.Y), Z: float32(z)}
	}

	var triangles []go3mf.Triangle
	for ei := 0; ei < m.ElementCount(); ei++ {
		el := m.Element(ei)
		if el.Kind == mesh.Triangle {
			triangles = append(triangles, go3mf.Triangle{
				V1: uint32(el.Nodes[0]), V2: uint32(el.Nodes[1]), V3: uint32(el.Nodes[2]),
			})
			continue
		}
		if el.Kind == mesh.Quadrangle {
			// Fan-triangulate the quad about its first node for the 3MF
			// triangle mesh representation.
			triangles = append(triangles,
				go3mf.Triangle{V1: uint32(el.Nodes[0]), V2: uint32(el.Nodes[1]), V3: uint32(el.Nodes[2])},
				go3mf.Triangle{V1: uint32(el.Nodes[0]), V2: uint32(el.Nodes[2]), V3: uint32(el.Nodes[3])},
			)
		}
	}

	object := &go3mf.Object{
		ID: 1,
		Mesh: &go3mf.Mesh{
			Vertices:  go3mf.Vertices{Vertex: vertices},
			Triangles: go3mf.Triangles{Triangle: triangles},
		},
	}
	model.Resources.Objects = append(model.Resources.Objects, object)
	model.Build.Items = append(model.Build.Items, &go3mf.Item{ObjectID: object.ID})

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := go3mf.NewEncoder(f)
	return enc.Encode(model)
}
