package viz

import (
	"github.com/gomesh/meshfx/geom"
	"github.com/gomesh/meshfx/mesh"
)

// projector maps mesh-space coordinates onto a pixel canvas, preserving
// aspect ratio and leaving a small margin.
type projector struct {
	minX, minY float64
	scale      float64
	width      int
	height     int
	margin     float64
}

const projectorMargin = 16

func newProjector(m *mesh.Mesh, width, height int) *projector {
	var pts geom.V2Set
	for i := 0; i < m.NodeCount(); i++ {
		pts = append(pts, m.Node(i).Pos)
	}
	if len(pts) == 0 {
		return &projector{scale: 1, width: width, height: height}
	}
	bb := geom.BoundingBox(pts)
	size := bb.Size()
	avail := float64(width) - 2*projectorMargin
	availH := float64(height) - 2*projectorMargin
	scale := 1.0
	if size.X > 0 && size.Y > 0 {
		sx := avail / size.X
		sy := availH / size.Y
		scale = sx
		if sy < sx {
			scale = sy
		}
	}
	return &projector{minX: bb.Min.X, minY: bb.Min.Y, scale: scale, width: width, height: height, margin: projectorMargin}
}

// project converts a mesh-space point to pixel coordinates. The mesh's y
// axis is flipped since SVG/image coordinates grow downward.
func (p *projector) project(v geom.V2) (int, int) {
	x := p.margin + (v.X-p.minX)*p.scale
	y := float64(p.height) - p.margin - (v.Y-p.minY)*p.scale
	return int(x), int(y)
}
