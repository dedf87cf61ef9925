package viz

import (
	"image"
	"image/color"
	"strconv"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gomesh/meshfx/interp"
	"github.com/gomesh/meshfx/mesh"
)

// labelFont is parsed once; every RenderHeatmapPNG call shares it. This
// mirrors the teacher's sdf.LoadFont/TextSDF2 path (referenced, commented
// out, in examples/spiral/main.go) but draws directly with freetype
// instead of building an SDF from the glyph outlines.
var labelFont = mustParseFont()

func mustParseFont() *truetype.Font {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// goregular.TTF is embedded and well-formed; a parse failure here
		// would mean the x/image module itself is broken.
		panic(err)
	}
	return f
}

// RenderHeatmapPNG rasterizes m's elements, filled by f's values under
// palette, into a width x height RGBA image, with each node's ID drawn as
// a small label via a parsed TrueType font. labelEvery controls label
// density: 0 disables labels, 1 labels every node, N labels every Nth node.
func RenderHeatmapPNG(m *mesh.Mesh, f Field, palette Palette, width, height, labelEvery int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetFillColor(color.White)
	gc.Clear()

	proj := newProjector(m, width, height)
	lo, hi := fieldRange(f)

	for ei := 0; ei < m.ElementCount(); ei++ {
		pts := m.ElementPositions(ei)
		isDel := interp.IsDelete(f.Values[ei], f.Delete)
		c := palette.colorFor(f.Values[ei], lo, hi, isDel)
		gc.SetFillColor(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		gc.SetStrokeColor(color.Black)
		gc.SetLineWidth(0.5)

		x0, y0 := proj.project(pts[0])
		gc.MoveTo(float64(x0), float64(y0))
		for _, p := range pts[1:] {
			x, y := proj.project(p)
			gc.LineTo(float64(x), float64(y))
		}
		gc.Close()
		gc.FillStroke()
	}

	if labelEvery > 0 {
		if err := drawNodeLabels(img, m, proj, labelEvery); err != nil {
			return nil, err
		}
	}

	return img, nil
}

func drawNodeLabels(img *image.RGBA, m *mesh.Mesh, proj *projector, every int) error {
	fc := freetype.NewContext()
	fc.SetDPI(72)
	fc.SetFont(labelFont)
	fc.SetFontSize(9)
	fc.SetClip(img.Bounds())
	fc.SetDst(img)
	fc.SetSrc(image.NewUniform(color.Black))

	for n := 0; n < m.NodeCount(); n += every {
		x, y := proj.project(m.Node(n).Pos)
		pt := freetype.Pt(x+2, y-2)
		if _, err := fc.DrawString(strconv.Itoa(m.Node(n).ID), pt); err != nil {
			return err
		}
	}
	return nil
}
