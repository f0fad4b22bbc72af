package earclip

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/osuushi/earclip/dbg"
)

// This is for debugging purposes only

// Padding around the shape so thin slivers at the boundary stay visible
const dbgDrawPadding = 100

// Helper to draw and print a triangulation in the terminal (iTerm only) for
// debugging. Each triangle gets a readable name at its centroid so it can be
// told apart between runs of the clipping loop.
func (tl TriangleList) dbgDraw(scale float64) {
	c := newDbgContext(tl.ToPolygonList(), scale)

	for _, tri := range tl {
		c.MoveTo(tri.A.X, tri.A.Y)
		c.LineTo(tri.B.X, tri.B.Y)
		c.LineTo(tri.C.X, tri.C.Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, tri := range tl {
		centerX := (tri.A.X + tri.B.X + tri.C.X) / 3
		centerY := (tri.A.Y + tri.B.Y + tri.C.Y) / 3
		// We have to go back to identity to draw the text, so get the point in
		// native coordinates first.
		centerX, centerY = c.TransformPoint(centerX, centerY)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(dbg.Name(tri), centerX, centerY, 0.5, 0.5)
		c.Pop()
	}

	c.SavePNG("/tmp/earclip_triangles.png")
	imgcat.CatFile("/tmp/earclip_triangles.png", os.Stdout)
}

func (pl PolygonList) dbgDraw(scale float64) {
	c := newDbgContext(pl, scale)
	c.SetFillRuleEvenOdd()

	for _, poly := range pl {
		c.MoveTo(poly.Points[0].X, poly.Points[0].Y)
		for _, p := range poly.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SavePNG("/tmp/earclip_polygons.png")
	imgcat.CatFile("/tmp/earclip_polygons.png", os.Stdout)
}

// Set up a context sized to the polygons' bounding box, with the origin
// flipped to the bottom left and the polygon coordinate system applied.
func newDbgContext(pl PolygonList, scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range pl {
		for _, p := range poly.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	return c
}
