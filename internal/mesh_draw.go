package internal

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/delaunay/internal/dbg"
	"go.uber.org/zap"
)

const drawPadding = 50

// Longest side of a rendered image, in pixels. The scale is reduced to fit.
const MaxImageSize = 4096

// Draw the whole mesh, including the seed triangle, and print it in the
// terminal (iTerm only). This is for debugging purposes only.
func (b *Builder) dbgDraw(scale float64) {
	file, err := os.CreateTemp("", "delaunay-debug-*.png")
	if err != nil {
		b.logger.Error("could not create debug image", zap.Error(err))
		return
	}
	defer os.Remove(file.Name())
	defer file.Close()

	if err := b.Mesh.Draw(scale).EncodePNG(file); err != nil {
		b.logger.Error("could not write debug image", zap.String("path", file.Name()), zap.Error(err))
		return
	}
	if err := imgcat.CatFile(file.Name(), os.Stdout); err != nil {
		b.logger.Error("could not print debug image", zap.Error(err))
	}
}

// Render every triangle of the mesh into a new context, seed triangle included.
// Triangles are labelled with a readable name, so the same triangle can be
// followed from one picture to the next.
func (m *Mesh) Draw(scale float64) *gg.Context {
	points := make([]Point, len(m.Vertices))
	for i := range m.Vertices {
		points[i] = m.Vertices[i].Point
	}
	triangles := make([][3]Point, len(m.Triangles))
	for i := range m.Triangles {
		a, b, c := m.TrianglePoints(TriangleID(i))
		triangles[i] = [3]Point{*a, *b, *c}
	}
	return drawTriangles(scale, points, triangles, func(i int) string {
		return dbg.Name(TriangleID(i))
	})
}

// Render the finalized triangles and their vertices, without labels.
func (f *FinalMesh) Draw(scale float64) *gg.Context {
	points := make([]Point, 0, len(f.Vertices))
	for _, v := range f.VertexIDs() {
		points = append(points, f.Vertices[v])
	}
	ids := f.TriangleIDs()
	triangles := make([][3]Point, len(ids))
	for i, t := range ids {
		triangles[i] = f.TrianglePoints(t)
	}
	return drawTriangles(scale, points, triangles, nil)
}

func drawTriangles(scale float64, points []Point, triangles [][3]Point, label func(int) string) *gg.Context {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	if len(points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	scale = fitScale(scale, math.Max(maxX-minX, maxY-minY))

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	for _, t := range triangles {
		c.MoveTo(t[0].X, t[0].Y)
		c.LineTo(t[1].X, t[1].Y)
		c.LineTo(t[2].X, t[2].Y)
		c.ClosePath()
		c.SetRGBA(0.3, 0.2, 1, 0.3)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.SetLineWidth(1)
		c.Stroke()
	}

	c.SetRGB(1, 0.8, 0)
	for _, p := range points {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawCircle(x, y, 3)
		c.Fill()
		c.Pop()
	}

	if label == nil {
		return c
	}
	// Text has to be drawn in device coordinates or it comes out mirrored
	for i, t := range triangles {
		x, y := c.TransformPoint((t[0].X+t[1].X+t[2].X)/3, (t[0].Y+t[1].Y+t[2].Y)/3)
		c.Push()
		c.Identity()
		c.SetRGB(1, 1, 1)
		c.DrawStringAnchored(label(i), x, y, 0.5, 0.5)
		c.Pop()
	}
	return c
}

// Clamp scale so that extent units plus padding fit in MaxImageSize pixels.
func fitScale(scale, extent float64) float64 {
	limit := float64(MaxImageSize - 2*drawPadding)
	if extent > 0 && scale*extent > limit {
		return limit / extent
	}
	return scale
}
