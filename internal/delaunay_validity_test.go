package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/osuushi/delaunay/internal/dbg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Build a triangulation of the points the way the public API does.
func buildTriangulation(t *testing.T, points []Point, opts ...BuilderOption) (*Builder, *FinalMesh) {
	bounds, err := BoundingTriangle(points)
	require.NoError(t, err)
	b := NewBuilder(bounds, opts...)
	for _, p := range points {
		b.Insert(p)
	}
	return b, b.Finalize()
}

// Helper to check that a triangulation is valid. The rules are:
// 1. The mesh passes its own structural validation.
// 2. The triangles of the full mesh exactly tile the seed triangle, so none overlap.
// 3. Every final triangle is counterclockwise with nonzero area.
// 4. The final vertices are exactly the distinct input points.
// 5. No final vertex is strictly inside the circumcircle of any final triangle.
func AssertValidTriangulation(t *testing.T, b *Builder, final *FinalMesh, points []Point) {
	m := b.Mesh
	require.NoError(t, m.Validate(), "mesh: %s", dbg.Dump(m))

	bounds := b.Bounds()
	boundsArea := Cross(m.PointOf(bounds[0]), m.PointOf(bounds[1]), m.PointOf(bounds[2])) / 2
	var meshArea float64
	for i := range m.Triangles {
		meshArea += Cross(m.TrianglePoints(TriangleID(i))) / 2
	}
	require.InDelta(t, boundsArea, meshArea, boundsArea*1e-9, "triangles must tile the seed triangle")

	for _, id := range final.TriangleIDs() {
		corners := final.TrianglePoints(id)
		require.Equal(t, Left, Orientation(&corners[0], &corners[1], &corners[2]), "triangle %d is not counterclockwise: %v", id, corners)
	}

	expected := make(map[Point]struct{})
	for _, p := range points {
		expected[p] = struct{}{}
	}
	actual := make(map[Point]struct{})
	for _, p := range final.Vertices {
		actual[p] = struct{}{}
	}
	require.Equal(t, expected, actual, "final vertices must be the input points")

	assertEmptyCircumcircles(t, final)
}

func assertEmptyCircumcircles(t *testing.T, final *FinalMesh) {
	for _, id := range final.TriangleIDs() {
		corners := final.TrianglePoints(id)
		circle := Circumcircle(&corners[0], &corners[1], &corners[2])
		for v, p := range final.Vertices {
			p := p
			assert.NotEqual(t, Inside, circle.Side(&p), "vertex %d %v is inside the circumcircle of triangle %d %v", v, p, id, corners)
		}
	}
}

// A triangle as its corner points, rotated so the lowest point comes first.
// Triangles from different meshes can be compared this way.
type normalizedTriangle [3]Point

func newNormalizedTriangle(corners [3]Point) normalizedTriangle {
	lowest := 0
	for i := range corners {
		if corners[i].Below(&corners[lowest]) {
			lowest = i
		}
	}
	return normalizedTriangle{
		corners[lowest],
		corners[CircularIndex(lowest+1, 3)],
		corners[CircularIndex(lowest+2, 3)],
	}
}

func triangleSet(final *FinalMesh) []normalizedTriangle {
	var result []normalizedTriangle
	for _, id := range final.TriangleIDs() {
		result = append(result, newNormalizedTriangle(final.TrianglePoints(id)))
	}
	sort.Slice(result, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if result[i][k] != result[j][k] {
				return result[i][k].Below(&result[j][k])
			}
		}
		return false
	})
	return result
}

func triangleArea(corners [3]Point) float64 {
	return math.Abs(Cross(&corners[0], &corners[1], &corners[2])) / 2
}
