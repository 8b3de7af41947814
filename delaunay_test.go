package delaunay

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	points := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}

	mesh, err := Triangulate(points)
	assert.NoError(t, err)
	assert.Len(t, mesh.Triangles, 2)
	assert.Len(t, mesh.Vertices, 4)
}

func TestTriangulate_Options(t *testing.T) {
	points := []Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 3}, {X: 0, Y: 3}, {X: 2, Y: 1}, {X: 1, Y: 2}, {X: 3, Y: 2}}

	core, logs := observer.New(zapcore.DebugLevel)
	plain, err := Triangulate(points, WithLogger(zap.New(core)), WithValidation())
	require.NoError(t, err)
	assert.NotZero(t, logs.FilterMessage("triangulation finalized").Len())

	shuffled, err := Triangulate(points, WithShuffle(3), WithValidation())
	require.NoError(t, err)
	assert.Equal(t, len(plain.Triangles), len(shuffled.Triangles))
	assert.Equal(t, len(points), shuffled.Stats.EdgeSplits+shuffled.Stats.TriangleSplits)
}

func TestTriangulate_Duplicates(t *testing.T) {
	mesh, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}})
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, 3)
	assert.Len(t, mesh.Triangles, 1)
	assert.Equal(t, 1, mesh.Stats.Duplicates)
}

func TestTriangulate_Degenerate(t *testing.T) {
	for _, points := range [][]Point{nil, {{X: 2, Y: 2}}, {{X: 2, Y: 2}, {X: 2, Y: 2}}} {
		mesh, err := Triangulate(points)
		assert.Nil(t, mesh)
		assert.True(t, errors.Is(err, ErrDegenerateInput), "%v", err)
	}
}

func TestTriangulate_Collinear(t *testing.T) {
	mesh, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}})
	require.NoError(t, err)
	assert.Len(t, mesh.Vertices, 4)
	assert.Empty(t, mesh.Triangles)
}
