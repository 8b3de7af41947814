package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrientation(t *testing.T) {
	a := &Point{0, 0}
	b := &Point{1, 0}
	assert.Equal(t, Left, Orientation(a, b, &Point{0.5, 1}))
	assert.Equal(t, Right, Orientation(a, b, &Point{0.5, -1}))
	assert.Equal(t, Collinear, Orientation(a, b, &Point{2, 0}))
	assert.Equal(t, Collinear, Orientation(a, b, &Point{-3, 0}))
}

func TestCircumcircle(t *testing.T) {
	circle := Circumcircle(&Point{0, 0}, &Point{2, 0}, &Point{0, 2})
	assert.InDelta(t, 1, circle.Center.X, Epsilon)
	assert.InDelta(t, 1, circle.Center.Y, Epsilon)
	assert.InDelta(t, math.Sqrt2, circle.Radius, Epsilon)

	// Vertex order doesn't matter
	reversed := Circumcircle(&Point{0, 2}, &Point{2, 0}, &Point{0, 0})
	assert.InDelta(t, circle.Center.X, reversed.Center.X, Epsilon)
	assert.InDelta(t, circle.Center.Y, reversed.Center.Y, Epsilon)
	assert.InDelta(t, circle.Radius, reversed.Radius, Epsilon)

	t.Run("collinear points", func(t *testing.T) {
		circle := Circumcircle(&Point{0, 0}, &Point{1, 1}, &Point{2, 2})
		assert.True(t, math.IsInf(circle.Radius, 1))
		assert.True(t, circle.Contains(&Point{100, -100}))
	})
}

func TestCircleContains(t *testing.T) {
	circle := Circumcircle(&Point{0, 0}, &Point{1, 0}, &Point{1, 1})
	assert.True(t, circle.Contains(&Point{0.5, 0.5}))
	assert.False(t, circle.Contains(&Point{2, 2}))
	// The disk is closed, so the fourth corner of the square counts
	assert.True(t, circle.Contains(&Point{0, 1}))
}

func TestCircleSide(t *testing.T) {
	circle := Circumcircle(&Point{0, 0}, &Point{1, 0}, &Point{1, 1})
	assert.Equal(t, Inside, circle.Side(&Point{0.5, 0.5}))
	assert.Equal(t, OnCircle, circle.Side(&Point{0, 1}))
	assert.Equal(t, Outside, circle.Side(&Point{0, 1.01}))
	assert.Equal(t, Inside, circle.Side(&Point{0, 0.99}))
}

func TestIsConvexQuad(t *testing.T) {
	cases := []struct {
		name     string
		points   [4]Point
		expected bool
	}{
		{"ccw square", [4]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, true},
		{"cw square", [4]Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}, false},
		{"dart", [4]Point{{0, 0}, {2, 1}, {4, 0}, {2, 4}}, false},
		{"bowtie", [4]Point{{0, 0}, {1, 1}, {1, 0}, {0, 1}}, false},
		{"flat corner", [4]Point{{0, 0}, {1, 0}, {2, 0}, {1, 1}}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := c.points
			assert.Equal(t, c.expected, IsConvexQuad(&p[0], &p[1], &p[2], &p[3]))
		})
	}
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := &Point{0, 0}, &Point{4, 0}, &Point{0, 4}
	cases := []struct {
		x, y     float64
		expected bool
	}{
		{1, 1, true},
		{0.1, 3.8, true},
		{3, 3, false},
		{-1, 1, false},
		{1, -1, false},
		// On an edge or a corner is not strictly inside
		{2, 0, false},
		{2, 2, false},
		{0, 0, false},
		{0, 4, false},
		// Level with a corner, which the half-open rule has to count once
		{1, 0.0000001, true},
		{-1, 4, false},
	}
	for _, cs := range cases {
		t.Run(fmt.Sprintf("point %g %g", cs.x, cs.y), func(t *testing.T) {
			p := &Point{cs.x, cs.y}
			assert.Equal(t, cs.expected, PointInTriangle(a, b, c, p))
			// Winding must not matter
			assert.Equal(t, cs.expected, PointInTriangle(a, c, b, p))
		})
	}
}

// PointOnEdge is a line test. Point location uses PointOnSegment, so a point
// lined up with an edge but past its end is not mistaken for a point on it.
func TestPointOnEdgeAndSegment(t *testing.T) {
	a, b := &Point{0, 0}, &Point{2, 2}
	assert.True(t, PointOnEdge(a, b, &Point{1, 1}))
	assert.True(t, PointOnSegment(a, b, &Point{1, 1}))

	beyond := &Point{3, 3}
	assert.True(t, PointOnEdge(a, b, beyond))
	assert.False(t, PointOnSegment(a, b, beyond))

	assert.False(t, PointOnSegment(a, b, a), "endpoints are not strictly on the segment")
	assert.False(t, PointOnEdge(a, b, &Point{1, 1.5}))

	vertical := [2]Point{{1, 0}, {1, 5}}
	assert.True(t, PointOnSegment(&vertical[0], &vertical[1], &Point{1, 4}))
	assert.False(t, PointOnSegment(&vertical[0], &vertical[1], &Point{1, -1}))
}

func TestBoundingTriangle(t *testing.T) {
	sets := map[string][]Point{
		"square":     LoadFixture("square"),
		"pentagon":   LoadFixture("pentagon"),
		"scatter":    LoadFixture("scatter"),
		"spiral":     Spiral(40),
		"wide":       {{-100, 0}, {100, 0.5}, {0, 0.25}},
		"tall":       {{0, -1000}, {0.001, 1000}},
		"horizontal": {{0, 0}, {1, 0}, {2, 0}},
		"offset":     {{1e6, 1e6}, {1e6 + 3, 1e6 + 1}, {1e6 + 1, 1e6 + 2}},
	}
	for name, points := range sets {
		t.Run(name, func(t *testing.T) {
			bounds, err := BoundingTriangle(points)
			require.NoError(t, err)
			assert.Equal(t, Left, Orientation(&bounds[0], &bounds[1], &bounds[2]))
			for _, p := range points {
				p := p
				assert.True(t, PointInTriangle(&bounds[0], &bounds[1], &bounds[2], &p), "%v is not inside %v", p, bounds)
			}
		})
	}

	t.Run("degenerate", func(t *testing.T) {
		_, err := BoundingTriangle(nil)
		assert.ErrorIs(t, err, ErrDegenerateInput)
		_, err = BoundingTriangle([]Point{{1, 1}, {1, 1}})
		assert.ErrorIs(t, err, ErrDegenerateInput)
	})
}
