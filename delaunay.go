// An incremental Delaunay triangulation package for Go.
//
// Points are inserted one at a time into a mesh seeded with a triangle large
// enough to contain all of them. Each insertion splits the edge or triangle the
// point lands in, and edge flips restore the empty circumcircle property. The
// seed triangle is dropped from the result.
package delaunay

import (
	"github.com/osuushi/delaunay/internal"
	"github.com/osuushi/delaunay/pointsource"
	"go.uber.org/zap"
)

type Point = internal.Point
type Mesh = internal.FinalMesh
type Stats = internal.Stats
type VertexID = internal.VertexID
type TriangleID = internal.TriangleID

var (
	ErrDegenerateInput = internal.ErrDegenerateInput
	ErrLocationFailed  = internal.ErrLocationFailed
	ErrCorruptMesh     = internal.ErrCorruptMesh
)

type config struct {
	logger   *zap.Logger
	validate bool
	shuffle  bool
	seed     int64
}

type Option func(*config)

// Log insertions, flips and the final summary. The default logger discards
// everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Check every mesh invariant after each insertion. Slow.
func WithValidation() Option {
	return func(c *config) {
		c.validate = true
	}
}

// Insert the points in a pseudo-random order determined by seed, rather than
// the order given.
func WithShuffle(seed int64) Option {
	return func(c *config) {
		c.shuffle = true
		c.seed = seed
	}
}

// Triangulate a set of points.
//
// Duplicate points are inserted once. Points which are all collinear produce a
// mesh with vertices but no triangles. An empty point set, or one with no
// extent at all, is an ErrDegenerateInput error.
//
// The seed triangle's corners are a finite distance from the points. A hull
// triangle whose circumcircle is large enough to reach a corner is dropped with
// it, so the result can have fewer than 2n-2-h triangles for n points with h
// on the hull. Every triangle that is returned has an empty circumcircle.
func Triangulate(points []Point, opts ...Option) (result *Mesh, err error) {
	defer func() {
		recoveredErr := internal.HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	c := config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&c)
	}

	bounds, err := internal.BoundingTriangle(points)
	if err != nil {
		return nil, err
	}

	if c.shuffle {
		points = pointsource.Shuffle(points, c.seed)
	}

	builderOpts := []internal.BuilderOption{internal.WithLogger(c.logger)}
	if c.validate {
		builderOpts = append(builderOpts, internal.WithValidation())
	}
	builder := internal.NewBuilder(bounds, builderOpts...)
	for _, p := range points {
		builder.Insert(p)
	}
	return builder.Finalize(), nil
}
