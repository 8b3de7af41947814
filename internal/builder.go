package internal

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

type BuilderState int

const (
	Seeded BuilderState = iota
	Inserting
	Finalized
)

func (s BuilderState) String() string {
	switch s {
	case Seeded:
		return "seeded"
	case Inserting:
		return "inserting"
	case Finalized:
		return "finalized"
	default:
		return fmt.Sprintf("BuilderState(%d)", int(s))
	}
}

type Stats struct {
	EdgeSplits     int
	TriangleSplits int
	Flips          int
	Duplicates     int
}

// Builder drives an incremental Delaunay triangulation. It owns its mesh, and
// must not be used from more than one goroutine.
type Builder struct {
	Mesh  *Mesh
	State BuilderState
	Stats Stats

	// The three corners of the seed triangle. They and everything touching
	// them are dropped by Finalize.
	bounds [3]VertexID

	logger   *zap.Logger
	validate bool
}

type BuilderOption func(*Builder)

func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

// Check all mesh invariants after every insertion. This is quadratic overall,
// and only useful when hunting bugs.
func WithValidation() BuilderOption {
	return func(b *Builder) {
		b.validate = true
	}
}

// Seed a mesh with the given container triangle, which must strictly contain
// every point that will be inserted.
func NewBuilder(bounds [3]Point, opts ...BuilderOption) *Builder {
	b := &Builder{
		Mesh:   NewMesh(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(b)
	}

	a, c := &bounds[0], &bounds[2]
	if Orientation(a, &bounds[1], c) == Right {
		bounds[1], bounds[2] = bounds[2], bounds[1]
	}

	m := b.Mesh
	var vs [3]VertexID
	for i := range bounds {
		vs[i] = m.NewVertex(bounds[i])
	}
	// Outer halves first, so that each anchor ends up on the inside
	var outer, inner [3]HalfEdgeID
	for i := range vs {
		outer[i] = m.NewHalfEdge(vs[CircularIndex(i+1, 3)])
	}
	for i := range vs {
		inner[i] = m.NewHalfEdge(vs[i])
		m.NewEdge(inner[i], outer[i])
	}
	m.NewTriangle(inner[0], inner[1], inner[2])

	b.bounds = vs
	b.State = Seeded
	b.logger.Debug("seeded bounding triangle",
		zap.Stringer("a", bounds[0]), zap.Stringer("b", bounds[1]), zap.Stringer("c", bounds[2]))
	return b
}

// Add a point to the triangulation and restore the Delaunay property. A point
// that is already in the mesh is skipped, and its existing vertex returned.
func (b *Builder) Insert(p Point) VertexID {
	if b.State == Finalized {
		fatalWrapf(ErrFinalized, "cannot insert %v", p)
	}
	b.State = Inserting
	m := b.Mesh

	if v, ok := m.LocateVertex(&p); ok {
		b.Stats.Duplicates++
		b.logger.Warn("skipping duplicate point", zap.Stringer("point", p), zap.Int("vertex", int(v)))
		return v
	}

	var v VertexID
	if e, ok := m.LocateEdge(&p); ok {
		b.logger.Debug("splitting edge", zap.Stringer("point", p), zap.Int("edge", int(e)))
		v = b.splitEdge(e, p)
	} else if t, ok := m.LocateTriangle(&p); ok {
		b.logger.Debug("splitting triangle", zap.Stringer("point", p), zap.Int("triangle", int(t)))
		v = b.splitTriangle(t, p)
	} else {
		fatalWrapf(ErrLocationFailed, "no edge or triangle contains %v", p)
	}

	if b.validate {
		if err := m.Validate(); err != nil {
			fatalWrapf(err, "after inserting %v", p)
		}
	}
	return v
}

// Put a new vertex on the edge shared by two triangles. Each triangle is cut in
// two by the new vertex; the old slots keep one half and a new triangle takes
// the other.
//
//	         c                       c
//	        / \                    / | \
//	  hp   /   \  hn          hp  /  |  \  hn
//	      /  h  \                / T1|T3 \
//	     a ----- b      =>      a -- v -- b
//	      \  m  /                \ T4|T2 /
//	  mn   \   /  mp          mn  \  |  /  mp
//	        \ /                    \ | /
//	         d                       d
func (b *Builder) splitEdge(e EdgeID, p Point) VertexID {
	m := b.Mesh
	h, mate := m.EdgeHalves(e)
	if m.IsBoundary(h) {
		h, mate = mate, h
	}
	if m.IsBoundary(mate) {
		fatalWrapf(ErrLocationFailed, "%v lies on the outer boundary edge %d", p, e)
	}

	t1, t2 := m.TriangleOf(h), m.TriangleOf(mate)
	hn := m.Next(h)
	hp := m.Next(hn)
	mn := m.Next(mate)
	mp := m.Next(mn)
	bv := m.Origin(mate)
	c := m.Origin(hp)
	d := m.Origin(mp)

	v := m.NewVertex(p)

	// h keeps running a->v. Its mate used to run b->a and now runs v->a.
	m.RetargetHalfEdge(mate, v)

	hvb, hbv := m.NewHalfEdge(v), m.NewHalfEdge(bv)
	m.NewEdge(hvb, hbv)
	hvc, hcv := m.NewHalfEdge(v), m.NewHalfEdge(c)
	m.NewEdge(hvc, hcv)
	hvd, hdv := m.NewHalfEdge(v), m.NewHalfEdge(d)
	m.NewEdge(hvd, hdv)

	m.RewireTriangle(t1, h, hvc, hp)
	m.NewTriangle(hvb, hn, hcv)
	m.RewireTriangle(t2, hbv, hvd, mp)
	m.NewTriangle(mate, mn, hdv)

	b.Stats.EdgeSplits++
	// The spokes along the old edge don't touch either apex, so v goes last to
	// give them the same cocircular tie-break as every other edge.
	b.Legalize(c, d, v)
	return v
}

// Put a new vertex strictly inside a triangle, and fan it out into three. The
// old slot keeps the triangle on the first edge.
func (b *Builder) splitTriangle(t TriangleID, p Point) VertexID {
	m := b.Mesh
	halves := m.Triangles[t].HalfEdges
	h0, h1, h2 := halves[0], halves[1], halves[2]
	a, bv, c := m.Origin(h0), m.Origin(h1), m.Origin(h2)

	v := m.NewVertex(p)

	hav, hva := m.NewHalfEdge(a), m.NewHalfEdge(v)
	m.NewEdge(hav, hva)
	hbv, hvb := m.NewHalfEdge(bv), m.NewHalfEdge(v)
	m.NewEdge(hbv, hvb)
	hcv, hvc := m.NewHalfEdge(c), m.NewHalfEdge(v)
	m.NewEdge(hcv, hvc)

	m.RewireTriangle(t, h0, hbv, hva)
	m.NewTriangle(h1, hcv, hvb)
	m.NewTriangle(h2, hav, hvc)

	b.Stats.TriangleSplits++
	b.Legalize(a, bv, c)
	return v
}

// FinalMesh is the user visible result: the mesh without the seed triangle's
// corners and without any triangle touching them.
type FinalMesh struct {
	Vertices  map[VertexID]Point
	Triangles map[TriangleID][3]VertexID
	Stats     Stats
}

// Stop accepting points, and produce the final view of the mesh. The arenas are
// not modified, so this can be called more than once.
func (b *Builder) Finalize() *FinalMesh {
	b.State = Finalized
	m := b.Mesh

	excluded := make(map[TriangleID]struct{})
	for _, e := range m.IncidentEdges(b.bounds[:]...) {
		h1, h2 := m.EdgeHalves(e)
		for _, h := range []HalfEdgeID{h1, h2} {
			if t := m.TriangleOf(h); t != Invalid {
				excluded[t] = struct{}{}
			}
		}
	}

	result := &FinalMesh{
		Vertices:  make(map[VertexID]Point),
		Triangles: make(map[TriangleID][3]VertexID),
		Stats:     b.Stats,
	}
	for i := range m.Vertices {
		v := VertexID(i)
		if b.isBound(v) {
			continue
		}
		result.Vertices[v] = m.Vertices[i].Point
	}
	for i := range m.Triangles {
		t := TriangleID(i)
		if _, ok := excluded[t]; ok {
			continue
		}
		result.Triangles[t] = m.TriangleVertices(t)
	}

	b.logger.Info("triangulation finalized",
		zap.Int("vertices", len(result.Vertices)),
		zap.Int("triangles", len(result.Triangles)),
		zap.Int("edgeSplits", b.Stats.EdgeSplits),
		zap.Int("triangleSplits", b.Stats.TriangleSplits),
		zap.Int("flips", b.Stats.Flips),
		zap.Int("duplicates", b.Stats.Duplicates),
	)
	return result
}

func (b *Builder) Bounds() [3]VertexID {
	return b.bounds
}

func (b *Builder) isBound(v VertexID) bool {
	return v == b.bounds[0] || v == b.bounds[1] || v == b.bounds[2]
}

// Triangle handles in ascending order, for deterministic iteration.
func (f *FinalMesh) TriangleIDs() []TriangleID {
	ids := make([]TriangleID, 0, len(f.Triangles))
	for t := range f.Triangles {
		ids = append(ids, t)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Vertex handles in ascending order, for deterministic iteration.
func (f *FinalMesh) VertexIDs() []VertexID {
	ids := make([]VertexID, 0, len(f.Vertices))
	for v := range f.Vertices {
		ids = append(ids, v)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *FinalMesh) TrianglePoints(t TriangleID) [3]Point {
	vs := f.Triangles[t]
	return [3]Point{f.Vertices[vs[0]], f.Vertices[vs[1]], f.Vertices[vs[2]]}
}
