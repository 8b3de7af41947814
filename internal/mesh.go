package internal

import "github.com/pkg/errors"

// Mesh is a half-edge triangle mesh stored in four append-only arenas. Every
// cross reference is a handle into one of the arenas. Nothing is ever removed;
// elements are only rewired in place.
//
// Handles passed to Mesh methods must have been issued by the same mesh. A bad
// handle is a programming error, and panics with an index out of range.
type Mesh struct {
	Vertices  []Vertex
	HalfEdges []HalfEdge
	Edges     []Edge
	Triangles []Triangle
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// Primitive mutations

func (m *Mesh) NewVertex(p Point) VertexID {
	m.Vertices = append(m.Vertices, Vertex{Point: p, Anchor: Invalid})
	return VertexID(len(m.Vertices) - 1)
}

// The new half-edge becomes its origin's anchor.
func (m *Mesh) NewHalfEdge(origin VertexID) HalfEdgeID {
	m.HalfEdges = append(m.HalfEdges, HalfEdge{
		Origin:   origin,
		Edge:     Invalid,
		Triangle: Invalid,
		Next:     Invalid,
	})
	h := HalfEdgeID(len(m.HalfEdges) - 1)
	m.Vertices[origin].Anchor = h
	return h
}

func (m *Mesh) NewEdge(h1, h2 HalfEdgeID) EdgeID {
	m.Edges = append(m.Edges, Edge{})
	e := EdgeID(len(m.Edges) - 1)
	m.RewireEdge(e, h1, h2)
	return e
}

func (m *Mesh) NewTriangle(h0, h1, h2 HalfEdgeID) TriangleID {
	m.Triangles = append(m.Triangles, Triangle{})
	t := TriangleID(len(m.Triangles) - 1)
	m.RewireTriangle(t, h0, h1, h2)
	return t
}

// Replace a triangle's boundary loop in place.
func (m *Mesh) RewireTriangle(t TriangleID, h0, h1, h2 HalfEdgeID) {
	m.Triangles[t].HalfEdges = [3]HalfEdgeID{h0, h1, h2}
	m.HalfEdges[h0].Next = h1
	m.HalfEdges[h1].Next = h2
	m.HalfEdges[h2].Next = h0
	m.HalfEdges[h0].Triangle = t
	m.HalfEdges[h1].Triangle = t
	m.HalfEdges[h2].Triangle = t
}

func (m *Mesh) RewireEdge(e EdgeID, h1, h2 HalfEdgeID) {
	m.Edges[e].HalfEdges = [2]HalfEdgeID{h1, h2}
	m.HalfEdges[h1].Edge = e
	m.HalfEdges[h2].Edge = e
}

// Change where a half-edge starts. Anchors are left alone; the caller is
// responsible for repairing them.
func (m *Mesh) RetargetHalfEdge(h HalfEdgeID, v VertexID) {
	m.HalfEdges[h].Origin = v
}

func (m *Mesh) SetAnchor(v VertexID, h HalfEdgeID) {
	m.Vertices[v].Anchor = h
}

// Primitive reads

func (m *Mesh) Next(h HalfEdgeID) HalfEdgeID {
	return m.HalfEdges[h].Next
}

func (m *Mesh) Origin(h HalfEdgeID) VertexID {
	return m.HalfEdges[h].Origin
}

// Where the half-edge ends, i.e. where its mate starts.
func (m *Mesh) Destination(h HalfEdgeID) VertexID {
	return m.Origin(m.Mate(h))
}

func (m *Mesh) EdgeOf(h HalfEdgeID) EdgeID {
	return m.HalfEdges[h].Edge
}

func (m *Mesh) TriangleOf(h HalfEdgeID) TriangleID {
	return m.HalfEdges[h].Triangle
}

func (m *Mesh) Anchor(v VertexID) HalfEdgeID {
	return m.Vertices[v].Anchor
}

// The returned pointer is only valid until the next NewVertex call.
func (m *Mesh) PointOf(v VertexID) *Point {
	return &m.Vertices[v].Point
}

func (m *Mesh) EdgeHalves(e EdgeID) (HalfEdgeID, HalfEdgeID) {
	halves := m.Edges[e].HalfEdges
	return halves[0], halves[1]
}

func (m *Mesh) EdgeEnds(e EdgeID) (VertexID, VertexID) {
	h1, h2 := m.EdgeHalves(e)
	return m.Origin(h1), m.Origin(h2)
}

// Triangle corners in counterclockwise order.
func (m *Mesh) TriangleVertices(t TriangleID) [3]VertexID {
	halves := m.Triangles[t].HalfEdges
	return [3]VertexID{m.Origin(halves[0]), m.Origin(halves[1]), m.Origin(halves[2])}
}

func (m *Mesh) TrianglePoints(t TriangleID) (*Point, *Point, *Point) {
	vs := m.TriangleVertices(t)
	return m.PointOf(vs[0]), m.PointOf(vs[1]), m.PointOf(vs[2])
}

// Is the half-edge on the exterior side of the mesh?
func (m *Mesh) IsBoundary(h HalfEdgeID) bool {
	return m.TriangleOf(h) == Invalid
}

// Check every structural invariant of the mesh. This walks every arena, so it
// is meant for tests and debugging, not for use between insertions.
func (m *Mesh) Validate() error {
	for i, he := range m.HalfEdges {
		h := HalfEdgeID(i)
		if he.Edge == Invalid {
			return errors.Wrapf(ErrCorruptMesh, "half-edge %d has no edge", h)
		}
		mate := m.Mate(h)
		if mate == h || m.Mate(mate) != h {
			return errors.Wrapf(ErrCorruptMesh, "half-edge %d has an asymmetric mate %d", h, mate)
		}
		if m.Origin(mate) == he.Origin {
			return errors.Wrapf(ErrCorruptMesh, "half-edge %d and its mate both start at vertex %d", h, he.Origin)
		}
		if he.Triangle == Invalid {
			continue
		}
		third := m.Next(m.Next(he.Next))
		if third != h {
			return errors.Wrapf(ErrCorruptMesh, "half-edge %d is not on a three cycle", h)
		}
		if m.TriangleOf(he.Next) != he.Triangle || m.TriangleOf(m.Next(he.Next)) != he.Triangle {
			return errors.Wrapf(ErrCorruptMesh, "half-edge %d cycle crosses triangles", h)
		}
		if m.Origin(he.Next) != m.Destination(h) {
			return errors.Wrapf(ErrCorruptMesh, "half-edge %d does not meet its next", h)
		}
	}

	for i, tri := range m.Triangles {
		t := TriangleID(i)
		for j, h := range tri.HalfEdges {
			if m.TriangleOf(h) != t {
				return errors.Wrapf(ErrCorruptMesh, "triangle %d does not own half-edge %d", t, h)
			}
			if m.Next(h) != tri.HalfEdges[CircularIndex(j+1, 3)] {
				return errors.Wrapf(ErrCorruptMesh, "triangle %d half-edges are out of order", t)
			}
		}
		a, b, c := m.TrianglePoints(t)
		if Orientation(a, b, c) != Left {
			return errors.Wrapf(ErrCorruptMesh, "triangle %d is not counterclockwise: %v %v %v", t, *a, *b, *c)
		}
	}

	for i, vertex := range m.Vertices {
		if vertex.Anchor == Invalid {
			continue
		}
		if m.Origin(vertex.Anchor) != VertexID(i) {
			return errors.Wrapf(ErrCorruptMesh, "vertex %d anchor %d starts at %d", i, vertex.Anchor, m.Origin(vertex.Anchor))
		}
	}
	return nil
}
