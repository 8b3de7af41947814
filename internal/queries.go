package internal

// Queries built only from the mesh primitives. Location is a linear scan over
// the arenas.

// The other half of h's edge.
func (m *Mesh) Mate(h HalfEdgeID) HalfEdgeID {
	h1, h2 := m.EdgeHalves(m.EdgeOf(h))
	if h1 == h {
		return h2
	}
	return h1
}

// Collect the edges around each of the given vertices. The result is a set
// union in first-seen order.
func (m *Mesh) IncidentEdges(vertices ...VertexID) []EdgeID {
	var result []EdgeID
	seen := make(EdgeSet)
	for _, v := range vertices {
		m.walkStar(v, func(e EdgeID) {
			if seen.Add(e) {
				result = append(result, e)
			}
		})
	}
	return result
}

// Visit every edge of v's umbrella. The walk rotates counterclockwise from the
// anchor until it comes back round. Boundary vertices have an open fan, so if
// the walk falls off the boundary it starts over from the anchor and rotates
// clockwise until it falls off the other side.
func (m *Mesh) walkStar(v VertexID, visit func(EdgeID)) {
	start := m.Anchor(v)
	if start == Invalid {
		return
	}
	startEdge := m.EdgeOf(start)
	visit(startEdge)

	// Every step moves to a different outgoing half-edge, so a walk longer than
	// the arena means the mesh is corrupt.
	limit := len(m.HalfEdges)

	h := start
	for steps := 0; !m.IsBoundary(h); steps++ {
		if steps > limit {
			fatalWrapf(ErrCorruptMesh, "star of vertex %d does not close", v)
		}
		// next(next(h)) ends at v, and its mate is the next outgoing half-edge
		h = m.Mate(m.Next(m.Next(h)))
		if m.EdgeOf(h) == startEdge {
			return
		}
		visit(m.EdgeOf(h))
	}

	h = start
	for steps := 0; ; steps++ {
		if steps > limit {
			fatalWrapf(ErrCorruptMesh, "star of vertex %d does not close", v)
		}
		mate := m.Mate(h)
		if m.IsBoundary(mate) {
			return
		}
		h = m.Next(mate)
		visit(m.EdgeOf(h))
	}
}

// Find the first edge whose segment passes strictly through pt.
func (m *Mesh) LocateEdge(pt *Point) (EdgeID, bool) {
	for i := range m.Edges {
		e := EdgeID(i)
		a, b := m.EdgeEnds(e)
		if PointOnSegment(m.PointOf(a), m.PointOf(b), pt) {
			return e, true
		}
	}
	return Invalid, false
}

// Find the first triangle strictly containing pt.
func (m *Mesh) LocateTriangle(pt *Point) (TriangleID, bool) {
	for i := range m.Triangles {
		t := TriangleID(i)
		a, b, c := m.TrianglePoints(t)
		if PointInTriangle(a, b, c, pt) {
			return t, true
		}
	}
	return Invalid, false
}

// Find a vertex sitting exactly at pt.
func (m *Mesh) LocateVertex(pt *Point) (VertexID, bool) {
	for i := range m.Vertices {
		if m.Vertices[i].Point == *pt {
			return VertexID(i), true
		}
	}
	return Invalid, false
}
