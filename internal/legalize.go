package internal

import "go.uber.org/zap"

// Lawson flipping. Legalize examines every edge around each given vertex, and
// flips the illegal ones. A flip immediately queues the two apexes it exposed
// ahead of anything else that is pending, which gives the same order as
// recursing from inside the flip, without the stack depth.
func (b *Builder) Legalize(vertices ...VertexID) int {
	m := b.Mesh
	flips := 0

	var stack VertexStack
	for i := len(vertices) - 1; i >= 0; i-- {
		stack.Push(vertices[i])
	}
	for !stack.Empty() {
		v := stack.Pop()
		for _, e := range m.IncidentEdges(v) {
			if b.IsLegal(e) {
				continue
			}
			c, d := b.flip(e)
			flips++
			// v's star is stale now. Revisit it after the new apexes.
			stack.Push(v, d, c)
			break
		}
	}
	b.Stats.Flips += flips
	return flips
}

// An edge is legal if it is on the boundary, if its two triangles form a
// quadrilateral that cannot be flipped, or if neither apex is inside the
// circumcircle of the triangle across the edge.
//
// Both circles are tested, since the two fits can disagree for nearly
// cocircular points. When an apex sits on the other circle, either diagonal
// is Delaunay, and we keep the one touching the lowest of the four corners.
func (b *Builder) IsLegal(e EdgeID) bool {
	m := b.Mesh
	h, mate := m.EdgeHalves(e)
	if m.IsBoundary(h) || m.IsBoundary(mate) {
		return true
	}

	a := m.PointOf(m.Origin(h))
	bp := m.PointOf(m.Origin(mate))
	c := m.PointOf(m.Origin(m.Next(m.Next(h))))
	d := m.PointOf(m.Origin(m.Next(m.Next(mate))))

	// h's triangle is a b c and mate's is b a d, so a d b c runs counterclockwise
	if !IsConvexQuad(a, d, bp, c) {
		return true
	}

	sideC := Circumcircle(a, d, bp).Side(c)
	sideD := Circumcircle(a, bp, c).Side(d)
	if sideC == Inside || sideD == Inside {
		return false
	}
	if sideC == OnCircle || sideD == OnCircle {
		lowest := a
		for _, p := range []*Point{bp, c, d} {
			if p.Below(lowest) {
				lowest = p
			}
		}
		return lowest == a || lowest == bp
	}
	return true
}

// Swap the edge for the other diagonal of its quadrilateral, reusing every
// slot. Returns the endpoints of the new diagonal.
//
//	     c                c
//	    / \              /|\
//	hp /   \ hn      hp / | \ hn
//	  /  h  \          /  |  \
//	 a ----- b   =>   a  h|m  b
//	  \ mate/          \  |  /
//	mn \   / mp      mn \ | / mp
//	    \ /              \|/
//	     d                d
func (b *Builder) flip(e EdgeID) (VertexID, VertexID) {
	m := b.Mesh
	h, mate := m.EdgeHalves(e)
	t1, t2 := m.TriangleOf(h), m.TriangleOf(mate)

	hn := m.Next(h)
	hp := m.Next(hn)
	mn := m.Next(mate)
	mp := m.Next(mn)
	a, bv := m.Origin(h), m.Origin(mate)
	c, d := m.Origin(hp), m.Origin(mp)

	m.RetargetHalfEdge(h, c)
	m.RetargetHalfEdge(mate, d)
	m.RewireTriangle(t1, h, mp, hn)
	m.RewireTriangle(t2, mate, hp, mn)

	if m.Anchor(a) == h {
		m.SetAnchor(a, mn)
	}
	if m.Anchor(bv) == mate {
		m.SetAnchor(bv, hn)
	}

	b.logger.Debug("flipped edge",
		zap.Int("edge", int(e)),
		zap.Int("from", int(a)), zap.Int("to", int(bv)),
		zap.Int("newFrom", int(c)), zap.Int("newTo", int(d)))
	return c, d
}
