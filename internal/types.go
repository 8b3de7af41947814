package internal

import "fmt"

type Point struct {
	X float64
	Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Handles index into the mesh arenas. They are stable once issued, since the
// arenas only grow while a triangulation is being built.
type (
	VertexID   int
	HalfEdgeID int
	EdgeID     int
	TriangleID int
)

// Invalid is the "no such element" handle for every arena.
const Invalid = -1

type Vertex struct {
	Point Point
	// Some half-edge starting at this vertex. Any outgoing half-edge will do for
	// the star walk, so only the most recently created one is remembered.
	Anchor HalfEdgeID
}

type HalfEdge struct {
	Origin   VertexID
	Edge     EdgeID
	Triangle TriangleID // Invalid on the exterior side of the mesh
	Next     HalfEdgeID
}

// An edge is the pair of mate half-edges, one for each side.
type Edge struct {
	HalfEdges [2]HalfEdgeID
}

// Triangles are counterclockwise. HalfEdges[i].Next == HalfEdges[(i+1)%3].
type Triangle struct {
	HalfEdges [3]HalfEdgeID
}

type VertexStack []VertexID

type EdgeSet map[EdgeID]struct{}

func (s EdgeSet) Add(e EdgeID) bool {
	if _, ok := s[e]; ok {
		return false
	}
	s[e] = struct{}{}
	return true
}
