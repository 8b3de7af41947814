package internal

import "math"

// Tolerance used where floating point fuzz has to be absorbed explicitly. The
// orientation predicates are exact sign tests and do not use it.
const Epsilon = 1e-9

func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Lexicographic order: lower y first, then lower x. This is the order used to
// break ties between cocircular configurations.
func (p *Point) Below(otherPoint *Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

func (p *Point) Above(otherPoint *Point) bool {
	return !p.Below(otherPoint)
}

func (p *Point) Distance(otherPoint *Point) float64 {
	return math.Hypot(p.X-otherPoint.X, p.Y-otherPoint.Y)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *VertexStack) Push(v ...VertexID) {
	*s = append(*s, v...)
}

func (s *VertexStack) Pop() VertexID {
	if len(*s) == 0 {
		return Invalid
	}
	v := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return v
}

func (s *VertexStack) Empty() bool {
	return len(*s) == 0
}
