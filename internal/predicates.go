package internal

import (
	"math"

	"github.com/pkg/errors"
)

// All floating point decisions made during triangulation go through the
// functions in this file. None of them know about the mesh.

type Turn int

const (
	Collinear Turn = iota
	Left           // counterclockwise
	Right          // clockwise
)

func (t Turn) String() string {
	switch t {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "collinear"
	}
}

// Twice the signed area of the triangle abc. Positive when abc winds
// counterclockwise.
func Cross(a, b, c *Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Which way does c lie relative to the directed line a->b?
func Orientation(a, b, c *Point) Turn {
	cross := Cross(a, b, c)
	switch {
	case cross > 0:
		return Left
	case cross < 0:
		return Right
	default:
		return Collinear
	}
}

// Relative tolerance on the radius inside which a point counts as lying on a
// circle. See Circle.Side.
const CocircularTolerance = 1e-9

type Circle struct {
	Center Point
	Radius float64
}

type CircleSide int

const (
	Outside CircleSide = iota
	OnCircle
	Inside
)

// Build the circle through three points by intersecting the perpendicular
// bisectors of p0p1 and p1p2. Collinear points have no circumcircle; the result
// is then an infinite circle that contains every point.
func Circumcircle(p0, p1, p2 *Point) Circle {
	// Bisector i is the line {x : a*x.X + b*x.Y = c}
	a1, b1 := p1.X-p0.X, p1.Y-p0.Y
	c1 := a1*(p0.X+p1.X)/2 + b1*(p0.Y+p1.Y)/2
	a2, b2 := p2.X-p1.X, p2.Y-p1.Y
	c2 := a2*(p1.X+p2.X)/2 + b2*(p1.Y+p2.Y)/2

	det := a1*b2 - a2*b1
	if det == 0 {
		return Circle{
			Center: Point{(p0.X + p1.X + p2.X) / 3, (p0.Y + p1.Y + p2.Y) / 3},
			Radius: math.Inf(1),
		}
	}
	center := Point{
		X: (c1*b2 - c2*b1) / det,
		Y: (a1*c2 - a2*c1) / det,
	}
	return Circle{Center: center, Radius: center.Distance(p0)}
}

// Closed disk test. Points exactly on the circle are contained.
func (c Circle) Contains(pt *Point) bool {
	return c.Center.Distance(pt) <= c.Radius
}

// Three way classification of pt against the circle, with points within
// CocircularTolerance of the boundary reported as OnCircle.
func (c Circle) Side(pt *Point) CircleSide {
	if math.IsInf(c.Radius, 1) {
		return Inside
	}
	tolerance := c.Radius * CocircularTolerance
	distance := c.Center.Distance(pt)
	switch {
	case distance < c.Radius-tolerance:
		return Inside
	case distance > c.Radius+tolerance:
		return Outside
	default:
		return OnCircle
	}
}

// Is p0 p1 p2 p3, taken in that cyclic order, a simple convex quadrilateral?
func IsConvexQuad(p0, p1, p2, p3 *Point) bool {
	corners := [4]*Point{p0, p1, p2, p3}
	for i := range corners {
		a := corners[i]
		b := corners[CircularIndex(i+1, 4)]
		c := corners[CircularIndex(i+2, 4)]
		if Orientation(a, b, c) != Left {
			return false
		}
	}
	return true
}

// Even-odd point in triangle test, counting crossings of a horizontal ray
// running from pt towards +x. Points on the boundary are not inside.
func PointInTriangle(p0, p1, p2, pt *Point) bool {
	corners := [3]*Point{p0, p1, p2}
	crossingCount := 0
	for i, a := range corners {
		b := corners[CircularIndex(i+1, 3)]
		if PointOnSegment(a, b, pt) || *pt == *a {
			return false
		}
		if rayCrosses(a, b, pt) {
			crossingCount++
		}
	}
	return crossingCount%2 == 1
}

// Half-open crossing rule: the segment counts if exactly one endpoint is above
// pt. The segment is oriented upwards before testing so that the two triangles
// sharing it always agree on the answer.
func rayCrosses(a, b, pt *Point) bool {
	if (a.Y > pt.Y) == (b.Y > pt.Y) {
		return false
	}
	if a.Y > b.Y {
		a, b = b, a
	}
	return Orientation(a, b, pt) == Left
}

// Is pt on the infinite line through p0 and p1? This does not look at the
// segment's extent; see PointOnSegment.
func PointOnEdge(p0, p1, pt *Point) bool {
	return Orientation(p0, pt, p1) == Collinear
}

// Is pt strictly between p0 and p1 on the segment joining them?
func PointOnSegment(p0, p1, pt *Point) bool {
	if !PointOnEdge(p0, p1, pt) {
		return false
	}
	if *pt == *p0 || *pt == *p1 {
		return false
	}
	return pt.X >= math.Min(p0.X, p1.X) && pt.X <= math.Max(p0.X, p1.X) &&
		pt.Y >= math.Min(p0.Y, p1.Y) && pt.Y <= math.Max(p0.Y, p1.Y)
}

// Compute a triangle which strictly contains every point. The larger extent m
// decides the size. The centre sits at the midpoint of the dominant axis, and
// m/2 above the minimum of the minor axis, so the points always fall within an
// m by m square around it.
func BoundingTriangle(points []Point) ([3]Point, error) {
	if len(points) == 0 {
		return [3]Point{}, errors.Wrap(ErrDegenerateInput, "no points")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	width := maxX - minX
	height := maxY - minY
	m := math.Max(width, height)
	if m == 0 || math.IsNaN(m) || math.IsInf(m, 0) {
		return [3]Point{}, errors.Wrapf(ErrDegenerateInput, "extent %g", m)
	}

	var center Point
	if width >= height {
		center = Point{(minX + maxX) / 2, minY + m/2}
	} else {
		center = Point{minX + m/2, (minY + maxY) / 2}
	}
	return [3]Point{
		{center.X - 3*m, center.Y - 3*m},
		{center.X + 3*m, center.Y},
		{center.X, center.Y + 3*m},
	}, nil
}
