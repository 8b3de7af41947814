package internal

import (
	"embed"
	"log"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. Every <circle> in
// the document contributes its centre; everything else is ignored. If anything
// goes wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}
	points := make([]Point, 0, len(circles))
	for _, circle := range circles {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q: %v", circle.Attributes["cx"], err)
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q: %v", circle.Attributes["cy"], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc point sets

// Points on a perturbed spiral. Nothing is cocircular or collinear, and the
// hull has plenty of interior points.
func Spiral(n int) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 0.7 * float64(i)
		radius := 1 + 0.35*float64(i)
		points = append(points, Point{
			X: radius*math.Cos(angle) + 0.013*float64(i%7),
			Y: radius*math.Sin(angle) - 0.011*float64(i%5),
		})
	}
	return points
}

// Every permutation of the points, in lexicographic order of indexes.
func Permutations(points []Point) [][]Point {
	var result [][]Point
	var permute func(prefix []Point, rest []Point)
	permute = func(prefix []Point, rest []Point) {
		if len(rest) == 0 {
			result = append(result, append([]Point(nil), prefix...))
			return
		}
		for i := range rest {
			remaining := make([]Point, 0, len(rest)-1)
			remaining = append(remaining, rest[:i]...)
			remaining = append(remaining, rest[i+1:]...)
			permute(append(prefix, rest[i]), remaining)
		}
	}
	permute(nil, points)
	return result
}
