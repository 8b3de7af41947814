// Package pointsource reads point sets for triangulation.
package pointsource

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
)

type Point = internal.Point

// Read newline separated points in the form "x y". Blank lines and lines
// starting with '#' are skipped, so the gnuplot data blocks written by the
// exporter can be read back.
func ReadText(in io.Reader) ([]Point, error) {
	points := []Point{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected 2 coordinates, got %d in %q", len(parts), line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrap(err, "x coordinate")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrap(err, "y coordinate")
	}
	return Point{X: x, Y: y}, nil
}
