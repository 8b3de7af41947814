package pointsource

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read points out of an SVG document. Every <circle> contributes its centre,
// and every <polygon> or <polyline> contributes its vertices. Transforms are
// ignored.
func ReadSVG(in io.Reader) ([]Point, error) {
	root, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	points := []Point{}
	for _, circle := range root.FindAll("circle") {
		x, err := parseAttribute(circle, "cx")
		if err != nil {
			return nil, err
		}
		y, err := parseAttribute(circle, "cy")
		if err != nil {
			return nil, err
		}
		points = append(points, Point{X: x, Y: y})
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, poly := range root.FindAll(name) {
			polyPoints, err := parsePointList(poly.Attributes["points"])
			if err != nil {
				return nil, errors.Wrapf(err, "<%s points>", name)
			}
			points = append(points, polyPoints...)
		}
	}
	return points, nil
}

// A missing attribute defaults to 0, like it does in SVG itself.
func parseAttribute(el *svgparser.Element, name string) (float64, error) {
	raw, ok := el.Attributes[name]
	if !ok || raw == "" {
		return 0, nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "<%s %s>", el.Name, name)
	}
	return value, nil
}

// Parse the points attribute of a polygon. Coordinates may be separated by
// commas, whitespace, or both.
func parsePointList(raw string) ([]Point, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrap(err, "x coordinate")
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrap(err, "y coordinate")
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
