// Package export writes a finalized triangulation in formats other tools can
// display.
package export

import (
	"io"
	"strings"

	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
)

type Mesh = internal.FinalMesh
type Point = internal.Point

type Format int

const (
	Gnuplot Format = iota
	HTML
	PNG
	YAML
)

var formatNames = map[Format]string{
	Gnuplot: "gnuplot",
	HTML:    "html",
	PNG:     "png",
	YAML:    "yaml",
}

var ErrUnknownFormat = errors.New("unknown export format")

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// Names of every format, in the order of the constants above.
func FormatNames() []string {
	return []string{Gnuplot.String(), HTML.String(), PNG.String(), YAML.String()}
}

func ParseFormat(name string) (Format, error) {
	for format, formatName := range formatNames {
		if strings.EqualFold(name, formatName) {
			return format, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownFormat, "%q", name)
}

type Options struct {
	// Pixels per unit, for PNG.
	Scale float64
	Title string
}

// Write the mesh to w in the given format.
func Write(w io.Writer, format Format, mesh *Mesh, options Options) error {
	switch format {
	case Gnuplot:
		return WriteGnuplot(w, mesh, options.Title)
	case HTML:
		return WriteHTML(w, mesh, options.Title)
	case PNG:
		return WritePNG(w, mesh, options.Scale)
	case YAML:
		return WriteYAML(w, mesh)
	default:
		return errors.Wrapf(ErrUnknownFormat, "format %d", int(format))
	}
}
