package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Write a self-contained gnuplot script. The vertices and the closed outline of
// every triangle go into inline data blocks, so running the script with
// gnuplot -p draws the mesh.
func WriteGnuplot(w io.Writer, mesh *Mesh, title string) error {
	out := bufio.NewWriter(w)

	if title != "" {
		fmt.Fprintf(out, "set title %q\n", title)
	}
	fmt.Fprintln(out, "set size ratio -1")
	fmt.Fprintln(out, "unset key")

	fmt.Fprintln(out, "$vertices << EOD")
	for _, v := range mesh.VertexIDs() {
		p := mesh.Vertices[v]
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}
	fmt.Fprintln(out, "EOD")

	fmt.Fprintln(out, "$triangles << EOD")
	for _, t := range mesh.TriangleIDs() {
		points := mesh.TrianglePoints(t)
		for _, p := range points {
			fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
		}
		fmt.Fprintf(out, "%g %g\n\n", points[0].X, points[0].Y)
	}
	fmt.Fprintln(out, "EOD")

	fmt.Fprintln(out, "plot $triangles with lines linecolor rgb 'steelblue', \\")
	fmt.Fprintln(out, "     $vertices with points pointtype 7 pointsize 0.6 linecolor rgb 'black'")

	return errors.Wrap(out.Flush(), "writing gnuplot script")
}
