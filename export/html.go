package export

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

func prepareScatter(scatter *charts.Scatter, title string) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "800px",
			Width:     "800px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: title,
			Left:  "10%",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "x",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "y",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Build an interactive chart: vertices as a scatter series, with the outline
// of each triangle overlaid as a closed line.
func Chart(mesh *Mesh, title string) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, title)

	points := make([]opts.ScatterData, 0, len(mesh.Vertices))
	for _, v := range mesh.VertexIDs() {
		p := mesh.Vertices[v]
		points = append(points, opts.ScatterData{
			Value:      []float64{p.X, p.Y},
			SymbolSize: 6,
		})
	}
	scatter.AddSeries("Vertices", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "black",
			}),
		)

	for _, t := range mesh.TriangleIDs() {
		corners := mesh.TrianglePoints(t)
		outline := make([]opts.LineData, 0, 4)
		for _, p := range append(corners[:], corners[0]) {
			outline = append(outline, opts.LineData{Value: []float64{p.X, p.Y}})
		}

		line := charts.NewLine()
		line.AddSeries("Triangles", outline).
			SetSeriesOptions(
				charts.WithLineStyleOpts(opts.LineStyle{
					Color: "steelblue",
					Width: 1,
				}),
			)
		scatter.Overlap(line)
	}

	return scatter
}

// Write the chart as a standalone HTML page.
func WriteHTML(w io.Writer, mesh *Mesh, title string) error {
	if title == "" {
		title = "Delaunay triangulation"
	}
	return errors.Wrap(Chart(mesh, title).Render(w), "rendering chart")
}
