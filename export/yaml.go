package export

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type yamlVertex struct {
	ID int     `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
}

type yamlTriangle struct {
	ID       int    `yaml:"id"`
	Vertices [3]int `yaml:"vertices,flow"`
}

type yamlDocument struct {
	Vertices  []yamlVertex   `yaml:"vertices"`
	Triangles []yamlTriangle `yaml:"triangles"`
}

// Write the vertex and triangle maps as YAML, sorted by handle. Triangles refer
// to vertices by id, and list them counterclockwise.
func WriteYAML(w io.Writer, mesh *Mesh) error {
	doc := yamlDocument{
		Vertices:  []yamlVertex{},
		Triangles: []yamlTriangle{},
	}
	for _, v := range mesh.VertexIDs() {
		p := mesh.Vertices[v]
		doc.Vertices = append(doc.Vertices, yamlVertex{ID: int(v), X: p.X, Y: p.Y})
	}
	for _, t := range mesh.TriangleIDs() {
		vs := mesh.Triangles[t]
		doc.Triangles = append(doc.Triangles, yamlTriangle{
			ID:       int(t),
			Vertices: [3]int{int(vs[0]), int(vs[1]), int(vs[2])},
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding yaml")
	}
	return errors.Wrap(encoder.Close(), "encoding yaml")
}
