package export

import (
	"io"

	"github.com/osuushi/delaunay/internal"
	"github.com/pkg/errors"
)

const DefaultScale = 50

// Neither side of a PNG is ever longer than this many pixels.
const MaxImageSize = internal.MaxImageSize

// Render the mesh as a PNG image with scale pixels per unit. Large meshes get
// a smaller scale, so that the image fits within MaxImageSize.
func WritePNG(w io.Writer, mesh *Mesh, scale float64) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	return errors.Wrap(mesh.Draw(scale).EncodePNG(w), "encoding png")
}
