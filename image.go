package skeleton

import (
	"image"
	"image/color"

	"github.com/gogpu/skeleton/internal/bitgrid"
)

// Colors used by Annotate.
var (
	BackgroundColor  = color.RGBA{A: 255}
	SkeletonColor    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	EndpointColor    = color.RGBA{B: 255, A: 255}
	BranchPointColor = color.RGBA{R: 255, A: 255}
)

// Binarize converts img to a grid. Pixels whose luminance is at least
// threshold become 1, darker pixels become 0. Use WithInvert when the
// strokes are dark.
func Binarize(img image.Image, threshold uint8) (*Grid, error) {
	return bitgrid.FromImage(img, threshold)
}

// Annotate draws the skeleton g on a black image and marks the points of
// r: endpoints in blue, branch points in red.
func Annotate(g *Grid, r Result) *image.RGBA {
	if g == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for y := range g.Rows() {
		for x, v := range g.Row(y) {
			if v != 0 {
				img.SetRGBA(x, y, SkeletonColor)
			} else {
				img.SetRGBA(x, y, BackgroundColor)
			}
		}
	}
	for _, p := range r.Endpoints {
		img.SetRGBA(p.Col, p.Row, EndpointColor)
	}
	for _, p := range r.BranchPoints {
		img.SetRGBA(p.Col, p.Row, BranchPointColor)
	}
	return img
}
