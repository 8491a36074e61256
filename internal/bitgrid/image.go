package bitgrid

import (
	"image"
	"image/color"
)

// FromImage thresholds img into a grid: pixels whose luminance is below
// threshold become background (0), all others foreground (1).
// Returns ErrInvalidDimensions for an empty image.
func FromImage(img image.Image, threshold uint8) (*Grid, error) {
	bounds := img.Bounds()
	g, err := New(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}

	// Fast path for grayscale images
	if gray, ok := img.(*image.Gray); ok {
		for r := range g.rows {
			src := gray.Pix[r*gray.Stride : r*gray.Stride+g.cols]
			dst := g.Row(r)
			for c, y := range src {
				if y >= threshold {
					dst[c] = 1
				}
			}
		}
		return g, nil
	}

	for r := range g.rows {
		dst := g.Row(r)
		for c := range g.cols {
			y := color.GrayModel.Convert(img.At(bounds.Min.X+c, bounds.Min.Y+r)).(color.Gray).Y
			if y >= threshold {
				dst[c] = 1
			}
		}
	}
	return g, nil
}

// ToGray renders the grid as an 8-bit grayscale image with foreground in
// white and background in black.
func (g *Grid) ToGray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.cols, g.rows))
	for r := range g.rows {
		dst := img.Pix[r*img.Stride : r*img.Stride+g.cols]
		for c, v := range g.Row(r) {
			dst[c] = v * 0xff
		}
	}
	return img
}
