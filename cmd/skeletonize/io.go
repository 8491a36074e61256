package main

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrEmptyData is returned when the input file is empty.
	ErrEmptyData = errors.New("skeletonize: empty input")

	// ErrInvalidScale is returned for a scale factor below 1.
	ErrInvalidScale = errors.New("skeletonize: scale must be at least 1")
)

// loadImage decodes the image at path. The format is detected from the
// content: PNG, JPEG, GIF, BMP, TIFF and WebP are supported.
func loadImage(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("skeletonize: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, "", fmt.Errorf("skeletonize: stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil, "", ErrEmptyData
	}
	return decodeImage(f)
}

// decodeImage decodes an image from r, auto-detecting the format.
func decodeImage(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("skeletonize: decode: %w", err)
	}
	return img, format, nil
}

// savePNG writes img to path as PNG.
func savePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("skeletonize: create file: %w", err)
	}

	if err := encodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// encodePNG encodes img as PNG to w.
func encodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("skeletonize: encode PNG: %w", err)
	}
	return nil
}

// upscale enlarges img by an integer factor with nearest-neighbour
// sampling so that single marked pixels stay crisp.
func upscale(img *image.RGBA, factor int) (*image.RGBA, error) {
	if factor < 1 {
		return nil, ErrInvalidScale
	}
	if factor == 1 {
		return img, nil
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst, nil
}
