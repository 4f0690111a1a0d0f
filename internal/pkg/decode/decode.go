package decode

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Decode decodes uploaded PNG/JPEG bytes and normalizes the result: any
// transparency is flattened onto a white background and the pixel format is
// converted to 8-bit NRGBA.
func Decode(data []byte) (*image.NRGBA, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	white := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return imaging.Overlay(white, img, image.Point{}, 1.0), nil
}
