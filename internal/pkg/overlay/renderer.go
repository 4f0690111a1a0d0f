package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ragunandhant/photo-overlay/internal/entity"
)

// tileSpacing is the horizontal gap between repeated text tiles.
const tileSpacing = 20

// Render returns a copy of src with text tiled horizontally across the full
// width at the configured height from the bottom edge, optionally over a
// translucent background band. The source image is never modified. Empty text
// yields a pixel-identical copy. Positions falling outside the canvas are not
// clamped; out-of-bounds portions clip away silently.
func Render(src image.Image, text string, style entity.OverlayStyle) (image.Image, error) {
	fontColor, err := entity.ParseHexColor(style.FontColor)
	if err != nil {
		return nil, fmt.Errorf("font color: %w", err)
	}
	var bgColor color.NRGBA
	if style.Background {
		bgColor, err = entity.ParseHexColor(style.BackgroundColor)
		if err != nil {
			return nil, fmt.Errorf("background color: %w", err)
		}
		if style.BackgroundOpacity < 0 || style.BackgroundOpacity > 100 {
			return nil, fmt.Errorf("background opacity %d out of range 0-100", style.BackgroundOpacity)
		}
	}

	out := imaging.Clone(src)
	if text == "" {
		return out, nil
	}

	face := loadFace(style.FontSize)
	bounds, advance := font.BoundString(face, text)
	textWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	textHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()
	if textWidth == 0 {
		textWidth = advance.Ceil()
	}

	width := out.Bounds().Dx()
	height := out.Bounds().Dy()
	y := height - style.OffsetFromBottom - textHeight

	if style.Background {
		// 0-100 percent scaled linearly to 0-255 alpha.
		alpha := uint8(style.BackgroundOpacity * 255 / 100)
		band := image.Rect(0, y-style.BackgroundPadding, width, y+textHeight+style.BackgroundPadding)
		layer := image.NewNRGBA(out.Bounds())
		fill := color.NRGBA{R: bgColor.R, G: bgColor.G, B: bgColor.B, A: alpha}
		draw.Draw(layer, band.Intersect(layer.Bounds()), image.NewUniform(fill), image.Point{}, draw.Src)
		out = imaging.Overlay(out, layer, image.Point{}, 1.0)
	}

	drawer := &font.Drawer{
		Dst:  out,
		Src:  image.NewUniform(fontColor),
		Face: face,
	}
	tileWidth := textWidth + tileSpacing
	repetitions := width/tileWidth + 2
	for i := 0; i < repetitions; i++ {
		x := i * tileWidth
		if x >= width {
			continue
		}
		// Dot is the baseline origin; offset by the bounding box minimum so
		// the glyph box's top-left lands on (x, y).
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(x) - bounds.Min.X,
			Y: fixed.I(y) - bounds.Min.Y,
		}
		drawer.DrawString(text)
	}
	return out, nil
}
