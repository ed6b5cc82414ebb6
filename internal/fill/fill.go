package fill

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrInvalidCoordinate is returned when the seed lies outside the image.
var ErrInvalidCoordinate = errors.New("coordinate outside image bounds")

// Fill recolours the 4-connected region of pixels sharing the colour found at
// seed with target. The image is modified in place. When the seed already has
// the target colour nothing changes.
func Fill(img *image.RGBA, seed image.Point, target color.RGBA) error {
	_, err := Count(img, seed, target)
	return err
}

// Count behaves like Fill and reports how many pixels were recoloured.
func Count(img *image.RGBA, seed image.Point, target color.RGBA) (int, error) {
	if img == nil {
		return 0, fmt.Errorf("%w: no image", ErrInvalidCoordinate)
	}
	b := img.Bounds()
	if !seed.In(b) {
		return 0, fmt.Errorf("%w: (%d,%d) not in %dx%d image", ErrInvalidCoordinate, seed.X, seed.Y, b.Dx(), b.Dy())
	}
	original := pixelAt(img, seed.X, seed.Y)
	if original == target {
		return 0, nil
	}

	filled := 0
	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if pixelAt(img, p.X, p.Y) != original {
			continue
		}
		setPixel(img, p.X, p.Y, target)
		filled++

		if p.X+1 < b.Max.X {
			stack = append(stack, image.Pt(p.X+1, p.Y))
		}
		if p.X-1 >= b.Min.X {
			stack = append(stack, image.Pt(p.X-1, p.Y))
		}
		if p.Y+1 < b.Max.Y {
			stack = append(stack, image.Pt(p.X, p.Y+1))
		}
		if p.Y-1 >= b.Min.Y {
			stack = append(stack, image.Pt(p.X, p.Y-1))
		}
	}
	return filled, nil
}

// pixelAt reads the raw channel bytes, skipping the colour model conversion
// image.RGBA.At performs.
func pixelAt(img *image.RGBA, x, y int) color.RGBA {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	return color.RGBA{s[0], s[1], s[2], s[3]}
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	i := img.PixOffset(x, y)
	s := img.Pix[i : i+4 : i+4]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
	s[3] = c.A
}
