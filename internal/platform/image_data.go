package platform

import (
	"image"
	"image/draw"
)

// imageHint is the (iiibiiay) layout of the freedesktop image-data hint.
type imageHint struct {
	Width         int32
	Height        int32
	RowStride     int32
	HasAlpha      bool
	BitsPerSample int32
	Channels      int32
	Data          []byte
}

// imageData converts img to straight-alpha RGBA rows.
func imageData(img image.Image) imageHint {
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return imageHint{
		Width:         int32(b.Dx()),
		Height:        int32(b.Dy()),
		RowStride:     int32(n.Stride),
		HasAlpha:      true,
		BitsPerSample: 8,
		Channels:      4,
		Data:          n.Pix,
	}
}
