package clipboard

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPNGRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.SetRGBA(1, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	data, err := encodePNG(img)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := decodePNG(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := color.RGBAModel.Convert(out.At(1, 0)).(color.RGBA); got != img.RGBAAt(1, 0) {
		t.Fatalf("pixel = %+v, want %+v", got, img.RGBAAt(1, 0))
	}
}

func TestDecodeEmpty(t *testing.T) {
	if _, err := decodePNG(nil); !errors.Is(err, errNoImage) {
		t.Fatalf("expected errNoImage, got %v", err)
	}
}
