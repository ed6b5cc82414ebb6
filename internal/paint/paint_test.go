package paint

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	red   = color.RGBA{R: 255, A: 255}
	blue  = color.RGBA{B: 255, A: 255}
)

func near(a, b color.RGBA, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v <= tol && v >= -tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func TestNewCanvasRejectsEmpty(t *testing.T) {
	if _, err := NewCanvas(0, 10, white); err == nil {
		t.Fatal("expected error for zero width")
	}
	img, err := NewCanvas(3, 2, white)
	if err != nil {
		t.Fatalf("NewCanvas: %v", err)
	}
	if got := img.RGBAAt(2, 1); got != white {
		t.Fatalf("canvas not cleared: %+v", got)
	}
}

func TestRectNormalisesAndClips(t *testing.T) {
	img, _ := NewCanvas(10, 10, white)
	Rect(img, image.Rect(8, 8, 3, 3), red)
	Rect(img, image.Rectangle{Min: image.Pt(7, 7), Max: image.Pt(20, 20)}, blue)
	if got := img.RGBAAt(3, 3); got != red {
		t.Fatalf("(3,3) = %+v, want red", got)
	}
	if got := img.RGBAAt(2, 2); got != white {
		t.Fatalf("(2,2) = %+v, want white", got)
	}
	if got := img.RGBAAt(9, 9); got != blue {
		t.Fatalf("(9,9) = %+v, want blue", got)
	}
}

func TestBrushDrawsRoundDabs(t *testing.T) {
	img, _ := NewCanvas(20, 20, white)
	if err := Brush(img, []image.Point{{2, 10}, {17, 10}}, red, 4); err != nil {
		t.Fatalf("Brush: %v", err)
	}
	for x := 2; x <= 17; x++ {
		if got := img.RGBAAt(x, 10); got != red {
			t.Fatalf("(%d,10) = %+v, want red", x, got)
		}
	}
	for _, y := range []int{8, 11} {
		if got := img.RGBAAt(10, y); got != red {
			t.Fatalf("(10,%d) = %+v, stroke thickness missing", y, got)
		}
	}
	for _, y := range []int{7, 12} {
		if got := img.RGBAAt(10, y); got != white {
			t.Fatalf("(10,%d) = %+v, stroke too thick", y, got)
		}
	}
	if got := img.RGBAAt(0, 8); got != white {
		t.Fatalf("round cap should leave corner: %+v", got)
	}
}

func TestBrushSinglePointAndClipping(t *testing.T) {
	img, _ := NewCanvas(4, 4, white)
	if err := Brush(img, []image.Point{{0, 0}}, red, 9); err != nil {
		t.Fatalf("Brush: %v", err)
	}
	if got := img.RGBAAt(0, 0); got != red {
		t.Fatalf("(0,0) = %+v, want red", got)
	}
	if err := Brush(img, nil, red, 1); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}

func TestEllipseFillsCentreOnly(t *testing.T) {
	img, _ := NewCanvas(40, 30, white)
	if err := Ellipse(img, image.Rect(30, 25, 10, 5), red); err != nil {
		t.Fatalf("Ellipse: %v", err)
	}
	if got := img.RGBAAt(20, 15); !near(got, red, 2) {
		t.Fatalf("centre = %+v, want red", got)
	}
	for _, p := range []image.Point{{10, 5}, {29, 24}, {0, 0}, {39, 29}} {
		if got := img.RGBAAt(p.X, p.Y); got != white {
			t.Fatalf("%v = %+v, want untouched white", p, got)
		}
	}
}

func TestBezierFallsBackForShortStrokes(t *testing.T) {
	img, _ := NewCanvas(10, 10, white)
	if err := Bezier(img, []image.Point{{1, 1}, {8, 1}}, red, 1); err != nil {
		t.Fatalf("Bezier: %v", err)
	}
	if got := img.RGBAAt(5, 1); got != red {
		t.Fatalf("(5,1) = %+v, want red", got)
	}
	if err := Bezier(img, nil, red, 1); !errors.Is(err, ErrNoPoints) {
		t.Fatalf("expected ErrNoPoints, got %v", err)
	}
}

func TestBezierStrokesThroughMidpoints(t *testing.T) {
	img, _ := NewCanvas(60, 60, white)
	pts := []image.Point{{5, 30}, {20, 30}, {40, 30}, {55, 30}}
	if err := Bezier(img, pts, red, 6); err != nil {
		t.Fatalf("Bezier: %v", err)
	}
	// Collinear control points keep the curve on y=30.
	if got := img.RGBAAt(30, 30); !near(got, red, 2) {
		t.Fatalf("(30,30) = %+v, want red", got)
	}
	if got := img.RGBAAt(30, 5); got != white {
		t.Fatalf("(30,5) = %+v, want white", got)
	}
}

func TestFitImageKeepsAspect(t *testing.T) {
	dst, _ := NewCanvas(20, 10, white)
	src, _ := NewCanvas(4, 4, red)
	FitImage(dst, src)
	if got := dst.RGBAAt(10, 5); !near(got, red, 1) {
		t.Fatalf("centre = %+v, want red", got)
	}
	if got := dst.RGBAAt(1, 5); got != white {
		t.Fatalf("letterbox = %+v, want white", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", red},
		{"Navy", color.RGBA{0, 0, 128, 255}},
		{"cornflowerblue", color.RGBA{100, 149, 237, 255}},
		{"#00FF00", color.RGBA{0, 255, 0, 255}},
		{"#FF000080", color.RGBA{0x80, 0, 0, 0x80}},
		{"#FFFFFF40", color.RGBA{0x40, 0x40, 0x40, 0x40}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#GG0000", "notacolor"} {
		if _, err := ParseColor(bad); err == nil {
			t.Fatalf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestFormatColor(t *testing.T) {
	if got := FormatColor(red); got != "#FF0000" {
		t.Fatalf("FormatColor = %q", got)
	}
	if got := FormatColor(color.RGBA{0x80, 0, 0, 0x80}); got != "#FF000080" {
		t.Fatalf("FormatColor = %q", got)
	}
	for _, hex := range []string{"#FF000080", "#FFFFFF40", "#00FF00"} {
		col, err := ParseColor(hex)
		if err != nil {
			t.Fatalf("ParseColor(%q): %v", hex, err)
		}
		if got := FormatColor(col); got != hex {
			t.Fatalf("FormatColor(ParseColor(%q)) = %q", hex, got)
		}
	}
}

func TestEnsurePaletteColor(t *testing.T) {
	coral := color.RGBA{255, 127, 80, 255}
	idx := EnsurePaletteColor(coral, "Coral")
	if again := EnsurePaletteColor(coral, "Other"); again != idx {
		t.Fatalf("duplicate colour added at %d, first at %d", again, idx)
	}
	entries := PaletteColors()
	if entries[idx].Name != "Coral" || entries[idx].Color != coral {
		t.Fatalf("unexpected entry %+v", entries[idx])
	}
	got, err := ParseColor("coral")
	if err != nil || got != coral {
		t.Fatalf("ParseColor(coral) = %+v, %v", got, err)
	}
}

func TestEnsureWidthSorted(t *testing.T) {
	idx := EnsureWidth(3)
	opts := WidthOptions()
	if opts[idx] != 3 {
		t.Fatalf("width 3 at %d in %v", idx, opts)
	}
	for i := 1; i < len(opts); i++ {
		if opts[i-1] >= opts[i] {
			t.Fatalf("widths not sorted: %v", opts)
		}
	}
}

func TestDabWidthIsExact(t *testing.T) {
	for _, width := range []int{1, 2, 3, 4, 5, 8} {
		img, _ := NewCanvas(20, 20, white)
		if err := Brush(img, []image.Point{{10, 10}}, red, width); err != nil {
			t.Fatalf("Brush: %v", err)
		}
		row, col := 0, 0
		for i := 0; i < 20; i++ {
			if img.RGBAAt(i, 10) == red {
				row++
			}
			if img.RGBAAt(10, i) == red {
				col++
			}
		}
		if row != width || col != width {
			t.Errorf("width %d: painted %d px across, %d px down", width, row, col)
		}
	}
}

func TestEllipseOnOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(100, 100, 120, 120))
	if err := Ellipse(img, image.Rect(100, 100, 120, 120), red); err != nil {
		t.Fatalf("Ellipse: %v", err)
	}
	if got := img.RGBAAt(110, 110); !near(got, red, 2) {
		t.Fatalf("centre = %+v, want red", got)
	}
	if got := img.RGBAAt(100, 100); got != (color.RGBA{}) {
		t.Fatalf("corner = %+v, want untouched", got)
	}

	base, _ := NewCanvas(40, 40, white)
	sub := base.SubImage(image.Rect(20, 20, 40, 40)).(*image.RGBA)
	if err := Ellipse(sub, image.Rect(24, 24, 36, 36), red); err != nil {
		t.Fatalf("Ellipse: %v", err)
	}
	if got := base.RGBAAt(30, 30); !near(got, red, 2) {
		t.Fatalf("sub-image centre = %+v, want red", got)
	}
	if got := base.RGBAAt(10, 10); got != white {
		t.Fatalf("outside sub-image = %+v, want white", got)
	}
}
