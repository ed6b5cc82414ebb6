package paint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

// ErrNoPoints is returned by stroke tools called without any points.
var ErrNoPoints = errors.New("stroke needs at least one point")

// NewCanvas returns a w x h canvas filled with background.
func NewCanvas(w, h int, background color.RGBA) (*image.RGBA, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	Clear(img, background)
	return img, nil
}

// Clear paints the whole canvas with col.
func Clear(img *image.RGBA, col color.RGBA) {
	draw.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// Rect fills the rectangle spanned by the two corners of r, clipped to img.
// Corners may be given in any order.
func Rect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Canon().Intersect(img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(img, r, image.NewUniform(col), image.Point{}, draw.Src)
}

// Brush paints a freehand stroke through points using round dabs of diameter
// width spaced half a diameter apart.
func Brush(img *image.RGBA, points []image.Point, col color.RGBA, width int) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if width < 1 {
		width = 1
	}
	dab(img, points[0].X, points[0].Y, width, col)
	for i := 1; i < len(points); i++ {
		brushSegment(img, points[i-1], points[i], width, col)
	}
	return nil
}

func brushSegment(img *image.RGBA, from, to image.Point, width int, col color.RGBA) {
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	spacing := math.Max(float64(width)/2, 1)
	steps := int(math.Ceil(math.Hypot(dx, dy) / spacing))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(float64(from.X) + dx*t))
		y := int(math.Round(float64(from.Y) + dy*t))
		dab(img, x, y, width, col)
	}
}

// dab draws a filled disc exactly width pixels across at (cx, cy). Odd widths
// centre on the pixel, even widths on its top-left corner.
func dab(img *image.RGBA, cx, cy, width int, col color.RGBA) {
	b := img.Bounds()
	radius := float64(width) / 2
	centre := 0.0
	if width%2 == 1 {
		centre = 0.5
	}
	lo := -(width / 2)
	hi := lo + width - 1
	for dy := lo; dy <= hi; dy++ {
		for dx := lo; dx <= hi; dx++ {
			px := float64(dx) + 0.5 - centre
			py := float64(dy) + 0.5 - centre
			if px*px+py*py > radius*radius {
				continue
			}
			p := image.Pt(cx+dx, cy+dy)
			if p.In(b) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

// Ellipse fills the ellipse inscribed in r. Corners may be given in any order.
func Ellipse(img *image.RGBA, r image.Rectangle, col color.RGBA) error {
	r = r.Canon()
	if r.Empty() {
		return nil
	}
	return render(img, func(dc *gg.Context) error {
		x0, y0 := local(img, r.Min)
		x1, y1 := local(img, r.Max)
		dc.SetColor(col)
		dc.DrawEllipse((x0+x1)/2, (y0+y1)/2, (x1-x0)/2, (y1-y0)/2)
		return dc.Fill()
	})
}

// Bezier strokes a smoothed line through points: the path starts at the first
// point and each interior point becomes the control point of a quadratic
// segment ending halfway to its successor.
func Bezier(img *image.RGBA, points []image.Point, col color.RGBA, width int) error {
	if len(points) == 0 {
		return ErrNoPoints
	}
	if len(points) < 3 {
		return Brush(img, points, col, width)
	}
	if width < 1 {
		width = 1
	}
	return render(img, func(dc *gg.Context) error {
		dc.SetColor(col)
		dc.SetLineWidth(float64(width))
		dc.SetLineCap(gg.LineCapRound)
		dc.SetLineJoin(gg.LineJoinRound)
		dc.MoveTo(local(img, points[0]))
		for i := 1; i < len(points)-1; i++ {
			px, py := local(img, points[i])
			nx, ny := local(img, points[i+1])
			dc.QuadraticTo(px, py, (px+nx)/2, (py+ny)/2)
		}
		return dc.Stroke()
	})
}

// render runs fn on a transparent layer the size of img and composites the
// result over img, leaving untouched pixels byte-identical.
func render(img *image.RGBA, fn func(dc *gg.Context) error) error {
	b := img.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	defer func() {
		_ = dc.Close()
	}()
	if err := fn(dc); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	draw.Draw(img, b, dc.Image(), image.Point{}, draw.Over)
	return nil
}

func local(img *image.RGBA, p image.Point) (float64, float64) {
	p = p.Sub(img.Bounds().Min)
	return float64(p.X), float64(p.Y)
}

// FitImage draws src scaled to fit inside dst, preserving its aspect ratio and
// centring it. The uncovered part of dst keeps its contents.
func FitImage(dst *image.RGBA, src image.Image) {
	db := dst.Bounds()
	sb := src.Bounds()
	if sb.Empty() || db.Empty() {
		return
	}
	w, h := db.Dx(), db.Dy()
	aspect := float64(sb.Dx()) / float64(sb.Dy())
	if sb.Dx() > sb.Dy() {
		h = int(math.Round(float64(w) / aspect))
	} else {
		w = int(math.Round(float64(h) * aspect))
	}
	if w > db.Dx() {
		w = db.Dx()
		h = int(math.Round(float64(w) / aspect))
	}
	if h > db.Dy() {
		h = db.Dy()
		w = int(math.Round(float64(h) * aspect))
	}
	x := db.Min.X + (db.Dx()-w)/2
	y := db.Min.Y + (db.Dy()-h)/2
	xdraw.CatmullRom.Scale(dst, image.Rect(x, y, x+w, y+h), src, sb, draw.Over, nil)
}
