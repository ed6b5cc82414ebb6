package viewer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"
)

const statusHeight = 20

var (
	checkerLight = color.RGBA{220, 220, 220, 255}
	checkerDark  = color.RGBA{192, 192, 192, 255}
	statusBg     = color.RGBA{235, 235, 235, 255}
)

// Viewer shows an image in a read-only window.
type Viewer struct {
	Image *image.RGBA
	Title string
}

// New returns a viewer for img.
func New(img *image.RGBA, title string) *Viewer {
	return &Viewer{Image: img, Title: title}
}

// Run opens the window and blocks until it is closed.
func (v *Viewer) Run() { driver.Main(v.Main) }

// Main runs the window event loop on s.
func (v *Viewer) Main(s screen.Screen) {
	width := v.Image.Bounds().Dx()
	height := v.Image.Bounds().Dy() + statusHeight
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: v.Title})
	if err != nil {
		log.Printf("new window: %v", err)
		return
	}
	defer w.Release()

	fit := true
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
		case paint.Event:
			if width <= 0 || height <= 0 {
				continue
			}
			b, err := s.NewBuffer(image.Pt(width, height))
			if err != nil {
				log.Printf("new buffer: %v", err)
				continue
			}
			renderFrame(b.RGBA(), v.Image, fit)
			w.Upload(image.Point{}, b, b.Bounds())
			b.Release()
			w.Publish()
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			switch {
			case e.Code == key.CodeEscape, e.Rune == 'q', e.Rune == 'Q':
				return
			case e.Rune == 'f', e.Rune == 'F':
				fit = true
				w.Send(paint.Event{})
			case e.Rune == '0', e.Rune == '1':
				fit = false
				w.Send(paint.Event{})
			}
		case error:
			log.Printf("viewer: %v", e)
		}
	}
}

// zoomFor returns the scale that fits img into w x h, or 1 when fit is off.
func zoomFor(img image.Rectangle, w, h int, fit bool) float64 {
	if !fit || img.Dx() == 0 || img.Dy() == 0 {
		return 1
	}
	zx := float64(w) / float64(img.Dx())
	zy := float64(h) / float64(img.Dy())
	if zx < zy {
		return zx
	}
	return zy
}

func renderFrame(dst *image.RGBA, img *image.RGBA, fit bool) {
	b := dst.Bounds()
	canvas := image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y-statusHeight)
	drawCheckerboard(dst, canvas, 8)

	zoom := zoomFor(img.Bounds(), canvas.Dx(), canvas.Dy(), fit)
	iw := int(float64(img.Bounds().Dx()) * zoom)
	ih := int(float64(img.Bounds().Dy()) * zoom)
	target := image.Rect(0, 0, iw, ih).Add(canvas.Min)
	xdraw.NearestNeighbor.Scale(dst, target.Intersect(canvas), img, img.Bounds(), draw.Over, nil)

	status := image.Rect(b.Min.X, canvas.Max.Y, b.Max.X, b.Max.Y)
	draw.Draw(dst, status, image.NewUniform(statusBg), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.Black,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(status.Min.X+4, status.Min.Y+14),
	}
	d.DrawString(fmt.Sprintf("%dx%d  %.0f%%  f:fit 0:actual q:quit", img.Bounds().Dx(), img.Bounds().Dy(), zoom*100))
}

// drawCheckerboard fills rect of dst with a checkerboard of size px squares.
func drawCheckerboard(dst *image.RGBA, rect image.Rectangle, size int) {
	rect = rect.Intersect(dst.Bounds())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if ((x/size)+(y/size))%2 == 0 {
				dst.SetRGBA(x, y, checkerLight)
			} else {
				dst.SetRGBA(x, y, checkerDark)
			}
		}
	}
}
