package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/example/paintbucket/internal/paint"
)

// drawCmd applies one of the paint tools to an image.
type drawCmd struct {
	imageIO
	colorSpec      string
	backgroundSpec string
	color          color.RGBA
	background     color.RGBA
	width          int
	tool           string
	points         []image.Point
	*root
	fs *flag.FlagSet
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

func (d *drawCmd) Program() string {
	return program(d.root, "draw")
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r, fs: fs}
	fs.Usage = usageFunc(d)
	d.register(fs)
	fs.StringVar(&d.colorSpec, "color", "", "stroke or fill color name or hex value")
	fs.StringVar(&d.backgroundSpec, "background", "", "background color used by erase and clear")
	fs.IntVar(&d.width, "width", 0, "brush width in pixels")

	flagArgs, positionals, err := splitArgs(args, withIOFlags("color", "background", "width"), ioBoolFlags)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if wantsHelp(positionals) || len(positionals) < 1 {
		return nil, &UsageError{of: d}
	}
	d.tool = strings.ToLower(positionals[0])
	remaining := positionals[1:]
	switch d.tool {
	case "brush", "erase", "bezier":
		var vals []int
		if vals, err = parseInts(remaining); err == nil {
			d.points, err = pointsFrom(vals)
		}
	case "rect", "ellipse":
		var vals []int
		if vals, err = expectInts(remaining, 4, d.tool); err == nil {
			d.points, err = pointsFrom(vals)
		}
	case "clear":
		if len(remaining) != 0 {
			err = fmt.Errorf("clear takes no arguments")
		}
	default:
		return nil, fmt.Errorf("unsupported tool %q", d.tool)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.tool, err)
	}
	if d.color, err = r.drawColor(d.colorSpec); err != nil {
		return nil, err
	}
	if d.background, err = r.backgroundColor(d.backgroundSpec); err != nil {
		return nil, err
	}
	d.width = r.brushWidth(d.width)
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *drawCmd) Run() error {
	img, err := d.load()
	if err != nil {
		return err
	}
	if err := d.apply(img); err != nil {
		return err
	}
	return d.save(img, d.root)
}

func (d *drawCmd) apply(img *image.RGBA) error {
	switch d.tool {
	case "brush":
		return paint.Brush(img, d.points, d.color, d.width)
	case "erase":
		return paint.Brush(img, d.points, d.background, d.width)
	case "bezier":
		return paint.Bezier(img, d.points, d.color, d.width)
	case "rect":
		paint.Rect(img, image.Rectangle{Min: d.points[0], Max: d.points[1]}, d.color)
		return nil
	case "ellipse":
		return paint.Ellipse(img, image.Rectangle{Min: d.points[0], Max: d.points[1]}, d.color)
	case "clear":
		paint.Clear(img, d.background)
		return nil
	default:
		return errors.New("unhandled tool")
	}
}
