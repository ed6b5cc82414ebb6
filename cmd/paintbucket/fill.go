package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/example/paintbucket/internal/fill"
)

// fillCmd runs the paint bucket on an image.
type fillCmd struct {
	imageIO
	colorSpec string
	color     color.RGBA
	seed      image.Point
	*root
	fs *flag.FlagSet
}

func (f *fillCmd) FlagSet() *flag.FlagSet {
	return f.fs
}

func (f *fillCmd) Program() string {
	return program(f.root, "fill")
}

func parseFillCmd(args []string, r *root) (*fillCmd, error) {
	fs := flag.NewFlagSet("fill", flag.ExitOnError)
	f := &fillCmd{root: r, fs: fs}
	fs.Usage = usageFunc(f)
	f.register(fs)
	fs.StringVar(&f.colorSpec, "color", "", "fill color name or hex value")

	flagArgs, positionals, err := splitArgs(args, withIOFlags("color"), ioBoolFlags)
	if err != nil {
		return nil, err
	}
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if wantsHelp(positionals) || len(positionals) == 0 {
		return nil, &UsageError{of: f}
	}
	coords, err := expectInts(positionals, 2, "fill")
	if err != nil {
		return nil, err
	}
	f.seed = image.Pt(coords[0], coords[1])
	if f.color, err = r.drawColor(f.colorSpec); err != nil {
		return nil, err
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *fillCmd) Run() error {
	img, err := f.load()
	if err != nil {
		return err
	}
	n, err := fill.Count(img, f.seed, f.color)
	if err != nil {
		return fmt.Errorf("fill at %d,%d: %w", f.seed.X, f.seed.Y, err)
	}
	fmt.Fprintf(os.Stderr, "filled %d pixels\n", n)
	f.root.notifyFill(fmt.Sprintf("%d pixels", n), img)
	return f.save(img, f.root)
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		switch a {
		case "-h", "-help", "--help":
			return true
		}
	}
	return false
}
