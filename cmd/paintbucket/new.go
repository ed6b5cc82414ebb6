package main

import (
	"flag"
	"fmt"
	"image/color"

	"github.com/example/paintbucket/internal/paint"
)

// newCmd creates a blank canvas, optionally importing an image into it.
type newCmd struct {
	output         string
	backgroundSpec string
	background     color.RGBA
	width          int
	height         int
	importFile     string
	toClipboard    bool
	*root
	fs *flag.FlagSet
}

func (n *newCmd) FlagSet() *flag.FlagSet {
	return n.fs
}

func (n *newCmd) Program() string {
	return program(n.root, "new")
}

func parseNewCmd(args []string, r *root) (*newCmd, error) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	n := &newCmd{root: r, fs: fs}
	fs.Usage = usageFunc(n)
	fs.StringVar(&n.output, "output", "", "output file path")
	fs.StringVar(&n.backgroundSpec, "background", "", "background color name or hex value")
	fs.IntVar(&n.width, "width", 800, "canvas width in pixels")
	fs.IntVar(&n.height, "height", 600, "canvas height in pixels")
	fs.StringVar(&n.importFile, "import", "", "PNG image scaled to fit the canvas")
	fs.BoolVar(&n.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: n}
	}
	if n.width < 1 || n.height < 1 {
		return nil, fmt.Errorf("canvas size %dx%d must be positive", n.width, n.height)
	}
	if n.output == "" {
		return nil, fmt.Errorf("output file is required")
	}
	var err error
	if n.background, err = r.backgroundColor(n.backgroundSpec); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *newCmd) Run() error {
	img, err := paint.NewCanvas(n.width, n.height, n.background)
	if err != nil {
		return err
	}
	if n.importFile != "" {
		src, err := decodeFile(n.importFile)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		paint.FitImage(img, src)
	}
	out := imageIO{output: n.output, toClipboard: n.toClipboard}
	return out.save(img, n.root)
}
