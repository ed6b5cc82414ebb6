package main

import (
	"flag"
	"path/filepath"

	"github.com/example/paintbucket/internal/viewer"
)

var showFn = func(v *viewer.Viewer) { v.Run() }

type previewCmd struct {
	file string
	*root
	fs *flag.FlagSet
}

func (p *previewCmd) FlagSet() *flag.FlagSet {
	return p.fs
}

func (p *previewCmd) Program() string {
	return program(p.root, "preview")
}

func parsePreviewCmd(args []string, r *root) (*previewCmd, error) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	c := &previewCmd{root: r, fs: fs}
	fs.Usage = usageFunc(c)
	fs.StringVar(&c.file, "file", "", "image file to open")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.file == "" && fs.NArg() == 1 {
		c.file = fs.Arg(0)
	}
	if c.file == "" {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (p *previewCmd) Run() error {
	img, err := decodeFile(p.file)
	if err != nil {
		return err
	}
	showFn(viewer.New(toRGBA(img), filepath.Base(p.file)))
	return nil
}
