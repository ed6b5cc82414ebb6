package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/example/paintbucket/internal/paint"
)

var stdout io.Writer = os.Stdout

type colorsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseColorsCmd(args []string, r *root) (*colorsCmd, error) {
	fs := flag.NewFlagSet("colors", flag.ExitOnError)
	cmd := &colorsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *colorsCmd) Run() error {
	palette := paint.PaletteColors()
	if len(palette) == 0 {
		fmt.Fprintln(stdout, "no colors available")
		return nil
	}
	fmt.Fprintln(stdout, "available palette colors (* marks the default color):")
	for idx, entry := range palette {
		marker := " "
		if idx == paint.DefaultColorIndex() {
			marker = "*"
		}
		hex := paint.FormatColor(entry.Color)
		name := entry.Name
		if name == "" {
			name = hex
		}
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", entry.Color.R, entry.Color.G, entry.Color.B)
		fmt.Fprintf(stdout, "%s %2d: %-12s %-9s %s\n", marker, idx, name, hex, block)
	}
	return nil
}

func (c *colorsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *colorsCmd) Program() string {
	return program(c.root, "colors")
}

type widthsCmd struct {
	*root
	fs *flag.FlagSet
}

func parseWidthsCmd(args []string, r *root) (*widthsCmd, error) {
	fs := flag.NewFlagSet("widths", flag.ExitOnError)
	cmd := &widthsCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *widthsCmd) Run() error {
	fmt.Fprintln(stdout, "available brush widths (* marks the default width):")
	def := c.root.brushWidth(0)
	for _, width := range paint.WidthOptions() {
		marker := " "
		if width == def {
			marker = "*"
		}
		fmt.Fprintf(stdout, "%s %3dpx\n", marker, width)
	}
	return nil
}

func (c *widthsCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *widthsCmd) Program() string {
	return program(c.root, "widths")
}
