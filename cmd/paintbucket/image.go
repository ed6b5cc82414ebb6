package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/example/paintbucket/internal/clipboard"
)

var (
	readClipboardFn  = clipboard.ReadImage
	writeClipboardFn = clipboard.WriteImage
)

// imageIO holds the input and output flags shared by the editing commands.
type imageIO struct {
	file          string
	output        string
	fromClipboard bool
	toClipboard   bool
}

func (io *imageIO) register(fs *flag.FlagSet) {
	fs.StringVar(&io.file, "file", "", "input PNG file")
	fs.StringVar(&io.output, "output", "", "output file path (defaults to input file)")
	fs.BoolVar(&io.fromClipboard, "from-clipboard", false, "read the input image from the clipboard")
	fs.BoolVar(&io.fromClipboard, "from-clip", false, "read the input image from the clipboard (alias)")
	fs.BoolVar(&io.toClipboard, "to-clipboard", false, "copy the result to the clipboard")
	fs.BoolVar(&io.toClipboard, "to-clip", false, "copy the result to the clipboard (alias)")
}

var ioBoolFlags = []string{"from-clipboard", "from-clip", "to-clipboard", "to-clip"}

// withIOFlags lists the imageIO flag names plus the command's own.
func withIOFlags(extra ...string) []string {
	names := []string{"file", "output"}
	names = append(names, ioBoolFlags...)
	return append(names, extra...)
}

func (io *imageIO) validate() error {
	if io.fromClipboard {
		if io.output == "" {
			if io.file == "" {
				return fmt.Errorf("output file is required when reading from the clipboard")
			}
			io.output = io.file
		}
		return nil
	}
	if io.file == "" {
		return fmt.Errorf("input file is required")
	}
	if io.output == "" {
		io.output = io.file
	}
	return nil
}

// load returns the input image as a mutable RGBA copy.
func (io *imageIO) load() (*image.RGBA, error) {
	var src image.Image
	if io.fromClipboard {
		img, err := readClipboardFn()
		if err != nil {
			return nil, fmt.Errorf("read clipboard image: %w", err)
		}
		src = img
	} else {
		img, err := decodeFile(io.file)
		if err != nil {
			return nil, err
		}
		src = img
	}
	return toRGBA(src), nil
}

// save writes img to the output path and, when requested, to the clipboard.
func (io *imageIO) save(img *image.RGBA, r *root) error {
	saved, err := writePNG(resolveOutput(io.output, r.saveDir()), img)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "saved %s\n", saved)
	r.notifySave(saved)
	if io.toClipboard {
		if err := writeClipboardFn(img); err != nil {
			return fmt.Errorf("copy PNG to clipboard: %w", err)
		}
		detail := filepath.Base(saved)
		fmt.Fprintf(os.Stderr, "copied %s to clipboard\n", detail)
		r.notifyCopy(detail)
	}
	return nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(f)
	if cerr := f.Close(); cerr != nil {
		log.Printf("error closing %q: %v", path, cerr)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	return rgba
}

// resolveOutput places bare file names in the configured save directory.
func resolveOutput(path, saveDir string) string {
	if saveDir == "" || filepath.IsAbs(path) || strings.ContainsRune(path, filepath.Separator) {
		return path
	}
	return filepath.Join(saveDir, path)
}

// writePNG encodes img to path and returns the absolute path written.
func writePNG(path string, img image.Image) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs, nil
	}
	return path, nil
}

func expectInts(args []string, n int, what string) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires %d integer arguments", what, n)
	}
	return parseInts(args)
}

func parseInts(args []string) ([]int, error) {
	vals := make([]int, len(args))
	for i, raw := range args {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", raw)
		}
		vals[i] = v
	}
	return vals, nil
}

func pointsFrom(vals []int) ([]image.Point, error) {
	if len(vals) == 0 || len(vals)%2 != 0 {
		return nil, errors.New("points must be given as x y pairs")
	}
	pts := make([]image.Point, 0, len(vals)/2)
	for i := 0; i < len(vals); i += 2 {
		pts = append(pts, image.Pt(vals[i], vals[i+1]))
	}
	return pts, nil
}

// splitArgs separates known flags from positionals so negative coordinates
// and flags after the tool name both work.
func splitArgs(args []string, names, bools []string) ([]string, []string, error) {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = false
	}
	for _, n := range bools {
		known[n] = true
	}
	var flags []string
	var positionals []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positionals = append(positionals, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			positionals = append(positionals, arg)
			continue
		}
		name := strings.TrimLeft(arg, "-")
		parts := strings.SplitN(name, "=", 2)
		base := strings.ToLower(parts[0])
		isBool, ok := known[base]
		if !ok {
			positionals = append(positionals, arg)
			continue
		}
		// Normalise to single dash form for the flag parser.
		norm := "-" + base
		if len(parts) == 2 {
			flags = append(flags, norm+"="+parts[1])
			continue
		}
		if isBool {
			flags = append(flags, norm)
			continue
		}
		if i+1 >= len(args) {
			return nil, nil, fmt.Errorf("flag %s requires a value", arg)
		}
		flags = append(flags, norm, args[i+1])
		i++
	}
	return flags, positionals, nil
}
