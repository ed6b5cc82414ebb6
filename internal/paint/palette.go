package paint

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/colornames"
)

const (
	defaultColorIndex = 0
	defaultWidth      = 4
)

// PaletteColor is a named drawing colour.
type PaletteColor struct {
	Name  string
	Color color.RGBA
}

var (
	paletteMu sync.RWMutex
	palette   = []color.RGBA{
		{0, 0, 0, 255},
		{255, 255, 255, 255},
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
		{0, 255, 255, 255},
		{255, 0, 255, 255},
		{128, 0, 0, 255},
		{0, 128, 0, 255},
		{0, 0, 128, 255},
		{128, 128, 0, 255},
		{0, 128, 128, 255},
		{128, 0, 128, 255},
		{192, 192, 192, 255},
		{128, 128, 128, 255},
	}
	paletteNames = []string{
		"Black",
		"White",
		"Red",
		"Lime",
		"Blue",
		"Yellow",
		"Cyan",
		"Magenta",
		"Maroon",
		"Green",
		"Navy",
		"Olive",
		"Teal",
		"Purple",
		"Silver",
		"Gray",
	}
)

var (
	widthsMu sync.RWMutex
	widths   = []int{1, 2, 4, 8, 16, 32}
)

// DefaultColorIndex returns the palette index used when no colour is given.
func DefaultColorIndex() int { return defaultColorIndex }

// DefaultWidth returns the default brush width in pixels.
func DefaultWidth() int { return defaultWidth }

// DefaultWidthIndex returns the index of the default brush width.
func DefaultWidthIndex() int {
	widthsMu.RLock()
	defer widthsMu.RUnlock()
	for idx, w := range widths {
		if w == defaultWidth {
			return idx
		}
	}
	return 0
}

// PaletteColors returns palette entries annotated with their display names.
func PaletteColors() []PaletteColor {
	paletteMu.RLock()
	defer paletteMu.RUnlock()
	out := make([]PaletteColor, len(palette))
	for i := range palette {
		out[i] = PaletteColor{Name: paletteNames[i], Color: palette[i]}
	}
	return out
}

// EnsurePaletteColor makes sure col is present in the palette and returns its
// index. A named entry for an existing colour renames it only when it was
// previously unnamed.
func EnsurePaletteColor(col color.RGBA, name string) int {
	paletteMu.Lock()
	defer paletteMu.Unlock()
	for idx, existing := range palette {
		if existing == col {
			if name != "" && paletteNames[idx] == "" {
				paletteNames[idx] = name
			}
			return idx
		}
	}
	if name == "" {
		name = FormatColor(col)
	}
	palette = append(palette, col)
	paletteNames = append(paletteNames, name)
	return len(palette) - 1
}

// WidthOptions returns a copy of the available brush widths.
func WidthOptions() []int {
	widthsMu.RLock()
	defer widthsMu.RUnlock()
	out := make([]int, len(widths))
	copy(out, widths)
	return out
}

// EnsureWidth makes sure width is included in the options and returns its index.
func EnsureWidth(width int) int {
	if width < 1 {
		width = 1
	}
	widthsMu.Lock()
	defer widthsMu.Unlock()
	for idx, existing := range widths {
		if existing == width {
			return idx
		}
	}
	widths = append(widths, width)
	sort.Ints(widths)
	for idx, existing := range widths {
		if existing == width {
			return idx
		}
	}
	return 0
}

// ParseColor resolves a palette name, an SVG colour keyword or a #RRGGBB /
// #RRGGBBAA hex value.
func ParseColor(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	for _, entry := range PaletteColors() {
		if strings.EqualFold(entry.Name, spec) {
			return entry.Color, nil
		}
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if strings.HasPrefix(spec, "#") && (len(spec) == 7 || len(spec) == 9) {
		val, err := strconv.ParseUint(spec[1:], 16, 32)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		if len(spec) == 7 {
			return color.RGBA{R: uint8(val >> 16), G: uint8(val >> 8), B: uint8(val), A: 255}, nil
		}
		// Hex alpha is straight; color.RGBA is alpha-premultiplied.
		straight := color.NRGBA{R: uint8(val >> 24), G: uint8(val >> 16), B: uint8(val >> 8), A: uint8(val)}
		return color.RGBAModel.Convert(straight).(color.RGBA), nil
	}
	return color.RGBA{}, fmt.Errorf("invalid color %q", s)
}

// FormatColor renders col as #RRGGBB, or as straight-alpha #RRGGBBAA when it
// is not opaque.
func FormatColor(col color.RGBA) string {
	if col.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", col.R, col.G, col.B)
	}
	n := color.NRGBAModel.Convert(col).(color.NRGBA)
	return fmt.Sprintf("#%02X%02X%02X%02X", n.R, n.G, n.B, n.A)
}
