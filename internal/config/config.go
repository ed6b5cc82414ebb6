package config

import (
	"fmt"
	"strings"

	"github.com/example/paintbucket/internal/paint"
)

// Notify holds notification settings.
type Notify struct {
	Fill bool
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Color      string
	Background string
	Width      int
	SaveDir    string
	Notify     Notify
	Palette    []paint.PaletteColor
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Color:      "", // Empty falls back to Env/Default
		Background: "white",
		Width:      paint.DefaultWidth(),
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	if c.Color != "" {
		fmt.Fprintf(&sb, "color = %s\n", c.Color)
	}
	if c.Background != "" {
		fmt.Fprintf(&sb, "background = %s\n", c.Background)
	}
	if c.Width > 0 {
		fmt.Fprintf(&sb, "width = %d\n", c.Width)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "fill = %v\n", c.Notify.Fill)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)

	if len(c.Palette) > 0 {
		sb.WriteString("\n[palette]\n")
		for _, entry := range c.Palette {
			fmt.Fprintf(&sb, "%s = %s\n", entry.Name, paint.FormatColor(entry.Color))
		}
	}

	return sb.String()
}

// ApplyPalette registers the configured colours with the drawing palette.
func (c *Config) ApplyPalette() {
	for _, entry := range c.Palette {
		paint.EnsurePaletteColor(entry.Color, entry.Name)
	}
}
