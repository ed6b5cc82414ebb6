package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/paintbucket/internal/paint"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var currentSection string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			currentSection = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")))
			continue
		}

		// Key = Value or Key: Value
		var parts []string
		if strings.Contains(line, "=") {
			parts = strings.SplitN(line, "=", 2)
		} else if strings.Contains(line, ":") {
			parts = strings.SplitN(line, ":", 2)
		} else {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		var err error
		switch currentSection {
		case "":
			err = setRootField(cfg, key, value)
		case "notify":
			err = setNotifyField(&cfg.Notify, key, value)
		case "palette":
			err = addPaletteEntry(cfg, key, value)
		}
		if err != nil {
			section := currentSection
			if section == "" {
				section = "root"
			}
			return nil, fmt.Errorf("line %d in section [%s]: %w", lineNo, section, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "color":
		if _, err := paint.ParseColor(value); err != nil {
			return err
		}
		cfg.Color = value
	case "background":
		if _, err := paint.ParseColor(value); err != nil {
			return err
		}
		cfg.Background = value
	case "width":
		w, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid width %q: %w", value, err)
		}
		if w < 1 {
			return fmt.Errorf("width must be positive, got %d", w)
		}
		cfg.Width = w
	case "save_dir":
		cfg.SaveDir = value
	}
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "fill":
		n.Fill = b
	case "save":
		n.Save = b
	case "copy":
		n.Copy = b
	}
	return nil
}

func addPaletteEntry(cfg *Config, name, value string) error {
	if name == "" {
		return fmt.Errorf("palette entry needs a name")
	}
	col, err := paint.ParseColor(value)
	if err != nil {
		return fmt.Errorf("invalid color for %s: %w", name, err)
	}
	for i, entry := range cfg.Palette {
		if strings.EqualFold(entry.Name, name) {
			cfg.Palette[i].Color = col
			return nil
		}
	}
	cfg.Palette = append(cfg.Palette, paint.PaletteColor{Name: name, Color: col})
	return nil
}
