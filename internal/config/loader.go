package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	localName = ".paintbucketrc"
	appDir    = "paintbucket"
	fileName  = "config.rc"
)

// Loader finds and reads the configuration file.
type Loader struct {
	// Version "dev" also searches the working directory.
	Version string
	// OverridePath is tried first when set.
	OverridePath string
}

func NewLoader(version string, overridePath string) *Loader {
	return &Loader{Version: version, OverridePath: overridePath}
}

// Load parses the first existing candidate file, or returns defaults when
// there is none.
func (l *Loader) Load() (*Config, error) {
	path := l.GetConfigPath()
	if path == "" {
		return New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// GetConfigPath returns the first candidate that exists, or "".
func (l *Loader) GetConfigPath() string {
	for _, path := range l.candidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func (l *Loader) candidates() []string {
	var paths []string
	if l.OverridePath != "" {
		paths = append(paths, l.OverridePath)
	}
	if l.Version == "dev" {
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, localName))
		}
	}
	if p := DefaultPath(); p != "" {
		paths = append(paths, p)
	}
	return paths
}

// DefaultPath is where a new configuration file is written:
// $XDG_CONFIG_HOME/paintbucket/config.rc, falling back to ~/.config.
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appDir, fileName)
}
