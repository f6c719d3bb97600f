// Package prefs handles dexter UI preferences persistence.
// Preferences are stored in ~/.config/dexter/prefs.toml. Only presentation
// settings live here; catalog filters and pages are never saved.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/dexter/internal/config"
)

// Prefs holds user preferences for dexter.
type Prefs struct {
	Theme string `toml:"theme"`
}

const (
	defaultPrefsPath = "~/.config/dexter/prefs.toml"
	defaultTheme     = "Nightfox"
)

// Defaults returns the preferences used when nothing is saved.
func Defaults() Prefs {
	return Prefs{Theme: defaultTheme}
}

// File binds preferences to a path on disk. The zero value uses the default
// location.
type File struct {
	Path string
}

// Load reads preferences, falling back to defaults on any problem. A broken
// prefs file must never keep the catalog from opening.
func (f File) Load() Prefs {
	p := Defaults()
	resolved, err := f.resolve()
	if err != nil {
		return p
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		return p
	}
	if err := toml.Unmarshal(data, &p); err != nil {
		return Defaults()
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	return p
}

// Save writes preferences, creating directories as needed.
func (f File) Save(p Prefs) error {
	resolved, err := f.resolve()
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// SaveTheme updates only the theme, keeping whatever else is stored.
func (f File) SaveTheme(name string) error {
	p := f.Load()
	p.Theme = name
	return f.Save(p)
}

func (f File) resolve() (string, error) {
	if strings.TrimSpace(f.Path) == "" {
		return config.ExpandPath(defaultPrefsPath)
	}
	return config.ExpandPath(f.Path)
}
