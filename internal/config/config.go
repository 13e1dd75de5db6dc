package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Mavwarf/splashgen/internal/paths"
	"github.com/Mavwarf/splashgen/internal/splash"
)

// Built-in defaults. Paths are relative to the working directory.
const (
	DefaultBackground = "#FFF6E6" // peach theme color
	DefaultIconPath   = "static/icons/icon-512x512.png"
	DefaultOutputDir  = "static/splash"
	DefaultIconScale  = splash.DefaultScale
	DefaultWorkers    = 1
)

// Log backends for the generation history.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// DefaultSizes is the iOS splash screen table, portrait, in generation order.
var DefaultSizes = []splash.Spec{
	splash.NewSpec(2048, 2732, `12.9" iPad Pro`),
	splash.NewSpec(1668, 2388, `11" iPad Pro`),
	splash.NewSpec(1536, 2048, `9.7" iPad`),
	splash.NewSpec(1290, 2796, "iPhone 14 Pro Max"),
	splash.NewSpec(1179, 2556, "iPhone 14 Pro"),
	splash.NewSpec(1170, 2532, "iPhone 13/14"),
	splash.NewSpec(1125, 2436, "iPhone X/XS/11 Pro"),
	splash.NewSpec(1284, 2778, "iPhone 12/13 Pro Max"),
	splash.NewSpec(750, 1334, "iPhone 8/SE"),
}

// Options holds settings parsed from the "config" key.
type Options struct {
	Background string  `json:"background,omitempty"`
	Icon       string  `json:"icon,omitempty"`
	OutputDir  string  `json:"output_dir,omitempty"`
	IconScale  float64 `json:"icon_scale,omitempty"`
	Workers    int     `json:"workers,omitempty"`
	Log        bool    `json:"log,omitempty"`
	LogBackend string  `json:"log_backend,omitempty"`
}

// Config holds the generation options and the device table. Sizes is not
// read from JSON; the device table is fixed.
type Config struct {
	Options Options       `json:"config"`
	Sizes   []splash.Spec `json:"-"`

	// Source is the file the config was read from, or "" for built-in defaults.
	Source string `json:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Options: Options{
			Background: DefaultBackground,
			Icon:       DefaultIconPath,
			OutputDir:  DefaultOutputDir,
			IconScale:  DefaultIconScale,
			Workers:    DefaultWorkers,
			LogBackend: BackendFile,
		},
		Sizes: append([]splash.Spec(nil), DefaultSizes...),
	}
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (c *Config) UnmarshalJSON(data []byte) error {
	*c = Default()
	type Alias Config
	return json.Unmarshal(data, (*Alias)(c))
}

// Load reads the config file. It tries, in order:
//  1. explicitPath (if non-empty; must exist)
//  2. splash-config.json in the working directory
//  3. splash-config.json next to the running binary
//  4. DataDir()/splash-config.json
//
// When no file is found the built-in defaults are returned.
func Load(explicitPath string) (Config, error) {
	if explicitPath != "" {
		return readConfig(explicitPath)
	}

	candidates := []string{paths.ConfigFileName}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), paths.ConfigFileName))
	}
	candidates = append(candidates, filepath.Join(paths.DataDir(), paths.ConfigFileName))

	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return readConfig(p)
		}
	}
	return Default(), nil
}

func readConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Source = path
	return cfg, nil
}

// Validate checks option values and every entry of the device table.
// Problems are reported as *splash.ConfigError; all of them are joined.
func (c Config) Validate() error {
	var errs []error
	if _, err := ParseHexColor(c.Options.Background); err != nil {
		errs = append(errs, err)
	}
	if c.Options.Icon == "" {
		errs = append(errs, &splash.ConfigError{Field: "icon", Reason: "empty path"})
	}
	if c.Options.OutputDir == "" {
		errs = append(errs, &splash.ConfigError{Field: "output_dir", Reason: "empty path"})
	}
	if s := c.Options.IconScale; s <= 0 || s > 1 {
		errs = append(errs, &splash.ConfigError{Field: "icon_scale", Reason: fmt.Sprintf("%g not in (0, 1]", s)})
	}
	if c.Options.Workers < 1 {
		errs = append(errs, &splash.ConfigError{Field: "workers", Reason: fmt.Sprintf("%d must be at least 1", c.Options.Workers)})
	}
	switch c.Options.LogBackend {
	case BackendFile, BackendSQLite:
	default:
		errs = append(errs, &splash.ConfigError{Field: "log_backend", Reason: fmt.Sprintf("%q is not %q or %q", c.Options.LogBackend, BackendFile, BackendSQLite)})
	}

	seen := make(map[string]bool, len(c.Sizes))
	for _, s := range c.Sizes {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if seen[s.Name] {
			errs = append(errs, &splash.ConfigError{Field: "name", Reason: fmt.Sprintf("duplicate output %s", s.Name)})
		}
		seen[s.Name] = true
	}
	return errors.Join(errs...)
}

// BackgroundColor returns the parsed background color.
func (c Config) BackgroundColor() (color.NRGBA, error) {
	return ParseHexColor(c.Options.Background)
}

// ParseHexColor parses "#RRGGBB" or "#RGB" (leading '#' optional) into an
// opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, &splash.ConfigError{Field: "background", Reason: fmt.Sprintf("%q is not a #RRGGBB color", s)}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, &splash.ConfigError{Field: "background", Reason: fmt.Sprintf("%q is not a #RRGGBB color", s)}
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
