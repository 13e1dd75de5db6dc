package splash

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Spec describes one splash screen: its exact pixel size, the output file
// name and the device it targets. Device is informational only.
type Spec struct {
	Width  int
	Height int
	Name   string
	Device string
}

// NewSpec returns a Spec named apple-splash-{width}-{height}.png.
func NewSpec(width, height int, device string) Spec {
	return Spec{
		Width:  width,
		Height: height,
		Name:   FileName(width, height),
		Device: device,
	}
}

// FileName returns the output file name for a width×height splash screen.
func FileName(width, height int) string {
	return fmt.Sprintf("apple-splash-%d-%d.png", width, height)
}

// Validate checks that the spec has positive dimensions and a plain file
// name that stays inside the output directory.
func (s Spec) Validate() error {
	if s.Width <= 0 {
		return &ConfigError{Field: "width", Reason: fmt.Sprintf("%d is not positive (%s)", s.Width, s.Name)}
	}
	if s.Height <= 0 {
		return &ConfigError{Field: "height", Reason: fmt.Sprintf("%d is not positive (%s)", s.Height, s.Name)}
	}
	if s.Name == "" {
		return &ConfigError{Field: "name", Reason: fmt.Sprintf("empty for %dx%d", s.Width, s.Height)}
	}
	if s.Name != filepath.Base(s.Name) || strings.ContainsAny(s.Name, `/\`) || s.Name == "." || s.Name == ".." {
		return &ConfigError{Field: "name", Reason: fmt.Sprintf("%q must be a plain file name", s.Name)}
	}
	return nil
}

func (s Spec) String() string {
	return fmt.Sprintf("%s (%dx%d)", s.Name, s.Width, s.Height)
}
