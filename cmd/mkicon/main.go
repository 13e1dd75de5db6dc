// mkicon writes the 512×512 placeholder app icon used as the splash source.
// Usage: go run ./cmd/mkicon [output.png]
package main

import (
	"fmt"
	"os"

	"github.com/Mavwarf/splashgen/internal/config"
	"github.com/Mavwarf/splashgen/internal/icon"
	"github.com/Mavwarf/splashgen/internal/splash"
)

func main() {
	out := config.DefaultIconPath
	if len(os.Args) > 1 {
		out = os.Args[1]
	}
	if err := splash.WritePNG(out, icon.Draw(512)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Icon written to %s\n", out)
}
