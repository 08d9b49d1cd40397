package colour

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"golang.org/x/term"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

var colourOverride atomic.Pointer[bool]

// SetColourOutput forces ANSI colour output on or off, bypassing detection.
func SetColourOutput(enabled bool) {
	colourOverride.Store(&enabled)
}

// ResetColourOutput restores automatic detection.
func ResetColourOutput() {
	colourOverride.Store(nil)
}

// SupportsANSIColours reports whether swatches should be rendered.
// Honours SetColourOutput, then NO_COLOR, then whether stdout is a terminal.
func SupportsANSIColours() bool {
	if forced := colourOverride.Load(); forced != nil {
		return *forced
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Swatch returns a solid block of the given width filled with the colour.
// Returns spaces when colour output is disabled so columns still line up.
func Swatch(hex string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	block := strings.Repeat(" ", width)
	if !SupportsANSIColours() {
		return block
	}

	r, g, b := HexToRGB(hex).Bytes()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, r, g, b, ansiSuffix) + block + ansiReset
}

// Colourise returns text drawn in the given colour if colour output is enabled.
func Colourise(hex, text string) string {
	if !SupportsANSIColours() {
		return text
	}

	r, g, b := HexToRGB(hex).Bytes()
	return fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, r, g, b, ansiSuffix) + text + ansiReset
}
