package colour

import (
	"strings"
	"testing"
)

func TestSwatch(t *testing.T) {
	t.Cleanup(ResetColourOutput)

	SetColourOutput(true)
	got := Swatch("#ff8000", 4)
	if !strings.HasPrefix(got, "\033[48;2;255;128;0m") {
		t.Errorf("Swatch() = %q, want truecolour background prefix", got)
	}
	if !strings.HasSuffix(got, "    "+ansiReset) {
		t.Errorf("Swatch() = %q, want 4 spaces then reset", got)
	}

	SetColourOutput(false)
	if got := Swatch("#ff8000", 0); got != strings.Repeat(" ", defaultWidth) {
		t.Errorf("Swatch() with colour disabled = %q, want plain padding", got)
	}
}

func TestColourise(t *testing.T) {
	t.Cleanup(ResetColourOutput)

	SetColourOutput(false)
	if got := Colourise("#fff", "text"); got != "text" {
		t.Errorf("Colourise() = %q, want plain text", got)
	}

	SetColourOutput(true)
	if got := Colourise("#fff", "text"); got != "\033[38;2;255;255;255mtext"+ansiReset {
		t.Errorf("Colourise() = %q", got)
	}
}

func TestSupportsANSIColours_NoColor(t *testing.T) {
	ResetColourOutput()
	t.Setenv("NO_COLOR", "1")

	if SupportsANSIColours() {
		t.Error("SupportsANSIColours() = true with NO_COLOR set")
	}
}
