package cli

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/shade/internal/config"
)

func TestApplyFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String(flagThemesFile, "", "")
	fs.String(flagPrefix, "jtjs", "")
	fs.Float64(flagAmount, 0.1, "")
	fs.Bool(flagStrict, false, "")
	fs.String(flagSelector, ":root", "")

	if err := fs.Parse([]string{"--prefix", "app", "--amount", "0.3", "--strict"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	cfg := config.Config{Prefix: "env", Amount: 0.2, Selector: ".from-env", ThemesFile: "/env/themes.json"}
	if err := applyFlags(fs, &cfg); err != nil {
		t.Fatalf("applyFlags() error = %v", err)
	}

	want := config.Config{
		Prefix:     "app",
		Amount:     0.3,
		Strict:     true,
		Selector:   ".from-env",
		ThemesFile: "/env/themes.json",
	}
	if cfg != want {
		t.Errorf("applyFlags() = %+v, want %+v", cfg, want)
	}
}
