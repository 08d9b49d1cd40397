// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/shade/internal/cli"
	"github.com/jmylchreest/shade/internal/colour"
)

// run executes a fresh root command with colour swatches disabled.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(colour.ResetColourOutput)

	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(append([]string{"--no-colour"}, args...))

	err := rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "hex to all",
			args: []string{"convert", "#604620"},
			want: []string{"#604620\n", "rgb(0.3765, 0.2745, 0.1255)\n", "hsl(0.0990, 0.5000, 0.2510)\n"},
		},
		{
			name: "hsl to hex",
			args: []string{"convert", "--from", "hsl", "--to", "hex", "0.1", "0.2", "0.2"},
			want: []string{"#3d3528\n"},
		},
		{
			name: "rgb to hsl",
			args: []string{"convert", "--to", "hsl", "0.25", "0.5", "0.5"},
			want: []string{"hsl(0.5000, 0.3333, 0.3750)\n"},
		},
		{
			name: "shorthand json",
			args: []string{"convert", "--to", "hex", "--output", "json", "#abc"},
			want: []string{`"hex": "#aabbcc"`},
		},
		{
			name: "malformed degrades to black",
			args: []string{"convert", "--to", "hex", "#12345"},
			want: []string{"#000000\n"},
		},
		{
			name: "out of range rgb clamps",
			args: []string{"convert", "--to", "hex", "2", "0.5", "0"},
			want: []string{"#ff7f00\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestConvertCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "strict hex", args: []string{"--strict", "convert", "#12345"}, wantErr: colour.ErrInvalidColourFormat},
		{name: "strict channel", args: []string{"--strict", "convert", "1.5", "0", "0"}, wantErr: colour.ErrInvalidColourFormat},
		{name: "not a number", args: []string{"convert", "a", "b", "c"}, wantMsg: "invalid channel"},
		{name: "bad from", args: []string{"convert", "--from", "lab", "1", "2", "3"}, wantMsg: "unsupported input format"},
		{name: "bad to", args: []string{"convert", "--to", "cmyk", "#fff"}, wantMsg: "unsupported output format"},
		{name: "hex arg count", args: []string{"convert", "--from", "hex", "1", "2"}, wantMsg: "exactly 1 argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil {
				t.Fatal("Execute() error = nil, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Execute() error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestAdjustCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "lighten", args: []string{"lighten", "#292929"}, want: "#424242\n"},
		{name: "darken", args: []string{"darken", "#292929"}, want: "#0f0f0f\n"},
		{name: "lighten to white", args: []string{"--amount", "1", "lighten", "#292929"}, want: "#ffffff\n"},
		{name: "darken to black", args: []string{"darken", "--amount", "1", "#292929"}, want: "#000000\n"},
		{name: "negative darken", args: []string{"darken", "--amount=-1", "#292929"}, want: "#ffffff\n"},
		{name: "multiple", args: []string{"lighten", "#292929", "#333"}, want: "#424242\n#4c4c4c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestContrastCommand(t *testing.T) {
	out, _, err := run(t, "contrast", "#000", "#fff")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "21.00:1  AA pass  AAA pass\n" {
		t.Errorf("output = %q", out)
	}

	out, _, err = run(t, "contrast", "#777", "#fff")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "4.48:1  AA fail  AAA fail\n" {
		t.Errorf("output = %q", out)
	}
}

func TestThemeListCommand(t *testing.T) {
	t.Setenv("SHADE_THEME", "")

	out, _, err := run(t, "theme", "list")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{"NAME", "jtjs-light", "jtjs-parchment"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "jtjs-dark       *") {
		t.Errorf("default theme should be marked current:\n%s", out)
	}
}

func TestThemeShowCommand(t *testing.T) {
	out, _, err := run(t, "theme", "show", "jtjs-dark")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.HasPrefix(out, "jtjs-dark\n") {
		t.Errorf("output should start with the theme name:\n%s", out)
	}

	rows := map[string][]string{}
	for _, line := range strings.Split(out, "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			rows[fields[0]] = fields
		}
	}

	want := []string{"background", "#292929", "#0f0f0f", "#424242"}
	if got := rows["background"]; strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("background row = %v, want %v", got, want)
	}
	if _, ok := rows["infoText"]; !ok {
		t.Errorf("output missing infoText row:\n%s", out)
	}
}

func TestThemeCSSCommand(t *testing.T) {
	out, _, err := run(t, "theme", "css", "--prefix", "app", "jtjs-light")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"/* jtjs-light */\n:root {\n",
		"  --app-theme-background: #FEFEFE;\n",
		"  --app-theme-background-darkened: #e4e4e4;\n",
		"  --app-theme-text-lightened: #4c4c4c;\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestThemeCSSCommand_AllToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.css")

	out, _, err := run(t, "theme", "css", "--all", "--selector", "ignored", "--output", path)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty when writing to file", out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	for _, name := range []string{"jtjs-light", "jtjs-dark", "jtjs-parchment"} {
		if !strings.Contains(string(data), `[data-theme="`+name+`"] {`) {
			t.Errorf("css missing block for %s", name)
		}
	}
}

func TestThemesFile(t *testing.T) {
	dir := t.TempDir()
	exported := filepath.Join(dir, "exported.json")

	if _, _, err := run(t, "theme", "export", "--output", exported, "jtjs-parchment"); err != nil {
		t.Fatalf("export error = %v", err)
	}

	custom := filepath.Join(dir, "custom.json")
	if err := os.WriteFile(custom, []byte(`{"name": "ocean", "background": "#003366", "text": "#eee"}`), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	out, _, err := run(t, "theme", "css", "--themes-file", custom, "--theme", "ocean")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "--jtjs-theme-background: #003366;") {
		t.Errorf("custom theme not rendered:\n%s", out)
	}
	if strings.Contains(out, "--jtjs-theme-accent") {
		t.Errorf("unset roles should not be published:\n%s", out)
	}

	out, _, err = run(t, "theme", "validate", exported)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "1 valid theme(s)") {
		t.Errorf("validate output = %q", out)
	}
}

func TestThemeCommand_Errors(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(bad, []byte(`{"name": "bad", "text": "white"}`), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown theme arg", args: []string{"theme", "css", "nope"}, wantMsg: `unknown theme "nope"`},
		{name: "unknown theme flag", args: []string{"theme", "list", "--theme", "nope"}, wantMsg: `unknown theme "nope"`},
		{name: "unknown export", args: []string{"theme", "export", "nope"}, wantMsg: `unknown theme "nope"`},
		{name: "validate bad colour", args: []string{"theme", "validate", bad}, wantMsg: "invalid colour format"},
		{name: "strict themes file", args: []string{"--strict", "--themes-file", bad, "theme", "list"}, wantMsg: "invalid colour format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Execute() error = %v, want message containing %q", err, tt.wantMsg)
			}
		})
	}
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "--verbose", "lighten", "#292929")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "adjusted colour") {
		t.Errorf("stderr missing debug log:\n%s", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "shade ") {
		t.Errorf("output = %q", out)
	}
}
