// Package cli provides the command-line interface for shade.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/config"
	"github.com/jmylchreest/shade/internal/theme"
	"github.com/jmylchreest/shade/internal/version"
)

// app holds state shared by every command of one root command tree.
type app struct {
	verbose  bool
	quiet    bool
	noColour bool

	config config.Config
	logger hclog.Logger
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{
		config: config.Default(),
		logger: hclog.NewNullLogger(),
	}

	rootCmd := &cobra.Command{
		Use:   "shade",
		Short: "Convert colours and publish theme palettes",
		Long: `shade converts colours between hex, RGB and HSL, derives lightened and
darkened variants, and renders named theme palettes as CSS custom properties.

RGB and HSL channels are normalised to 0-1; hue is a fraction of a full turn.
Out-of-range values are clamped and malformed hex colours become black unless
--strict is given.`,
		Version:           version.Short(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	flags.BoolVar(&a.noColour, "no-colour", false, "disable colour swatches")
	flags.String(flagThemesFile, "", "JSON file with additional themes (env "+config.EnvThemesFile+")")
	flags.String(flagPrefix, theme.DefaultPrefix, "CSS variable prefix (env "+config.EnvCSSPrefix+")")
	flags.Float64(flagAmount, colour.DefaultAdjustAmount, "lightness delta for lighten/darken (env "+config.EnvAmount+")")
	flags.Bool(flagStrict, false, "reject malformed colours instead of clamping (env "+config.EnvStrict+")")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(a.newConvertCmd())
	rootCmd.AddCommand(a.newLightenCmd(), a.newDarkenCmd())
	rootCmd.AddCommand(a.newContrastCmd())
	rootCmd.AddCommand(a.newThemeCmd())

	return rootCmd
}

// setup resolves configuration and logging before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)

	cfg, err := config.NewBuilder().WithEnv().Build()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(cmd.Flags(), &cfg); err != nil {
		return err
	}
	a.config = cfg

	if a.noColour {
		colour.SetColourOutput(false)
	}

	a.logger.Debug("configuration resolved",
		"theme", cfg.ThemeName,
		"themes_file", cfg.ThemesFile,
		"prefix", cfg.Prefix,
		"amount", cfg.Amount,
		"strict", cfg.Strict,
	)
	return nil
}

// newLogger configures the logger based on the verbose and quiet flags.
func newLogger(out io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "shade",
		Output: out,
		Level:  level,
	})
}

// newRegistry builds a registry holding the built-in themes plus any from the
// configured themes file, with the configured theme selected.
func (a *app) newRegistry() (*theme.Registry, error) {
	registry := theme.New(
		theme.WithLogger(a.logger.Named("registry")),
		theme.WithSink(theme.LogSink{Logger: a.logger.Named("sink")}),
		theme.WithPrefix(a.config.Prefix),
		theme.WithAdjustAmount(a.config.Amount),
	)

	for _, t := range theme.Builtins() {
		registry.Register(t, true)
	}

	if a.config.ThemesFile != "" {
		themes, err := theme.LoadFile(a.config.ThemesFile, a.config.Strict)
		if err != nil {
			return nil, err
		}
		for _, t := range themes {
			if !registry.Register(t, false) {
				a.logger.Warn("skipping duplicate theme", "theme", t.Name, "file", a.config.ThemesFile)
			}
		}
	}

	if a.config.ThemeName != "" && !registry.Change(a.config.ThemeName) {
		return nil, fmt.Errorf("unknown theme %q", a.config.ThemeName)
	}

	return registry, nil
}

// checkHex enforces strict mode for a hex argument.
func (a *app) checkHex(hex string) error {
	if !a.config.Strict {
		return nil
	}
	if _, err := colour.ParseHex(hex); err != nil {
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
