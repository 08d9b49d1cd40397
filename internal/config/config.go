// Package config resolves shade settings from defaults and the environment.
// Command-line flags are applied on top by the cli package.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jmylchreest/shade/internal/colour"
	"github.com/jmylchreest/shade/internal/theme"
)

// Environment variable names.
const (
	EnvThemesFile  = "SHADE_THEMES_FILE"
	EnvTheme       = "SHADE_THEME"
	EnvCSSPrefix   = "SHADE_CSS_PREFIX"
	EnvCSSSelector = "SHADE_CSS_SELECTOR"
	EnvAmount      = "SHADE_AMOUNT"
	EnvStrict      = "SHADE_STRICT"
)

// Config holds resolved settings.
type Config struct {
	// ThemesFile is an optional JSON file of additional themes.
	ThemesFile string

	// ThemeName is the theme selected when none is given explicitly.
	ThemeName string

	// Prefix is the CSS custom property prefix (--<prefix>-theme-<role>).
	Prefix string

	// Selector is the CSS selector variables are declared under.
	Selector string

	// Amount is the lightness delta for derived variants.
	Amount float64

	// Strict rejects malformed colours instead of degrading them to black.
	Strict bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		ThemeName: theme.NameDark,
		Prefix:    theme.DefaultPrefix,
		Selector:  theme.DefaultSelector,
		Amount:    colour.DefaultAdjustAmount,
	}
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
	lookup func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default().
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		lookup: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnv applies SHADE_* environment variables on Build.
func (b *Builder) WithEnv() *Builder {
	b.useEnv = true
	return b
}

// WithLookup overrides how environment variables are read (useful for testing).
func (b *Builder) WithLookup(lookup func(string) (string, bool)) *Builder {
	if lookup != nil {
		b.lookup = lookup
	}
	return b
}

// Build resolves the configuration.
func (b *Builder) Build() (Config, error) {
	config := b.config
	if !b.useEnv {
		return config, nil
	}

	if v, ok := b.env(EnvThemesFile); ok {
		config.ThemesFile = v
	}
	if v, ok := b.env(EnvTheme); ok {
		config.ThemeName = v
	}
	if v, ok := b.lookup(EnvCSSPrefix); ok {
		// An explicitly empty prefix is allowed.
		config.Prefix = strings.TrimSpace(v)
	}
	if v, ok := b.env(EnvCSSSelector); ok {
		config.Selector = v
	}
	if v, ok := b.env(EnvAmount); ok {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvAmount, err)
		}
		config.Amount = amount
	}
	if v, ok := b.env(EnvStrict); ok {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvStrict, err)
		}
		config.Strict = strict
	}

	return config, nil
}

// env returns a trimmed, non-empty environment value.
func (b *Builder) env(key string) (string, bool) {
	v, ok := b.lookup(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}
