package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/shade/internal/config"
)

// Flags that override config values when set explicitly.
const (
	flagThemesFile = "themes-file"
	flagPrefix     = "prefix"
	flagAmount     = "amount"
	flagStrict     = "strict"
	flagSelector   = "selector"
	flagTheme      = "theme"
)

// applyFlags copies explicitly set flags over cfg. Unset flags leave the
// environment or default value in place.
func applyFlags(fs *pflag.FlagSet, cfg *config.Config) error {
	var err error

	if fs.Changed(flagThemesFile) {
		if cfg.ThemesFile, err = fs.GetString(flagThemesFile); err != nil {
			return flagError(flagThemesFile, err)
		}
	}
	if fs.Changed(flagPrefix) {
		if cfg.Prefix, err = fs.GetString(flagPrefix); err != nil {
			return flagError(flagPrefix, err)
		}
	}
	if fs.Changed(flagAmount) {
		if cfg.Amount, err = fs.GetFloat64(flagAmount); err != nil {
			return flagError(flagAmount, err)
		}
	}
	if fs.Changed(flagStrict) {
		if cfg.Strict, err = fs.GetBool(flagStrict); err != nil {
			return flagError(flagStrict, err)
		}
	}
	if fs.Changed(flagSelector) {
		if cfg.Selector, err = fs.GetString(flagSelector); err != nil {
			return flagError(flagSelector, err)
		}
	}
	if fs.Changed(flagTheme) {
		if cfg.ThemeName, err = fs.GetString(flagTheme); err != nil {
			return flagError(flagTheme, err)
		}
	}

	return nil
}

func flagError(name string, err error) error {
	return fmt.Errorf("invalid --%s: %w", name, err)
}
