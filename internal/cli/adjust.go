package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
)

func (a *app) newLightenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lighten <hex>...",
		Short: "Raise the lightness of hex colours",
		Long: `Raise the HSL lightness of each hex colour by --amount (default 0.1).
The result saturates at #ffffff.

Examples:
  shade lighten '#292929'
  shade lighten --amount 0.25 '#5c7ec1' '#cb3d3d'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdjust(cmd, args, colour.Lighten)
		},
	}
}

func (a *app) newDarkenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "darken <hex>...",
		Short: "Lower the lightness of hex colours",
		Long: `Lower the HSL lightness of each hex colour by --amount (default 0.1).
The result saturates at #000000. Darken by x is lighten by -x.

Examples:
  shade darken '#292929'
  shade darken --amount 1 '#5c7ec1'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAdjust(cmd, args, colour.Darken)
		},
	}
}

func (a *app) runAdjust(cmd *cobra.Command, args []string, adjust func(string, float64) string) error {
	out := cmd.OutOrStdout()

	for _, hex := range args {
		if err := a.checkHex(hex); err != nil {
			return err
		}

		result := adjust(hex, a.config.Amount)
		a.logger.Debug("adjusted colour", "input", hex, "amount", a.config.Amount, "result", result)

		if colour.SupportsANSIColours() {
			fmt.Fprintf(out, "%s %s\n", colour.Swatch(result, 4), result)
		} else {
			fmt.Fprintln(out, result)
		}
	}
	return nil
}
