package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
)

func (a *app) newContrastCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contrast <hex> <hex>",
		Short: "Report the WCAG contrast ratio of two colours",
		Long: `Report the WCAG 2.0 contrast ratio of two hex colours and whether it
meets the AA (4.5:1) and AAA (7:1) thresholds for normal text.

Example:
  shade contrast '#333' '#fefefe'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, hex := range args {
				if err := a.checkHex(hex); err != nil {
					return err
				}
			}

			ratio := colour.ContrastRatio(colour.HexToRGB(args[0]), colour.HexToRGB(args[1]))
			fmt.Fprintf(cmd.OutOrStdout(), "%.2f:1  AA %s  AAA %s\n",
				ratio, verdict(ratio >= colour.ContrastAA), verdict(ratio >= colour.ContrastAAA))
			return nil
		},
	}
}

const (
	passColour = "#4caf50"
	failColour = "#e53935"
)

func verdict(pass bool) string {
	if pass {
		return colour.Colourise(passColour, "pass")
	}
	return colour.Colourise(failColour, "fail")
}
