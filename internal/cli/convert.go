package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/shade/internal/colour"
)

const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatHSL  = "hsl"
	formatAll  = "all"
	outputText = "text"
	outputJSON = "json"
)

// conversion is the result of the convert command.
type conversion struct {
	Hex string      `json:"hex,omitempty"`
	RGB *colour.RGB `json:"rgb,omitempty"`
	HSL *colour.HSL `json:"hsl,omitempty"`
}

func (a *app) newConvertCmd() *cobra.Command {
	var from, to, output string

	cmd := &cobra.Command{
		Use:   "convert <hex> | convert --from rgb|hsl <c1> <c2> <c3>",
		Short: "Convert a colour between hex, RGB and HSL",
		Long: `Convert a colour between hex, RGB and HSL.

A single argument is read as hex (#rgb or #rrggbb, "#" optional). Three
arguments are read as RGB unless --from hsl is given. Channels are 0-1.

Examples:
  shade convert '#604620'
  shade convert --to hsl 604620
  shade convert 0.25 0.5 0.5
  shade convert --from hsl --to hex 0.1 0.2 0.2
  shade convert --output json '#abc'`,
		Args: cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := a.parseColour(from, args)
			if err != nil {
				return err
			}

			result, err := convertTo(rgb, to)
			if err != nil {
				return err
			}

			a.logger.Debug("converted colour", "input", args, "to", to, "hex", colour.RGBToHex(rgb))
			return writeConversion(cmd, result, output)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "input representation: hex, rgb or hsl (default: by argument count)")
	cmd.Flags().StringVar(&to, "to", formatAll, "output representation: hex, rgb, hsl or all")
	cmd.Flags().StringVarP(&output, "output", "o", outputText, "output format: text or json")

	return cmd
}

// parseColour reads args in the given representation and returns RGB.
func (a *app) parseColour(from string, args []string) (colour.RGB, error) {
	if from == "" {
		if len(args) == 1 {
			from = formatHex
		} else {
			from = formatRGB
		}
	}

	switch from {
	case formatHex:
		if len(args) != 1 {
			return colour.RGB{}, fmt.Errorf("hex input takes exactly 1 argument, got %d", len(args))
		}
		if err := a.checkHex(args[0]); err != nil {
			return colour.RGB{}, err
		}
		return colour.HexToRGB(args[0]), nil

	case formatRGB, formatHSL:
		if len(args) != 3 {
			return colour.RGB{}, fmt.Errorf("%s input takes exactly 3 arguments, got %d", from, len(args))
		}
		values, err := a.parseChannels(args)
		if err != nil {
			return colour.RGB{}, err
		}
		if from == formatHSL {
			return colour.HSLToRGB(colour.HSL{Hue: values[0], Saturation: values[1], Lightness: values[2]}), nil
		}
		return colour.ClampRGB(colour.RGB{Red: values[0], Green: values[1], Blue: values[2]}), nil

	default:
		return colour.RGB{}, fmt.Errorf("unsupported input format: %s (supported: hex, rgb, hsl)", from)
	}
}

func (a *app) parseChannels(args []string) ([3]float64, error) {
	var values [3]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return values, fmt.Errorf("invalid channel %q: %w", arg, err)
		}
		if a.config.Strict && (math.IsNaN(v) || v < 0 || v > 1) {
			return values, fmt.Errorf("%w: channel %q outside 0-1", colour.ErrInvalidColourFormat, arg)
		}
		values[i] = v
	}
	return values, nil
}

func convertTo(rgb colour.RGB, to string) (conversion, error) {
	var result conversion
	hsl := colour.RGBToHSL(rgb)

	switch to {
	case formatHex:
		result.Hex = colour.RGBToHex(rgb)
	case formatRGB:
		result.RGB = &rgb
	case formatHSL:
		result.HSL = &hsl
	case formatAll:
		result.Hex = colour.RGBToHex(rgb)
		result.RGB = &rgb
		result.HSL = &hsl
	default:
		return result, fmt.Errorf("unsupported output format: %s (supported: hex, rgb, hsl, all)", to)
	}
	return result, nil
}

func writeConversion(cmd *cobra.Command, result conversion, output string) error {
	out := cmd.OutOrStdout()

	switch output {
	case outputJSON:
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case outputText:
		if result.Hex != "" {
			if result.RGB != nil && colour.SupportsANSIColours() {
				fmt.Fprintf(out, "%s %s\n", colour.Swatch(result.Hex, 4), result.Hex)
			} else {
				fmt.Fprintln(out, result.Hex)
			}
		}
		if result.RGB != nil {
			fmt.Fprintln(out, result.RGB.String())
		}
		if result.HSL != nil {
			fmt.Fprintln(out, result.HSL.String())
		}
	default:
		return fmt.Errorf("unsupported output: %s (supported: text, json)", output)
	}
	return nil
}
