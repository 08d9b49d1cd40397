package colour

import (
	"fmt"
	"math"
)

// Range is a closed interval [min, max] a channel is clamped to.
type Range [2]float64

// Channel ranges. Every channel of both representations is normalised to [0, 1].
var (
	HueRange        = Range{0, 1}
	SaturationRange = Range{0, 1}
	LightnessRange  = Range{0, 1}

	RedRange   = Range{0, 1}
	GreenRange = Range{0, 1}
	BlueRange  = Range{0, 1}
)

// RGB represents a colour as red, green and blue channels in [0, 1].
type RGB struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// HSL represents a colour as hue, saturation and lightness in [0, 1].
// Hue is a fraction of a full turn, not degrees.
type HSL struct {
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// Bytes returns the 8-bit channel values, quantised the same way as RGBToHex.
func (rgb RGB) Bytes() (r, g, b uint8) {
	c := ClampRGB(rgb)
	return toByte(c.Red), toByte(c.Green), toByte(c.Blue)
}

// String returns the colour in the format "rgb(r, g, b)" with normalised channels.
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%.4f, %.4f, %.4f)", rgb.Red, rgb.Green, rgb.Blue)
}

// String returns the colour in the format "hsl(h, s, l)" with normalised channels.
func (hsl HSL) String() string {
	return fmt.Sprintf("hsl(%.4f, %.4f, %.4f)", hsl.Hue, hsl.Saturation, hsl.Lightness)
}

func toByte(channel float64) uint8 {
	return uint8(math.Floor(channel * 255))
}
