// Package colour provides conversion between hex, RGB and HSL colour representations.
//
// Every function is total: out-of-range channels are clamped and malformed hex
// strings degrade to zero channels instead of returning an error. Callers that
// need strict validation should use ParseHex.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HexToHSL converts a hex colour string to HSL.
func HexToHSL(hex string) HSL {
	return RGBToHSL(HexToRGB(hex))
}

// HSLToHex converts an HSL colour to a "#rrggbb" string.
func HSLToHex(hsl HSL) string {
	return RGBToHex(HSLToRGB(hsl))
}

// HexToRGB converts a hex colour string ("#abc", "aabbcc", ...) to RGB.
// Input that is not 3 or 6 hex digits yields black.
func HexToRGB(hex string) RGB {
	r, g, b, _ := splitHex(hex)

	return ClampRGB(RGB{
		Red:   parseChannel(r) / 255,
		Green: parseChannel(g) / 255,
		Blue:  parseChannel(b) / 255,
	})
}

// RGBToHex converts an RGB colour to a lowercase "#rrggbb" string.
func RGBToHex(rgb RGB) string {
	r, g, b := rgb.Bytes()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// HSLToRGB converts HSL to RGB colour space.
func HSLToRGB(hsl HSL) RGB {
	c := ClampHSL(hsl)
	h, s, l := c.Hue, c.Saturation, c.Lightness

	if s == 0 {
		// Achromatic (grey).
		return ClampRGB(RGB{Red: l, Green: l, Blue: l})
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return ClampRGB(RGB{
		Red:   hueToRGB(p, q, h+1.0/3),
		Green: hueToRGB(p, q, h),
		Blue:  hueToRGB(p, q, h-1.0/3),
	})
}

// hueToRGB is a helper for HSL to RGB conversion. t is a fraction of a turn.
func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	if t < 1.0/6 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2 {
		return q
	}
	if t < 2.0/3 {
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// RGBToHSL converts RGB to HSL colour space.
func RGBToHSL(rgb RGB) HSL {
	c := ClampRGB(rgb)
	r, g, b := c.Red, c.Green, c.Blue

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))

	l := (maxVal + minVal) / 2

	if maxVal == minVal {
		return ClampHSL(HSL{Hue: 0, Saturation: 0, Lightness: l})
	}

	delta := maxVal - minVal

	var s float64
	if l > 0.5 {
		s = delta / (2 - maxVal - minVal)
	} else {
		s = delta / (maxVal + minVal)
	}

	// Ties on the maximum resolve red, then green, then blue.
	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}
	h /= 6

	return ClampHSL(HSL{Hue: h, Saturation: s, Lightness: l})
}

// Clamp constrains value to the closed interval r. NaN clamps to the minimum.
func Clamp(value float64, r Range) float64 {
	minVal, maxVal := r[0], r[1]

	if math.IsNaN(value) || value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}

// ClampRGB clamps each RGB channel independently.
func ClampRGB(rgb RGB) RGB {
	return RGB{
		Red:   Clamp(rgb.Red, RedRange),
		Green: Clamp(rgb.Green, GreenRange),
		Blue:  Clamp(rgb.Blue, BlueRange),
	}
}

// ClampHSL clamps each HSL channel independently.
func ClampHSL(hsl HSL) HSL {
	return HSL{
		Hue:        Clamp(hsl.Hue, HueRange),
		Saturation: Clamp(hsl.Saturation, SaturationRange),
		Lightness:  Clamp(hsl.Lightness, LightnessRange),
	}
}

// splitHex splits a hex colour into its three channel tokens. ok is false when
// the input is not 3 or 6 hex digits, in which case all tokens are empty.
func splitHex(hex string) (r, g, b string, ok bool) {
	digits := strings.TrimPrefix(hex, "#")
	if !isHexDigits(digits) {
		return "", "", "", false
	}

	switch len(digits) {
	case 3:
		return digits[0:1], digits[1:2], digits[2:3], true
	case 6:
		return digits[0:2], digits[2:4], digits[4:6], true
	default:
		return "", "", "", false
	}
}

// parseChannel parses a 1 or 2 digit hex token. A single digit is doubled
// ("a" -> "aa"). Anything unparseable returns NaN.
func parseChannel(token string) float64 {
	if len(token) == 1 {
		token += token
	}

	v, err := strconv.ParseUint(token, 16, 8)
	if err != nil {
		return math.NaN()
	}
	return float64(v)
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
