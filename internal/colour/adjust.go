package colour

// DefaultAdjustAmount is the lightness delta used for derived theme variants.
const DefaultAdjustAmount = 0.1

// Lighten raises the HSL lightness of a hex colour by amount and returns the
// result as hex. amount may be negative. Lightness saturates at black/white.
func Lighten(hex string, amount float64) string {
	hsl := HexToHSL(hex)
	hsl.Lightness += amount

	return HSLToHex(hsl)
}

// Darken lowers the HSL lightness of a hex colour by amount.
func Darken(hex string, amount float64) string {
	return Lighten(hex, -amount)
}
