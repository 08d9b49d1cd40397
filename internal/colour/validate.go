package colour

import (
	"errors"
	"fmt"
)

// ErrInvalidColourFormat is returned by ParseHex for input that HexToRGB would
// silently degrade to black.
var ErrInvalidColourFormat = errors.New("invalid colour format")

// ParseHex is a strict variant of HexToRGB. It accepts the same input but
// returns ErrInvalidColourFormat instead of degrading malformed strings.
func ParseHex(hex string) (RGB, error) {
	if _, _, _, ok := splitHex(hex); !ok {
		return RGB{}, fmt.Errorf("%w: %q (expected #rgb or #rrggbb)", ErrInvalidColourFormat, hex)
	}
	return HexToRGB(hex), nil
}

// IsValidHex reports whether hex is a well-formed 3 or 6 digit hex colour.
func IsValidHex(hex string) bool {
	_, _, _, ok := splitHex(hex)
	return ok
}
