package prism

import "fmt"

// HexError reports a hex color string that could not be parsed.
type HexError struct {
	Input string
}

func (e *HexError) Error() string {
	return fmt.Sprintf("prism: malformed hex color %q", e.Input)
}

// ParseHex parses a 3- or 6-digit hex color, with or without a leading '#'.
// Digits are case-insensitive. The short form doubles every digit, so "F5A"
// reads as "FF55AA". Any other input returns a *HexError.
func ParseHex(s string) (SRGB24Color, error) {
	h := s
	if h != "" && h[0] == '#' {
		h = h[1:]
	}

	switch len(h) {
	case 3:
		r, okR := hexNibble(h[0])
		g, okG := hexNibble(h[1])
		b, okB := hexNibble(h[2])
		if okR && okG && okB {
			// Doubling a hex digit scales it by 17: 0xA -> 0xAA.
			return SRGB24Color{r * 17, g * 17, b * 17}, nil
		}
	case 6:
		r, okR := hexByte(h[0], h[1])
		g, okG := hexByte(h[2], h[3])
		b, okB := hexByte(h[4], h[5])
		if okR && okG && okB {
			return SRGB24Color{r, g, b}, nil
		}
	}
	return SRGB24Color{}, &HexError{Input: s}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, okH := hexNibble(hi)
	l, okL := hexNibble(lo)
	return h<<4 | l, okH && okL
}

// Hex returns the lowercase "rrggbb" form of an 8-bit color.
func Hex[S Space](c RGB[uint8, S]) string {
	return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
}

// HexUpper returns the uppercase "RRGGBB" form of an 8-bit color.
func HexUpper[S Space](c RGB[uint8, S]) string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// AlphaHex returns the lowercase "rrggbbaa" form of an 8-bit color with
// alpha.
func AlphaHex[S Space](c Alpha[RGB[uint8, S], uint8]) string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.Color.R, c.Color.G, c.Color.B, c.Alpha)
}

// AlphaHexUpper returns the uppercase "RRGGBBAA" form of an 8-bit color
// with alpha.
func AlphaHexUpper[S Space](c Alpha[RGB[uint8, S], uint8]) string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.Color.R, c.Color.G, c.Color.B, c.Alpha)
}
