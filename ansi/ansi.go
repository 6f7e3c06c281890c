// Package ansi renders colors as SGR truecolor escape sequences.
//
// The escapes use the semicolon-separated 24-bit forms (CSI 38;2;r;g;b m
// and CSI 48;2;r;g;b m) understood by every modern terminal emulator.
package ansi

import (
	"fmt"

	"github.com/goprism/prism"
	"github.com/goprism/prism/internal/gamma"
)

// Reset clears all SGR attributes, including the colors set by FG and BG.
const Reset = "\x1b[0m"

// FG returns the escape selecting c as the foreground color.
func FG(c prism.SRGB24Color) string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// BG returns the escape selecting c as the background color.
func BG(c prism.SRGB24Color) string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// paintThreshold is the linear luminance of mid grey. Backgrounds darker
// than this get white text, lighter ones black.
var paintThreshold = prism.SRGBToLinear(0.5)

// Paint returns text over a background of c, with the foreground picked
// black or white by the background's relative luminance so the text stays
// legible. The result ends with [Reset].
func Paint(c prism.SRGB24Color, text string) string {
	fg := prism.Black.SRGB24()
	if gamma.Luminance8(c.R, c.G, c.B) < paintThreshold {
		fg = prism.White.SRGB24()
	}
	return FG(fg) + BG(c) + text + Reset
}
