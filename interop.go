package prism

import "image/color"

// FromColor converts any standard library color to 8-bit sRGB with alpha.
// The conversion goes through [color.NRGBA], so premultiplied inputs are
// un-premultiplied back to straight alpha.
func FromColor(c color.Color) SRGBA24Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return SRGBA24(n.R, n.G, n.B, n.A)
}

// ToColor converts an 8-bit sRGB color with alpha to the standard
// library's straight-alpha type. FromColor(ToColor(c)) is the identity
// for every value of c, including translucent ones.
func ToColor(c SRGBA24Color) color.NRGBA {
	return color.NRGBA{R: c.Color.R, G: c.Color.G, B: c.Color.B, A: c.Alpha}
}
