package prism

// Compositing operators over linear-light colors with straight
// (non-premultiplied) alpha.
//
// Blending gamma-encoded values darkens the result, so these operators
// accept linear colors only; decode first, composite, encode last.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/

// Blend mixes two linear colors: a*ratio + b*(1-ratio). A ratio outside
// [0, 1] is clamped, so the result is always a convex combination and
// stays in channel range.
func Blend[T Channel](a, b RGB[T, LinearSpace], ratio float32) RGB[T, LinearSpace] {
	r := float64(Clamp(ratio))
	return zipLinear(a, b, func(x, y float64) float64 {
		return x*r + y*(1-r)
	})
}

// OverOpaque composites a translucent color over an opaque backdrop.
// Result: Cf*Af + Cb*(1-Af), which is [Blend] weighted by the foreground
// alpha. The backdrop stays opaque, so no alpha channel survives.
func OverOpaque(fg LinRGBAColor, bg LinRGBColor) LinRGBColor {
	return Blend(fg.Color, bg, fg.Alpha)
}

// Over composites one translucent color over another with the source-over
// operator.
//
// Result: Ao = Af + Ab*(1-Af), Co = (Cf*Af + Cb*Ab*(1-Af)) / Ao.
//
// When both inputs are fully transparent there is no color to speak of;
// the result is the zero value, transparent black.
func Over(fg, bg LinRGBAColor) LinRGBAColor {
	af := float64(Clamp(fg.Alpha))
	ab := float64(Clamp(bg.Alpha))
	ao := af + ab*(1-af)
	if ao == 0 {
		return LinRGBAColor{}
	}
	wf := af / ao
	wb := ab * (1 - af) / ao
	return LinRGBAColor{
		Color: zipLinear(fg.Color, bg.Color, func(x, y float64) float64 {
			return x*wf + y*wb
		}),
		Alpha: float32(ao),
	}
}
