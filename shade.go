package prism

import "slices"

// Shade is one component of a shade classification: a base color and the
// input's normalized membership weight in it.
type Shade struct {
	Base   BaseColor
	Weight float32
}

// Classifier thresholds. All of them were picked by what looks right, not
// by any colorimetric argument; classifier output is only reproducible
// while the whole block stays untouched.
const (
	// hueMargin is how far, in degrees, a hue can sit from a reference
	// hue and still count as a shade of it.
	hueMargin = 60.0 * 0.75

	// blackCutoffLuminance: below this relative luminance a color is
	// nothing but black.
	blackCutoffLuminance = 0.005

	// greyscaleSaturation: below this saturation a color carries no hue.
	greyscaleSaturation = 0.05

	// Threshold windows for the greyscale shades.
	whiteSaturation  = 0.35
	whiteLuminance   = 0.40
	greySaturation   = 0.45
	greyLuminanceMax = 0.80
	greyLuminanceMin = 0.03
	blackLuminance   = 0.045
)

// hueRefs are the reference hues away from the red wrap, in hue order.
var hueRefs = [...]struct {
	hue  float32
	base BaseColor
}{
	{60, Yellow},
	{120, Green},
	{180, Cyan},
	{240, Blue},
	{300, Magenta},
}

// Shades classifies a color as a weighted mix of base colors: its most
// prominent hues within [hueMargin], plus black/white/grey memberships by
// luminance and saturation. Weights are sorted descending and normalized
// to sum to one.
//
// Red's membership wraps across the 0°/360° boundary, and on the high side
// the falloff 1-(h-360)/margin exceeds one instead of mirroring the low
// side. Downstream output depends on the resulting weights, so the wrap
// keeps this shape.
func Shades(c SRGBColor) []Shade {
	hsv := ToHSV[Deg](c)
	h, s := float32(hsv.H), hsv.S

	lum := RelativeLuminance(Decode(c))
	if lum < blackCutoffLuminance {
		return []Shade{{Black, 1}}
	}

	// At most two hue shades, plus black or white, plus grey.
	shades := make([]Shade, 0, 4)
	var sum float32

	if s > greyscaleSaturation {
		if h >= 360-hueMargin || h <= hueMargin {
			d := h
			if h > hueMargin {
				d = h - 360
			}
			amount := 1 - d/hueMargin
			sum += amount
			shades = append(shades, Shade{Red, amount})
		}
		for _, ref := range hueRefs {
			dist := h - ref.hue
			if dist < 0 {
				dist = -dist
			}
			if dist <= hueMargin {
				amount := 1 - dist/hueMargin
				sum += amount
				shades = append(shades, Shade{ref.base, amount})
			}
		}
	}

	if lum <= blackLuminance {
		sum++
		shades = append(shades, Shade{Black, 1})
	} else if lum >= whiteLuminance && s <= whiteSaturation {
		sum++
		shades = append(shades, Shade{White, 1})
	}
	if s <= greySaturation && lum >= greyLuminanceMin && lum <= greyLuminanceMax {
		sum++
		shades = append(shades, Shade{Grey, 1})
	}

	// Stable sort keeps tied weights in membership order.
	slices.SortStableFunc(shades, func(a, b Shade) int {
		if a.Weight > b.Weight {
			return -1
		}
		if a.Weight < b.Weight {
			return 1
		}
		return 0
	})
	for i := range shades {
		shades[i].Weight /= sum
	}
	return shades
}
