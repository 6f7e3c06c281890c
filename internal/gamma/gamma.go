// Package gamma provides fast sRGB transfer-function evaluation over 8-bit
// channels using lookup tables.
//
// The lookup tables (LUT) give O(1) sRGB ↔ linear conversions, replacing
// math.Pow calls with array lookups. Terminal and palette code touches many
// colors per frame; decoding each channel through the full curve would
// dominate that work.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
//   - GPU Gems 3, Chapter 24: https://developer.nvidia.com/gpugems/gpugems3/part-iv-image-effects/chapter-24-importance-being-linear
package gamma

import "math"

// decodeLUT provides O(1) sRGB to linear conversion.
// Pre-computed 256 entries, 1KB memory cost.
// Converts sRGB byte [0-255] → linear float32 [0.0-1.0].
var decodeLUT [256]float32

// encodeLUT provides O(1) linear to sRGB conversion.
// Uses 4096 entries for 12-bit precision (sufficient for 8-bit sRGB).
// Converts linear float32 [0.0-1.0] → sRGB byte [0-255].
var encodeLUT [4096]uint8

func init() {
	for i := 0; i < 256; i++ {
		s := float64(i) / 255.0
		var linear float64
		if s <= 0.04045 {
			linear = s / 12.92
		} else {
			linear = math.Pow((s+0.055)/1.055, 2.4)
		}
		decodeLUT[i] = float32(linear)
	}

	for i := 0; i < 4096; i++ {
		linear := float64(i) / 4095.0
		var s float64
		if linear <= 0.0031308 {
			s = linear * 12.92
		} else {
			s = 1.055*math.Pow(linear, 1.0/2.4) - 0.055
		}
		srgb := int(s*255.0 + 0.5)
		if srgb < 0 {
			srgb = 0
		}
		if srgb > 255 {
			srgb = 255
		}
		encodeLUT[i] = uint8(srgb)
	}
}

// Decode8 converts an sRGB byte to linear light using the lookup table.
//
// Example:
//
//	r := gamma.Decode8(128) // ~0.2159 (not 0.5!)
func Decode8(s uint8) float32 {
	return decodeLUT[s]
}

// Encode8 converts linear light to an sRGB byte using the lookup table.
//
// Input is clamped to [0.0, 1.0], NaN to 1. The 12-bit table keeps the
// error within one byte of the exact curve.
//
// Example:
//
//	s := gamma.Encode8(0.5) // 188 (not 128!)
func Encode8(l float32) uint8 {
	if !(l < 1) { // catches NaN as well
		l = 1
	} else if l < 0 {
		l = 0
	}
	index := int(l*4095.0 + 0.5)
	if index > 4095 {
		index = 4095
	}
	return encodeLUT[index]
}

// Luminance8 computes the relative luminance of an 8-bit sRGB triple,
// decoding each channel through the lookup table and weighting with the
// Rec. 709 coefficients.
func Luminance8(r, g, b uint8) float32 {
	return 0.2126*decodeLUT[r] + 0.7152*decodeLUT[g] + 0.0722*decodeLUT[b]
}

// DecodeSlow converts an sRGB byte to linear light using math.Pow.
//
// This is the reference implementation, ~20x slower than the LUT version.
// Used for testing and verification only.
func DecodeSlow(s uint8) float32 {
	sf := float64(s) / 255.0
	var linear float64
	if sf <= 0.04045 {
		linear = sf / 12.92
	} else {
		linear = math.Pow((sf+0.055)/1.055, 2.4)
	}
	return float32(linear)
}

// EncodeSlow converts linear light to an sRGB byte using math.Pow.
//
// This is the reference implementation, ~15x slower than the LUT version.
// Used for testing and verification only.
func EncodeSlow(l float32) uint8 {
	lf := float64(l)
	if lf < 0 {
		lf = 0
	}
	if lf > 1 {
		lf = 1
	}
	var s float64
	if lf <= 0.0031308 {
		s = lf * 12.92
	} else {
		s = 1.055*math.Pow(lf, 1.0/2.4) - 0.055
	}
	srgb := int(s*255.0 + 0.5)
	if srgb < 0 {
		srgb = 0
	}
	if srgb > 255 {
		srgb = 255
	}
	return uint8(srgb)
}
