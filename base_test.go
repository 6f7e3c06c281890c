package prism

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var allBaseColors = []BaseColor{
	Black, Grey, White, Red, Yellow, Green, Cyan, Blue, Magenta,
}

func TestBaseColorString(t *testing.T) {
	want := []string{
		"black", "grey", "white", "red", "yellow",
		"green", "cyan", "blue", "magenta",
	}
	for i, b := range allBaseColors {
		if got := b.String(); got != want[i] {
			t.Errorf("%d.String() = %q, want %q", uint8(b), got, want[i])
		}
	}
	if got := BaseColor(42).String(); got != "unknown" {
		t.Errorf("BaseColor(42).String() = %q, want %q", got, "unknown")
	}
}

func TestBaseColorSRGB24(t *testing.T) {
	tests := []struct {
		base BaseColor
		want SRGB24Color
	}{
		{Black, SRGB24Color{0, 0, 0}},
		{Grey, SRGB24Color{128, 128, 128}},
		{White, SRGB24Color{255, 255, 255}},
		{Red, SRGB24Color{255, 0, 0}},
		{Yellow, SRGB24Color{255, 255, 0}},
		{Green, SRGB24Color{0, 255, 0}},
		{Cyan, SRGB24Color{0, 255, 255}},
		{Blue, SRGB24Color{0, 0, 255}},
		{Magenta, SRGB24Color{255, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.base.String(), func(t *testing.T) {
			if got := tt.base.SRGB24(); got != tt.want {
				t.Errorf("SRGB24() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaseColorHSV(t *testing.T) {
	tests := []struct {
		base BaseColor
		want StdHSVColor
	}{
		{Black, StdHSVColor{}},
		{Grey, StdHSVColor{V: 0.5}},
		{White, StdHSVColor{V: 1}},
		{Red, StdHSVColor{S: 1, V: 1}},
		{Yellow, StdHSVColor{H: 60, S: 1, V: 1}},
		{Green, StdHSVColor{H: 120, S: 1, V: 1}},
		{Cyan, StdHSVColor{H: 180, S: 1, V: 1}},
		{Blue, StdHSVColor{H: 240, S: 1, V: 1}},
		{Magenta, StdHSVColor{H: 300, S: 1, V: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.base.String(), func(t *testing.T) {
			if got := tt.base.HSV(); got != tt.want {
				t.Errorf("HSV() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBaseSRGB(t *testing.T) {
	// The byte form is the reference; every representation derives from it.
	for _, b := range allBaseColors {
		if got := BaseSRGB[uint8](b); got != b.SRGB24() {
			t.Errorf("BaseSRGB[uint8](%v) = %v, want %v", b, got, b.SRGB24())
		}
	}

	if got := BaseSRGB[uint16](White); got != (RGB[uint16, SRGBSpace]{65535, 65535, 65535}) {
		t.Errorf("BaseSRGB[uint16](White) = %v", got)
	}

	grey := Grey.SRGB()
	want := SRGBColor{R: 128.0 / 255, G: 128.0 / 255, B: 128.0 / 255}
	if diff := cmp.Diff(want, grey, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("Grey.SRGB() mismatch (-want +got):\n%s", diff)
	}
}

func TestBaseLinear(t *testing.T) {
	// The transfer function fixes 0 and 1, so the anchors are exact.
	if got := Black.LinRGB(); got != (LinRGBColor{}) {
		t.Errorf("Black.LinRGB() = %v, want zero", got)
	}
	if got := White.LinRGB(); got != (LinRGBColor{R: 1, G: 1, B: 1}) {
		t.Errorf("White.LinRGB() = %v, want (1,1,1)", got)
	}
	if got := Red.LinRGB48(); got != (LinRGB48Color{R: 65535}) {
		t.Errorf("Red.LinRGB48() = %v, want (65535,0,0)", got)
	}

	// Grey's byte 128 decodes below 0.5: linear light grows faster than
	// the encoded value.
	g := Grey.LinRGB().R
	if g <= 0.2 || g >= 0.23 {
		t.Errorf("Grey.LinRGB().R = %v, want ≈0.2159", g)
	}
	got := Grey.LinRGB()
	want := Decode(Grey.SRGB())
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-6)); diff != "" {
		t.Errorf("Grey.LinRGB() mismatch vs Decode(Grey.SRGB()) (-want +got):\n%s", diff)
	}
}
