package prism_test

import (
	"fmt"

	"github.com/goprism/prism"
)

func ExampleParseHex() {
	c, err := prism.ParseHex("#ff69b4")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c)
	// Output: 255, 105, 180
}

func ExampleDecode() {
	// Mid grey on screen is nowhere near half the light of white.
	grey := prism.SRGB(0.5, 0.5, 0.5)
	fmt.Printf("%.4f\n", prism.Decode(grey).R)
	// Output: 0.2140
}

func ExampleShades() {
	c := prism.SRGB24(255, 128, 0)
	for _, s := range prism.Shades(prism.ConvRGB[float32](c)) {
		fmt.Printf("%s %.2f\n", s.Base, s.Weight)
	}
	// Output:
	// yellow 0.50
	// red 0.50
}

func ExampleOverOpaque() {
	red := prism.NewAlpha(prism.LinRGB(1, 0, 0), float32(0.25))
	bg := prism.LinRGB(0, 0, 1)
	out := prism.OverOpaque(red, bg)
	fmt.Printf("%.2f %.2f %.2f\n", out.R, out.G, out.B)
	// Output: 0.25 0.00 0.75
}
