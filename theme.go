package reverie

import (
	"fmt"

	"github.com/mazznoer/csscolorparser"
)

// Theme is the effect palette. Every color feeds both the CPU evaluator and
// the shader uniforms; only the RGB channels are used.
type Theme struct {
	// IrisA and IrisB are the two reference iris colors. Each eye mixes
	// between them using a per-cell hash as the weight.
	IrisA Color
	IrisB Color
	// Pupil is the color of the pulsing pupil disk.
	Pupil Color
	// Sclera fills the eye between the pupil and the iris annulus.
	Sclera Color
	// Accent colors the swirl tendrils, which are added additively.
	Accent Color
	// Warm is the reference color the tint stage mixes toward.
	Warm Color
}

// DefaultTheme returns the stock dream palette: amber/teal irises, a warm
// gold accent, and a sunset tint reference.
func DefaultTheme() Theme {
	return Theme{
		IrisA:  Color{0.85, 0.55, 0.20, 1},
		IrisB:  Color{0.20, 0.50, 0.60, 1},
		Pupil:  Color{0.05, 0.04, 0.06, 1},
		Sclera: Color{0.92, 0.90, 0.86, 1},
		Accent: Color{0.95, 0.80, 0.45, 1},
		Warm:   Color{1.00, 0.85, 0.60, 1},
	}
}

// ParseColor parses a CSS color string ("#ff8800", "rgb(...)", named colors,
// etc.) into a Color.
func ParseColor(s string) (Color, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// ThemeFromStrings builds a Theme from CSS color strings for the four
// customizable slots. Pupil and sclera keep their defaults; set them on the
// returned Theme directly if needed.
func ThemeFromStrings(irisA, irisB, accent, warm string) (Theme, error) {
	th := DefaultTheme()
	var err error
	if th.IrisA, err = ParseColor(irisA); err != nil {
		return Theme{}, err
	}
	if th.IrisB, err = ParseColor(irisB); err != nil {
		return Theme{}, err
	}
	if th.Accent, err = ParseColor(accent); err != nil {
		return Theme{}, err
	}
	if th.Warm, err = ParseColor(warm); err != nil {
		return Theme{}, err
	}
	return th, nil
}
