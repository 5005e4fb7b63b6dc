package reverie

// aberrationScale converts the aberration intensity into a normalized-space
// channel offset. The offset also grows radially, so dispersion is invisible
// at the screen center and strongest in the corners, like a real lens.
const aberrationScale = 0.008

// tint tuning. The warm-up factor is multiplicative and applied before the
// mix toward the reference color; tintStrength caps how far the mix goes at
// full intensity.
var warmUpFactor = Color{1.10, 1.04, 0.92, 1}

const tintStrength = 0.35

// SampleAberrated samples src three times with the red and blue channels
// offset along and against the radial direction from screen center,
// recombining one channel from each tap. Green stays unshifted. At zero
// intensity all three taps coincide and the result equals a plain Sample.
func SampleAberrated(src *Source, uv Vec2, intensity float64) Color {
	dir := uv.Sub(Vec2{0.5, 0.5}).Scale(intensity * aberrationScale)

	r := src.Sample(uv.Add(dir))
	g := src.Sample(uv)
	b := src.Sample(uv.Sub(dir))

	return Color{R: r.R, G: g.G, B: b.B, A: g.A}
}

// Tint shifts c toward the theme's warm reference color. A multiplicative
// warm-up is applied first, then a linear mix toward the reference; both are
// weighted by intensity so zero intensity is an exact passthrough.
func Tint(c Color, intensity float64, th Theme) Color {
	warmed := Color{
		R: c.R * warmUpFactor.R,
		G: c.G * warmUpFactor.G,
		B: c.B * warmUpFactor.B,
		A: c.A,
	}
	warmed = lerpColor(c, warmed, intensity)
	return lerpColor(warmed, th.Warm, tintStrength*intensity)
}
