package reverie

// Evaluate computes the final dream color for one pixel. It is a pure
// function of its arguments: no shared state, no evaluation-order
// dependence, so callers may dispatch it in parallel across pixels freely.
//
// The blend order is fixed: aberrated source sample, warm tint, additive
// accent-colored swirl, alpha-blended eye, opaque output. Below the
// intensity epsilon the unmodified source sample is returned.
func Evaluate(uv Vec2, aspect float64, src *Source, s Settings, th Theme) Color {
	if s.Intensity < intensityEpsilon {
		c := src.Sample(uv)
		c.A = 1
		return c
	}

	aberration, tint, swirl, eye := Activations(s.Intensity)

	col := SampleAberrated(src, uv, aberration)
	col = Tint(col, tint, th)

	mag := SwirlAt(uv, aspect, s.Time) * swirl
	col.R += th.Accent.R * mag
	col.G += th.Accent.G * mag
	col.B += th.Accent.B * mag

	eyeColor, eyeAlpha := EyeAt(uv, aspect, s.Time, eye, th)
	col = lerpColor(col, eyeColor, eyeAlpha)

	return Color{
		R: clamp01(col.R),
		G: clamp01(col.G),
		B: clamp01(col.B),
		A: 1,
	}
}
