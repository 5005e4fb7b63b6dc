package reverie

import "math"

// Swirl tuning constants. reachFactor bounds the tendril field at a multiple
// of the feature radius; swirlSharpness is the exponent that narrows the
// sinusoidal arms into thin lines.
const (
	reachFactor    = 3.0
	swirlSharpness = 8
	swirlRingWidth = 0.0035
)

// SwirlAt computes the tendril magnitude at a normalized coordinate, in
// [0, 1]. It scans the same 3x3 cell neighborhood as EyeAt; each feature
// contributes curling arm lines between its radius and its reach (3x radius)
// plus thin rings at both boundaries.
//
// Each qualifying neighbor is folded in via max and the whole accumulator is
// then rescaled by the dampening factor, so pixels reached by several
// features are attenuated geometrically. See DESIGN.md for the rationale.
func SwirlAt(uv Vec2, aspect, t float64) float64 {
	base := Vec2{math.Floor(uv.X * GridSize), math.Floor(uv.Y * GridSize)}

	mag := 0.0

	for oy := -1.0; oy <= 1; oy++ {
		for ox := -1.0; ox <= 1; ox++ {
			cell := base.Add(Vec2{ox, oy})
			d := DescriptorAt(cell, t)

			delta := Vec2{(uv.X - d.Center.X) * aspect, uv.Y - d.Center.Y}
			dist := delta.Len()
			reach := reachFactor * d.Radius
			if dist <= d.Radius || dist >= reach {
				continue
			}

			mag = math.Max(mag, swirlCandidate(cell, delta, dist, d.Radius, reach, t))
			mag *= dampening
		}
	}

	return mag
}

// swirlCandidate evaluates one feature's tendril contribution at a pixel that
// lies strictly inside its swirl band.
func swirlCandidate(cell Vec2, delta Vec2, dist, radius, reach, t float64) float64 {
	angle := math.Atan2(delta.Y, delta.X)
	curl := 2.0 + 3.0*hash21(cell.Add(Vec2{1.7, 9.3}))
	arms := 24 + math.Floor(8*hash21(cell.Add(Vec2{4.4, 2.8})))

	// Curl warps the angle with distance; the time term spins the whole
	// arm pattern around the eye.
	warped := angle + curl*(dist/radius) + 0.4*t
	line := math.Pow(math.Abs(math.Sin(arms*warped)), swirlSharpness)

	fadeIn := smoothstep(radius, 1.2*radius, dist)
	fadeOut := 1 - smoothstep(2.6*radius, reach, dist)
	line *= fadeIn * fadeOut

	innerRing := 1 - smoothstep(0, swirlRingWidth, math.Abs(dist-radius))
	outerRing := (1 - smoothstep(0, swirlRingWidth, math.Abs(dist-reach))) * 0.5

	return math.Max(line, math.Max(innerRing, outerRing))
}
