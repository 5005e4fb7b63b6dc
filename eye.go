package reverie

import "math"

// eyeEdgeWidth is the anti-aliasing band, in normalized units, applied to the
// iris annulus and pupil edges. Narrow enough that it never approaches the
// smallest feature radius.
const eyeEdgeWidth = 0.004

// dampening is the fixed subtlety factor applied to both patterns before
// compositing.
const dampening = 0.2

// EyeAt renders the eye pattern at a normalized coordinate. It scans the 3x3
// neighborhood of the pixel's home cell, shades each feature whose iris the
// pixel falls inside, and keeps the candidate with the highest alpha.
// Overlapping eyes are never blended together; winner-take-all avoids the
// double-transparency artifacts of summing independent alphas.
//
// The returned alpha is scaled by intensity and the fixed dampening factor,
// ready to be composited over the scene color.
func EyeAt(uv Vec2, aspect, t, intensity float64, th Theme) (Color, float64) {
	base := Vec2{math.Floor(uv.X * GridSize), math.Floor(uv.Y * GridSize)}

	var bestColor Color
	bestAlpha := 0.0

	for oy := -1.0; oy <= 1; oy++ {
		for ox := -1.0; ox <= 1; ox++ {
			cell := base.Add(Vec2{ox, oy})
			d := DescriptorAt(cell, t)

			dist := aspectDistance(uv, d.Center, aspect)
			outer := d.Radius
			if dist >= outer {
				continue
			}

			// Strictly-greater comparison: ties keep the earlier
			// candidate in scan order.
			alpha := 1 - smoothstep(outer-eyeEdgeWidth, outer, dist)
			if alpha <= bestAlpha {
				continue
			}
			bestAlpha = alpha
			bestColor = shadeEye(cell, dist, outer, t, th)
		}
	}

	return bestColor, bestAlpha * intensity * dampening
}

// shadeEye colors a single eye candidate at the given distance from its
// center: pupil disk inside the pulsing pupil radius, iris annulus between
// half the outer radius and the outer radius, sclera in between.
func shadeEye(cell Vec2, dist, outer, t float64, th Theme) Color {
	inner := 0.5 * outer

	irisMix := hash21(cell.Add(Vec2{5.2, 1.3}))
	iris := lerpColor(th.IrisA, th.IrisB, irisMix)

	// 0 inside the sclera, 1 in the annulus.
	ring := smoothstep(inner-eyeEdgeWidth, inner+eyeEdgeWidth, dist)
	col := lerpColor(th.Sclera, iris, ring)

	pupilRadius := inner * (0.55 + 0.25*math.Sin(2.0*t+cellPhase(cell)))
	pupil := 1 - smoothstep(pupilRadius-eyeEdgeWidth, pupilRadius+eyeEdgeWidth, dist)
	col = lerpColor(col, th.Pupil, pupil)
	col.A = 1
	return col
}

// aspectDistance is the Euclidean distance between two normalized points with
// the x axis stretched by the aspect ratio, so circular features stay
// circular on non-square images.
func aspectDistance(a, b Vec2, aspect float64) float64 {
	return math.Hypot((a.X-b.X)*aspect, a.Y-b.Y)
}
