package reverie

import "math"

// GridSize is the number of feature cells along each axis of normalized
// coordinate space. Every eye is anchored to one cell of this 7x7 grid.
const GridSize = 7

const twoPi = 2 * math.Pi

// driftScale keeps the drift magnitude strictly below the feature radius:
// the two oscillators are in quadrature, so |drift| <= 0.70*sqrt(2)*radius.
const driftScale = 0.70

// Descriptor is the procedurally derived placement of one eye feature:
// its animated center and radius in normalized coordinate space, plus the
// grid cell it is anchored to.
type Descriptor struct {
	Center Vec2
	Radius float64
	Cell   Vec2
}

// DescriptorAt computes the feature descriptor for a grid cell at time t.
// It is a pure function: two evaluations with the same cell and time return
// bit-identical results, so every pixel that scans this cell agrees on where
// the feature is.
func DescriptorAt(cell Vec2, t float64) Descriptor {
	radius := cellRadius(cell)
	jitter := cellJitter(cell)
	drift := cellDrift(cell, t, radius)
	center := Vec2{
		X: (cell.X + 0.3 + jitter.X*0.4) / GridSize,
		Y: (cell.Y + 0.3 + jitter.Y*0.4) / GridSize,
	}.Add(drift)
	return Descriptor{Center: center, Radius: radius, Cell: cell}
}

// cellJitter is the static per-cell placement offset, both components in [0, 1).
func cellJitter(cell Vec2) Vec2 {
	return hash22(cell)
}

// cellRadius is the static per-cell feature radius. The range keeps the full
// swirl reach (3x radius) plus maximum drift inside one cell width, so the
// 3x3 neighborhood scan sees every feature that can touch a pixel.
func cellRadius(cell Vec2) float64 {
	return (0.12 + 0.10*hash21(cell)) / GridSize
}

// cellDrift is the animated displacement of the feature center at time t.
// Two sinusoids at different frequencies share a per-cell phase; the result
// is scaled by the feature's own radius, so |drift| never exceeds it.
func cellDrift(cell Vec2, t, radius float64) Vec2 {
	phase := hash21(cell.Add(Vec2{7.7, 3.1})) * twoPi
	return Vec2{
		X: math.Sin(0.60*t + phase),
		Y: math.Cos(0.83*t + phase),
	}.Scale(driftScale * radius)
}

// cellPhase is the per-cell animation phase used by the pupil pulse.
func cellPhase(cell Vec2) float64 {
	return hash21(cell.Add(Vec2{3.3, 9.1})) * twoPi
}
