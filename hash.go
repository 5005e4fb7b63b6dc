package reverie

import "math"

// Cell hashing. Both functions are deterministic and approximately uniform
// over [0, 1), with no visible correlation between adjacent integer inputs.
// The constants are the classic shader scramble pair; the Kage source in
// shader.go uses the same values so the CPU and GPU paths agree on feature
// placement.

// hash21 maps a 2D coordinate to a scalar in [0, 1).
func hash21(p Vec2) float64 {
	return fract(math.Sin(p.X*127.1+p.Y*311.7) * 43758.5453)
}

// hash22 maps a 2D coordinate to a vector with both components in [0, 1).
func hash22(p Vec2) Vec2 {
	return Vec2{
		X: fract(math.Sin(p.X*127.1+p.Y*311.7) * 43758.5453),
		Y: fract(math.Sin(p.X*269.5+p.Y*183.3) * 43758.5453),
	}
}
