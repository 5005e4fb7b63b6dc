package reverie

// Settings are the global effect parameters, supplied by the caller each
// frame and read-only during evaluation. The GPU path submits them as a
// single vec4 uniform (intensity, time, two reserved floats) to keep a
// 16-byte layout.
type Settings struct {
	// Intensity is the overall effect strength. Intended range [0, 1];
	// values are not hard-clamped.
	Intensity float64
	// Time is elapsed seconds, monotonically increasing. It drives the
	// feature drift, pupil pulse, and swirl rotation.
	Time float64
}

// intensityEpsilon is the bypass threshold: below it the effect returns the
// source sample untouched and skips all procedural evaluation.
const intensityEpsilon = 0.001

// patternCap keeps the swirl and eye layers below full strength even at
// maximum global intensity.
const patternCap = 0.7

// Activations maps the single global intensity to the four per-effect
// strengths via smooth ramps over overlapping sub-ranges, so the layers
// switch on in sequence as intensity rises: aberration first, then tint,
// swirl, and finally the eyes. The swirl and eye values are additionally
// capped at 70% of their ramp.
func Activations(intensity float64) (aberration, tint, swirl, eye float64) {
	aberration = smoothstep(0.0, 0.4, intensity)
	tint = smoothstep(0.1, 0.6, intensity)
	swirl = smoothstep(0.3, 0.8, intensity) * patternCap
	eye = smoothstep(0.5, 1.0, intensity) * patternCap
	return aberration, tint, swirl, eye
}
