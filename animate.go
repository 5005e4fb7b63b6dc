package reverie

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// IntensityTween eases Settings.Intensity toward a target value over time.
// Create one with TweenIntensity and call Update(dt) each frame; the tween
// writes into the Settings it was given. There is no global animation
// manager — callers drive Update themselves.
type IntensityTween struct {
	tween  *gween.Tween
	target *Settings
	Done   bool
}

// TweenIntensity creates a tween that ramps s.Intensity to the given value
// over duration seconds using the easing function.
func TweenIntensity(s *Settings, to float64, duration float32, fn ease.TweenFunc) *IntensityTween {
	return &IntensityTween{
		tween:  gween.New(float32(s.Intensity), float32(to), duration, fn),
		target: s,
	}
}

// Update advances the tween by dt seconds and writes the eased value into
// the target settings. Once the tween finishes, Done is set and further
// calls are no-ops.
func (it *IntensityTween) Update(dt float32) {
	if it.Done {
		return
	}
	val, finished := it.tween.Update(dt)
	it.target.Intensity = float64(val)
	it.Done = finished
}
