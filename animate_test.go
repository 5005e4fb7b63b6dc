package reverie

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenIntensityReachesTarget(t *testing.T) {
	s := Settings{Intensity: 0}
	tw := TweenIntensity(&s, 1, 2, ease.Linear)

	tw.Update(2.5)
	if !tw.Done {
		t.Error("tween not done after full duration")
	}
	if !almostEqual(s.Intensity, 1, 1e-6) {
		t.Errorf("intensity = %v, want 1", s.Intensity)
	}
}

func TestTweenIntensityLinearMidpoint(t *testing.T) {
	s := Settings{Intensity: 0}
	tw := TweenIntensity(&s, 1, 2, ease.Linear)

	tw.Update(1)
	if tw.Done {
		t.Error("tween done at midpoint")
	}
	if !almostEqual(s.Intensity, 0.5, 1e-6) {
		t.Errorf("intensity at midpoint = %v, want 0.5", s.Intensity)
	}
}

func TestTweenIntensityRampDown(t *testing.T) {
	s := Settings{Intensity: 0.8}
	tw := TweenIntensity(&s, 0.2, 1, ease.Linear)

	tw.Update(0.5)
	if !almostEqual(s.Intensity, 0.5, 1e-6) {
		t.Errorf("intensity halfway down = %v, want 0.5", s.Intensity)
	}
	tw.Update(0.5)
	if !almostEqual(s.Intensity, 0.2, 1e-6) {
		t.Errorf("final intensity = %v, want 0.2", s.Intensity)
	}
}

func TestTweenIntensityDoneIsNoOp(t *testing.T) {
	s := Settings{Intensity: 0}
	tw := TweenIntensity(&s, 1, 1, ease.Linear)
	tw.Update(2)
	s.Intensity = 0.42
	tw.Update(1)
	if s.Intensity != 0.42 {
		t.Errorf("finished tween overwrote intensity: %v", s.Intensity)
	}
}
