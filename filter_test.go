package reverie

import (
	"strings"
	"testing"
)

func TestDreamFilterPadding(t *testing.T) {
	f := NewDreamFilter()
	if f.Padding() != 0 {
		t.Errorf("DreamFilter Padding() = %d, want 0", f.Padding())
	}
}

func TestNewDreamFilterDefaults(t *testing.T) {
	f := NewDreamFilter()
	if f.Intensity != 0 || f.Time != 0 {
		t.Errorf("new filter intensity/time = %v/%v, want 0/0", f.Intensity, f.Time)
	}
	if f.Theme != DefaultTheme() {
		t.Errorf("new filter theme = %+v, want DefaultTheme", f.Theme)
	}
}

func TestDreamFilterUniformKeys(t *testing.T) {
	f := NewDreamFilter()
	for _, key := range []string{"Settings", "IrisA", "IrisB", "Pupil", "Sclera", "Accent", "Warm"} {
		if _, ok := f.uniforms[key]; !ok {
			t.Errorf("uniform %q missing", key)
		}
	}
	if len(f.uniforms) != 7 {
		t.Errorf("uniform count = %d, want 7", len(f.uniforms))
	}
}

// packUniforms writes settings into the persistent buffer that the uniforms
// map already references, keeping the two reserved floats zero.
func TestDreamFilterPackSettings(t *testing.T) {
	f := NewDreamFilter()
	f.Intensity = 0.75
	f.Time = 12.5
	f.settingsF32[2] = 99 // must be overwritten back to the reserved zero
	f.packUniforms()

	got := f.uniforms["Settings"].([]float32)
	want := []float32{0.75, 12.5, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Settings[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDreamFilterPackTheme(t *testing.T) {
	f := NewDreamFilter()
	f.Theme.Accent = Color{0.25, 0.5, 0.75, 1}
	f.packUniforms()

	got := f.uniforms["Accent"].([]float32)
	want := []float32{0.25, 0.5, 0.75}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Accent[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// The buffers behind the uniform map never get reallocated; repacking reuses
// the same backing storage so Apply stays allocation-free per frame.
func TestDreamFilterUniformBuffersStable(t *testing.T) {
	f := NewDreamFilter()
	before := &f.uniforms["Settings"].([]float32)[0]
	f.Intensity = 1
	f.packUniforms()
	after := &f.uniforms["Settings"].([]float32)[0]
	if before != after {
		t.Error("packUniforms reallocated the settings buffer")
	}
}

// The shader source must carry the same placement constants as the CPU path;
// a drift here would desynchronize the GPU and CPU renders.
func TestShaderSourceMirrorsConstants(t *testing.T) {
	for _, fragment := range []string{
		"127.1, 311.7",
		"269.5, 183.3",
		"43758.5453",
		"0.12 + 0.10*hash21(cell)",
		"vec2(7.7, 3.1)",
		"0.70 * radius",
		"/ 7.0",
		"* 0.2",
		"3.0 * radius",
		"8.0",
	} {
		if !strings.Contains(dreamShaderSrc, fragment) {
			t.Errorf("shader source missing expected fragment %q", fragment)
		}
	}
}
