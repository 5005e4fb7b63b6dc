package reverie

import "github.com/hajimehoshi/ebiten/v2"

// Filter is the interface for post-processing effects applied to a rendered
// image. It matches willow's filter contract, so a DreamFilter slots into
// any willow filter chain unchanged.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to
	// accommodate the effect. Zero means no padding.
	Padding() int
}

// Lazy shader compilation, same pattern as willow: single-threaded use is
// assumed, no sync.Once.
var dreamShader *ebiten.Shader

func ensureDreamShader() *ebiten.Shader {
	if dreamShader == nil {
		s, err := ebiten.NewShader([]byte(dreamShaderSrc))
		if err != nil {
			panic("reverie: failed to compile dream shader: " + err.Error())
		}
		dreamShader = s
	}
	return dreamShader
}

// DreamFilter applies the dream effect on the GPU via a Kage shader. Set
// Intensity and Time each frame before calling Apply; both are read at Apply
// time only. The zero Theme is not usable — construct with NewDreamFilter,
// which installs DefaultTheme.
type DreamFilter struct {
	// Intensity is the overall effect strength, intended range [0, 1].
	Intensity float64
	// Time is elapsed seconds; it drives all animation.
	Time float64
	// Theme is the effect palette submitted as color uniforms.
	Theme Theme

	uniforms      map[string]any
	settingsF32   [4]float32 // persistent buffer to avoid per-frame slice escape
	settingsSlice []float32  // persistent slice header pointing into settingsF32
	colorF32      [6][3]float32
	colorSlices   [6][]float32
	shaderOp      ebiten.DrawRectShaderOptions
}

// themeUniformNames is ordered to match packUniforms' color list.
var themeUniformNames = [6]string{"IrisA", "IrisB", "Pupil", "Sclera", "Accent", "Warm"}

// NewDreamFilter creates a dream filter with the default theme, zero
// intensity, and zero time.
func NewDreamFilter() *DreamFilter {
	f := &DreamFilter{
		Theme:    DefaultTheme(),
		uniforms: make(map[string]any, 7),
	}
	f.settingsSlice = f.settingsF32[:]
	f.uniforms["Settings"] = f.settingsSlice
	for i, name := range themeUniformNames {
		f.colorSlices[i] = f.colorF32[i][:]
		f.uniforms[name] = f.colorSlices[i]
	}
	return f
}

// packUniforms writes the current settings and theme into the persistent
// float32 buffers already stored in the uniforms map. The two trailing
// settings floats are reserved and always zero; they keep the uniform block
// at the documented 16-byte layout.
func (f *DreamFilter) packUniforms() {
	f.settingsF32[0] = float32(f.Intensity)
	f.settingsF32[1] = float32(f.Time)
	f.settingsF32[2] = 0
	f.settingsF32[3] = 0

	colors := [6]Color{
		f.Theme.IrisA, f.Theme.IrisB, f.Theme.Pupil,
		f.Theme.Sclera, f.Theme.Accent, f.Theme.Warm,
	}
	for i, c := range colors {
		f.colorF32[i][0] = float32(c.R)
		f.colorF32[i][1] = float32(c.G)
		f.colorF32[i][2] = float32(c.B)
	}
}

// Apply renders the dream effect from src into dst.
func (f *DreamFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureDreamShader()
	f.packUniforms()
	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// Padding returns 0; the effect never writes outside the source bounds.
func (f *DreamFilter) Padding() int { return 0 }
