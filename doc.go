// Package reverie is a DeepDream-style post-processing effect for
// [Ebitengine]: a composite of warm tint, chromatic aberration, procedurally
// placed animated eyes, and curling swirl tendrils, driven by a single
// intensity parameter and elapsed time.
//
// The effect exists in two forms that share one mathematical definition.
// [DreamFilter] runs it on the GPU as a Kage shader and implements the same
// Filter contract as [willow], so it drops into a willow filter chain:
//
//	filter := reverie.NewDreamFilter()
//	// each frame:
//	filter.Intensity = 0.8
//	filter.Time = elapsed
//	filter.Apply(src, dst)
//
// [Evaluate] and [Render] run the identical math on the CPU. Evaluate is a
// pure per-pixel function — no shared state, safe to call from any number of
// goroutines — and Render maps it over an image in parallel:
//
//	src := reverie.NewSource(img)
//	out := image.NewNRGBA(img.Bounds())
//	reverie.Render(out, src, reverie.Settings{Intensity: 1, Time: 0}, reverie.DefaultTheme())
//
// # How the patterns work
//
// Normalized coordinate space is divided into a 7x7 grid. Each cell anchors
// one eye whose position, size, drift, pupil phase, curl rate, and arm count
// all derive from deterministic hashes of the cell index ([DescriptorAt]).
// Every pixel scans the 3x3 neighborhood of its home cell so features that
// drift or reach across a cell boundary render without seams. Overlapping
// eyes composite winner-take-all on alpha; swirl contributions fold together
// through a dampened max accumulator.
//
// Effects activate in sequence as intensity rises — aberration, tint, swirl,
// eyes — via overlapping smoothstep ramps ([Activations]). Below an
// intensity of 0.001 the effect is an exact passthrough.
//
// Colors are themeable: see [Theme], [DefaultTheme], and [ThemeFromStrings],
// which accepts CSS color strings.
//
// [Ebitengine]: https://ebitengine.org
// [willow]: https://github.com/phanxgames/willow
package reverie
