package reverie

import (
	"image"
	"runtime"
	"sync"

	xdraw "golang.org/x/image/draw"
)

// Render evaluates the effect for every pixel of dst, sampling from src.
// Rows are striped across GOMAXPROCS workers; each pixel is an independent
// Evaluate call with no shared mutable state, so the output is identical to
// a sequential loop regardless of scheduling.
//
// dst and src may have different dimensions; the normalized coordinate space
// belongs to dst. Panics if dst has zero height.
func Render(dst *image.NRGBA, src *Source, s Settings, th Theme) {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if h == 0 {
		panic("reverie: destination height is zero")
	}
	aspect := float64(w) / float64(h)

	workers := runtime.GOMAXPROCS(0)
	if workers > h {
		workers = h
	}

	var wg sync.WaitGroup
	wg.Add(workers)
	for wi := 0; wi < workers; wi++ {
		go func(start int) {
			defer wg.Done()
			for y := start; y < h; y += workers {
				renderRow(dst, src, s, th, y, w, h, aspect)
			}
		}(wi)
	}
	wg.Wait()
}

// renderRow evaluates one row of output pixels at texel centers.
func renderRow(dst *image.NRGBA, src *Source, s Settings, th Theme, y, w, h int, aspect float64) {
	bounds := dst.Bounds()
	for x := 0; x < w; x++ {
		uv := Vec2{
			X: (float64(x) + 0.5) / float64(w),
			Y: (float64(y) + 0.5) / float64(h),
		}
		c := Evaluate(uv, aspect, src, s, th)
		i := dst.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
		dst.Pix[i+0] = uint8(c.R*255 + 0.5)
		dst.Pix[i+1] = uint8(c.G*255 + 0.5)
		dst.Pix[i+2] = uint8(c.B*255 + 0.5)
		dst.Pix[i+3] = 255
	}
}

// RenderImage is a convenience wrapper: it renders the effect over img at the
// given output size and returns a new NRGBA image. When the sizes differ the
// source is rescaled first with bilinear filtering, so the effect's grid
// stays aligned to the output rather than the source.
func RenderImage(img image.Image, width, height int, s Settings, th Theme) *image.NRGBA {
	if height <= 0 || width <= 0 {
		panic("reverie: output dimensions must be positive")
	}

	srcBounds := img.Bounds()
	if srcBounds.Dx() != width || srcBounds.Dy() != height {
		scaled := image.NewNRGBA(image.Rect(0, 0, width, height))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, srcBounds, xdraw.Src, nil)
		img = scaled
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	Render(dst, NewSource(img), s, th)
	return dst
}
