package reverie

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

// Source is a read-only pixel buffer the effect samples from. It is built
// once from any image.Image and then shared, unmodified, by every pixel
// evaluation; sampling is bilinear with clamp-to-edge addressing.
type Source struct {
	width  int
	height int
	data   []uint8 // NRGBA, 4 bytes per pixel
}

// NewSource converts img into a sampleable Source. The image height must be
// non-zero; the aspect ratio computation divides by it.
func NewSource(img image.Image) *Source {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if h == 0 {
		panic("reverie: source image height is zero")
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.Copy(nrgba, image.Point{}, img, bounds, xdraw.Src, nil)

	return &Source{width: w, height: h, data: nrgba.Pix}
}

// Width returns the source width in pixels.
func (s *Source) Width() int {
	return s.width
}

// Height returns the source height in pixels.
func (s *Source) Height() int {
	return s.height
}

// Aspect returns the width/height ratio used for circular distance
// correction.
func (s *Source) Aspect() float64 {
	return float64(s.width) / float64(s.height)
}

// Sample returns the bilinearly filtered color at a normalized coordinate.
// Coordinates outside [0,1]² clamp to the edge texel, so slightly
// out-of-range lookups (chromatic aberration near the borders) stay defined.
func (s *Source) Sample(uv Vec2) Color {
	// Texel-center convention: uv 0.5/width is the center of column 0.
	fx := uv.X*float64(s.width) - 0.5
	fy := uv.Y*float64(s.height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := s.texel(x0, y0)
	c10 := s.texel(x0+1, y0)
	c01 := s.texel(x0, y0+1)
	c11 := s.texel(x0+1, y0+1)

	top := lerpColorA(c00, c10, tx)
	bottom := lerpColorA(c01, c11, tx)
	return lerpColorA(top, bottom, ty)
}

// texel returns the color of a single pixel with clamp-to-edge addressing.
func (s *Source) texel(x, y int) Color {
	if x < 0 {
		x = 0
	} else if x >= s.width {
		x = s.width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= s.height {
		y = s.height - 1
	}
	i := (y*s.width + x) * 4
	return Color{
		R: float64(s.data[i+0]) / 255,
		G: float64(s.data[i+1]) / 255,
		B: float64(s.data[i+2]) / 255,
		A: float64(s.data[i+3]) / 255,
	}
}

// lerpColorA interpolates all four channels, unlike lerpColor which carries
// alpha from its first argument.
func lerpColorA(a, b Color, t float64) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
		A: a.A + (b.A-a.A)*t,
	}
}
