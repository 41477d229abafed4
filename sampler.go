package tilelight

import (
	"image"
	"math"
)

// AddressMode resolves texture coordinates outside [0, 1).
type AddressMode uint8

const (
	AddressRepeat AddressMode = iota // tile the texture (floor-mod)
	AddressClamp                     // clamp to the edge texel
	AddressMirror                    // reflect at every integer boundary
)

// FilterMode selects how sub-texel coordinates are resolved.
type FilterMode uint8

const (
	FilterNearest FilterMode = iota // snap to the containing texel
	FilterLinear                    // bilinear blend of the 4 surrounding texels
)

// Sampler describes the addressing and filtering policy for texture lookups.
// The zero value is repeat addressing on both axes with nearest filtering,
// which matches the GPU shader's behavior.
type Sampler struct {
	AddressU AddressMode
	AddressV AddressMode
	Filter   FilterMode
}

// SampledTexture is a texture paired with the addressing policy used to
// resolve lookups, including coordinates outside [0, 1).
type SampledTexture interface {
	Sample(u, v float64) Color
}

// Texture is a CPU-side texel grid with straight (non-premultiplied) alpha.
type Texture struct {
	w, h   int
	texels []Color
}

// NewTexture creates a texture of the given size with all texels transparent.
func NewTexture(w, h int) *Texture {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Texture{w: w, h: h, texels: make([]Color, w*h)}
}

// NewTextureFromImage converts an already-loaded image into a texture.
// Premultiplied sources are un-premultiplied so texels hold straight alpha.
func NewTextureFromImage(img image.Image) *Texture {
	bounds := img.Bounds()
	t := NewTexture(bounds.Dx(), bounds.Dy())
	for y := 0; y < t.h; y++ {
		for x := 0; x < t.w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			c := Color{A: float64(a) / 0xffff}
			if a > 0 {
				c.R = float64(r) / float64(a)
				c.G = float64(g) / float64(a)
				c.B = float64(b) / float64(a)
			}
			t.texels[y*t.w+x] = c
		}
	}
	return t
}

// Width returns the texture width in texels.
func (t *Texture) Width() int { return t.w }

// Height returns the texture height in texels.
func (t *Texture) Height() int { return t.h }

// SetTexel sets the texel at (x, y). Out-of-bounds writes are ignored.
func (t *Texture) SetTexel(x, y int, c Color) {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return
	}
	t.texels[y*t.w+x] = c
}

// Texel returns the texel at (x, y). Out-of-bounds reads return transparent.
func (t *Texture) Texel(x, y int) Color {
	if x < 0 || x >= t.w || y < 0 || y >= t.h {
		return Color{}
	}
	return t.texels[y*t.w+x]
}

// BoundTexture pairs a Texture with a Sampler, forming the SampledTexture the
// evaluator reads. The sampler alone owns out-of-range coordinate handling.
type BoundTexture struct {
	Texture *Texture
	Sampler Sampler
}

// Sample resolves (u, v) against the texture per the sampler policy.
// A nil or empty texture samples as transparent.
func (b BoundTexture) Sample(u, v float64) Color {
	t := b.Texture
	if t == nil || t.w == 0 || t.h == 0 {
		return Color{}
	}
	if b.Sampler.Filter == FilterLinear {
		return b.sampleLinear(u, v)
	}
	x := wrapIndex(int(math.Floor(u*float64(t.w))), t.w, b.Sampler.AddressU)
	y := wrapIndex(int(math.Floor(v*float64(t.h))), t.h, b.Sampler.AddressV)
	return t.texels[y*t.w+x]
}

// sampleLinear blends the 4 texels surrounding the sample point, with the
// addressing mode applied per texel index so filtering across the texture
// border follows the same policy as the lookup itself.
func (b BoundTexture) sampleLinear(u, v float64) Color {
	t := b.Texture
	fx := u*float64(t.w) - 0.5
	fy := v*float64(t.h) - 0.5
	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	x0w := wrapIndex(x0, t.w, b.Sampler.AddressU)
	x1w := wrapIndex(x0+1, t.w, b.Sampler.AddressU)
	y0w := wrapIndex(y0, t.h, b.Sampler.AddressV)
	y1w := wrapIndex(y0+1, t.h, b.Sampler.AddressV)

	c00 := t.texels[y0w*t.w+x0w]
	c10 := t.texels[y0w*t.w+x1w]
	c01 := t.texels[y1w*t.w+x0w]
	c11 := t.texels[y1w*t.w+x1w]

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	return Color{
		R: c00.R*w00 + c10.R*w10 + c01.R*w01 + c11.R*w11,
		G: c00.G*w00 + c10.G*w10 + c01.G*w01 + c11.G*w11,
		B: c00.B*w00 + c10.B*w10 + c01.B*w01 + c11.B*w11,
		A: c00.A*w00 + c10.A*w10 + c01.A*w01 + c11.A*w11,
	}
}

// wrapIndex resolves a texel index against an extent of n per the mode.
func wrapIndex(i, n int, mode AddressMode) int {
	switch mode {
	case AddressClamp:
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	case AddressMirror:
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return i
	default: // AddressRepeat
		i %= n
		if i < 0 {
			i += n
		}
		return i
	}
}
