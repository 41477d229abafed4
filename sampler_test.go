package tilelight

import (
	"image"
	"image/color"
	"testing"
)

// --- wrapIndex ---

func TestWrapIndexRepeat(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want int
	}{
		{"in range", 2, 2},
		{"at extent", 4, 0},
		{"past extent", 6, 2},
		{"negative", -1, 3},
		{"far negative", -5, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapIndex(tt.i, 4, AddressRepeat)
			if got != tt.want {
				t.Errorf("wrapIndex(%d, 4, repeat) = %d, want %d", tt.i, got, tt.want)
			}
		})
	}
}

func TestWrapIndexClamp(t *testing.T) {
	tests := []struct {
		name string
		i    int
		want int
	}{
		{"in range", 2, 2},
		{"at extent", 4, 3},
		{"past extent", 100, 3},
		{"negative", -1, 0},
		{"far negative", -100, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapIndex(tt.i, 4, AddressClamp)
			if got != tt.want {
				t.Errorf("wrapIndex(%d, 4, clamp) = %d, want %d", tt.i, got, tt.want)
			}
		})
	}
}

func TestWrapIndexMirror(t *testing.T) {
	// Extent 4 reflects with period 8: 0 1 2 3 3 2 1 0 | 0 1 2 3 ...
	tests := []struct {
		name string
		i    int
		want int
	}{
		{"in range", 2, 2},
		{"first reflection", 4, 3},
		{"deep reflection", 6, 1},
		{"end of reflection", 7, 0},
		{"second period", 8, 0},
		{"negative reflects", -1, 0},
		{"negative deep", -4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapIndex(tt.i, 4, AddressMirror)
			if got != tt.want {
				t.Errorf("wrapIndex(%d, 4, mirror) = %d, want %d", tt.i, got, tt.want)
			}
		})
	}
}

// --- Texture ---

func TestTextureSetAndGet(t *testing.T) {
	tex := NewTexture(2, 2)
	c := Color{0.25, 0.5, 0.75, 1}
	tex.SetTexel(1, 0, c)
	if got := tex.Texel(1, 0); got != c {
		t.Errorf("Texel(1, 0) = %+v, want %+v", got, c)
	}
	if got := tex.Texel(0, 0); (got != Color{}) {
		t.Errorf("unset texel = %+v, want zero", got)
	}
}

func TestTextureOutOfBounds(t *testing.T) {
	tex := NewTexture(2, 2)
	tex.SetTexel(-1, 0, ColorWhite) // ignored
	tex.SetTexel(0, 5, ColorWhite)  // ignored
	if got := tex.Texel(-1, 0); (got != Color{}) {
		t.Errorf("out-of-bounds read = %+v, want zero", got)
	}
	if got := tex.Texel(0, 5); (got != Color{}) {
		t.Errorf("out-of-bounds read = %+v, want zero", got)
	}
}

func TestNewTextureNegativeSize(t *testing.T) {
	tex := NewTexture(-3, -1)
	if tex.Width() != 0 || tex.Height() != 0 {
		t.Errorf("negative size should clamp to 0x0, got %dx%d", tex.Width(), tex.Height())
	}
}

func TestNewTextureFromImage(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 0, G: 255, B: 0, A: 128})

	tex := NewTextureFromImage(img)
	if tex.Width() != 2 || tex.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", tex.Width(), tex.Height())
	}
	red := tex.Texel(0, 0)
	assertNear(t, "red.R", red.R, 1)
	assertNear(t, "red.A", red.A, 1)
	// Half-transparent green converts back to straight alpha.
	green := tex.Texel(1, 0)
	if green.G < 0.95 || green.G > 1.05 {
		t.Errorf("green.G = %v, want ~1 (straight alpha)", green.G)
	}
	if green.A < 0.49 || green.A > 0.52 {
		t.Errorf("green.A = %v, want ~0.5", green.A)
	}
}

func TestNewTextureFromImageZeroAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	tex := NewTextureFromImage(img)
	if got := tex.Texel(0, 0); (got != Color{}) {
		t.Errorf("fully transparent texel = %+v, want zero", got)
	}
}

// --- Nearest sampling ---

func TestSampleNearestCenters(t *testing.T) {
	tex := checkerTexture()
	b := BoundTexture{Texture: tex, Sampler: Sampler{Filter: FilterNearest}}
	// Texel centers of a 4x4 texture are at (i + 0.5) / 4.
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			u := (float64(x) + 0.5) / 4
			v := (float64(y) + 0.5) / 4
			if got, want := b.Sample(u, v), tex.Texel(x, y); got != want {
				t.Errorf("Sample(%v, %v) = %+v, want texel(%d,%d) %+v", u, v, got, x, y, want)
			}
		}
	}
}

func TestSampleNearestEdgePolicy(t *testing.T) {
	tex := checkerTexture()
	repeat := BoundTexture{Texture: tex, Sampler: Sampler{AddressU: AddressRepeat}}
	clamp := BoundTexture{Texture: tex, Sampler: Sampler{AddressU: AddressClamp}}

	// u = 1.0 is texel index 4: repeat wraps to 0, clamp pins to 3.
	if got, want := repeat.Sample(1.0, 0.1), tex.Texel(0, 0); got != want {
		t.Errorf("repeat Sample(1.0) = %+v, want texel(0,0) %+v", got, want)
	}
	if got, want := clamp.Sample(1.0, 0.1), tex.Texel(3, 0); got != want {
		t.Errorf("clamp Sample(1.0) = %+v, want texel(3,0) %+v", got, want)
	}
}

func TestSampleNearestNegative(t *testing.T) {
	tex := checkerTexture()
	repeat := BoundTexture{Texture: tex, Sampler: Sampler{AddressU: AddressRepeat, AddressV: AddressRepeat}}
	// u = -0.3 is texel index floor(-1.2) = -2, repeating to 2.
	if got, want := repeat.Sample(-0.3, 0.1), tex.Texel(2, 0); got != want {
		t.Errorf("repeat Sample(-0.3) = %+v, want texel(2,0) %+v", got, want)
	}
}

func TestSampleNilTexture(t *testing.T) {
	b := BoundTexture{}
	if got := b.Sample(0.5, 0.5); (got != Color{}) {
		t.Errorf("nil texture Sample = %+v, want zero", got)
	}
}

// --- Linear sampling ---

func TestSampleLinearAtTexelCenter(t *testing.T) {
	tex := checkerTexture()
	b := BoundTexture{Texture: tex, Sampler: Sampler{Filter: FilterLinear}}
	// At a texel center the bilinear weights collapse onto that texel.
	got := b.Sample(0.625, 0.375) // center of texel (2, 1)
	assertColorNear(t, "linear at center", got, tex.Texel(2, 1))
}

func TestSampleLinearMidpoint(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetTexel(0, 0, Color{0, 0, 0, 1})
	tex.SetTexel(1, 0, Color{1, 1, 1, 1})
	b := BoundTexture{Texture: tex, Sampler: Sampler{Filter: FilterLinear}}

	// u = 0.5 sits exactly between the two texel centers.
	got := b.Sample(0.5, 0.5)
	assertColorNear(t, "linear midpoint", got, Color{0.5, 0.5, 0.5, 1})
}

func TestSampleLinearBorderPolicy(t *testing.T) {
	tex := NewTexture(2, 1)
	tex.SetTexel(0, 0, Color{0, 0, 0, 1})
	tex.SetTexel(1, 0, Color{1, 1, 1, 1})

	// u = 0 sits half a texel left of texel 0's center. Repeat blends the two
	// border texels equally; clamp collapses onto texel 0.
	repeat := BoundTexture{Texture: tex, Sampler: Sampler{Filter: FilterLinear, AddressU: AddressRepeat}}
	clamp := BoundTexture{Texture: tex, Sampler: Sampler{Filter: FilterLinear, AddressU: AddressClamp}}

	assertColorNear(t, "repeat border", repeat.Sample(0, 0.5), Color{0.5, 0.5, 0.5, 1})
	assertColorNear(t, "clamp border", clamp.Sample(0, 0.5), Color{0, 0, 0, 1})
}
