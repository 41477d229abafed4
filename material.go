package tilelight

import "github.com/hajimehoshi/ebiten/v2"

// Material is the uniform data of the highlight effect: a tint multiplied
// into every sampled texel and the scroll speed in UV-space distance per
// second. Value type; immutable for the duration of one evaluation.
type Material struct {
	Color        Color
	AnimateSpeed float64
}

// Bindings is the explicit set of resources one evaluation reads: the
// material uniforms plus a texture and its sampler. The host injects one at
// draw setup instead of binding slots by position.
type Bindings struct {
	Material Material
	Texture  *Texture
	Sampler  Sampler
}

// Evaluate computes the fragment color at uv using the bound texture and
// sampler. Equivalent to Evaluate with a BoundTexture.
func (b Bindings) Evaluate(uv Vec2, time float64) Color {
	return Evaluate(uv, time, b.Material, BoundTexture{Texture: b.Texture, Sampler: b.Sampler})
}

// Indicator tint presets.
var (
	// ColorHostile is the hostile (damage) indicator tint, #ff932e at 0.9 alpha.
	ColorHostile = Color{R: 1.0, G: 0.576, B: 0.180, A: 0.9}
	// ColorSupport is the support (healing) indicator tint, #2f77eb at 0.9 alpha.
	ColorSupport = Color{R: 0.184, G: 0.467, B: 0.922, A: 0.9}
)

// indicatorSpeed is the default scroll speed of indicator materials.
const indicatorSpeed = 0.25

// HighlightMaterial is the GPU-facing material: uniform data plus the bound
// indicator texture and blend mode. One instance per material; reuse across
// tiles that share the same look.
type HighlightMaterial struct {
	Material
	Texture *ebiten.Image // indicator texture; nil renders the tint alone
	Blend   BlendMode

	uniforms   map[string]any
	colorF32   [4]float32 // persistent buffer to avoid per-frame slice escape
	colorSlice []float32  // persistent slice header pointing into colorF32
	shaderOp   ebiten.DrawRectShaderOptions
}

// NewHighlightMaterial creates a highlight material with the given uniform
// data and indicator texture.
func NewHighlightMaterial(mat Material, tex *ebiten.Image) *HighlightMaterial {
	m := &HighlightMaterial{
		Material: mat,
		Texture:  tex,
		uniforms: make(map[string]any, 3),
	}
	m.colorSlice = m.colorF32[:]
	m.uniforms["Color"] = m.colorSlice
	return m
}

// NewHostileIndicator creates the hostile (damage) indicator material.
func NewHostileIndicator(tex *ebiten.Image) *HighlightMaterial {
	return NewHighlightMaterial(Material{Color: ColorHostile, AnimateSpeed: indicatorSpeed}, tex)
}

// NewSupportIndicator creates the support (healing) indicator material.
func NewSupportIndicator(tex *ebiten.Image) *HighlightMaterial {
	return NewHighlightMaterial(Material{Color: ColorSupport, AnimateSpeed: indicatorSpeed}, tex)
}

// DrawTile submits one highlight quad of size w x h at (x, y) in dst
// coordinates, sampling the material's texture at the given animation time.
func (m *HighlightMaterial) DrawTile(dst *ebiten.Image, x, y float64, w, h int, time float64) {
	shader := ensureHighlightShader()
	tex := m.Texture
	if tex == nil {
		tex = ensureWhitePixel()
	}

	// Premultiply the tint for the shader (write in-place, no alloc).
	m.colorF32[0] = float32(m.Color.R * m.Color.A)
	m.colorF32[1] = float32(m.Color.G * m.Color.A)
	m.colorF32[2] = float32(m.Color.B * m.Color.A)
	m.colorF32[3] = float32(m.Color.A)
	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	m.uniforms["AnimateSpeed"] = float32(m.AnimateSpeed)
	m.uniforms["Time"] = float32(time)

	// DrawRectShader's rect must match the source image size; the GeoM maps
	// the texture-sized quad onto the tile.
	tw := tex.Bounds().Dx()
	th := tex.Bounds().Dy()
	m.shaderOp.GeoM.Reset()
	m.shaderOp.GeoM.Scale(float64(w)/float64(tw), float64(h)/float64(th))
	m.shaderOp.GeoM.Translate(x, y)
	m.shaderOp.Blend = m.Blend.EbitenBlend()
	m.shaderOp.Images[0] = tex
	m.shaderOp.Uniforms = m.uniforms
	dst.DrawRectShader(tw, th, shader, &m.shaderOp)
}

// --- White pixel singleton (no sync.Once — tilelight is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Used by materials with no indicator texture.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(ColorWhite.toRGBA())
	}
	return whitePixelImage
}
