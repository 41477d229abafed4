package tilelight

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// highlightShaderSrc is the Kage twin of Evaluate. It normalizes the source
// pixel to UV space, applies the same truncation wrap as the CPU evaluator,
// then resolves the lookup with repeat addressing (imageSrc0At returns
// transparent outside the source region, so addressing must happen here).
const highlightShaderSrc = `//kage:unit pixels
package main

var Color vec4
var AnimateSpeed float
var Time float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	origin := imageSrc0Origin()
	size := imageSrc0Size()
	uv := (src - origin) / size
	scroll := Time * AnimateSpeed
	p := uv + vec2(scroll, scroll)
	// Truncation wrap: negative sums stay negative, matching Evaluate.
	p -= vec2(float(int(p.x)), float(int(p.y)))
	// Repeat addressing for the texture lookup.
	p = fract(p)
	c := imageSrc0At(origin + p*size)
	// Color is premultiplied; c is premultiplied. The componentwise product
	// is the premultiplied form of the straight-alpha product.
	return c * Color
}
`

// --- Lazy shader compilation (no sync.Once — tilelight is single-threaded) ---

var highlightShader *ebiten.Shader

func ensureHighlightShader() *ebiten.Shader {
	if highlightShader == nil {
		s, err := ebiten.NewShader([]byte(highlightShaderSrc))
		if err != nil {
			panic("tilelight: failed to compile highlight shader: " + err.Error())
		}
		highlightShader = s
	}
	return highlightShader
}

// wrapTrunc wraps v by subtracting its integer part, truncated toward zero.
// Unlike a floor-based mod, negative inputs produce negative results in
// (-1, 1); the sampler's addressing mode resolves those, not this function.
func wrapTrunc(v float64) float64 {
	return v - math.Trunc(v)
}

// Evaluate computes the output color for one fragment. It is the CPU
// reference for the highlight fragment program and is a pure function of its
// inputs:
//
//  1. scroll = time * mat.AnimateSpeed, one scalar shared by both UV axes
//     (this is what makes the texture drift diagonally).
//  2. Each axis of uv is offset by scroll and wrapped by truncation. For
//     negative sums the wrapped coordinate is negative; behavior outside
//     [0, 1) is delegated entirely to tex's addressing mode.
//  3. The sampled color is multiplied componentwise by mat.Color. No channel
//     is clamped or re-normalized here.
//
// Time is passed explicitly so evaluation stays testable in isolation; the
// host's frame clock supplies it.
func Evaluate(uv Vec2, time float64, mat Material, tex SampledTexture) Color {
	scroll := time * mat.AnimateSpeed
	u := wrapTrunc(uv.X + scroll)
	v := wrapTrunc(uv.Y + scroll)
	return mat.Color.Mul(tex.Sample(u, v))
}
