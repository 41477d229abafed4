package tilelight

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a HighlightMaterial
// simultaneously. Create one via the convenience constructors
// (TweenMaterialColor, TweenMaterialAlpha, TweenAnimateSpeed) and call
// Update(dt) each frame.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Done is set once every tween has finished.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenMaterialColor creates a TweenGroup that animates all four components
// of the material's tint to the target color over the specified duration.
func TweenMaterialColor(m *HighlightMaterial, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4}
	g.tweens[0] = gween.New(float32(m.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(m.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(m.Color.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(m.Color.A), float32(to.A), duration, fn)
	g.fields[0] = &m.Color.R
	g.fields[1] = &m.Color.G
	g.fields[2] = &m.Color.B
	g.fields[3] = &m.Color.A
	return g
}

// TweenMaterialAlpha creates a TweenGroup that animates the material's tint
// alpha to the target value. Used for highlight fade-in and fade-out.
func TweenMaterialAlpha(m *HighlightMaterial, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(m.Color.A), float32(to), duration, fn)
	g.fields[0] = &m.Color.A
	return g
}

// TweenAnimateSpeed creates a TweenGroup that animates the material's scroll
// speed to the target value.
func TweenAnimateSpeed(m *HighlightMaterial, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(m.AnimateSpeed), float32(to), duration, fn)
	g.fields[0] = &m.AnimateSpeed
	return g
}
