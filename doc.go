// Package tilelight renders animated tile highlights for grid-based games
// using [Ebitengine].
//
// A highlight is a tile-sized quad whose indicator texture scrolls diagonally
// over time and is tinted by a material color. The package provides both a
// GPU path (a Kage fragment shader driven by [HighlightMaterial] and
// [HighlightLayer]) and a pure CPU reference evaluator ([Evaluate]) that
// computes the exact same per-fragment color, so the effect is testable
// without a display.
//
// # Quick start
//
//	grid := tilelight.NewGrid()
//	grid.Set(tilelight.Coordinates{X: 3, Y: 4}, tilelight.Tile{Kind: tilelight.TileGround})
//
//	layer := tilelight.NewHighlightLayer(grid, 32, 32)
//	hostile := tilelight.NewHostileIndicator(indicatorTexture)
//	layer.Highlight(tilelight.Coordinates{X: 3, Y: 4}, hostile)
//
// Then, inside an [ebiten.Game]:
//
//	func (g *Game) Update() error        { g.layer.Update(1.0 / 60); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.layer.Draw(s, g.viewX, g.viewY) }
//
// # Scroll animation
//
// The fragment program adds time * AnimateSpeed to both UV axes and wraps
// the sum by subtracting its truncated integer part. Truncation (not a
// floor-mod) is load-bearing: negative sums wrap to negative coordinates,
// which the bound sampler's addressing mode then resolves. See [Evaluate]
// for the exact contract.
//
// Area highlighting follows the grid model: a [Range] of coordinate offsets
// with a facing [Direction] is applied around an origin tile via
// [HighlightLayer.HighlightRange]. Material parameters can be animated with
// the tween constructors ([TweenMaterialColor], [TweenAnimateSpeed]) built
// on [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package tilelight
