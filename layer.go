package tilelight

import "github.com/hajimehoshi/ebiten/v2"

// HighlightLayer owns the per-tile highlight assignments for a grid and the
// animation clock that drives their scroll. It is the glue between the grid
// model and the fragment shader: Update advances time once per frame, Draw
// submits one shader quad per highlighted tile.
//
// Highlighted tiles are disjoint quads, so draw order between them does not
// matter and map iteration order is fine.
type HighlightLayer struct {
	// Tile dimensions in pixels.
	TileWidth  int
	TileHeight int

	grid       *Grid
	highlights map[Coordinates]*HighlightMaterial
	elapsed    float64
}

// NewHighlightLayer creates a highlight layer over the given grid.
func NewHighlightLayer(grid *Grid, tileWidth, tileHeight int) *HighlightLayer {
	return &HighlightLayer{
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		grid:       grid,
		highlights: make(map[Coordinates]*HighlightMaterial),
	}
}

// Grid returns the grid this layer highlights.
func (l *HighlightLayer) Grid() *Grid {
	return l.grid
}

// Update advances the animation clock by dt seconds.
func (l *HighlightLayer) Update(dt float64) {
	l.elapsed += dt
}

// Time returns the elapsed animation time in seconds.
func (l *HighlightLayer) Time() float64 {
	return l.elapsed
}

// Highlight assigns a material to a single tile. Coordinates with no tile in
// the grid are ignored. Reports whether the highlight was applied.
func (l *HighlightLayer) Highlight(c Coordinates, mat *HighlightMaterial) bool {
	if _, ok := l.grid.Get(c); !ok {
		return false
	}
	if mat == nil {
		delete(l.highlights, c)
		return true
	}
	l.highlights[c] = mat
	return true
}

// HighlightRange applies mat to every tile of the range, offset from origin,
// that is present in the grid. Returns the number of tiles highlighted.
func (l *HighlightLayer) HighlightRange(origin Coordinates, r *Range, mat *HighlightMaterial) int {
	count := 0
	for _, offset := range r.Tiles() {
		if l.Highlight(origin.Add(offset), mat) {
			count++
		}
	}
	return count
}

// MaterialAt returns the material assigned to c, or nil.
func (l *HighlightLayer) MaterialAt(c Coordinates) *HighlightMaterial {
	return l.highlights[c]
}

// ClearHighlight removes the highlight at c, if any.
func (l *HighlightLayer) ClearHighlight(c Coordinates) {
	delete(l.highlights, c)
}

// ClearHighlights removes every highlight.
func (l *HighlightLayer) ClearHighlights() {
	clear(l.highlights)
}

// HighlightCount returns the number of highlighted tiles.
func (l *HighlightLayer) HighlightCount() int {
	return len(l.highlights)
}

// Draw submits one shader quad per highlighted tile visible in dst.
// (viewX, viewY) is the world-space position of dst's top-left corner.
func (l *HighlightLayer) Draw(dst *ebiten.Image, viewX, viewY float64) {
	bounds := dst.Bounds()
	view := Rect{
		X:      viewX,
		Y:      viewY,
		Width:  float64(bounds.Dx()),
		Height: float64(bounds.Dy()),
	}
	tw := float64(l.TileWidth)
	th := float64(l.TileHeight)

	for c, mat := range l.highlights {
		pos := c.Local(tw, th)
		if !view.Intersects(Rect{X: pos.X, Y: pos.Y, Width: tw, Height: th}) {
			continue
		}
		mat.DrawTile(dst, pos.X-viewX, pos.Y-viewY, l.TileWidth, l.TileHeight, l.elapsed)
	}
}
