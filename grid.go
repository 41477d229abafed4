package tilelight

import "math"

// HighGroundHeight is the extra height of high-ground tiles, in tile units.
const HighGroundHeight = 0.25

// TileKind determines what can be deployed on a tile and whether units can
// cross it.
type TileKind uint8

const (
	TileGround TileKind = iota
	TileHighGround
)

// Height returns the kind's height offset in tile units.
func (k TileKind) Height() float64 {
	if k == TileHighGround {
		return HighGroundHeight
	}
	return 0
}

// Coordinates addresses one tile on the grid.
type Coordinates struct {
	X, Y int
}

// Add returns the componentwise sum of c and other.
func (c Coordinates) Add(other Coordinates) Coordinates {
	return Coordinates{X: c.X + other.X, Y: c.Y + other.Y}
}

// Local returns the world-space position of the tile's top-left corner for
// the given tile dimensions.
func (c Coordinates) Local(tileW, tileH float64) Vec2 {
	return Vec2{X: float64(c.X) * tileW, Y: float64(c.Y) * tileH}
}

// CoordinatesAt converts a world-space point to the coordinates of the tile
// containing it.
func CoordinatesAt(p Vec2, tileW, tileH float64) Coordinates {
	return Coordinates{
		X: int(math.Floor(p.X / tileW)),
		Y: int(math.Floor(p.Y / tileH)),
	}
}

// Tile holds the gameplay data of one grid cell.
type Tile struct {
	Kind       TileKind
	Deployable bool
}

// Grid is a sparse coordinate-to-tile lookup. Tiles exist only where Set has
// placed them; highlight operations silently skip coordinates with no tile.
type Grid struct {
	lookup map[Coordinates]Tile
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{lookup: make(map[Coordinates]Tile)}
}

// Set places or replaces the tile at c.
func (g *Grid) Set(c Coordinates, t Tile) {
	g.lookup[c] = t
}

// Get returns the tile at c and whether one exists there.
func (g *Grid) Get(c Coordinates) (Tile, bool) {
	t, ok := g.lookup[c]
	return t, ok
}

// Remove deletes the tile at c, if any.
func (g *Grid) Remove(c Coordinates) {
	delete(g.lookup, c)
}

// Len returns the number of tiles in the grid.
func (g *Grid) Len() int {
	return len(g.lookup)
}
