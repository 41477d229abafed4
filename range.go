package tilelight

// Direction is a facing for a Range, in 90-degree steps.
type Direction uint8

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// sin and cos are the integer rotation coefficients for each direction.
func (d Direction) sin() int {
	switch d {
	case DirUp:
		return 1
	case DirDown:
		return -1
	default:
		return 0
	}
}

func (d Direction) cos() int {
	switch d {
	case DirRight:
		return 1
	case DirLeft:
		return -1
	default:
		return 0
	}
}

// difference returns how many 90-degree turns d is from other, as a Direction.
func (d Direction) difference(other Direction) Direction {
	return directionFromTurns(int(d) - int(other))
}

// directionFromTurns normalizes a signed turn count into a Direction.
func directionFromTurns(n int) Direction {
	n %= 4
	if n < 0 {
		n += 4
	}
	return Direction(n)
}

// Range is a set of coordinate offsets relative to an origin tile, with a
// facing direction. Ranges describe areas of effect: the tiles an operator
// attacks, heals, or threatens.
type Range struct {
	tiles     []Coordinates
	direction Direction
}

// NewRange creates a range from the given offsets, copying the slice.
// The default facing is DirRight.
func NewRange(tiles []Coordinates) *Range {
	r := &Range{
		tiles:     make([]Coordinates, len(tiles)),
		direction: DirRight,
	}
	copy(r.tiles, tiles)
	return r
}

// Tiles returns the offsets of the range, in its current facing.
func (r *Range) Tiles() []Coordinates {
	return r.tiles
}

// Direction returns the direction the range is facing.
func (r *Range) Direction() Direction {
	return r.direction
}

// FaceTo rotates the offsets to face the given direction, in 90-degree steps
// around the origin. Both components of each offset rotate from the
// pre-rotation pair.
func (r *Range) FaceTo(d Direction) {
	diff := r.direction.difference(d)
	sin, cos := diff.sin(), diff.cos()
	for i, t := range r.tiles {
		r.tiles[i] = Coordinates{
			X: t.X*cos - t.Y*sin,
			Y: t.X*sin + t.Y*cos,
		}
	}
	r.direction = d
}
