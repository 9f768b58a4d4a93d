package snake

import "math"

// Geometry maps the 1-based, row-major cell index space onto a square grid
// and holds the per-direction limit sets. A step that lands on a limit of
// the direction it was taken in has fallen off the board.
type Geometry struct {
	totalCells int
	side       int
	limits     [4][]int
}

// NewGeometry derives the side length and limit sets for totalCells.
// totalCells must be a positive perfect square.
func NewGeometry(totalCells int) (*Geometry, error) {
	side, ok := squareRoot(totalCells)
	if !ok {
		return nil, configErrorf("total cells", "%d is not a positive square number", totalCells)
	}

	g := &Geometry{totalCells: totalCells, side: side}
	for _, d := range Directions {
		g.limits[d] = g.calcLimits(d)
	}
	return g, nil
}

func (g *Geometry) calcLimits(d Direction) []int {
	limits := make([]int, 0, g.side)
	for i := 1; i <= g.side; i++ {
		var limit int
		switch d {
		case Right:
			limit = g.side*i + 1
		case Down:
			limit = g.totalCells + i
		case Left:
			limit = g.side * i
		case Up:
			limit = -i
		}
		limits = append(limits, limit)
	}
	return limits
}

// Side returns the board edge length in cells
func (g *Geometry) Side() int { return g.side }

// TotalCells returns side*side
func (g *Geometry) TotalCells() int { return g.totalCells }

// Limits returns a copy of the limit set for d, in ascending row order.
func (g *Geometry) Limits(d Direction) []int {
	if !d.Valid() {
		return nil
	}
	out := make([]int, len(g.limits[d]))
	copy(out, g.limits[d])
	return out
}

// IsLimit reports whether index is in the limit set of d.
func (g *Geometry) IsLimit(d Direction, index int) bool {
	if !d.Valid() {
		return false
	}
	for _, l := range g.limits[d] {
		if l == index {
			return true
		}
	}
	return false
}

// Offset is the index delta of one step in d.
func (g *Geometry) Offset(d Direction) int {
	switch d {
	case Right:
		return 1
	case Down:
		return g.side
	case Left:
		return -1
	case Up:
		return -g.side
	}
	return 0
}

// Next returns the index one step from index in d. No bounds are applied.
func (g *Geometry) Next(index int, d Direction) int {
	return index + g.Offset(d)
}

// InRange reports whether index names a cell on the board.
func (g *Geometry) InRange(index int) bool {
	return index >= 1 && index <= g.totalCells
}

// RowCol converts an in-range index to 0-based row and column.
func (g *Geometry) RowCol(index int) (row, col int) {
	return (index - 1) / g.side, (index - 1) % g.side
}

// Index converts 0-based row and column back to a cell index.
func (g *Geometry) Index(row, col int) int {
	return row*g.side + col + 1
}

// squareRoot returns the integer root of n when n is a positive perfect square.
func squareRoot(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	r := int(math.Sqrt(float64(n)))
	// float rounding can land one off for large n
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}
