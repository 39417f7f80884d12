// SPDX-License-Identifier: MIT

package belief

import (
	"encoding/json"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of cells
// indexed cells[y][x]. The input is deep-copied; the Grid owns its state
// afterwards and the set of admissible cells is fixed for its lifetime.
//
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrInvalidProbability for an
// admissible cell whose value is NaN, ±Inf, negative or greater than 1.
// Complexity: O(W×H) time and memory.
func NewGrid(cells [][]Cell, opts ...Option) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	data := make([]float64, h*w)
	admissible := make([]bool, h*w)
	for y, row := range cells {
		for x, cell := range row {
			p, ok := cell.Probability()
			if !ok {
				continue
			}
			if !validProbability(p) {
				return nil, coordErrorf("NewGrid", Coordinate{X: x, Y: y}, ErrInvalidProbability)
			}
			data[y*w+x] = p
			admissible[y*w+x] = true
		}
	}

	return &Grid{
		height:     h,
		width:      w,
		values:     mat.NewDense(h, w, data),
		admissible: admissible,
		opts:       gatherOptions(w, opts...),
	}, nil
}

// FromNullable builds a Grid from the external format where nil marks an
// inadmissible cell and a non-nil pointer carries its probability.
func FromNullable(values [][]*float64, opts ...Option) (*Grid, error) {
	cells := make([][]Cell, len(values))
	for y, row := range values {
		cells[y] = make([]Cell, len(row))
		for x, p := range row {
			if p != nil {
				cells[y][x] = Admissible(*p)
			}
		}
	}
	return NewGrid(cells, opts...)
}

// Height returns the number of rows, or 0 for a nil Grid.
func (g *Grid) Height() int {
	if g == nil {
		return 0
	}
	return g.height
}

// Width returns the number of columns, or 0 for a nil Grid.
func (g *Grid) Width() int {
	if g == nil {
		return 0
	}
	return g.width
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coordinate) bool {
	return c.X >= 0 && c.X < g.Width() && c.Y >= 0 && c.Y < g.Height()
}

// index maps c to its row-major offset.
func (g *Grid) index(c Coordinate) int {
	return c.Y*g.width + c.X
}

// coordinate converts a row-major offset back to a Coordinate.
func (g *Grid) coordinate(idx int) Coordinate {
	return Coordinate{X: idx % g.width, Y: idx / g.width}
}

// step returns the cell adjacent to c in direction d without any checks.
func (g *Grid) step(c Coordinate, d Direction) Coordinate {
	dx, dy := d.offset()
	return Coordinate{X: c.X + dx, Y: c.Y + dy}
}

// At returns the cell at c. Returns ErrOutOfRange when c is outside the grid.
func (g *Grid) At(c Coordinate) (Cell, error) {
	if !g.InBounds(c) {
		return Cell{}, coordErrorf("At", c, ErrOutOfRange)
	}
	if !g.admissible[g.index(c)] {
		return Inadmissible(), nil
	}
	return Admissible(g.values.At(c.Y, c.X)), nil
}

// Set overwrites the belief of the admissible cell at c.
// It never changes admissibility: writing into an inadmissible cell
// returns ErrInadmissible.
func (g *Grid) Set(c Coordinate, p float64) error {
	if !g.InBounds(c) {
		return coordErrorf("Set", c, ErrOutOfRange)
	}
	if !g.admissible[g.index(c)] {
		return coordErrorf("Set", c, ErrInadmissible)
	}
	if !validProbability(p) {
		return coordErrorf("Set", c, ErrInvalidProbability)
	}
	g.values.Set(c.Y, c.X, p)
	return nil
}

// CanMove reports whether the agent at c could step in direction d:
// false on the grid edge facing d, false when that neighbor is inadmissible.
func (g *Grid) CanMove(c Coordinate, d Direction) bool {
	if !d.Valid() || !g.InBounds(c) {
		return false
	}
	n := g.step(c, d)
	if !g.InBounds(n) {
		return false
	}
	return g.admissible[g.index(n)]
}

// Neighbor returns the coordinate adjacent to c in direction d.
// Returns ErrNoNeighbor unless CanMove(c, d) holds.
func (g *Grid) Neighbor(c Coordinate, d Direction) (Coordinate, error) {
	if !g.CanMove(c, d) {
		return Coordinate{}, coordErrorf("Neighbor", c, ErrNoNeighbor)
	}
	return g.step(c, d), nil
}

// Cells returns a deep copy of the current state indexed [y][x].
func (g *Grid) Cells() [][]Cell {
	out := make([][]Cell, g.height)
	for y := 0; y < g.height; y++ {
		out[y] = make([]Cell, g.width)
		for x := 0; x < g.width; x++ {
			if g.admissible[y*g.width+x] {
				out[y][x] = Admissible(g.values.At(y, x))
			}
		}
	}
	return out
}

// Clone returns an independent copy of g sharing only its options.
func (g *Grid) Clone() *Grid {
	admissible := make([]bool, len(g.admissible))
	copy(admissible, g.admissible)
	return &Grid{
		height:     g.height,
		width:      g.width,
		values:     mat.DenseCopyOf(g.values),
		admissible: admissible,
		opts:       g.opts,
	}
}

// MarshalJSON encodes the grid as rows of numbers with null for
// inadmissible cells, the same format FromNullable accepts.
func (g *Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Cells())
}

// String renders one bracketed row per line, "-" marking inadmissible cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Cells() {
		sb.WriteByte('[')
		for x, cell := range row {
			if x > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(cell.String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
