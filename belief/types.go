// SPDX-License-Identifier: MIT

package belief

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Coordinate addresses a grid cell. X is the column, Y is the row;
// (0,0) is the top-left cell and Y grows downwards.
type Coordinate struct {
	X, Y int
}

// String renders the coordinate as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Direction is the agent's last commanded movement.
type Direction int

const (
	// Up moves towards row 0.
	Up Direction = iota
	// Down moves towards the last row.
	Down
	// Left moves towards column 0.
	Left
	// Right moves towards the last column.
	Right
)

// directionNames is indexed by Direction.
var directionNames = [...]string{"UP", "DOWN", "LEFT", "RIGHT"}

// Directions lists every valid Direction in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Left, Right}
}

// Valid reports whether d is one of Up, Down, Left, Right.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// String returns the upper-case name of d, or "Direction(n)" when invalid.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Perpendicular returns the directions to the left and right of d, as seen
// by an agent facing d. For Up that is (Left, Right).
func (d Direction) Perpendicular() (left, right Direction) {
	switch d {
	case Up:
		return Left, Right
	case Down:
		return Right, Left
	case Left:
		return Down, Up
	default:
		return Up, Down
	}
}

// offset returns the (dx,dy) step for d.
func (d Direction) offset() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// ParseDirection accepts a case-insensitive direction name.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range directionNames {
		if n == name {
			return Direction(i), nil
		}
	}
	return 0, fmt.Errorf("ParseDirection(%q): %w", s, ErrInvalidDirection)
}

// Observation is the number of walls the agent senses around itself.
// Only OneWall and TwoWalls are meaningful.
type Observation int

const (
	// OneWall reports a single adjacent wall.
	OneWall Observation = 1
	// TwoWalls reports two adjacent walls.
	TwoWalls Observation = 2
)

// Validate returns ErrInvalidObservation unless o is OneWall or TwoWalls.
func (o Observation) Validate() error {
	if o != OneWall && o != TwoWalls {
		return fmt.Errorf("Observation(%d): %w", int(o), ErrInvalidObservation)
	}
	return nil
}

// Cell is either an admissible state holding a probability, or an
// inadmissible marker that is not part of the state space.
// The zero Cell is inadmissible.
type Cell struct {
	p  float64
	ok bool
}

// Admissible returns a cell carrying belief p.
func Admissible(p float64) Cell {
	return Cell{p: p, ok: true}
}

// Inadmissible returns the marker cell.
func Inadmissible() Cell {
	return Cell{}
}

// IsAdmissible reports whether c is part of the state space.
func (c Cell) IsAdmissible() bool {
	return c.ok
}

// Probability returns the cell's belief and true, or (0,false) when inadmissible.
func (c Cell) Probability() (float64, bool) {
	return c.p, c.ok
}

// String renders the probability with %g, or "-" for an inadmissible cell.
func (c Cell) String() string {
	if !c.ok {
		return "-"
	}
	return fmt.Sprintf("%g", c.p)
}

// MarshalJSON encodes an inadmissible cell as null and an admissible one as a number.
func (c Cell) MarshalJSON() ([]byte, error) {
	if !c.ok {
		return []byte("null"), nil
	}
	return json.Marshal(c.p)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (c *Cell) UnmarshalJSON(b []byte) error {
	var p *float64
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	if p == nil {
		*c = Inadmissible()
		return nil
	}
	*c = Admissible(*p)
	return nil
}

// validProbability reports whether p may be stored in an admissible cell.
func validProbability(p float64) bool {
	return !math.IsNaN(p) && !math.IsInf(p, 0) && p >= 0 && p <= 1
}

// Grid is a mutable probability mass function over a rectangular grid.
//
// Values live in a row-major gonum Dense (Height×Width); inadmissible cells
// hold 0 there and are flagged false in admissible, which never changes
// after construction. A Grid is not safe for concurrent mutation: it
// assumes one owner issuing sequential updates.
type Grid struct {
	height, width int
	values        *mat.Dense
	admissible    []bool // row-major, len == height*width
	opts          options
}
