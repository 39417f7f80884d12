// SPDX-License-Identifier: MIT

// Package belief: sentinel error set.
// Every exported operation returns one of these sentinels (possibly wrapped
// with call-site context); callers match them via errors.Is.
//
// Two umbrella sentinels mirror the error taxonomy of the filter:
//
//	ErrDomain       — an input value is outside its domain (e.g. a wall count of 3).
//	ErrPrecondition — a caller or internal-logic error (bad coordinate,
//	                  missing neighbor, zero total mass).
//
// Specific sentinels wrap exactly one umbrella, so both
// errors.Is(err, ErrZeroMass) and errors.Is(err, ErrPrecondition) hold.

package belief

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is the umbrella for values outside their permitted domain.
	ErrDomain = errors.New("belief: domain error")

	// ErrPrecondition is the umbrella for violated call preconditions.
	ErrPrecondition = errors.New("belief: precondition violated")
)

var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("belief: input grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("belief: all rows must have the same length")

	// ErrInvalidProbability indicates a NaN, ±Inf, negative or >1 belief value.
	ErrInvalidProbability = fmt.Errorf("%w: probability must be finite and within [0,1]", ErrDomain)

	// ErrInvalidObservation indicates a wall count outside {1,2}.
	ErrInvalidObservation = fmt.Errorf("%w: observation must be 1 or 2 walls", ErrDomain)

	// ErrInvalidDirection indicates a Direction value outside UP/DOWN/LEFT/RIGHT.
	ErrInvalidDirection = fmt.Errorf("%w: unknown direction", ErrDomain)

	// ErrOutOfRange indicates a coordinate outside the grid.
	ErrOutOfRange = fmt.Errorf("%w: coordinate out of range", ErrPrecondition)

	// ErrInadmissible indicates an attempt to write belief into an inadmissible cell.
	ErrInadmissible = fmt.Errorf("%w: cell is inadmissible", ErrPrecondition)

	// ErrNoNeighbor indicates Neighbor was called where CanMove reports false.
	ErrNoNeighbor = fmt.Errorf("%w: no admissible neighbor in that direction", ErrPrecondition)

	// ErrZeroMass indicates the admissible cells sum to zero, so the
	// distribution cannot be normalized (likelihood-zero evidence).
	ErrZeroMass = fmt.Errorf("%w: total belief mass is zero", ErrPrecondition)
)

// coordErrorf wraps err with the method name and the offending coordinate.
func coordErrorf(method string, c Coordinate, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, c.X, c.Y, err)
}
