// SPDX-License-Identifier: MIT

package belief

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// likelihoodFn scores the evidence at an admissible cell.
type likelihoodFn func(c Coordinate) (float64, error)

// ObserveAction runs one forward-filter cycle: predict the post-motion
// belief of every admissible cell for commanded direction d, multiply it by
// the sensor likelihood of o at that cell, then normalize.
//
// ref is accepted but currently inert: the update is global and uses each
// cell's own coordinate for the sensor likelihood, never ref.
//
// All reads come from the belief as it stood before the call. On error the
// grid is left unchanged: ErrInvalidDirection and ErrInvalidObservation for
// bad inputs, ErrZeroMass when the evidence rules out every cell.
// Complexity: O(W×H) time, O(W×H) transient memory.
func (g *Grid) ObserveAction(ref Coordinate, d Direction, o Observation) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("ObserveAction: %w", err)
	}
	sensor := g.opts.sensor
	return g.advance("ObserveAction", d, func(c Coordinate) (float64, error) {
		return sensor.Likelihood(c, o)
	})
}

// Predict applies the motion model for d without any sensor evidence, then
// normalizes. It covers moves for which no wall count was sensed.
func (g *Grid) Predict(d Direction) error {
	return g.advance("Predict", d, func(Coordinate) (float64, error) {
		return 1, nil
	})
}

// advance computes the next belief into a fresh buffer and commits it only
// after normalization succeeds.
func (g *Grid) advance(op string, d Direction, like likelihoodFn) error {
	if !d.Valid() {
		return fmt.Errorf("%s(%s): %w", op, d, ErrInvalidDirection)
	}
	next, err := g.updateAll(d, like)
	if err != nil {
		return fmt.Errorf("%s(%s): %w", op, d, err)
	}
	if err := normalizeDense(next); err != nil {
		return fmt.Errorf("%s(%s): %w", op, d, err)
	}
	g.values = next

	return nil
}

// updateAll returns the unnormalized posterior for every admissible cell in
// row-major order. It reads only from g.values, which it never writes, so
// the result does not depend on visiting order. Inadmissible cells stay 0.
func (g *Grid) updateAll(d Direction, like likelihoodFn) (*mat.Dense, error) {
	prior := g.values
	next := mat.NewDense(g.height, g.width, nil)
	for idx, ok := range g.admissible {
		if !ok {
			continue
		}
		c := g.coordinate(idx)

		var predicted float64
		for _, src := range g.sources(c, d) {
			predicted += prior.At(src.From.Y, src.From.X) * src.Probability
		}

		l, err := like(c)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(l) || math.IsInf(l, 0) || l < 0 {
			return nil, coordErrorf("updateAll", c, ErrInvalidProbability)
		}
		next.Set(c.Y, c.X, predicted*l)
	}

	return next, nil
}

// TotalMass returns the sum of all admissible beliefs.
func (g *Grid) TotalMass() float64 {
	return floats.Sum(g.values.RawMatrix().Data)
}

// Normalize rescales the admissible beliefs to sum to 1.
// Returns ErrZeroMass, leaving the grid unchanged, when the total is zero.
func (g *Grid) Normalize() error {
	if err := normalizeDense(g.values); err != nil {
		return fmt.Errorf("Normalize: %w", err)
	}
	return nil
}

// normalizeDense divides every entry of m by its sum in place.
// Inadmissible entries are 0 and stay 0. Dividing (rather than scaling by
// 1/total) keeps every quotient within [0,1].
func normalizeDense(m *mat.Dense) error {
	data := m.RawMatrix().Data
	total := floats.Sum(data)
	if total == 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return ErrZeroMass
	}
	for i := range data {
		data[i] /= total
	}

	return nil
}
