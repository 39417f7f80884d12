// SPDX-License-Identifier: MIT

package belief

import "fmt"

// Sensor model defaults.
const (
	// DefaultHit is P(o | agent at c) when o equals the wall count expected at c.
	DefaultHit = 0.9
	// DefaultMiss is P(o | agent at c) when o differs from the expected count.
	DefaultMiss = 0.1
)

// SensorModel yields the likelihood of observing o with the agent at c.
// Implementations must return ErrInvalidObservation for o outside {1,2}.
type SensorModel interface {
	Likelihood(c Coordinate, o Observation) (float64, error)
}

// SensorFunc adapts an ordinary function to SensorModel.
// The observation is validated before f is called.
type SensorFunc func(c Coordinate, o Observation) float64

// Likelihood implements SensorModel.
func (f SensorFunc) Likelihood(c Coordinate, o Observation) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, err
	}
	return f(c, o), nil
}

// WallTableSensor scores an observation against the wall count expected
// at each cell: Hit when they agree, Miss otherwise.
type WallTableSensor struct {
	// Expected returns the wall count a noiseless sensor would report at c.
	// A nil Expected makes Likelihood fail with ErrPrecondition.
	Expected func(c Coordinate) Observation
	Hit      float64
	Miss     float64
}

// NewWallTableSensor builds a sensor from an explicit per-cell table.
// Cells missing from walls expect fallback.
func NewWallTableSensor(walls map[Coordinate]Observation, fallback Observation) WallTableSensor {
	table := make(map[Coordinate]Observation, len(walls))
	for c, o := range walls {
		table[c] = o
	}
	return WallTableSensor{
		Expected: func(c Coordinate) Observation {
			if o, ok := table[c]; ok {
				return o
			}
			return fallback
		},
		Hit:  DefaultHit,
		Miss: DefaultMiss,
	}
}

// LastColumnSensor is the fixed maze sensor: cells in the last column
// (x == width-1) sit between two walls, every other cell next to one.
//
//	x == width-1 | o=1 | o=2
//	yes          | 0.1 | 0.9
//	no           | 0.9 | 0.1
func LastColumnSensor(width int) WallTableSensor {
	return WallTableSensor{
		Expected: func(c Coordinate) Observation {
			if c.X == width-1 {
				return TwoWalls
			}
			return OneWall
		},
		Hit:  DefaultHit,
		Miss: DefaultMiss,
	}
}

// Likelihood implements SensorModel.
func (s WallTableSensor) Likelihood(c Coordinate, o Observation) (float64, error) {
	if err := o.Validate(); err != nil {
		return 0, fmt.Errorf("Likelihood%v: %w", c, err)
	}
	if s.Expected == nil {
		return 0, fmt.Errorf("Likelihood%v: %w: WallTableSensor.Expected is nil", c, ErrPrecondition)
	}
	if s.Expected(c) == o {
		return s.Hit, nil
	}
	return s.Miss, nil
}
