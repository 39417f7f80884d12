// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridbelief/belief"
)

// Names of the built-in scenarios.
const (
	UnknownUpTwoWalls = "unknown-up-two-walls"
	UnknownUpOneWall  = "unknown-up-one-wall"
	KnownTopRight     = "known-top-right"
	KnownBottomMixed  = "known-bottom-mixed"
)

// Builtin returns the four reference runs on the 3×4 maze with a pillar at
// (1,1). Each call returns fresh slices.
//
//	unknown-up-two-walls  near-uniform start, UP/2 three times
//	unknown-up-one-wall   near-uniform start, UP/1 three times
//	known-top-right       certain at (1,0): RIGHT/1, RIGHT/1, UP with no reading
//	known-bottom-mixed    certain at (0,2): UP/2, RIGHT/2, RIGHT/1, RIGHT/1
func Builtin() []Scenario {
	return []Scenario{
		{
			Name:    UnknownUpTwoWalls,
			Initial: unknownPosition(),
			Steps:   repeat(step(0, 2, belief.Up, belief.TwoWalls), 3),
		},
		{
			Name:    UnknownUpOneWall,
			Initial: unknownPosition(),
			Steps:   repeat(step(1, 1, belief.Up, belief.OneWall), 3),
		},
		{
			Name:    KnownTopRight,
			Initial: knownPosition(1, 0),
			Steps: []Step{
				step(2, 3, belief.Right, belief.OneWall),
				step(2, 3, belief.Right, belief.OneWall),
				{Reference: belief.Coordinate{X: 2, Y: 3}, Direction: belief.Up},
			},
		},
		{
			Name:    KnownBottomMixed,
			Initial: knownPosition(0, 2),
			Steps: []Step{
				step(1, 1, belief.Up, belief.TwoWalls),
				step(1, 1, belief.Right, belief.TwoWalls),
				step(1, 1, belief.Right, belief.OneWall),
				step(1, 1, belief.Right, belief.OneWall),
			},
		},
	}
}

// Find returns the scenario called name from list.
func Find(list []Scenario, name string) (Scenario, error) {
	for _, s := range list {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

func step(x, y int, d belief.Direction, o belief.Observation) Step {
	return Step{Reference: belief.Coordinate{X: x, Y: y}, Direction: d, Observation: &o}
}

func repeat(s Step, n int) []Step {
	out := make([]Step, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func pf(v float64) *float64 { return &v }

// unknownPosition spreads 0.111 over the maze except the two upper cells
// of the last column.
func unknownPosition() [][]*float64 {
	return [][]*float64{
		{pf(0.111), pf(0.111), pf(0.111), pf(0)},
		{pf(0.111), nil, pf(0.111), pf(0)},
		{pf(0.111), pf(0.111), pf(0.111), pf(0.111)},
	}
}

// knownPosition puts all mass on (x,y).
func knownPosition(x, y int) [][]*float64 {
	out := [][]*float64{
		{pf(0), pf(0), pf(0), pf(0)},
		{pf(0), nil, pf(0), pf(0)},
		{pf(0), pf(0), pf(0), pf(0)},
	}
	out[y][x] = pf(1)
	return out
}
