// SPDX-License-Identifier: MIT

package scenario

import (
	"fmt"

	"github.com/katalvlaran/gridbelief/belief"
)

// Run builds the grid for s and applies its steps in order: ObserveAction
// for steps carrying an observation, Predict for the rest.
//
// The first failing step aborts the run; the returned error names the step
// and wraps the belief sentinel (e.g. belief.ErrZeroMass). The grid is
// returned alongside the error in the state it had before that step.
// Context cancellation is checked between steps.
func Run(s Scenario, opts ...Option) (*belief.Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := s.Grid(o.Belief...)
	if err != nil {
		return nil, err
	}
	o.OnStart(s.Name, g)

	for i, st := range s.Steps {
		if err := o.Ctx.Err(); err != nil {
			return g, err
		}
		if err := apply(g, st); err != nil {
			return g, fmt.Errorf("scenario %q step %d (%s): %w", s.Name, i, st, err)
		}
		if err := o.OnStep(StepEvent{Scenario: s.Name, Index: i, Step: st, Grid: g}); err != nil {
			return g, err
		}
	}

	return g, nil
}

// apply performs one step on g.
func apply(g *belief.Grid, st Step) error {
	if st.Observation == nil {
		return g.Predict(st.Direction)
	}
	return g.ObserveAction(st.Reference, st.Direction, *st.Observation)
}
