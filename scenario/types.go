// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/gridbelief/belief"
)

// Sentinel errors for scenario loading and execution.
var (
	// ErrInvalidScenario is returned when a scenario document is malformed.
	ErrInvalidScenario = errors.New("scenario: invalid scenario")

	// ErrNotFound is returned by Find when no scenario has the requested name.
	ErrNotFound = errors.New("scenario: not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("scenario: invalid option supplied")
)

// Step is one commanded move, optionally followed by a wall-count reading.
type Step struct {
	// Reference is handed to ObserveAction unchanged; the filter ignores it.
	Reference belief.Coordinate
	Direction belief.Direction
	// Observation is nil when nothing was sensed; the step then only predicts.
	Observation *belief.Observation
}

// String renders the step as e.g. "UP/2" or "RIGHT/-".
func (s Step) String() string {
	if s.Observation == nil {
		return fmt.Sprintf("%s/-", s.Direction)
	}
	return fmt.Sprintf("%s/%d", s.Direction, int(*s.Observation))
}

// Scenario is an initial belief plus the steps applied to it.
type Scenario struct {
	Name string
	// Initial is indexed [y][x]; nil marks an inadmissible cell.
	Initial [][]*float64
	Steps   []Step
	Edge    belief.EdgePolicy
}

// Grid builds a fresh belief grid for s. extra options are applied after
// the scenario's own motion model, so they can override it.
// An unknown Edge policy is reported as ErrInvalidScenario.
func (s Scenario) Grid(extra ...belief.Option) (*belief.Grid, error) {
	if !s.Edge.Valid() {
		return nil, fmt.Errorf("%w: scenario %q: unknown edge policy %v", ErrInvalidScenario, s.Name, s.Edge)
	}
	m := belief.DefaultMotion()
	m.Edge = s.Edge
	opts := append([]belief.Option{belief.WithMotion(m)}, extra...)
	g, err := belief.FromNullable(s.Initial, opts...)
	if err != nil {
		return nil, fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return g, nil
}

// StepEvent is passed to the OnStep hook after each successful step.
type StepEvent struct {
	Scenario string
	Index    int // 0-based
	Step     Step
	Grid     *belief.Grid // live grid; copy with Cells or Clone to retain
}

// Option configures Run via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*RunOptions)

// RunOptions holds the parameters and callbacks of a run.
type RunOptions struct {
	// Ctx allows cancellation between steps.
	Ctx context.Context

	// OnStart is called once the grid is built, before the first step.
	OnStart func(name string, g *belief.Grid)

	// OnStep is called after every successful step. If it returns an
	// error, the run aborts and propagates that error.
	OnStep func(ev StepEvent) error

	// Belief holds extra grid options, applied after the scenario's own.
	Belief []belief.Option

	err error
}

// DefaultOptions returns background context, no-op hooks and no extra
// grid options.
func DefaultOptions() RunOptions {
	return RunOptions{
		Ctx:     context.Background(),
		OnStart: func(string, *belief.Grid) {},
		OnStep:  func(StepEvent) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *RunOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStart registers a callback run before the first step.
func WithOnStart(fn func(name string, g *belief.Grid)) Option {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnStart = fn
		}
	}
}

// WithOnStep registers a per-step callback; returning an error stops the run.
func WithOnStep(fn func(ev StepEvent) error) Option {
	return func(o *RunOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithBeliefOptions appends grid options such as belief.WithSensor.
// A nil option is rejected with ErrOptionViolation.
func WithBeliefOptions(opts ...belief.Option) Option {
	return func(o *RunOptions) {
		for i, opt := range opts {
			if opt == nil {
				o.err = fmt.Errorf("%w: belief option %d is nil", ErrOptionViolation, i)
				return
			}
		}
		o.Belief = append(o.Belief, opts...)
	}
}
