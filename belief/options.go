// SPDX-License-Identifier: MIT

// Package belief: functional configuration for a Grid.
//
// Defaults (single source of truth):
//   - sensor: LastColumnSensor(width), resolved at construction time.
//   - motion: DefaultMotion() (Forward=0.9, Drift=0.1, Edge=EdgeOmit).
//
// Option constructors panic only on nonsensical values (programmer error);
// user-triggered conditions are reported as errors by the Grid methods.

package belief

import "fmt"

const (
	panicSensorNil     = "belief: WithSensor: sensor must not be nil"
	panicMotionInvalid = "belief: WithMotion: %v"
)

// Option mutates the internal options of a Grid under construction.
type Option func(*options)

// options holds the effective configuration after applying Option setters.
type options struct {
	sensor SensorModel // nil until resolved by gatherOptions
	motion MotionModel
}

// WithSensor replaces the default last-column sensor model.
func WithSensor(s SensorModel) Option {
	if s == nil {
		panic(panicSensorNil)
	}
	return func(o *options) {
		o.sensor = s
	}
}

// WithMotion replaces the default motion model.
// Panics if m has probabilities outside [0,1] or an unknown edge policy.
func WithMotion(m MotionModel) Option {
	if err := m.validate(); err != nil {
		panic(fmt.Sprintf(panicMotionInvalid, err))
	}
	return func(o *options) {
		o.motion = m
	}
}

// gatherOptions applies opts in order over the defaults for a grid of the given width.
func gatherOptions(width int, opts ...Option) options {
	o := options{motion: DefaultMotion()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.sensor == nil {
		o.sensor = LastColumnSensor(width)
	}
	return o
}
