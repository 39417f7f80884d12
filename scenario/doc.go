// Package scenario scripts localization runs for the belief filter.
//
// A Scenario is an initial belief (nil = inadmissible cell) and a list of
// Steps. Run builds a fresh belief.Grid and applies the steps in order,
// calling ObserveAction when a wall count was sensed and Predict when not.
// Hooks (OnStart, OnStep) expose the grid after every step for tracing.
//
// Scenarios come from Builtin, which reproduces the four reference runs on
// the 3×4 maze, or from YAML/JSON documents via Load and LoadFile:
//
//	scenarios:
//	  - name: demo
//	    initial:
//	      - [0.5, null]
//	      - [0.5, 0]
//	    steps:
//	      - {ref: [0, 1], dir: up, walls: 1}
//
// Errors:
//
//   - ErrInvalidScenario: malformed document or values (wraps the belief sentinel when one applies).
//   - ErrNotFound: Find found no scenario with the requested name.
//   - ErrOptionViolation: invalid Option passed to Run.
package scenario
