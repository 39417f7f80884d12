// Package gridbelief tracks where a robot probably is on a small 2-D grid
// map, from commanded moves and noisy wall-count readings.
//
// 🚀 What is gridbelief?
//
//	A discrete Bayesian (histogram) filter over a rectangular map:
//		• Belief grid: one probability per free cell, walls marked inadmissible
//		• Motion model: 0.9 forward, 0.1 drift to each side, edge policies
//		• Sensor model: wall-count likelihood table, pluggable per grid
//		• Filtering: predict, weight, normalize in one atomic step
//		• Diagnostics: most likely cell, entropy, connected regions
//		• Scenarios: scripted runs in YAML, built-in reference runs
//
// ✨ Why choose gridbelief?
//
//   - Small API: build a Grid, call ObserveAction, read Cells
//   - Atomic steps: a failing update leaves the belief untouched
//   - Deterministic: same grid and inputs give bit-identical results
//   - Hooks: OnStart and OnStep let callers trace every update
//
// Packages:
//
//	belief/         — Grid, motion & sensor models, the filter step, diagnostics
//	scenario/       — scripted runs, YAML loading/encoding, built-in maze runs
//	render/         — terminal heat maps via lipgloss
//	config/         — GRIDBELIEF_* environment (+ .env) configuration
//	cmd/gridbelief/ — CLI replaying scenarios with structured logs
//
// Quick ASCII example (the built-in 3×4 maze, ## is a pillar):
//
//	y=0  .   .   .   .
//	y=1  .   ##  .   .
//	y=2  .   .   .   .
//
// Moving UP and reading two walls, mass flows toward the top of the last
// column, where two walls is the expected reading.
//
//	go install github.com/katalvlaran/gridbelief/cmd/gridbelief@latest
package gridbelief
