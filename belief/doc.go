// Package belief localizes an agent on a small rectangular grid with a
// discrete Bayes (HMM forward) filter driven by commanded moves and noisy
// wall-count observations.
//
// What:
//
//   - Grid holds a probability mass function over cells. Cells are either
//     Admissible(p) or Inadmissible(); the admissible set is fixed at
//     construction.
//   - ObserveAction(ref, dir, obs) predicts with the motion model, weighs
//     each cell by the sensor likelihood, and renormalizes in place.
//   - Predict(dir) applies motion alone, for moves without a sensor reading.
//
// Motion model (per pathway, not required to sum to 1):
//
//	commanded UP, destination c:
//
//	          [ c ]
//	   0.1 →  ↑0.9  ← 0.1
//	        [below]
//
//	other directions are the same picture rotated.
//
// A pathway whose source cell is off-grid or inadmissible is omitted
// (EdgeOmit, default) or credited to c itself (EdgeStay).
//
// Sensor model (LastColumnSensor, default):
//
//	last column  | 1 wall 0.1 | 2 walls 0.9
//	other column | 1 wall 0.9 | 2 walls 0.1
//
// Complexity:
//
//   - ObserveAction, Predict: O(W×H), Memory: O(W×H) for the next-belief buffer.
//   - Regions:                O(W×H×4), Memory: O(W×H).
//
// Options:
//
//   - WithSensor: any SensorModel, e.g. a per-cell WallTableSensor.
//   - WithMotion: Forward/Drift probabilities and the EdgePolicy.
//
// Errors:
//
//   - ErrDomain umbrella: ErrInvalidObservation, ErrInvalidDirection, ErrInvalidProbability.
//   - ErrPrecondition umbrella: ErrOutOfRange, ErrInadmissible, ErrNoNeighbor, ErrZeroMass.
//   - ErrEmptyGrid, ErrNonRectangular: malformed construction input.
//
// A Grid is owned by one caller and updated sequentially; it performs no
// locking.
package belief
