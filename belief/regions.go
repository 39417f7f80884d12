// SPDX-License-Identifier: MIT

package belief

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Region is a 4-connected set of admissible cells together with the belief
// mass it currently holds.
type Region struct {
	Cells []Coordinate // row-major discovery order of the BFS
	Mass  float64
}

// Regions finds all contiguous regions of admissible cells under
// orthogonal (N/E/S/W) connectivity. Regions are returned in the row-major
// order of their first cell.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions() []Region {
	seen := make([]bool, len(g.admissible))
	var regions []Region

	for i0, ok := range g.admissible {
		if !ok || seen[i0] {
			continue
		}
		// BFS to collect the region
		queue := []int{i0}
		seen[i0] = true
		var r Region

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			c := g.coordinate(u)
			r.Cells = append(r.Cells, c)
			r.Mass += g.values.At(c.Y, c.X)
			for _, d := range Directions() {
				if !g.CanMove(c, d) {
					continue
				}
				v := g.index(g.step(c, d))
				if !seen[v] {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		regions = append(regions, r)
	}

	return regions
}

// MostLikely returns the admissible cell with the highest belief, the first
// in row-major order on ties.
func (g *Grid) MostLikely() (Coordinate, float64) {
	data := g.values.RawMatrix().Data
	best := floats.MaxIdx(data)
	if !g.admissible[best] {
		// only possible when every admissible cell holds 0
		for i, ok := range g.admissible {
			if ok {
				best = i
				break
			}
		}
	}
	return g.coordinate(best), data[best]
}

// Entropy returns the Shannon entropy, in nats, of the admissible belief.
// It is 0 for a certain position and ln(n) for a uniform belief over n cells.
func (g *Grid) Entropy() float64 {
	return stat.Entropy(g.values.RawMatrix().Data)
}
