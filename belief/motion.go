// SPDX-License-Identifier: MIT

package belief

import (
	"errors"
	"fmt"
	"strings"
)

// Motion model defaults.
const (
	// DefaultForward is the probability that a commanded move succeeds.
	DefaultForward = 0.9
	// DefaultDrift is the probability of drifting to each perpendicular side.
	DefaultDrift = 0.1
)

// EdgePolicy decides what happens to a pathway whose source cell does not
// exist (off-grid or inadmissible).
type EdgePolicy int

const (
	// EdgeOmit drops the missing pathway: it contributes nothing.
	EdgeOmit EdgePolicy = iota
	// EdgeStay credits the missing pathway's probability to the destination
	// itself, as if the agent bumped into the obstacle and stayed put.
	EdgeStay
)

var edgePolicyNames = [...]string{"omit", "stay"}

// Valid reports whether p is EdgeOmit or EdgeStay.
func (p EdgePolicy) Valid() bool {
	return p == EdgeOmit || p == EdgeStay
}

// String returns "omit" or "stay".
func (p EdgePolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("EdgePolicy(%d)", int(p))
	}
	return edgePolicyNames[p]
}

// ParseEdgePolicy accepts "omit" or "stay" (case-insensitive).
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range edgePolicyNames {
		if n == name {
			return EdgePolicy(i), nil
		}
	}
	return 0, fmt.Errorf("ParseEdgePolicy(%q): %w", s, ErrDomain)
}

// MotionModel holds the one-step transition probabilities of a commanded move.
// Forward and Drift are per-pathway probabilities; they are not required to
// sum to one.
type MotionModel struct {
	Forward float64
	Drift   float64
	Edge    EdgePolicy
}

// DefaultMotion returns Forward=0.9, Drift=0.1 and EdgeOmit.
func DefaultMotion() MotionModel {
	return MotionModel{Forward: DefaultForward, Drift: DefaultDrift, Edge: EdgeOmit}
}

func (m MotionModel) validate() error {
	if !validProbability(m.Forward) || !validProbability(m.Drift) {
		return ErrInvalidProbability
	}
	if !m.Edge.Valid() {
		return errors.New("belief: unknown edge policy")
	}
	return nil
}

// Source is one pathway by which the agent can end up in a destination cell.
type Source struct {
	From        Coordinate
	Probability float64
}

// Sources enumerates the cells that could have produced a move ending at c
// when d was commanded, paired with their transition probabilities:
//
//	the cell opposite d from c  Forward
//	the cell left of d from c   Drift
//	the cell right of d from c  Drift
//
// Pathways whose source does not exist are omitted, or folded into a single
// self-transition on c under EdgeStay.
func (g *Grid) Sources(c Coordinate, d Direction) ([]Source, error) {
	if !d.Valid() {
		return nil, coordErrorf("Sources", c, ErrInvalidDirection)
	}
	if !g.InBounds(c) {
		return nil, coordErrorf("Sources", c, ErrOutOfRange)
	}
	if !g.admissible[g.index(c)] {
		return nil, coordErrorf("Sources", c, ErrInadmissible)
	}
	return g.sources(c, d), nil
}

// sources assumes c is an admissible in-bounds cell and d is valid.
func (g *Grid) sources(c Coordinate, d Direction) []Source {
	m := g.opts.motion
	left, right := d.Perpendicular()
	pathways := [3]struct {
		toward Direction
		p      float64
	}{
		{d.Opposite(), m.Forward},
		{left, m.Drift},
		{right, m.Drift},
	}

	out := make([]Source, 0, len(pathways))
	var stay float64
	for _, pw := range pathways {
		if !g.CanMove(c, pw.toward) {
			stay += pw.p
			continue
		}
		out = append(out, Source{From: g.step(c, pw.toward), Probability: pw.p})
	}
	if m.Edge == EdgeStay && stay > 0 {
		out = append(out, Source{From: c, Probability: stay})
	}
	return out
}
