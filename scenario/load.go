// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridbelief/belief"
)

// document is the on-disk layout. JSON documents decode too, since YAML is
// a superset of JSON.
//
//	scenarios:
//	  - name: unknown-up-two-walls
//	    edge: omit            # or "stay"; empty means omit
//	    initial:
//	      - [0.111, 0.111, 0.111, 0]
//	      - [0.111, null,  0.111, 0]
//	    steps:
//	      - {ref: [0, 2], dir: up, walls: 2}
//	      - {dir: right}      # moved, nothing sensed
type document struct {
	Scenarios []fileScenario `yaml:"scenarios"`
}

type fileScenario struct {
	Name    string       `yaml:"name"`
	Edge    string       `yaml:"edge,omitempty"`
	Initial [][]*float64 `yaml:"initial,flow"`
	Steps   []fileStep   `yaml:"steps"`
}

type fileStep struct {
	Ref   []int  `yaml:"ref,flow,omitempty"`
	Dir   string `yaml:"dir"`
	Walls *int   `yaml:"walls,omitempty"`
}

// Load decodes and validates every scenario in r. Unknown fields, bad
// directions, wall counts outside {1,2}, malformed grids and duplicate
// names are rejected with ErrInvalidScenario.
func Load(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if len(doc.Scenarios) == 0 {
		return nil, fmt.Errorf("%w: no scenarios defined", ErrInvalidScenario)
	}

	out := make([]Scenario, 0, len(doc.Scenarios))
	seen := make(map[string]bool, len(doc.Scenarios))
	for i, fs := range doc.Scenarios {
		s, err := fs.scenario()
		if err != nil {
			return nil, fmt.Errorf("%w: scenario %d: %w", ErrInvalidScenario, i, err)
		}
		if seen[s.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrInvalidScenario, s.Name)
		}
		seen[s.Name] = true
		out = append(out, s)
	}

	return out, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}

// Encode writes scenarios in the layout Load accepts.
func Encode(w io.Writer, scenarios []Scenario) error {
	doc := document{Scenarios: make([]fileScenario, 0, len(scenarios))}
	for _, s := range scenarios {
		fs := fileScenario{Name: s.Name, Initial: s.Initial, Steps: make([]fileStep, 0, len(s.Steps))}
		if s.Edge != belief.EdgeOmit {
			fs.Edge = s.Edge.String()
		}
		for _, st := range s.Steps {
			step := fileStep{
				Ref: []int{st.Reference.X, st.Reference.Y},
				Dir: strings.ToLower(st.Direction.String()),
			}
			if st.Observation != nil {
				walls := int(*st.Observation)
				step.Walls = &walls
			}
			fs.Steps = append(fs.Steps, step)
		}
		doc.Scenarios = append(doc.Scenarios, fs)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}

// scenario converts and validates one decoded entry.
func (fs fileScenario) scenario() (Scenario, error) {
	if strings.TrimSpace(fs.Name) == "" {
		return Scenario{}, errors.New("name is required")
	}
	s := Scenario{Name: fs.Name, Initial: fs.Initial}
	if fs.Edge != "" {
		edge, err := belief.ParseEdgePolicy(fs.Edge)
		if err != nil {
			return Scenario{}, err
		}
		s.Edge = edge
	}

	for i, fst := range fs.Steps {
		st, err := fst.step()
		if err != nil {
			return Scenario{}, fmt.Errorf("step %d: %w", i, err)
		}
		s.Steps = append(s.Steps, st)
	}

	// building the grid validates shape and probabilities
	if _, err := s.Grid(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

func (fst fileStep) step() (Step, error) {
	var st Step
	switch len(fst.Ref) {
	case 0:
	case 2:
		st.Reference = belief.Coordinate{X: fst.Ref[0], Y: fst.Ref[1]}
	default:
		return Step{}, fmt.Errorf("ref must be [x, y], got %v", fst.Ref)
	}

	d, err := belief.ParseDirection(fst.Dir)
	if err != nil {
		return Step{}, err
	}
	st.Direction = d

	if fst.Walls != nil {
		o := belief.Observation(*fst.Walls)
		if err := o.Validate(); err != nil {
			return Step{}, err
		}
		st.Observation = &o
	}
	return st, nil
}
