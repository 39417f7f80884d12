package scenario_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbelief/belief"
	"github.com/katalvlaran/gridbelief/scenario"
)

//----------------------------------------------------------------------------//
// Builtin + Run
//----------------------------------------------------------------------------//

// TestBuiltin_AllRunNormalized runs every built-in scenario and checks the
// per-step invariants through the OnStep hook.
func TestBuiltin_AllRunNormalized(t *testing.T) {
	for _, sc := range scenario.Builtin() {
		t.Run(sc.Name, func(t *testing.T) {
			steps := 0
			g, err := scenario.Run(sc, scenario.WithOnStep(func(ev scenario.StepEvent) error {
				assert.Equal(t, sc.Name, ev.Scenario)
				assert.Equal(t, steps, ev.Index)
				assert.InDelta(t, 1.0, ev.Grid.TotalMass(), 1e-9)
				c, err := ev.Grid.At(belief.Coordinate{X: 1, Y: 1})
				require.NoError(t, err)
				assert.False(t, c.IsAdmissible())
				steps++
				return nil
			}))
			require.NoError(t, err)
			assert.Equal(t, len(sc.Steps), steps)
			assert.Equal(t, 3, g.Height())
			assert.Equal(t, 4, g.Width())
		})
	}
}

// TestRun_KnownTopRight checks the end state of the predict-only route.
func TestRun_KnownTopRight(t *testing.T) {
	sc, err := scenario.Find(scenario.Builtin(), scenario.KnownTopRight)
	require.NoError(t, err)

	g, err := scenario.Run(sc)
	require.NoError(t, err)

	at, p := g.MostLikely()
	assert.Equal(t, belief.Coordinate{X: 2, Y: 0}, at)
	assert.InDelta(t, 10.0/11, p, 1e-9)
}

// TestRun_EdgeStay follows the scenario's edge policy.
func TestRun_EdgeStay(t *testing.T) {
	sc, err := scenario.Find(scenario.Builtin(), scenario.KnownTopRight)
	require.NoError(t, err)
	sc.Edge = belief.EdgeStay

	g, err := scenario.Run(sc)
	require.NoError(t, err)
	at, p := g.MostLikely()
	assert.Equal(t, belief.Coordinate{X: 2, Y: 0}, at)
	assert.InDelta(t, 0.4372093023255814, p, 1e-9)
}

func TestRun_OnStartAndBeliefOptions(t *testing.T) {
	sc, err := scenario.Find(scenario.Builtin(), scenario.UnknownUpTwoWalls)
	require.NoError(t, err)

	started := ""
	blind := belief.SensorFunc(func(belief.Coordinate, belief.Observation) float64 { return 0 })
	_, err = scenario.Run(sc,
		scenario.WithOnStart(func(name string, g *belief.Grid) { started = name }),
		scenario.WithBeliefOptions(belief.WithSensor(blind)),
	)
	assert.Equal(t, scenario.UnknownUpTwoWalls, started)
	assert.ErrorIs(t, err, belief.ErrZeroMass)
	assert.Contains(t, err.Error(), "step 0 (UP/2)")
}

// TestRun_UnknownEdgePolicy rejects an out-of-range policy set in code.
func TestRun_UnknownEdgePolicy(t *testing.T) {
	sc := scenario.Builtin()[0]
	sc.Edge = belief.EdgePolicy(7)

	var (
		g   *belief.Grid
		err error
	)
	require.NotPanics(t, func() { g, err = scenario.Run(sc) })
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
	assert.Nil(t, g)

	_, err = sc.Grid()
	assert.ErrorIs(t, err, scenario.ErrInvalidScenario)
}

func TestRun_OptionViolation(t *testing.T) {
	_, err := scenario.Run(scenario.Builtin()[0], scenario.WithBeliefOptions(nil))
	assert.ErrorIs(t, err, scenario.ErrOptionViolation)
}

func TestRun_HookAbort(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	_, err := scenario.Run(scenario.Builtin()[0], scenario.WithOnStep(func(scenario.StepEvent) error {
		calls++
		return stop
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, err := scenario.Run(scenario.Builtin()[0], scenario.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, g)
	assert.InDelta(t, 0.999, g.TotalMass(), 1e-12) // untouched initial belief
}

func TestFind_NotFound(t *testing.T) {
	_, err := scenario.Find(scenario.Builtin(), "nope")
	assert.ErrorIs(t, err, scenario.ErrNotFound)
}

func TestStep_String(t *testing.T) {
	o := belief.TwoWalls
	assert.Equal(t, "UP/2", scenario.Step{Direction: belief.Up, Observation: &o}.String())
	assert.Equal(t, "LEFT/-", scenario.Step{Direction: belief.Left}.String())
}

//----------------------------------------------------------------------------//
// Load / Encode
//----------------------------------------------------------------------------//

const demoYAML = `
scenarios:
  - name: demo
    edge: stay
    initial:
      - [0.5, null]
      - [0.5, 0]
    steps:
      - {ref: [0, 1], dir: up, walls: 1}
      - {dir: Right}
`

func TestLoad(t *testing.T) {
	list, err := scenario.Load(strings.NewReader(demoYAML))
	require.NoError(t, err)
	require.Len(t, list, 1)

	sc := list[0]
	assert.Equal(t, "demo", sc.Name)
	assert.Equal(t, belief.EdgeStay, sc.Edge)
	require.Len(t, sc.Initial, 2)
	assert.Nil(t, sc.Initial[0][1])
	assert.Equal(t, 0.5, *sc.Initial[1][0])

	require.Len(t, sc.Steps, 2)
	assert.Equal(t, belief.Coordinate{X: 0, Y: 1}, sc.Steps[0].Reference)
	assert.Equal(t, belief.Up, sc.Steps[0].Direction)
	require.NotNil(t, sc.Steps[0].Observation)
	assert.Equal(t, belief.OneWall, *sc.Steps[0].Observation)
	assert.Equal(t, belief.Right, sc.Steps[1].Direction)
	assert.Nil(t, sc.Steps[1].Observation)
}

func TestLoad_JSON(t *testing.T) {
	doc := `{"scenarios":[{"name":"j","initial":[[1,null]],"steps":[{"dir":"left","walls":2}]}]}`
	list, err := scenario.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, belief.Left, list[0].Steps[0].Direction)
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		also error
	}{
		{"Empty", ``, nil},
		{"NoScenarios", `scenarios: []`, nil},
		{"UnknownField", "scenarios:\n  - name: a\n    colour: red\n    initial: [[1]]\n", nil},
		{"MissingName", "scenarios:\n  - initial: [[1]]\n", nil},
		{"BadDirection", "scenarios:\n  - name: a\n    initial: [[1]]\n    steps: [{dir: north}]\n", belief.ErrInvalidDirection},
		{"BadWalls", "scenarios:\n  - name: a\n    initial: [[1]]\n    steps: [{dir: up, walls: 3}]\n", belief.ErrInvalidObservation},
		{"BadRef", "scenarios:\n  - name: a\n    initial: [[1]]\n    steps: [{ref: [1], dir: up}]\n", nil},
		{"BadEdge", "scenarios:\n  - name: a\n    edge: bounce\n    initial: [[1]]\n", belief.ErrDomain},
		{"Ragged", "scenarios:\n  - name: a\n    initial: [[1, 0], [0]]\n", belief.ErrNonRectangular},
		{"BadProbability", "scenarios:\n  - name: a\n    initial: [[2]]\n", belief.ErrInvalidProbability},
		{"Duplicate", "scenarios:\n  - {name: a, initial: [[1]]}\n  - {name: a, initial: [[1]]}\n", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Load(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, scenario.ErrInvalidScenario)
			if tc.also != nil {
				assert.ErrorIs(t, err, tc.also)
			}
		})
	}
}

// TestEncode_LoadsBack writes the built-ins to a file and reads them again.
func TestEncode_LoadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scenario.Encode(&buf, scenario.Builtin()))
	assert.Contains(t, buf.String(), "null")

	path := filepath.Join(t.TempDir(), "builtin.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	list, err := scenario.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, scenario.Builtin(), list)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scenario.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
