package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridbelief/config"
	"github.com/katalvlaran/gridbelief/scenario"
)

// isolate runs the test from an empty directory with no GRIDBELIEF_* set,
// so neither a developer's .env nor the environment leaks in.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvScenarioFile, config.EnvScenario, config.EnvLogLevel, config.EnvLogFormat,
		config.EnvColor, config.EnvEdgePolicy, config.EnvPrecision,
	} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestRun_Builtin(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"-scenario", scenario.KnownTopRight}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	assert.Contains(t, out.String(), "known-top-right initial")
	assert.Contains(t, out.String(), "known-top-right step 2 UP/-")
	assert.Contains(t, out.String(), "0.9091")
	assert.Contains(t, errOut.String(), "most_likely=(2,0)")
	assert.Contains(t, errOut.String(), "run=")
}

func TestRun_JSONLogs(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer

	code := run(context.Background(), []string{"-scenario", scenario.UnknownUpTwoWalls, "-log-format", "json"}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 4) // start + 3 steps
	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &rec))
	assert.Equal(t, "step", rec["msg"])
	assert.Equal(t, scenario.UnknownUpTwoWalls, rec["scenario"])
	assert.InDelta(t, 1.0, rec["mass"], 1e-9)
}

func TestRun_DumpAndReload(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"-dump", "-edge", "stay"}, &out, &errOut), errOut.String())

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o644))

	out.Reset()
	errOut.Reset()
	code := run(context.Background(), []string{"-file", path, "-scenario", scenario.KnownBottomMixed}, &out, &errOut)
	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, errOut.String(), "edge=stay")
}

func TestRun_Failures(t *testing.T) {
	isolate(t)
	var out, errOut bytes.Buffer
	ctx := context.Background()

	assert.Equal(t, 1, run(ctx, []string{"-scenario", "missing"}, &out, &errOut))
	assert.Equal(t, 1, run(ctx, []string{"-file", "absent.yaml"}, &out, &errOut))
	assert.Equal(t, 2, run(ctx, []string{"-log-format", "xml"}, &out, &errOut))
	assert.Equal(t, 2, run(ctx, []string{"-edge", "bounce"}, &out, &errOut))
	assert.Equal(t, 2, run(ctx, []string{"-no-such-flag"}, &out, &errOut))
	assert.Equal(t, 2, run(ctx, []string{"-precision", "0"}, &out, &errOut))
	assert.Equal(t, 2, run(ctx, []string{"-precision", "13"}, &out, &errOut))
	assert.Contains(t, errOut.String(), "precision 13 outside [1,12]")
}

// TestRun_ZeroMassScenario exits non-zero when a step rules out every cell.
func TestRun_ZeroMassScenario(t *testing.T) {
	isolate(t)
	doc := "scenarios:\n  - name: lonely\n    initial: [[1]]\n    steps: [{dir: up, walls: 1}]\n"
	require.NoError(t, os.WriteFile("lonely.yaml", []byte(doc), 0o644))

	var out, errOut bytes.Buffer
	code := run(context.Background(), []string{"-file", "lonely.yaml"}, &out, &errOut)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "total belief mass is zero")
}
