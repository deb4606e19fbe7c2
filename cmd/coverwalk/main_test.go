package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coverwalk/core"
	"github.com/katalvlaran/coverwalk/coverage"
)

const houseYAML = `
start: hall
rooms:
  hall:    {north: kitchen, e: study}
  kitchen: {s: hall}
  study:   {w: hall}
`

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestDecodeGraph(t *testing.T) {
	g, err := decodeGraph(strings.NewReader(houseYAML))
	require.NoError(t, err)
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, "hall", g.Start())
	require.Equal(t, []core.Direction{core.North, core.East}, g.Exits("hall"))

	// Without start the first room in the document wins.
	g, err = decodeGraph(strings.NewReader("rooms:\n  z: {w: a}\n  a: {e: z}\n"))
	require.NoError(t, err)
	require.Equal(t, "z", g.Start())
}

func TestDecodeGraph_Errors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"no rooms":      {"start: a\n", core.ErrGraphInput},
		"bad direction": {"rooms:\n  a: {up: b}\n  b: {}\n", core.ErrUnknownDirection},
		"dangling":      {"rooms:\n  a: {n: ghost}\n", core.ErrDanglingExit},
		"twice":         {"rooms:\n  a: {n: b, north: b}\n  b: {}\n", core.ErrExitExists},
		"duplicate":     {"rooms:\n  a: {}\n  a: {}\n", core.ErrGraphInput},
		"missing start": {"start: q\nrooms:\n  a: {}\n", core.ErrNodeNotFound},
		"not yaml":      {"rooms: [", core.ErrGraphInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeGraph(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, core.ErrGraphInput)
		})
	}
}

func TestParseFixture(t *testing.T) {
	for fixture, rooms := range map[string]int{
		"line:4":       4,
		"ring:5":       5,
		"oneway:4":     4,
		"grid:3x4":     12,
		"maze:3x3":     9,
		"lollipop:3,3": 6,
		"islands:2,3":  5,
	} {
		g, err := parseFixture(fixture, 1)
		require.NoError(t, err, fixture)
		require.Equal(t, rooms, g.NodeCount(), fixture)
	}
	for _, bad := range []string{"grid", "cube:3", "grid:3", "ring:x", "lollipop:1"} {
		_, err := parseFixture(bad, 1)
		require.ErrorIs(t, err, errBadFixture, bad)
	}
}

func TestSolveCommand(t *testing.T) {
	path := writeGraph(t, houseYAML)
	stdout, _, err := execute(t, "solve", "--graph", path, "--workers", "2", "--verify")
	require.NoError(t, err)
	// Both detours tie at three moves.
	require.Contains(t, []string{"n s e\n", "e w n\n"}, stdout)
}

func TestSolveCommand_JSON(t *testing.T) {
	stdout, _, err := execute(t, "solve", "--fixture", "oneway:4", "--json")
	require.NoError(t, err)

	var out solveOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	require.Equal(t, []string{"0", "1", "2", "3"}, out.Path)
	require.Equal(t, "e e e", out.Moves)
	require.Equal(t, coverage.DoneSuccess.String(), out.Phase)
	require.NotEmpty(t, out.RunID)
}

func TestSolveCommand_Failures(t *testing.T) {
	_, _, err := execute(t, "solve", "--fixture", "islands:2,2")
	require.ErrorIs(t, err, coverage.ErrUnreachableCoverage)

	_, _, err = execute(t, "solve", "--fixture", "lollipop:3,3", "--max-length", "6")
	require.ErrorIs(t, err, coverage.ErrLimitExceeded)

	_, _, err = execute(t, "solve", "--fixture", "ring:3", "--strategy", "greedy")
	require.ErrorIs(t, err, coverage.ErrOptionViolation)

	_, _, err = execute(t, "solve", "--fixture", "ring:3", "--log-level", "loud")
	require.Error(t, err)

	_, _, err = execute(t, "solve")
	require.Error(t, err)
}

func TestSolveCommand_DebugLogs(t *testing.T) {
	_, stderr, err := execute(t, "solve", "--fixture", "lollipop:2,3", "--log-level", "debug", "--verify")
	require.NoError(t, err)
	require.Contains(t, stderr, "phase transition")
	require.Contains(t, stderr, "route verified")
}

func TestValidateCommand(t *testing.T) {
	path := writeGraph(t, houseYAML)
	stdout, _, err := execute(t, "validate", "--graph", path)
	require.NoError(t, err)
	require.Equal(t, "3 rooms, start hall\n", stdout)

	_, _, err = execute(t, "validate", "--graph", filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestVerifyRoute(t *testing.T) {
	g, err := decodeGraph(strings.NewReader(houseYAML))
	require.NoError(t, err)
	require.NoError(t, verifyRoute(g, []core.Direction{core.North, core.South, core.East}))
	require.ErrorIs(t, verifyRoute(g, []core.Direction{core.North}), errVerify)
	require.ErrorIs(t, verifyRoute(g, []core.Direction{core.West}), errVerify)
}
