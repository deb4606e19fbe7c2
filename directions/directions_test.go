package directions_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coverwalk/core"
	"github.com/katalvlaran/coverwalk/directions"
)

// square builds a two-way 2×2 room block:
//
//	a ── b
//	│    │
//	c ── d
func square(t *testing.T) *core.Graph {
	t.Helper()
	b := core.NewBuilder()
	require.NoError(t, b.Connect("a", core.East, "b"))
	require.NoError(t, b.Connect("a", core.South, "c"))
	require.NoError(t, b.Connect("b", core.South, "d"))
	require.NoError(t, b.Connect("c", core.East, "d"))
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

func TestReconstruct(t *testing.T) {
	g := square(t)
	moves, err := directions.Reconstruct(g, []string{"a", "b", "d", "c", "a"})
	require.NoError(t, err)
	require.Equal(t, []core.Direction{core.East, core.South, core.West, core.North}, moves)
}

func TestReconstruct_Degenerate(t *testing.T) {
	g := square(t)
	moves, err := directions.Reconstruct(g, []string{"a"})
	require.NoError(t, err)
	require.Empty(t, moves)

	moves, err = directions.Reconstruct(g, nil)
	require.NoError(t, err)
	require.Empty(t, moves)

	_, err = directions.Reconstruct(nil, []string{"a"})
	require.ErrorIs(t, err, directions.ErrGraphNil)
}

// TestReconstruct_Mismatch reports, never skips, an impossible step.
func TestReconstruct_Mismatch(t *testing.T) {
	g := square(t)
	cases := map[string][]string{
		"diagonal":     {"a", "d"},
		"unknownStart": {"z", "a"},
		"unknownLater": {"a", "b", "z"},
		"stay":         {"a", "a"},
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := directions.Reconstruct(g, path)
			if !errors.Is(err, directions.ErrReconstructionMismatch) {
				t.Fatalf("Reconstruct(%v) error = %v; want ErrReconstructionMismatch", path, err)
			}
		})
	}
}

// TestReconstruct_ParallelExits picks the first direction in canonical order.
func TestReconstruct_ParallelExits(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.Link("x", core.West, "y"))
	require.NoError(t, b.Link("x", core.South, "y"))
	require.NoError(t, b.AddNode("y"))
	g, err := b.Build()
	require.NoError(t, err)

	moves, err := directions.Reconstruct(g, []string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, []core.Direction{core.South}, moves)
}

// TestFollow_RoundTrip replays reconstructed moves.
func TestFollow_RoundTrip(t *testing.T) {
	g := square(t)
	path := []string{"a", "c", "d", "b", "a", "c"}
	moves, err := directions.Reconstruct(g, path)
	require.NoError(t, err)
	back, err := directions.Follow(g, path[0], moves)
	require.NoError(t, err)
	require.Equal(t, path, back)
}

func TestFollow_Errors(t *testing.T) {
	g := square(t)
	_, err := directions.Follow(g, "a", []core.Direction{core.North})
	require.ErrorIs(t, err, directions.ErrReconstructionMismatch)

	_, err = directions.Follow(g, "nowhere", nil)
	require.ErrorIs(t, err, directions.ErrReconstructionMismatch)

	_, err = directions.Follow(nil, "a", nil)
	require.ErrorIs(t, err, directions.ErrGraphNil)
}

func TestFormatParse(t *testing.T) {
	moves := []core.Direction{core.North, core.North, core.East, core.South, core.West}
	text := directions.Format(moves)
	if text != "n n e s w" {
		t.Errorf("Format = %q", text)
	}
	back, err := directions.Parse("n, north\te s\nW")
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.Direction{core.North, core.North, core.East, core.South, core.West}; !reflect.DeepEqual(back, want) {
		t.Errorf("Parse = %v; want %v", back, want)
	}
	if _, err := directions.Parse("n up"); !errors.Is(err, core.ErrUnknownDirection) {
		t.Errorf("Parse(up) error = %v", err)
	}
	if got := directions.Format(nil); got != "" {
		t.Errorf("Format(nil) = %q", got)
	}
}
