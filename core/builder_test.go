package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coverwalk/core"
)

// TestBuilder_Errors verifies that malformed input is rejected and that
// every rejection wraps ErrGraphInput.
func TestBuilder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func() error
		err   error
	}{
		{"EmptyGraph", func() error {
			_, err := core.NewBuilder().Build()
			return err
		}, core.ErrEmptyGraph},
		{"EmptyID", func() error {
			return core.NewBuilder().AddNode("")
		}, core.ErrEmptyNodeID},
		{"EmptyLinkTarget", func() error {
			return core.NewBuilder().Link("A", core.North, "")
		}, core.ErrEmptyNodeID},
		{"Duplicate", func() error {
			b := core.NewBuilder()
			_ = b.AddNode("A")
			return b.AddNode("A")
		}, core.ErrDuplicateNode},
		{"BadDirection", func() error {
			return core.NewBuilder().Link("A", core.Direction(9), "B")
		}, core.ErrUnknownDirection},
		{"Relink", func() error {
			b := core.NewBuilder()
			_ = b.Link("A", core.North, "B")
			return b.Link("A", core.North, "C")
		}, core.ErrExitExists},
		{"Dangling", func() error {
			b := core.NewBuilder()
			_ = b.Link("A", core.North, "B")
			_, err := b.Build()
			return err
		}, core.ErrDanglingExit},
		{"MissingStart", func() error {
			b := core.NewBuilder()
			_ = b.AddNode("A")
			b.SetStart("Z")
			_, err := b.Build()
			return err
		}, core.ErrNodeNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build()
			require.ErrorIs(t, err, tc.err)
			require.ErrorIs(t, err, core.ErrGraphInput)
		})
	}
}

// TestBuilder_RelinkSameTarget ensures re-linking an identical exit is a no-op.
func TestBuilder_RelinkSameTarget(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.Connect("A", core.East, "B"))
	require.NoError(t, b.Link("A", core.East, "B"))
	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
}

// TestBuilder_DefaultStart checks that the first node added is the start.
func TestBuilder_DefaultStart(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("zeta"))
	require.NoError(t, b.Connect("zeta", core.South, "alpha"))
	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "zeta", g.Start())

	b.SetStart("alpha")
	g, err = b.Build()
	require.NoError(t, err)
	require.Equal(t, "alpha", g.Start())
}

// TestGraph_OneWay verifies that Link never infers a reverse edge.
func TestGraph_OneWay(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.AddNode("B"))
	require.NoError(t, b.Link("A", core.East, "B"))
	g, err := b.Build()
	require.NoError(t, err)

	to, ok := g.Neighbor("A", core.East)
	require.True(t, ok)
	require.Equal(t, "B", to)

	_, ok = g.Neighbor("B", core.West)
	require.False(t, ok, "reverse edge must not be inferred")
	require.Empty(t, g.Exits("B"))
}

// TestGraph_Queries covers ID/index mapping and canonical exit order.
func TestGraph_Queries(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.Connect("hub", core.West, "w"))
	require.NoError(t, b.Connect("hub", core.North, "n"))
	require.NoError(t, b.Connect("hub", core.East, "e"))
	g, err := b.Build()
	require.NoError(t, err)

	require.Equal(t, 4, g.NodeCount())
	require.Equal(t, []string{"e", "hub", "n", "w"}, g.IDs())
	require.Equal(t, []core.Direction{core.North, core.East, core.West}, g.Exits("hub"))
	require.Nil(t, g.Exits("missing"))
	require.False(t, g.HasNode("missing"))

	hub, ok := g.Index("hub")
	require.True(t, ok)
	require.Equal(t, "hub", g.ID(hub))
	require.Equal(t, hub, g.StartIndex())

	n, ok := g.NeighborAt(hub, core.North)
	require.True(t, ok)
	require.Equal(t, "n", g.ID(n))
	_, ok = g.NeighborAt(hub, core.South)
	require.False(t, ok)
	_, ok = g.NeighborAt(hub, core.Direction(7))
	require.False(t, ok)
}

// TestGraph_StartAt shares topology with a new start node.
func TestGraph_StartAt(t *testing.T) {
	b := core.NewBuilder()
	require.NoError(t, b.Connect("A", core.North, "B"))
	g, err := b.Build()
	require.NoError(t, err)

	h, err := g.StartAt("B")
	require.NoError(t, err)
	require.Equal(t, "B", h.Start())
	require.Equal(t, "A", g.Start())

	_, err = g.StartAt("Q")
	if !errors.Is(err, core.ErrNodeNotFound) {
		t.Fatalf("StartAt(Q) error = %v; want ErrNodeNotFound", err)
	}
}
