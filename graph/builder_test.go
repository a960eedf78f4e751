package graph_test

import (
	"testing"

	"github.com/PoOnesNerfect/bit-gossip/graph"
	"github.com/stretchr/testify/require"
)

func TestConnectRejectsSelfLoop(t *testing.T) {
	b := graph.NewBuilder(5)
	_, err := b.Connect(2, 2)
	require.ErrorIs(t, err, graph.ErrInvalidArgument)
}

func TestConnectRejectsOutOfRange(t *testing.T) {
	b := graph.NewBuilder(5)
	_, err := b.Connect(0, 5)
	require.ErrorIs(t, err, graph.ErrInvalidArgument)

	_, err = b.Connect(-1, 2)
	require.ErrorIs(t, err, graph.ErrInvalidArgument)
}

func TestConnectIsIdempotent(t *testing.T) {
	b := graph.NewBuilder(5)
	id1, err := b.Connect(1, 3)
	require.NoError(t, err)
	id2, err := b.Connect(3, 1)
	require.NoError(t, err)
	require.Equal(t, id1, id2)
	require.Equal(t, 1, b.EdgeCount())
}

func TestDisconnectIsIdempotent(t *testing.T) {
	b := graph.NewBuilder(5)
	_, _ = b.Connect(1, 3)
	b.Disconnect(1, 3)
	require.Equal(t, 0, b.EdgeCount())
	b.Disconnect(1, 3)
	require.Equal(t, 0, b.EdgeCount())
}

func TestResizeShrinkDropsIncidentEdges(t *testing.T) {
	b := graph.NewBuilder(5)
	_, _ = b.Connect(0, 4)
	_, _ = b.Connect(0, 1)
	b.Resize(3)
	require.Equal(t, 1, b.EdgeCount())
	require.Equal(t, 3, b.NodeCount())
}

func TestBuildEmptyGraph(t *testing.T) {
	b := graph.NewBuilder(0)
	g, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, 0, g.NodeCount())
}

func TestBuildIsolatedNode(t *testing.T) {
	b := graph.NewBuilder(3)
	_, _ = b.Connect(0, 1)
	g, err := b.Build()
	require.NoError(t, err)
	require.False(t, g.AreConnected(0, 2))
	require.Equal(t, 0, g.Degree(2))
}

func TestIntoBuilderRoundTrip(t *testing.T) {
	b := graph.NewBuilder(4)
	_, _ = b.Connect(0, 1)
	_, _ = b.Connect(1, 2)
	_, _ = b.Connect(2, 3)
	g1, err := b.Build()
	require.NoError(t, err)

	b2 := g1.IntoBuilder()
	require.Equal(t, 4, b2.NodeCount())
	require.Equal(t, 3, b2.EdgeCount())

	g2, err := b2.Build()
	require.NoError(t, err)
	require.Equal(t, g1.Stats().Edges, g2.Stats().Edges)
	for u := 0; u < 4; u++ {
		for v := 0; v < 4; v++ {
			require.Equal(t, g1.AreConnected(u, v), g2.AreConnected(u, v))
		}
	}
}
