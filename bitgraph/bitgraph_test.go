package bitgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gtrie/bitgraph"
)

func TestFromEdgesBasic(t *testing.T) {
	g, err := bitgraph.FromEdges(3, true, [][2]int{{1, 0}, {2, 0}}, false)
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	for i := 0; i < g.N(); i++ {
		for j := 0; j < g.N(); j++ {
			want := (i == 1 && j == 0) || (i == 2 && j == 0)
			assert.Equal(t, want, g.IsEdge(i, j), "edge (%d,%d)", i, j)
		}
	}
}

func TestFromEdgesRejectsSelfLoop(t *testing.T) {
	_, err := bitgraph.FromEdges(2, true, [][2]int{{0, 0}}, false)
	assert.ErrorIs(t, err, bitgraph.ErrSelfLoop)
}

func TestFromEdgesAllowsSelfLoopWhenEnabled(t *testing.T) {
	g, err := bitgraph.FromEdges(2, true, [][2]int{{0, 0}}, true)
	require.NoError(t, err)
	assert.True(t, g.IsEdge(0, 0))
	// A self-loop contributes no undirected neighbor (no "other" endpoint).
	assert.Equal(t, 0, g.UndirNeighborCount(0))
}

func TestFromEdgesRejectsBadVertex(t *testing.T) {
	_, err := bitgraph.FromEdges(2, true, [][2]int{{0, 5}}, false)
	assert.ErrorIs(t, err, bitgraph.ErrBadVertex)
}

func TestUndirectedNeighborsBothDirections(t *testing.T) {
	// 0→1 and 2→1: both should appear as undirected neighbors of 1.
	g, err := bitgraph.FromEdges(3, true, [][2]int{{0, 1}, {2, 1}}, false)
	require.NoError(t, err)
	assert.Equal(t, 2, g.UndirNeighborCount(1))
	assert.True(t, g.UndirNeighbors(1).Test(0))
	assert.True(t, g.UndirNeighbors(1).Test(2))
	assert.Equal(t, 1, g.UndirNeighborCount(0))
	assert.Equal(t, 1, g.UndirNeighborCount(2))
}

func TestReplaceAdjacencyRecomputesNeighbors(t *testing.T) {
	g, err := bitgraph.FromEdges(3, true, [][2]int{{0, 1}}, false)
	require.NoError(t, err)
	assert.Equal(t, 1, g.UndirNeighborCount(0))

	newAdj := g.Adjacency().Clone()
	newAdj.ClearAll()
	newAdj.Set(1*3 + 2) // relabel to edge 1→2
	g.ReplaceAdjacency(newAdj)

	assert.False(t, g.IsEdge(0, 1))
	assert.True(t, g.IsEdge(1, 2))
	assert.Equal(t, 0, g.UndirNeighborCount(0))
	assert.Equal(t, 1, g.UndirNeighborCount(1))
	assert.Equal(t, 1, g.UndirNeighborCount(2))
}
