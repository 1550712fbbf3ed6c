package automorph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gtrie/automorph"
	"github.com/katalvlaran/gtrie/bitgraph"
)

func TestCanonicalizeTriangleFullSymmetry(t *testing.T) {
	// Undirected triangle modeled as directed both-ways: Aut has order 6.
	g, err := bitgraph.FromEdges(3, true, [][2]int{
		{0, 1}, {1, 0},
		{1, 2}, {2, 1},
		{0, 2}, {2, 0},
	}, false)
	require.NoError(t, err)

	var oracle automorph.BruteForceOracle
	_, orbits, generators := oracle.Canonicalize(g.Adjacency(), 3)

	assert.Equal(t, []int{0, 0, 0}, orbits, "all three positions share one orbit")
	assert.Len(t, generators, 6, "S3 has 6 elements")
}

func TestCanonicalizeDirectedCycleNoSymmetryBreaksToRotations(t *testing.T) {
	// Directed 3-cycle 0→1→2→0: automorphism group is the cyclic rotations (order 3).
	g, err := bitgraph.FromEdges(3, true, [][2]int{{0, 1}, {1, 2}, {2, 0}}, false)
	require.NoError(t, err)

	var oracle automorph.BruteForceOracle
	_, orbits, generators := oracle.Canonicalize(g.Adjacency(), 3)

	assert.Equal(t, orbits[0], orbits[1])
	assert.Equal(t, orbits[1], orbits[2])
	assert.Len(t, generators, 3)
}

func TestCanonicalizeAsymmetricPatternTrivialGroup(t *testing.T) {
	// A feed-forward loop 0→1, 0→2, 1→2 has trivial automorphism group.
	g, err := bitgraph.FromEdges(3, true, [][2]int{{0, 1}, {0, 2}, {1, 2}}, false)
	require.NoError(t, err)

	var oracle automorph.BruteForceOracle
	_, orbits, generators := oracle.Canonicalize(g.Adjacency(), 3)

	assert.Len(t, generators, 1, "only the identity automorphism")
	assert.Equal(t, 3, len(distinctInts(orbits)), "every position is its own orbit")
}

func distinctInts(xs []int) map[int]struct{} {
	m := make(map[int]struct{}, len(xs))
	for _, x := range xs {
		m[x] = struct{}{}
	}

	return m
}
