package bitgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gtrie/bitset"
)

// ErrSelfLoop indicates a u→u edge was supplied without includeLoops set.
var ErrSelfLoop = errors.New("bitgraph: self-loop not allowed")

// ErrBadVertex indicates an edge endpoint outside the declared vertex range.
var ErrBadVertex = errors.New("bitgraph: vertex index out of range")

// BitGraph is a packed n×n directed adjacency bit-matrix, immutable after
// construction except for the single ReplaceAdjacency relabeling step used
// during canonicalization.
//
// Invariants (see SPEC_FULL.md §3):
//   - adj has capacity n*n; bit u*n+v set iff directed edge u→v.
//   - undirNeighbors[u] and undirNeighborCount[u] are always consistent
//     with adj (u~v iff u→v or v→u, no self-loop entries).
type BitGraph struct {
	adj      bitset.Set
	n        int
	directed bool

	undirNeighbors     []bitset.Set
	undirNeighborCount []int
}

// FromEdges builds a BitGraph on n vertices from a directed edge list.
// Self-loops are rejected with ErrSelfLoop unless includeLoops is true, in
// which case they are kept in adj but never contribute to the undirected
// neighbor views (an edge u→u has no "other endpoint"). Parallel edges are
// deduplicated by the underlying bitset's idempotent Set.
//
// Complexity: O(n² + |E|).
func FromEdges(n int, directed bool, edges [][2]int, includeLoops bool) (*BitGraph, error) {
	adj := bitset.New(n * n)
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("bitgraph: edge (%d,%d): %w", u, v, ErrBadVertex)
		}
		if u == v {
			if !includeLoops {
				return nil, fmt.Errorf("bitgraph: edge (%d,%d): %w", u, v, ErrSelfLoop)
			}
		}
		adj.Set(u*n + v)
		if !directed {
			adj.Set(v*n + u)
		}
	}

	g := &BitGraph{adj: adj, n: n, directed: directed}
	g.rebuildNeighbors()

	return g, nil
}

// rebuildNeighbors recomputes undirNeighbors/undirNeighborCount from adj.
// Complexity: O(n²).
func (g *BitGraph) rebuildNeighbors() {
	g.undirNeighbors = make([]bitset.Set, g.n)
	g.undirNeighborCount = make([]int, g.n)
	for u := 0; u < g.n; u++ {
		g.undirNeighbors[u] = bitset.New(g.n)
	}
	for u := 0; u < g.n; u++ {
		for v := u + 1; v < g.n; v++ {
			if g.adj.Test(u*g.n+v) || g.adj.Test(v*g.n+u) {
				g.undirNeighbors[u].Set(v)
				g.undirNeighbors[v].Set(u)
				g.undirNeighborCount[u]++
				g.undirNeighborCount[v]++
			}
		}
	}
}

// N returns the number of vertices.
func (g *BitGraph) N() int {
	return g.n
}

// Directed reports whether this BitGraph was built from directed edges.
func (g *BitGraph) Directed() bool {
	return g.directed
}

// IsEdge reports whether a directed edge u→v exists.
// Complexity: O(1).
func (g *BitGraph) IsEdge(u, v int) bool {
	return g.adj.Test(u*g.n + v)
}

// UndirNeighbors returns the undirected neighbor bitset of u: all v with
// u→v or v→u, excluding u itself.
func (g *BitGraph) UndirNeighbors(u int) bitset.Set {
	return g.undirNeighbors[u]
}

// UndirNeighborCount returns the cached popcount of UndirNeighbors(u).
// Complexity: O(1).
func (g *BitGraph) UndirNeighborCount(u int) int {
	return g.undirNeighborCount[u]
}

// Adjacency exposes the raw packed adjacency bitset for callers (canon,
// gtrie) that need to read or relabel full rows. Callers must not mutate
// bits through this view except via ReplaceAdjacency.
func (g *BitGraph) Adjacency() bitset.Set {
	return g.adj
}

// ReplaceAdjacency swaps in a new n*n adjacency matrix (used once during
// canonical relabeling) and recomputes the undirected neighbor views.
// Complexity: O(n²).
func (g *BitGraph) ReplaceAdjacency(adj bitset.Set) {
	g.adj = adj
	g.rebuildNeighbors()
}
