// Package bitgraph implements BitGraph, a packed n×n adjacency bit-matrix
// over directed edges, plus a per-vertex undirected neighbor view used by
// the census engine's pivot heuristic.
//
// What:
//   - FromEdges builds a BitGraph from an edge list, rejecting self-loops
//     unless explicitly enabled and deduplicating parallel edges.
//   - IsEdge answers directed adjacency queries in O(1).
//   - UndirNeighbors/UndirNeighborCount expose the undirected projection
//     (u~v iff u→v or v→u) that census.Engine uses to rank candidate
//     pivots by degree.
//   - ReplaceAdjacency swaps in a relabeled adjacency matrix (used once,
//     by canon.Recanonicalize) and recomputes the neighbor views.
//
// Why:
//   - Both pattern graphs (k ≤ 8 nodes) and host graphs (up to 10^6-10^9
//     candidate embeddings visited) need an allocation-free, cache-dense
//     edge test; a map-of-maps adjacency (core.Graph's own model) would
//     put a hash lookup on the census engine's hottest loop.
//
// Complexity:
//   - FromEdges: O(n² + |E|).
//   - IsEdge/UndirNeighborCount: O(1).
//   - ReplaceAdjacency: O(n²).
//
// Errors:
//   - ErrSelfLoop   - edge u→u given without includeLoops.
//   - ErrBadVertex  - edge endpoint outside [0, n).
package bitgraph
