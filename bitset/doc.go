// Package bitset implements a fixed-capacity, word-packed set of
// non-negative integers, the substrate shared by bitgraph.BitGraph's
// adjacency matrix, gtrie.TrieNode's row bits, and census.Engine's
// blacklist and candidate buffer.
//
// Unlike a growable bitset, Set is sized once at construction (New(n))
// and never reallocates: every caller in this module knows its universe
// size up front (n vertices, or a fixed k-bit pattern row), so paying for
// dynamic growth would be waste on the hottest path in the repository
// (census.Engine.match).
//
// Complexity:
//
//   - Set/Clear/Test: O(1).
//   - Count: O(words).
//   - Ones/NextSet: amortized O(1) per returned bit.
//
// Functions:
//
//   - New(n int) Set
//   - (Set) Set/Clear/Test/Count/Clone/Ones/NextSet
//   - (Set) Union (in place)
package bitset
