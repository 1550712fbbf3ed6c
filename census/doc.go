// Package census implements the backtracking matcher that walks a
// gtrie.Trie and a host bitgraph.BitGraph in lock-step, extending a
// partial vertex assignment only when the induced subgraph on the chosen
// vertices exactly matches the current trie node's row pattern. Pruning
// comes from two sources: the symmetry-breaking Conditions attached to
// each TrieNode, and a minimum-undirected-degree pivot heuristic that
// bounds candidate generation to a single host vertex's neighborhood.
//
// What:
//   - Engine: owns the three reusable backtracking buffers (used,
//     blacklist, candidates), allocated once in NewEngine and reset, not
//     reallocated, by each Run.
//   - Run(trie): starts the matcher once per child of trie's root,
//     accumulating trie.TotalMatches via gtrie.Trie.RecordMatch.
//
// Allocation discipline: candidateBuffer is sized to host.N() at
// construction; used is reserved to trie.MaxDepth(); blacklist is a
// fixed-size bitset.Set. The structural filter loop allocates nothing per
// candidate.
//
// Complexity: O(|trie| * branching^depth) in the worst case; in practice
// bounded by the pivot heuristic's narrow candidate sets.
package census
