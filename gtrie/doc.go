// Package gtrie implements the g-trie: a prefix tree over canonical
// directed-graph adjacency matrices. Each depth-d node encodes the row of
// the canonical adjacency matrix for position d-1 (the edges that position
// has to every earlier position); patterns sharing a prefix of rows share
// the corresponding trie path, and a terminal node marks a complete stored
// pattern.
//
// What:
//   - TrieNode: one level of the index — in/out row bits, child list,
//     terminal flag, label, frequency, restricted Conditions, and the
//     precomputed active-connections list the census engine's pivot
//     selection depends on.
//   - Trie: owns the root, max_depth, and the running total_matches
//     counter; Insert grows the tree from a stream of canonical patterns,
//     ForEachTerminal drives label/frequency collection, WriteFile/
//     ReadTrieFile persist and reload it as YAML.
//
// Insert never mutates an already-inserted pattern's rows — on a shared
// prefix it only narrows the shared node's Conditions via intersection, so
// a parent node only ever asserts constraints every descendant pattern
// actually guarantees.
//
// Complexity: Insert is O(depth * fan-out) per pattern; ForEachTerminal is
// O(|trie|).
package gtrie
