// Package condition implements symmetry-breaking conditions: an ordered
// set of position-pair inequalities i<j over a pattern's vertex positions,
// used by canon.SynthesizeConditions to eliminate automorphic duplicates
// and by census.Engine to prune the backtracking search.
//
// A Condition(i, j) asserts that whatever host vertex fills pattern
// position i must have a strictly smaller index than the host vertex
// filling position j. Conditions is the insertion-ordered sequence of
// such constraints attached to a gtrie.TrieNode.
//
// Complexity: every operation here is O(len(conditions)), which is at
// most O(k²) for a k-node pattern.
package condition
