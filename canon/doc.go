// Package canon turns a raw, nauty-canonicalized pattern into a
// trie-friendly canonical form: it re-labels vertices so that highly
// constraining vertices occupy the low positions visited first by a gtrie
// descent, with articulation points kept out of the high positions, and it
// synthesizes the minimal set
// of ordering Conditions needed to break the pattern's remaining
// automorphisms.
//
// What:
//   - Recanonicalize: degree-ranked relabeling with articulation-point
//     deferral (Stage 1).
//   - SynthesizeConditions: orbit-driven Condition(i,j) generation that
//     stops as soon as the automorphism group collapses to the identity
//     (Stage 2).
//   - articulationPoints: Tarjan low-link DFS restricted to the
//     currently unused vertex subset, used only internally by Stage 1.
//
// Both stages consume the output of an automorph.Oracle and never call
// it themselves — canon has no opinion on how canonical labeling or
// automorphism-group discovery is performed.
//
// Complexity: Recanonicalize is O(k^3) (k iterations, each doing an
// O(k^2) articulation-point sweep); SynthesizeConditions is O(k^2 * |group|)
// in the worst case, but exits early once the group collapses.
package canon
