// Package automorph defines the automorphism-oracle contract that
// canon.Recanonicalize depends on, and ships BruteForceOracle, a
// complete-permutation-search implementation of it.
//
// SPEC_FULL.md marks the nauty/Bliss-style oracle an external collaborator
// ("consumed as a black box that returns orbits and a generating set of
// automorphism permutations") and explicitly keeps it outside the core's
// correctness contract. No package in the retrieved corpus provides a Go
// binding to nauty or Bliss, so BruteForceOracle exists to give the rest
// of the pipeline (canon, gtrie, the `build` CLI command) a real,
// swappable collaborator: it is correct for any k, but only practical for
// the k ≤ 8 patterns this system targets (k! ≤ 40320 permutations).
//
// What:
//   - Oracle: Canonicalize(adj, n) → (canonAdj, orbits, generators).
//   - BruteForceOracle: tries every permutation of [0,n), keeps the one
//     producing the lexicographically smallest row-major adjacency string
//     as canonAdj, then enumerates every permutation fixing canonAdj to
//     recover the full automorphism group and its orbit partition.
//
// Complexity: O(n! * n²) time; O(n² + |Aut| * n) memory, since every
// automorphism is kept as a generator. Intended for build-time use
// only (pattern libraries, not the host census hot path).
package automorph
