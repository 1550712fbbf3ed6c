package automorph

import "github.com/katalvlaran/gtrie/bitset"

// Oracle is the automorphism-oracle contract the canon package depends on.
// Canonicalize takes an n-vertex directed adjacency bitset (row-major,
// n*n bits) and returns:
//   - canonAdj: a canonical-labeled adjacency (any fixed, deterministic
//     choice of representative within the input's isomorphism class),
//   - orbits: length-n array assigning each canonical position its orbit
//     id under the automorphism group of canonAdj,
//   - generators: a (not necessarily minimal) set of permutations, each of
//     length n, generating that automorphism group.
type Oracle interface {
	Canonicalize(adj bitset.Set, n int) (canonAdj bitset.Set, orbits []int, generators [][]int)
}

// BruteForceOracle implements Oracle via exhaustive permutation search.
// See doc.go for complexity and scope.
type BruteForceOracle struct{}

// Canonicalize implements Oracle.
func (BruteForceOracle) Canonicalize(adj bitset.Set, n int) (bitset.Set, []int, [][]int) {
	bestPerm := identity(n)
	bestKey := permKey(adj, n, bestPerm)

	forEachPermutation(n, func(perm []int) {
		key := permKey(adj, n, perm)
		if lessKey(key, bestKey) {
			bestKey = key
			copy(bestPerm, perm)
		}
	})

	canonAdj := applyPerm(adj, n, bestPerm)

	var generators [][]int
	forEachPermutation(n, func(perm []int) {
		if bitsetEqualUnderPerm(canonAdj, n, perm) {
			generators = append(generators, append([]int(nil), perm...))
		}
	})

	orbits := orbitsFromGroup(generators, n)

	return canonAdj, orbits, generators
}

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// permKey computes the row-major 0/1 byte string of adj after relabeling
// position u,v to original vertices perm[u],perm[v]. Used only for
// canonical-form comparison at build time, never on the census hot path.
func permKey(adj bitset.Set, n int, perm []int) []byte {
	key := make([]byte, n*n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if adj.Test(perm[u]*n + perm[v]) {
				key[u*n+v] = 1
			}
		}
	}

	return key
}

// lessKey reports whether a sorts strictly before b lexicographically.
func lessKey(a, b []byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// applyPerm materializes the adjacency bitset after relabeling positions
// by perm: new[u,v] = adj[perm[u], perm[v]].
func applyPerm(adj bitset.Set, n int, perm []int) bitset.Set {
	out := bitset.New(n * n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if adj.Test(perm[u]*n + perm[v]) {
				out.Set(u*n + v)
			}
		}
	}

	return out
}

// bitsetEqualUnderPerm reports whether relabeling adj by perm reproduces
// adj exactly, i.e. perm is an automorphism of adj.
func bitsetEqualUnderPerm(adj bitset.Set, n int, perm []int) bool {
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if adj.Test(perm[u]*n+perm[v]) != adj.Test(u*n+v) {
				return false
			}
		}
	}

	return true
}

// forEachPermutation calls fn once per permutation of [0, n) via Heap's
// algorithm. The slice passed to fn is reused between calls; fn must copy
// it if it needs to retain the value.
func forEachPermutation(n int, fn func(perm []int)) {
	perm := identity(n)
	c := make([]int, n)
	fn(perm)
	for i := 0; i < n; {
		if c[i] < i {
			if i%2 == 0 {
				perm[0], perm[i] = perm[i], perm[0]
			} else {
				perm[c[i]], perm[i] = perm[i], perm[c[i]]
			}
			fn(perm)
			c[i]++
			i = 0
		} else {
			c[i] = 0
			i++
		}
	}
}

// orbitsFromGroup partitions [0, n) into orbits under the permutation group
// generated (or fully enumerated, as BruteForceOracle does) by group, via
// union-find over i ~ g(i) for every g in group.
func orbitsFromGroup(group [][]int, n int) []int {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, g := range group {
		for i, gi := range g {
			union(i, gi)
		}
	}

	// Assign compact orbit ids in order of first appearance of each root,
	// so orbit id 0 is always the orbit containing position 0.
	ids := make(map[int]int, n)
	orbits := make([]int, n)
	for i := 0; i < n; i++ {
		root := find(i)
		id, ok := ids[root]
		if !ok {
			id = len(ids)
			ids[root] = id
		}
		orbits[i] = id
	}

	return orbits
}
