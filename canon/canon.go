package canon

import (
	"sort"

	"github.com/katalvlaran/gtrie/bitset"
	"github.com/katalvlaran/gtrie/condition"
)

// Recanonicalize relabels an n-vertex nauty-canonical adjacency so that
// positions near 0 (visited first by a g-trie descent) are filled last,
// with the most constraining vertices; articulation points are kept out of
// every position above 2 and so are deferred toward the low positions. It
// assigns canonical positions from n-1 down to 0, at each
// step picking the unused, non-articulation vertex with the lexicographically
// smallest (current_degree, last_degree, total_degree), ties broken by
// ascending original vertex id.
//
// orbits is the oracle's orbit assignment over the *input* vertex ids; the
// returned newOrbits is reindexed to the output positions. labels[pos] is
// the original vertex id placed at canonical position pos; callers that
// also hold automorphism generators over the input ids must relabel them
// with RelabelGenerators before passing them to SynthesizeConditions.
func Recanonicalize(adj bitset.Set, n int, orbits []int) (bitset.Set, []int, []int) {
	currentDegree := make([]int, n)
	lastDegree := make([]int, n)
	totalDegree := make([]int, n)
	for u := 0; u < n; u++ {
		d := degreeOf(adj, n, u)
		currentDegree[u] = d
		lastDegree[u] = d
		totalDegree[u] = d
	}

	used := make([]bool, n)
	labels := make([]int, n)

	for pos := n - 1; pos >= 0; pos-- {
		var ap []bool
		if pos > 2 {
			ap = articulationPoints(adj, n, used)
		} else {
			ap = make([]bool, n)
		}

		minU := selectMinVertex(currentDegree, lastDegree, totalDegree, used, ap, n)
		used[minU] = true
		labels[pos] = minU

		for v := 0; v < n; v++ {
			lastDegree[v] = currentDegree[v]
			if adj.Test(minU*n + v) {
				currentDegree[v]--
			}
			if adj.Test(v*n + minU) {
				currentDegree[v]--
			}
		}
	}

	newAdj := bitset.New(n * n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if adj.Test(labels[u]*n + labels[v]) {
				newAdj.Set(u*n + v)
			}
		}
	}

	newOrbits := make([]int, n)
	for pos := 0; pos < n; pos++ {
		newOrbits[pos] = orbits[labels[pos]]
	}

	return newAdj, newOrbits, labels
}

// RelabelGenerators conjugates a set of automorphism generators (expressed
// over the pre-Recanonicalize vertex ids) into the post-Recanonicalize
// position space described by labels: new_g[pos] = labels^-1(g(labels[pos])).
func RelabelGenerators(generators [][]int, labels []int) [][]int {
	n := len(labels)
	inv := make([]int, n)
	for pos, orig := range labels {
		inv[orig] = pos
	}

	out := make([][]int, len(generators))
	for gi, g := range generators {
		ng := make([]int, n)
		for pos := 0; pos < n; pos++ {
			ng[pos] = inv[g[labels[pos]]]
		}
		out[gi] = ng
	}

	return out
}

// SynthesizeConditions produces the minimal ordering Conditions that break
// every non-trivial automorphism in generators, given orbits relabeled to
// the same position space. generators must include the identity permutation;
// if it is the only element, SynthesizeConditions returns no conditions.
func SynthesizeConditions(newOrbits []int, generators [][]int) condition.Conditions {
	group := append([][]int(nil), generators...)
	var conditions condition.Conditions

	for _, o := range distinctOrbitsInOrder(newOrbits) {
		if len(group) <= 1 {
			break
		}
		positions := positionsInOrbit(newOrbits, o)
		for _, i := range positions {
			if len(group) <= 1 {
				break
			}
			for _, j := range positions {
				if j <= i {
					continue
				}
				if len(group) <= 1 {
					break
				}
				conditions = append(conditions, condition.New(i, j))
				group = retainRespecting(group, i, j)
			}
		}
	}

	return conditions
}

// degreeOf sums directed in- and out-degree of u: the undirected degree
// used to rank vertices for Stage 1.
func degreeOf(adj bitset.Set, n, u int) int {
	d := 0
	for v := 0; v < n; v++ {
		if adj.Test(u*n + v) {
			d++
		}
		if adj.Test(v*n + u) {
			d++
		}
	}

	return d
}

// selectMinVertex picks the unused, non-articulation vertex minimizing
// (currentDegree, lastDegree, totalDegree) lexicographically, ties broken
// by ascending vertex id (the iteration order itself, via strict <).
func selectMinVertex(currentDegree, lastDegree, totalDegree []int, used, ap []bool, n int) int {
	minU := -1
	for u := 0; u < n; u++ {
		if used[u] || ap[u] {
			continue
		}
		if minU < 0 {
			minU = u

			continue
		}
		if less3(currentDegree[u], lastDegree[u], totalDegree[u], currentDegree[minU], lastDegree[minU], totalDegree[minU]) {
			minU = u
		}
	}

	return minU
}

func less3(a1, a2, a3, b1, b2, b3 int) bool {
	if a1 != b1 {
		return a1 < b1
	}
	if a2 != b2 {
		return a2 < b2
	}

	return a3 < b3
}

// articulationPoints finds the articulation points of the undirected
// projection of adj restricted to the subgraph induced by currently unused
// vertices, via Tarjan low-link DFS. Used vertices never appear in the
// result and never participate as intermediate hops.
func articulationPoints(adj bitset.Set, n int, used []bool) []bool {
	visited := make([]bool, n)
	tin := make([]int, n)
	low := make([]int, n)
	ap := make([]bool, n)
	timer := 0

	var dfs func(v, parent int)
	dfs = func(v, parent int) {
		visited[v] = true
		tin[v] = timer
		low[v] = timer
		timer++

		children := 0
		for to := 0; to < n; to++ {
			if used[to] || to == parent {
				continue
			}
			if !adj.Test(v*n+to) && !adj.Test(to*n+v) {
				continue
			}
			if visited[to] {
				if low[v] > tin[to] {
					low[v] = tin[to]
				}

				continue
			}
			dfs(to, v)
			if low[v] > low[to] {
				low[v] = low[to]
			}
			if low[to] >= tin[v] && parent != -1 {
				ap[v] = true
			}
			children++
		}
		if parent == -1 && children > 1 {
			ap[v] = true
		}
	}

	for i := 0; i < n; i++ {
		if !visited[i] && !used[i] {
			dfs(i, -1)
		}
	}

	return ap
}

// distinctOrbitsInOrder returns the distinct orbit ids appearing in
// newOrbits, in order of first appearance.
func distinctOrbitsInOrder(newOrbits []int) []int {
	seen := make(map[int]bool, len(newOrbits))
	var order []int
	for _, o := range newOrbits {
		if !seen[o] {
			seen[o] = true
			order = append(order, o)
		}
	}

	return order
}

// positionsInOrbit returns, in ascending order, every position whose orbit
// id equals o.
func positionsInOrbit(newOrbits []int, o int) []int {
	var out []int
	for pos, oo := range newOrbits {
		if oo == o {
			out = append(out, pos)
		}
	}
	sort.Ints(out)

	return out
}

// retainRespecting returns the subset of group whose permutations g satisfy
// g[i] < g[j].
func retainRespecting(group [][]int, i, j int) [][]int {
	out := make([][]int, 0, len(group))
	for _, g := range group {
		if g[i] < g[j] {
			out = append(out, g)
		}
	}

	return out
}
