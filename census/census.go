package census

import (
	"context"

	"github.com/katalvlaran/gtrie/bitgraph"
	"github.com/katalvlaran/gtrie/bitset"
	"github.com/katalvlaran/gtrie/gtrie"
)

// Engine is a reusable backtracking matcher bound to one host BitGraph. Its
// buffers (used, blacklist, candidates) are allocated once at construction
// and reused across every Run, never growing mid-search.
type Engine struct {
	host *bitgraph.BitGraph

	used       []int
	blacklist  bitset.Set
	candidates *candidateBuffer

	// accepted is a stack of structurally accepted candidates shared by all
	// recursion levels: each match call appends its own segment on top and
	// truncates it away before returning. It grows on demand and is reused.
	accepted []int

	trie *gtrie.Trie
	ctx  context.Context
}

// NewEngine builds an Engine over host, sizing its buffers to host.N() and
// maxDepth (the deepest trie it will ever be asked to Run).
func NewEngine(host *bitgraph.BitGraph, maxDepth int) *Engine {
	return &Engine{
		host:       host,
		used:       make([]int, 0, maxDepth),
		blacklist:  bitset.New(host.N()),
		candidates: newCandidateBuffer(host.N()),
	}
}

// Run walks trie against the engine's host graph and returns
// trie.TotalMatches(). Equivalent to RunContext(context.Background(), trie).
func (e *Engine) Run(trie *gtrie.Trie) uint64 {
	return e.RunContext(context.Background(), trie)
}

// RunContext is Run with cancellation: ctx is checked at every match entry.
// A cancelled run returns whatever total_matches had accumulated so far;
// per the reference design, a partial count is meaningless and callers
// must discard it rather than report it.
func (e *Engine) RunContext(ctx context.Context, trie *gtrie.Trie) uint64 {
	e.ctx = ctx
	e.trie = trie
	e.used = e.used[:0]
	e.blacklist.ClearAll()

	for _, child := range trie.Root().Children() {
		e.match(child)
	}

	return trie.TotalMatches()
}

// match implements the recursive procedure described for the census
// engine: a condition check on the already-bound prefix, pivot-driven
// candidate generation, a structural filter, and recursion per accepted
// candidate.
func (e *Engine) match(node *gtrie.TrieNode) {
	if e.ctx != nil && e.ctx.Err() != nil {
		return
	}

	if !e.respectsBoundConditions(node) {
		return
	}

	labelMin := e.labelMin(node)
	e.generateCandidates(node, labelMin)

	depth := len(e.used)
	outRow, inRow := node.OutRow(), node.InRow()

	// Drain the shared candidate buffer before recursing: nested match calls
	// refill it for their own depth.
	base := len(e.accepted)
	for v, ok := e.candidates.Pop(); ok; v, ok = e.candidates.Pop() {
		if e.structurallyConsistent(v, depth, outRow, inRow) {
			e.accepted = append(e.accepted, v)
		}
	}

	for i := base; i < len(e.accepted); i++ {
		v := e.accepted[i]
		e.used = append(e.used, v)
		e.blacklist.Set(v)

		if node.IsTerminal() {
			e.trie.RecordMatch(node)
		} else {
			for _, child := range node.Children() {
				e.match(child)
			}
		}

		e.used = e.used[:len(e.used)-1]
		e.blacklist.Clear(v)
	}
	e.accepted = e.accepted[:base]
}

// respectsBoundConditions checks every Condition(i,j) on node whose both
// endpoints are already bound (j < len(used)): the prefix survives only if
// used[i] < used[j] for all of them.
func (e *Engine) respectsBoundConditions(node *gtrie.TrieNode) bool {
	for _, c := range node.Conditions() {
		if c.Max() < len(e.used) && !(e.used[c.Min()] < e.used[c.Max()]) {
			return false
		}
	}

	return true
}

// labelMin computes the lower bound on the next candidate imposed by any
// Condition whose larger endpoint is exactly the position about to be
// filled (j == len(used)).
func (e *Engine) labelMin(node *gtrie.TrieNode) int {
	min := 0
	for _, c := range node.Conditions() {
		if c.Max() == len(e.used) {
			if bound := e.used[c.Min()] + 1; bound > min {
				min = bound
			}
		}
	}

	return min
}

// generateCandidates fills e.candidates for the current match() call: every
// host vertex when used is empty, otherwise the min-degree pivot's
// undirected neighborhood, filtered by labelMin and the blacklist.
func (e *Engine) generateCandidates(node *gtrie.TrieNode, labelMin int) {
	e.candidates.Clear()

	if len(e.used) == 0 {
		e.candidates.Fill(e.host.N())

		return
	}

	active := node.ActiveConnections()
	if len(active) == 0 {
		// Defensive fallback: a disconnected pattern row never arises for
		// the connected motif patterns this system targets, but soundness
		// (every structurally valid extension must appear as a candidate)
		// requires considering the whole host rather than failing closed.
		for w := 0; w < e.host.N(); w++ {
			if w >= labelMin && !e.blacklist.Test(w) {
				e.candidates.Insert(w)
			}
		}

		return
	}

	pivot := e.pivot(active)
	neighbors := e.host.UndirNeighbors(pivot)
	for w, ok := neighbors.NextSet(0); ok; w, ok = neighbors.NextSet(w + 1) {
		if w >= labelMin && !e.blacklist.Test(w) {
			e.candidates.Insert(w)
		}
	}
}

// pivot returns the host vertex, among those assigned to active's
// positions, with the smallest undirected degree in the host (ties broken
// by first encountered, i.e. by ascending position).
func (e *Engine) pivot(active []int) int {
	best := e.used[active[0]]
	bestDeg := e.host.UndirNeighborCount(best)
	for _, pos := range active[1:] {
		v := e.used[pos]
		if d := e.host.UndirNeighborCount(v); d < bestDeg {
			best = v
			bestDeg = d
		}
	}

	return best
}

// structurallyConsistent reports whether assigning v to the position at
// depth reproduces, against every already-bound position i, exactly the
// edges node's row records.
func (e *Engine) structurallyConsistent(v, depth int, outRow, inRow bitset.Set) bool {
	for i := 0; i < depth; i++ {
		u := e.used[i]
		if u == v {
			return false
		}
		if outRow.Test(i) != e.host.IsEdge(u, v) {
			return false
		}
		if inRow.Test(i) != e.host.IsEdge(v, u) {
			return false
		}
	}

	return true
}
