package condition

import "fmt"

// Condition asserts that the host vertex assigned to position I must be
// strictly less (by index) than the host vertex assigned to position J.
// I < J always holds by construction.
type Condition struct {
	I int
	J int
}

// New builds a Condition(i, j) and panics if i >= j: a malformed condition
// is a programmer error in canon, never a runtime input (see SPEC_FULL.md
// §4.6 failure semantics).
func New(i, j int) Condition {
	if i >= j {
		panic(fmt.Sprintf("condition: New(%d, %d): require i < j", i, j))
	}

	return Condition{I: i, J: j}
}

// Min returns i, the smaller position.
func (c Condition) Min() int { return c.I }

// Max returns j, the larger position.
func (c Condition) Max() int { return c.J }

// IsRespected reports whether, given positions d1<d2 are bound to host
// vertices u and v respectively, this Condition is satisfied. A condition
// only constrains the exact pair it names; any other (d1, d2) pair is
// vacuously respected.
func (c Condition) IsRespected(d1, d2, u, v int) bool {
	if d1 == c.I && d2 == c.J {
		return u < v
	}

	return true
}

func (c Condition) String() string {
	return fmt.Sprintf("%d<%d", c.I, c.J)
}

// Conditions is an insertion-ordered sequence of Condition values attached
// to a gtrie.TrieNode, restricted (per node depth d) to conditions whose
// Max() < d.
type Conditions []Condition

// IsEmpty reports whether the sequence carries no constraints.
func (cs Conditions) IsEmpty() bool {
	return len(cs) == 0
}

// Contains reports whether c is present by value.
func (cs Conditions) Contains(c Condition) bool {
	for _, existing := range cs {
		if existing == c {
			return true
		}
	}

	return false
}

// RetainFunc returns the subsequence of cs for which keep returns true,
// preserving order. It does not mutate cs.
func (cs Conditions) RetainFunc(keep func(Condition) bool) Conditions {
	out := make(Conditions, 0, len(cs))
	for _, c := range cs {
		if keep(c) {
			out = append(out, c)
		}
	}

	return out
}

// RestrictBelow returns the subsequence of conditions fully expressible
// at depth d: those with Max() < d. This is the exact filter a TrieNode at
// depth d applies when conditions are attached during insertion
// (SPEC_FULL.md §3 "conditions" invariant).
func (cs Conditions) RestrictBelow(d int) Conditions {
	return cs.RetainFunc(func(c Condition) bool { return c.Max() < d })
}

// Intersect returns the conditions present in both cs and other, by value.
// Used when merging a newly inserted pattern into a shared trie prefix: the
// parent node retains only constraints guaranteed by every descendant
// pattern (SPEC_FULL.md §4.4).
func (cs Conditions) Intersect(other Conditions) Conditions {
	return cs.RetainFunc(func(c Condition) bool { return other.Contains(c) })
}

// RespectsAll reports whether every condition in cs is respected for the
// given depth/vertex pair. d1 must be <= d2.
func (cs Conditions) RespectsAll(d1, d2, u, v int) bool {
	if d1 > d2 {
		panic("condition: RespectsAll requires d1 <= d2")
	}
	for _, c := range cs {
		if !c.IsRespected(d1, d2, u, v) {
			return false
		}
	}

	return true
}

// RespectsAny reports whether at least one condition in cs is respected
// for the given depth/vertex pair. d1 must be <= d2.
func (cs Conditions) RespectsAny(d1, d2, u, v int) bool {
	if d1 > d2 {
		panic("condition: RespectsAny requires d1 <= d2")
	}
	for _, c := range cs {
		if c.IsRespected(d1, d2, u, v) {
			return true
		}
	}

	return false
}
