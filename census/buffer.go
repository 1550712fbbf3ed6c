package census

import "github.com/katalvlaran/gtrie/bitset"

// candidateBuffer is the deduplicating ordered buffer backing candidate
// generation: a stack of host-vertex ids plus a membership bitset so
// Insert is O(1) and idempotent. Extraction order (Pop) is reverse
// insertion order, matching the reference design's stack semantics.
type candidateBuffer struct {
	stack   []int
	present bitset.Set
}

// newCandidateBuffer allocates a buffer capable of holding any subset of
// [0, n). Allocated once per Engine and reused across the entire census.
func newCandidateBuffer(n int) *candidateBuffer {
	return &candidateBuffer{
		stack:   make([]int, 0, n),
		present: bitset.New(n),
	}
}

// Insert pushes v if not already present; a no-op otherwise.
func (b *candidateBuffer) Insert(v int) {
	if b.present.Test(v) {
		return
	}
	b.present.Set(v)
	b.stack = append(b.stack, v)
}

// Fill inserts every host vertex 0..n-1.
func (b *candidateBuffer) Fill(n int) {
	for v := 0; v < n; v++ {
		b.Insert(v)
	}
}

// Pop removes and returns the most recently inserted candidate.
func (b *candidateBuffer) Pop() (int, bool) {
	if len(b.stack) == 0 {
		return 0, false
	}
	last := len(b.stack) - 1
	v := b.stack[last]
	b.stack = b.stack[:last]
	b.present.Clear(v)

	return v, true
}

// Clear empties the buffer without discarding its backing array.
func (b *candidateBuffer) Clear() {
	for _, v := range b.stack {
		b.present.Clear(v)
	}
	b.stack = b.stack[:0]
}
