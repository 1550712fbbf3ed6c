package gtrie_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gtrie/bitgraph"
	"github.com/katalvlaran/gtrie/condition"
	"github.com/katalvlaran/gtrie/gtrie"
)

func mustGraph(t *testing.T, n int, edges [][2]int) *bitgraph.BitGraph {
	t.Helper()
	g, err := bitgraph.FromEdges(n, true, edges, false)
	require.NoError(t, err)

	return g
}

func TestInsertSharesPrefixAcrossPatterns(t *testing.T) {
	trie := gtrie.NewTrie(3)

	// Two 3-node patterns sharing edge (0,1) but differing at vertex 2.
	a := mustGraph(t, 3, [][2]int{{0, 1}, {0, 2}})
	b := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})

	trie.Insert(a, nil, "A")
	trie.Insert(b, nil, "B")

	require.Len(t, trie.Root().Children(), 1, "both patterns share the trivial depth-1 prefix")
	depth1 := trie.Root().Children()[0]
	require.Len(t, depth1.Children(), 1, "both patterns share the depth-2 row (edge 0->1)")
	depth2 := depth1.Children()[0]
	require.Len(t, depth2.Children(), 2, "patterns diverge at depth 3 (position 2)")

	var labels []string
	trie.ForEachTerminal(func(label string, freq uint64) {
		labels = append(labels, label)
	})
	assert.ElementsMatch(t, []string{"A", "B"}, labels)
}

func TestInsertIdenticalPatternMergesIntoSameTerminal(t *testing.T) {
	trie := gtrie.NewTrie(3)

	a := mustGraph(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	b := mustGraph(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})

	trie.Insert(a, nil, "A")
	trie.Insert(b, nil, "A")

	count := 0
	trie.ForEachTerminal(func(label string, freq uint64) { count++ })
	assert.Equal(t, 1, count, "identical patterns collapse to one terminal")
}

func TestInsertIntersectsConditionsOnSharedPrefix(t *testing.T) {
	trie := gtrie.NewTrie(3)

	a := mustGraph(t, 3, [][2]int{{0, 1}, {0, 2}})
	b := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})

	condsA := condition.Conditions{condition.New(0, 1)}
	condsB := condition.Conditions{condition.New(1, 2)}

	trie.Insert(a, condsA, "A")
	trie.Insert(b, condsB, "B")

	depth2 := trie.Root().Children()[0].Children()[0]
	assert.True(t, depth2.Conditions().IsEmpty(), "A's Condition(0,1) survives restriction to max()<2, but B has no condition there, so the intersection is empty")
}

func TestInsertPanicsOnDepthExceeded(t *testing.T) {
	trie := gtrie.NewTrie(2)
	g := mustGraph(t, 3, [][2]int{{0, 1}, {1, 2}})

	assert.PanicsWithError(t, "gtrie: Insert(n=3, maxDepth=2): gtrie: pattern size exceeds max depth", func() {
		trie.Insert(g, nil, "X")
	})
}

func TestWriteFileReadTrieFileRoundTrip(t *testing.T) {
	trie := gtrie.NewTrie(3)
	a := mustGraph(t, 3, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	trie.Insert(a, condition.Conditions{condition.New(0, 1)}, "tri")

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, trie.WriteFile(path))

	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := gtrie.ReadTrieFile(path)
	require.NoError(t, err)
	assert.Equal(t, trie.MaxDepth(), loaded.MaxDepth())

	var origLabels, loadedLabels []string
	trie.ForEachTerminal(func(label string, freq uint64) { origLabels = append(origLabels, label) })
	loaded.ForEachTerminal(func(label string, freq uint64) { loadedLabels = append(loadedLabels, label) })
	assert.Equal(t, origLabels, loadedLabels)
	assert.Equal(t, uint64(0), loaded.TotalMatches(), "frequencies are not persisted")
}
