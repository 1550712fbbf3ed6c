package gtrie

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gtrie/bitgraph"
	"github.com/katalvlaran/gtrie/bitset"
	"github.com/katalvlaran/gtrie/condition"
)

// ErrDepthExceeded is a structural invariant breach: a pattern larger than
// the trie's max_depth was offered to Insert.
var ErrDepthExceeded = fmt.Errorf("gtrie: pattern size exceeds max depth")

// TrieNode is one level of the g-trie. A node at depth d encodes, for the
// vertex at canonical position d-1, its edges to every earlier position
// 0..d-2, as bits 0..d-2 of outRow/inRow.
type TrieNode struct {
	depth int

	outRow bitset.Set
	inRow  bitset.Set

	children []*TrieNode

	isTerminal bool
	label      string
	frequency  uint64

	conditions        condition.Conditions
	activeConnections []int
}

func newTrieNode(depth int, outRow, inRow bitset.Set) *TrieNode {
	return &TrieNode{depth: depth, outRow: outRow, inRow: inRow}
}

// OutRow returns the out-edge bits for this node's position, one bit per
// earlier position.
func (n *TrieNode) OutRow() bitset.Set { return n.outRow }

// InRow returns the in-edge bits for this node's position.
func (n *TrieNode) InRow() bitset.Set { return n.inRow }

// Children returns this node's child list in insertion order.
func (n *TrieNode) Children() []*TrieNode { return n.children }

// IsTerminal reports whether this node marks a complete stored pattern.
func (n *TrieNode) IsTerminal() bool { return n.isTerminal }

// Label returns the terminal's stored label, or "" if not terminal.
func (n *TrieNode) Label() string { return n.label }

// Frequency returns the number of census matches recorded against this
// terminal so far.
func (n *TrieNode) Frequency() uint64 { return n.frequency }

// Conditions returns the Conditions restricted to max() < depth that every
// pattern sharing this prefix satisfies.
func (n *TrieNode) Conditions() condition.Conditions { return n.conditions }

// ActiveConnections returns the ascending positions u < depth-1 for which
// this node's row has an edge (either direction) to position depth-1.
func (n *TrieNode) ActiveConnections() []int { return n.activeConnections }

// Trie is a prefix tree of TrieNode, rooted at an empty depth-0 node.
type Trie struct {
	root         *TrieNode
	maxDepth     int
	totalMatches uint64
}

// NewTrie allocates an empty Trie accepting patterns of up to maxDepth
// vertices.
func NewTrie(maxDepth int) *Trie {
	return &Trie{
		root:     newTrieNode(0, bitset.New(0), bitset.New(0)),
		maxDepth: maxDepth,
	}
}

// Root returns the depth-0 root node.
func (t *Trie) Root() *TrieNode { return t.root }

// MaxDepth returns k, the maximum pattern size this trie accepts.
func (t *Trie) MaxDepth() int { return t.maxDepth }

// TotalMatches returns the running sum of every terminal's frequency,
// accumulated by RecordMatch during a census run.
func (t *Trie) TotalMatches() uint64 { return t.totalMatches }

// RecordMatch increments node's frequency and the trie's total_matches. It
// is the only mutation a census run performs.
func (t *Trie) RecordMatch(node *TrieNode) {
	node.frequency++
	t.totalMatches++
}

// Insert grows the trie with a canonical pattern: pattern.N() directed rows,
// conds a (possibly empty) set of symmetry-breaking Conditions over the
// pattern's positions, and label the string to report on a census match.
// Insert panics with ErrDepthExceeded if pattern.N() > t.maxDepth: this is
// a structural invariant breach, not a recoverable runtime error.
func (t *Trie) Insert(pattern *bitgraph.BitGraph, conds condition.Conditions, label string) {
	n := pattern.N()
	if n > t.maxDepth {
		panic(fmt.Errorf("gtrie: Insert(n=%d, maxDepth=%d): %w", n, t.maxDepth, ErrDepthExceeded))
	}

	insertNode(t.root, pattern, conds, label, 0)
}

// insertNode recurses from depth 0 to pattern.N(), creating or reusing one
// child per level until the full pattern has been threaded through the
// trie.
func insertNode(node *TrieNode, pattern *bitgraph.BitGraph, conds condition.Conditions, label string, depth int) {
	n := pattern.N()
	if depth == n {
		node.isTerminal = true
		node.label = label

		return
	}

	outRow, inRow := rowBits(pattern, depth)

	for _, child := range node.children {
		if rowEqual(child.outRow, child.inRow, outRow, inRow, depth) {
			child.conditions = child.conditions.Intersect(conds.RestrictBelow(depth + 1))
			insertNode(child, pattern, conds, label, depth+1)

			return
		}
	}

	child := newTrieNode(depth+1, outRow, inRow)
	child.conditions = conds.RestrictBelow(depth + 1)
	child.activeConnections = activeConnectionsOf(outRow, inRow, depth)
	node.children = append(node.children, child)
	insertNode(child, pattern, conds, label, depth+1)
}

// rowBits computes the out/in row bits for position `depth` against every
// earlier position 0..depth-1.
func rowBits(pattern *bitgraph.BitGraph, depth int) (bitset.Set, bitset.Set) {
	outRow := bitset.New(depth)
	inRow := bitset.New(depth)
	for u := 0; u < depth; u++ {
		if pattern.IsEdge(u, depth) {
			outRow.Set(u)
		}
		if pattern.IsEdge(depth, u) {
			inRow.Set(u)
		}
	}

	return outRow, inRow
}

// rowEqual compares a candidate child's stored rows against a freshly
// computed (outRow, inRow) pair, both of bit width `depth`.
func rowEqual(childOut, childIn, outRow, inRow bitset.Set, depth int) bool {
	for u := 0; u < depth; u++ {
		if childOut.Test(u) != outRow.Test(u) {
			return false
		}
		if childIn.Test(u) != inRow.Test(u) {
			return false
		}
	}

	return true
}

// activeConnectionsOf lists the earlier positions with an edge, either
// direction, to the newly inserted position.
func activeConnectionsOf(outRow, inRow bitset.Set, depth int) []int {
	var active []int
	for u := 0; u < depth; u++ {
		if outRow.Test(u) || inRow.Test(u) {
			active = append(active, u)
		}
	}

	return active
}

// ForEachTerminal visits every terminal node in trie DFS order (children in
// insertion order), calling fn(label, frequency) for each.
func (t *Trie) ForEachTerminal(fn func(label string, frequency uint64)) {
	visitTerminals(t.root, fn)
}

func visitTerminals(node *TrieNode, fn func(label string, frequency uint64)) {
	if node.isTerminal {
		fn(node.label, node.frequency)
	}
	for _, child := range node.children {
		visitTerminals(child, fn)
	}
}

// trieNodeDoc is the YAML-serializable shadow of TrieNode. Row bitsets are
// persisted as their set bit positions, and frequency is deliberately
// omitted: it is derived per census run, not stored state.
type trieNodeDoc struct {
	OutRow            []int          `yaml:"out_row,omitempty"`
	InRow             []int          `yaml:"in_row,omitempty"`
	Children          []*trieNodeDoc `yaml:"children,omitempty"`
	IsTerminal        bool           `yaml:"is_terminal,omitempty"`
	Label             string         `yaml:"label,omitempty"`
	Conditions        [][2]int       `yaml:"conditions,omitempty"`
	ActiveConnections []int          `yaml:"active_connections,omitempty"`
}

type trieDoc struct {
	MaxDepth int          `yaml:"max_depth"`
	Root     *trieNodeDoc `yaml:"root"`
}

// WriteFile persists the trie's structure (rows, children, terminals,
// labels, conditions, active connections, max_depth) to path as YAML.
// Frequencies are not persisted.
func (t *Trie) WriteFile(path string) error {
	doc := trieDoc{MaxDepth: t.maxDepth, Root: toDoc(t.root, 0)}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("gtrie: WriteFile(%s): marshal: %w", path, err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("gtrie: WriteFile(%s): %w", path, err)
	}

	return nil
}

// ReadTrieFile loads a trie previously written by WriteFile. Frequencies
// start at zero; active_connections and conditions are restored verbatim.
func ReadTrieFile(path string) (*Trie, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gtrie: ReadTrieFile(%s): %w", path, err)
	}

	var doc trieDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("gtrie: ReadTrieFile(%s): unmarshal: %w", path, err)
	}

	t := &Trie{maxDepth: doc.MaxDepth}
	t.root = fromDoc(doc.Root, 0)

	return t, nil
}

func toDoc(node *TrieNode, depth int) *trieNodeDoc {
	d := &trieNodeDoc{
		OutRow:            node.outRow.Ones(),
		InRow:             node.inRow.Ones(),
		IsTerminal:        node.isTerminal,
		Label:             node.label,
		ActiveConnections: node.activeConnections,
	}
	for _, c := range node.conditions {
		d.Conditions = append(d.Conditions, [2]int{c.Min(), c.Max()})
	}
	for _, child := range node.children {
		d.Children = append(d.Children, toDoc(child, depth+1))
	}

	return d
}

func fromDoc(d *trieNodeDoc, depth int) *TrieNode {
	outRow := bitset.New(depth)
	for _, b := range d.OutRow {
		outRow.Set(b)
	}
	inRow := bitset.New(depth)
	for _, b := range d.InRow {
		inRow.Set(b)
	}

	node := newTrieNode(depth, outRow, inRow)
	node.isTerminal = d.IsTerminal
	node.label = d.Label
	node.activeConnections = append([]int(nil), d.ActiveConnections...)
	for _, pair := range d.Conditions {
		node.conditions = append(node.conditions, condition.New(pair[0], pair[1]))
	}
	sort.Ints(node.activeConnections)

	for _, childDoc := range d.Children {
		node.children = append(node.children, fromDoc(childDoc, depth+1))
	}

	return node
}
