// Package graphio reads the two text formats the core's collaborators
// exchange with it: graph6/digraph6-encoded pattern libraries for build
// time, and a whitespace-separated 1-indexed edge list for the host graph
// at census time.
//
// What:
//   - ReadPatternsG6: one digraph6 (or, for undirected patterns, classic
//     graph6) string per line, each decoded into a bitgraph.BitGraph.
//   - ReadHostEdgeList: "u v" pairs, one directed edge u->v per line;
//     rejects any 0-indexed id, and drops or keeps self-loops per the
//     includeLoops toggle.
//
// Both are parse-only: malformed input fails fast with a wrapped error,
// per the core's failure semantics for collaborator-owned I/O.
package graphio
