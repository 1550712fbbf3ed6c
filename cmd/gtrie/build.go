package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gtrie/automorph"
	"github.com/katalvlaran/gtrie/bitgraph"
	"github.com/katalvlaran/gtrie/canon"
	"github.com/katalvlaran/gtrie/condition"
	"github.com/katalvlaran/gtrie/graphio"
	"github.com/katalvlaran/gtrie/gtrie"
)

var (
	buildInput     string
	buildOutput    string
	buildSize      int
	buildVisualize bool

	buildCmd = &cobra.Command{
		Use:   "build",
		Short: "Canonicalize a pattern library and write a g-trie index",
		RunE:  runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVar(&buildInput, "input", "", "path to a graph6/digraph6 pattern file (required)")
	buildCmd.Flags().StringVar(&buildOutput, "output", "", "path to write the g-trie index (required)")
	buildCmd.Flags().IntVar(&buildSize, "size", 0, "pattern size k (required)")
	buildCmd.Flags().BoolVar(&buildVisualize, "visualize", false, "dump the built trie's structure to stdout")
	_ = buildCmd.MarkFlagRequired("input")
	_ = buildCmd.MarkFlagRequired("output")
	_ = buildCmd.MarkFlagRequired("size")
}

func runBuild(cmd *cobra.Command, args []string) error {
	f, err := os.Open(buildInput)
	if err != nil {
		return fmt.Errorf("gtrie build: %w", err)
	}
	defer f.Close()

	patterns, err := graphio.ReadPatternsG6(f)
	if err != nil {
		return fmt.Errorf("gtrie build: %w", err)
	}

	trie := gtrie.NewTrie(buildSize)
	var oracle automorph.BruteForceOracle

	for i, pattern := range patterns {
		if pattern.N() != buildSize {
			return fmt.Errorf("gtrie build: pattern %d has %d vertices, --size is %d", i+1, pattern.N(), buildSize)
		}
		canonical, conditions, label := canonicalize(oracle, pattern)
		trie.Insert(canonical, conditions, label)
	}

	if err := trie.WriteFile(buildOutput); err != nil {
		return fmt.Errorf("gtrie build: %w", err)
	}

	if buildVisualize {
		spew.Fdump(os.Stdout, trie.Root())
	}

	return nil
}

// canonicalize runs the full build-time pipeline on one raw pattern: nauty-
// style canonical labeling, trie-friendly recanonicalization, and
// symmetry-breaking condition synthesis.
func canonicalize(oracle automorph.Oracle, pattern *bitgraph.BitGraph) (*bitgraph.BitGraph, condition.Conditions, string) {
	n := pattern.N()
	canonAdj, orbits, generators := oracle.Canonicalize(pattern.Adjacency(), n)
	newAdj, newOrbits, labels := canon.Recanonicalize(canonAdj, n, orbits)
	newGenerators := canon.RelabelGenerators(generators, labels)
	conditions := canon.SynthesizeConditions(newOrbits, newGenerators)

	out, _ := bitgraph.FromEdges(n, true, nil, true)
	out.ReplaceAdjacency(newAdj)

	return out, conditions, graphio.EncodeDigraph6(out)
}
