package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gtrie/census"
	"github.com/katalvlaran/gtrie/graphio"
	"github.com/katalvlaran/gtrie/gtrie"
)

var (
	enumerateGtrie        string
	enumerateInput        string
	enumerateIncludeLoops bool

	enumerateCmd = &cobra.Command{
		Use:   "enumerate",
		Short: "Run a census of a host graph against a built g-trie index",
		RunE:  runEnumerate,
	}
)

func init() {
	enumerateCmd.Flags().StringVar(&enumerateGtrie, "gtrie", "", "path to a g-trie index written by build (required)")
	enumerateCmd.Flags().StringVar(&enumerateInput, "input", "", "path to a 1-indexed host edge-list file (required)")
	enumerateCmd.Flags().BoolVar(&enumerateIncludeLoops, "include-loops", false, "keep host self-loops instead of dropping them")
	_ = enumerateCmd.MarkFlagRequired("gtrie")
	_ = enumerateCmd.MarkFlagRequired("input")
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	trie, err := gtrie.ReadTrieFile(enumerateGtrie)
	if err != nil {
		return fmt.Errorf("gtrie enumerate: %w", err)
	}

	f, err := os.Open(enumerateInput)
	if err != nil {
		return fmt.Errorf("gtrie enumerate: %w", err)
	}
	defer f.Close()

	host, err := graphio.ReadHostEdgeList(f, enumerateIncludeLoops)
	if err != nil {
		return fmt.Errorf("gtrie enumerate: %w", err)
	}

	engine := census.NewEngine(host, trie.MaxDepth())

	start := time.Now()
	total := engine.Run(trie)
	elapsed := time.Since(start)

	fmt.Fprintf(os.Stderr, "elapsed: %s\n", elapsed)
	fmt.Fprintf(os.Stderr, "Total subgraphs: %d\n", total)

	trie.ForEachTerminal(func(label string, frequency uint64) {
		if frequency == 0 {
			return
		}
		fmt.Printf("%s\t%d\n", label, frequency)
	})

	return nil
}
