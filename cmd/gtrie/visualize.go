package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gtrie/gtrie"
)

var (
	visualizeInput string

	visualizeCmd = &cobra.Command{
		Use:   "visualize",
		Short: "Dump a g-trie index's structure to stdout",
		RunE:  runVisualize,
	}
)

func init() {
	visualizeCmd.Flags().StringVar(&visualizeInput, "input", "", "path to a g-trie index written by build (required)")
	_ = visualizeCmd.MarkFlagRequired("input")
}

func runVisualize(cmd *cobra.Command, args []string) error {
	trie, err := gtrie.ReadTrieFile(visualizeInput)
	if err != nil {
		return fmt.Errorf("gtrie visualize: %w", err)
	}

	spew.Fdump(os.Stdout, trie.Root())

	return nil
}
