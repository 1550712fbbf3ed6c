package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "gtrie",
	Short: "Build and run a g-trie network-motif census",
	Long: `gtrie indexes a library of directed k-node query patterns into a
prefix tree keyed on canonical adjacency matrices, then walks a host graph
against that index in a single pass to count every stored pattern's
occurrences simultaneously.`,
}

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(enumerateCmd)
	rootCmd.AddCommand(visualizeCmd)
}
