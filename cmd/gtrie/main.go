// Command gtrie builds, runs, and inspects a g-trie motif-census index.
//
// Usage:
//
//	gtrie build --input patterns.g6 --output index.gtrie --size 4 [--visualize]
//	gtrie enumerate --gtrie index.gtrie --input host.edges
//	gtrie visualize --input index.gtrie
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
