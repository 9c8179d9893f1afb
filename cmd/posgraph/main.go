// Command posgraph analyzes chess positions as influence graphs and
// prints hierarchical metric reports as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "posgraph",
		Short: "Positional graph metrics for chess positions",
		Long: "posgraph builds influence graphs from chess positions (FEN) and computes\n" +
			"spectral, topological, community and entropy metrics at the whole-graph,\n" +
			"component and zone level.",
		SilenceUsage: true,
	}
	root.AddCommand(analyzeCmd())
	root.AddCommand(batchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
