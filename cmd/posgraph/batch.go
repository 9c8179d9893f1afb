package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mkaralis/posgraph/metrics"
)

func batchCmd() *cobra.Command {
	var (
		exponent float64
		mode     string
		parallel int
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Analyze a file of positions, one FEN per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fens, err := readFENs(args[0])
			if err != nil {
				return err
			}
			opts, err := analysisOptions(exponent, mode)
			if err != nil {
				return err
			}
			reports, err := metrics.AnalyzeBatch(cmd.Context(), fens, parallel, opts...)
			if err != nil {
				return err
			}

			return outputJSON(reports, pretty)
		},
	}

	cmd.Flags().Float64Var(&exponent, "exponent", metrics.DefaultExponent, "power-law aggregation exponent")
	cmd.Flags().StringVar(&mode, "mode", "weak", "component connectivity (weak/strong)")
	cmd.Flags().IntVar(&parallel, "parallel", metrics.DefaultParallelism, "max concurrent analyses")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")

	return cmd
}

// readFENs loads non-empty, non-comment lines from path.
func readFENs(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open positions file: %w", err)
	}
	defer f.Close()

	var fens []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read positions file: %w", err)
	}

	return fens, nil
}
