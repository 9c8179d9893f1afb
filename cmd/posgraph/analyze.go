package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mkaralis/posgraph/graph"
	"github.com/mkaralis/posgraph/metrics"
)

func analyzeCmd() *cobra.Command {
	var (
		exponent float64
		mode     string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <fen>",
		Short: "Analyze a single position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := analysisOptions(exponent, mode)
			if err != nil {
				return err
			}
			report, err := metrics.AnalyzePosition(args[0], opts...)
			if err != nil {
				return err
			}

			return outputJSON(report, pretty)
		},
	}

	cmd.Flags().Float64Var(&exponent, "exponent", metrics.DefaultExponent, "power-law aggregation exponent")
	cmd.Flags().StringVar(&mode, "mode", "weak", "component connectivity (weak/strong)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent JSON output")

	return cmd
}

func analysisOptions(exponent float64, mode string) ([]metrics.Option, error) {
	opts := []metrics.Option{metrics.WithExponent(exponent)}
	switch mode {
	case "weak":
		opts = append(opts, metrics.WithComponentMode(graph.Weak))
	case "strong":
		opts = append(opts, metrics.WithComponentMode(graph.Strong))
	default:
		return nil, fmt.Errorf("unknown component mode %q (want weak or strong)", mode)
	}

	return opts, nil
}

func outputJSON(v any, pretty bool) error {
	enc := json.NewEncoder(os.Stdout)
	if pretty {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(v)
}
