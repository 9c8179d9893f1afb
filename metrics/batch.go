package metrics

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelism bounds concurrent position analyses in a batch.
const DefaultParallelism = 4

// AnalyzeBatch analyzes many FENs concurrently. Results keep the input
// order; the first failure cancels the remaining work and is returned.
// parallelism ≤ 0 falls back to DefaultParallelism.
func AnalyzeBatch(ctx context.Context, fens []string, parallelism int, opts ...Option) ([]*PositionReport, error) {
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	reports := make([]*PositionReport, len(fens))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, fen := range fens {
		i, fen := i, fen
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report, err := AnalyzePosition(fen, opts...)
			if err != nil {
				return err
			}
			reports[i] = report

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
