package metrics

import (
	"github.com/mkaralis/posgraph/board"
	"github.com/mkaralis/posgraph/build"
)

// PositionReport bundles the analyses of one position's three influence
// graphs with the per-color positional fingerprints.
type PositionReport struct {
	FEN string `json:"fen"`

	Combined *Report `json:"combined"`
	White    *Report `json:"white"`
	Black    *Report `json:"black"`

	Invariants map[string]*build.Invariants `json:"invariants"`
}

// AnalyzePosition parses fen and analyzes its combined, white and black
// influence graphs under one option set.
func AnalyzePosition(fen string, opts ...Option) (*PositionReport, error) {
	pos, err := board.FromFEN(fen)
	if err != nil {
		return nil, err
	}
	b := build.New(pos)

	report := &PositionReport{
		FEN:        pos.FEN(),
		Invariants: make(map[string]*build.Invariants, 2),
	}

	combined, err := b.CombinedInfluence()
	if err != nil {
		return nil, err
	}
	if report.Combined, err = Analyze(combined, opts...); err != nil {
		return nil, err
	}

	colors := []struct {
		name  string
		color board.Color
		out   **Report
	}{
		{"white", board.White, &report.White},
		{"black", board.Black, &report.Black},
	}
	for _, c := range colors {
		sub, err := b.InfluenceSubgraph(c.color)
		if err != nil {
			return nil, err
		}
		if *c.out, err = Analyze(sub, opts...); err != nil {
			return nil, err
		}
		inv, err := b.Invariants(c.color)
		if err != nil {
			return nil, err
		}
		report.Invariants[c.name] = inv
	}

	return report, nil
}
