package metrics_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkaralis/posgraph/board"
	"github.com/mkaralis/posgraph/metrics"
)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func TestAnalyzePosition_Start(t *testing.T) {
	report, err := metrics.AnalyzePosition(startFEN)
	require.NoError(t, err)

	assert.Equal(t, startFEN, report.FEN)
	require.NotNil(t, report.Combined)
	require.NotNil(t, report.White)
	require.NotNil(t, report.Black)

	// Each side's start moves touch 26 squares.
	assert.Equal(t, 26, report.White.Graph.NodeCount)
	assert.Equal(t, 20, report.White.Graph.EdgeCount)
	assert.Equal(t, 26, report.Black.Graph.NodeCount)
	assert.Equal(t, 52, report.Combined.Graph.NodeCount)
	assert.Equal(t, 40, report.Combined.Graph.EdgeCount)

	require.Contains(t, report.Invariants, "white")
	require.Contains(t, report.Invariants, "black")
	assert.Equal(t, 3, report.Invariants["white"].ShieldIndex)
}

func TestAnalyzePosition_BadFEN(t *testing.T) {
	_, err := metrics.AnalyzePosition("garbage")
	assert.ErrorIs(t, err, board.ErrBadFEN)
}

func TestAnalyzePosition_Deterministic(t *testing.T) {
	first, err := metrics.AnalyzePosition(startFEN)
	require.NoError(t, err)
	second, err := metrics.AnalyzePosition(startFEN)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAnalyzeBatch(t *testing.T) {
	fens := []string{startFEN, "4k3/8/8/8/8/2N1N3/8/3K4 w - - 0 1"}

	reports, err := metrics.AnalyzeBatch(context.Background(), fens, 2)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	// Results keep input order.
	assert.Equal(t, fens[0], reports[0].FEN)
	assert.Equal(t, fens[1], reports[1].FEN)
}

func TestAnalyzeBatch_FailsFast(t *testing.T) {
	fens := []string{startFEN, "garbage"}

	_, err := metrics.AnalyzeBatch(context.Background(), fens, 1)
	assert.ErrorIs(t, err, board.ErrBadFEN)
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	reports, err := metrics.AnalyzeBatch(context.Background(), nil, 0)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
