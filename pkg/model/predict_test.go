package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yumyai/protfold/pkg/nnet"
)

func testNetConfig() nnet.Config {
	return nnet.Config{MaxLen: 12, VocabSize: 21, NumPoints: 4, Seed: 3}
}

func TestRunPredictionPipeline(t *testing.T) {

	pred, err := RunPrediction("ACDEFGHIKL", testNetConfig())
	require.NoError(t, err)

	require.Equal(t, "ACDEFGHIKL", pred.Sequence)
	require.Len(t, pred.Points, 4)
	require.Equal(t, 4, strings.Count(pred.PDB, "ATOM  "))
	require.True(t, strings.HasPrefix(pred.PDB, "MODEL\n"))

	require.NotNil(t, pred.Analysis)
	require.Equal(t, 10, pred.Analysis.Length)
}

func TestRunPredictionRejectsInvalidSequence(t *testing.T) {

	_, err := RunPrediction("ACDB", testNetConfig())
	require.Error(t, err)

	_, err = RunPrediction(strings.Repeat("A", 151), testNetConfig())
	require.ErrorIs(t, err, ErrSequenceTooLong)
}

// The output count is a property of the network config, never of the input.
func TestRunPredictionOutputCountIgnoresInputLength(t *testing.T) {

	cfg := testNetConfig()

	short, err := RunPrediction("AC", cfg)
	require.NoError(t, err)
	long, err := RunPrediction("ACDEFGHIKLMNPQRSTVWY", cfg)
	require.NoError(t, err)

	require.Len(t, short.Points, cfg.NumPoints)
	require.Len(t, long.Points, cfg.NumPoints)
}
