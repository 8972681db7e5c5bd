// Model for running the full prediction pipeline on one sequence.

package model

import (
	"github.com/yumyai/protfold/pkg/nnet"
	"github.com/yumyai/protfold/pkg/pdb"
	"github.com/yumyai/protfold/pkg/protparam"
)

// Prediction bundles everything computed for one sequence: the pseudo
// coordinates, their PDB rendering and the sequence statistics.
type Prediction struct {
	Sequence string
	Points   []nnet.Point
	PDB      string
	Analysis *protparam.Analysis
}

// RunPrediction validates seq, encodes it, runs one forward pass through a
// freshly built predictor and computes the sequence statistics. A new
// predictor per call keeps requests fully independent; with a fixed seed
// the weights come out identical anyway.
func RunPrediction(seq string, cfg nnet.Config) (*Prediction, error) {

	if err := ValidateSequence(seq); err != nil {
		return nil, err
	}

	encoded := Encode(seq, cfg.MaxLen)

	points, err := nnet.NewPredictor(cfg).Predict(encoded)
	if err != nil {
		return nil, err
	}

	analysis, err := protparam.Analyze(seq)
	if err != nil {
		return nil, err
	}

	return &Prediction{
		Sequence: seq,
		Points:   points,
		PDB:      pdb.FormatModel(points),
		Analysis: analysis,
	}, nil
}
