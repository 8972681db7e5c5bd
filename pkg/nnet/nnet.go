// Package nnet holds the untrained layer pipeline that turns an encoded
// amino acid sequence into pseudo 3D coordinates.
//
// The graph mirrors a common sequence-regression stack: embedding, two 1D
// convolutions with batch norm, a recurrent pass, dot-product self-attention
// concatenated back onto the recurrent features, a second recurrent pass,
// global average pooling and two dense layers down to 3*NumPoints values.
// Nothing here is ever fitted to data. Weights come from a seeded RNG, so a
// fixed seed gives bit-identical output, and the coordinates carry no
// biological meaning whatsoever. The only real contract is shape: MaxLen
// integer codes in, exactly NumPoints (x, y, z) triples out.

package nnet

import (
	"fmt"
	"math/rand"
)

// Fixed layer widths of the pipeline. These are architecture constants, not
// tunables; changing them only reshuffles noise.
const (
	embedDim    = 128
	conv1Width  = 64
	conv1Kernel = 3
	conv2Width  = 128
	conv2Kernel = 5
	lstm1Width  = 256
	lstm2Width  = 128
	denseWidth  = 128
)

// Config fixes the input and output shape of a Predictor.
type Config struct {
	MaxLen    int   // fixed input length, in residue codes
	VocabSize int   // alphabet size + 1 for the padding code 0
	NumPoints int   // number of (x, y, z) triples produced
	Seed      int64 // weight initialization seed
}

// DefaultConfig matches the shipped demo: 150-residue input window,
// 20 residue codes + padding, 50 output points.
func DefaultConfig() Config {
	return Config{
		MaxLen:    150,
		VocabSize: 21,
		NumPoints: 50,
		Seed:      42,
	}
}

// Point is one predicted pseudo-atom position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Predictor is a fully wired, randomly initialized network. It is stateless
// across calls and safe to share between goroutines once built.
type Predictor struct {
	cfg Config

	embed  *Embedding
	conv1  *Conv1D
	bn1    *BatchNorm
	conv2  *Conv1D
	bn2    *BatchNorm
	lstm1  *LSTM
	lstm2  *LSTM
	dense1 *Dense
	dense2 *Dense
}

// NewPredictor builds the whole layer graph from cfg.Seed. Construction is
// cheap enough to do per request, which keeps requests independent.
func NewPredictor(cfg Config) *Predictor {
	ini := &initializer{rng: rand.New(rand.NewSource(cfg.Seed))}

	return &Predictor{
		cfg:    cfg,
		embed:  NewEmbedding(ini, cfg.VocabSize, embedDim),
		conv1:  NewConv1D(ini, embedDim, conv1Width, conv1Kernel),
		bn1:    NewBatchNorm(conv1Width),
		conv2:  NewConv1D(ini, conv1Width, conv2Width, conv2Kernel),
		bn2:    NewBatchNorm(conv2Width),
		lstm1:  NewLSTM(ini, conv2Width, lstm1Width),
		lstm2:  NewLSTM(ini, 2*lstm1Width, lstm2Width),
		dense1: NewDense(ini, lstm2Width, denseWidth, true),
		dense2: NewDense(ini, denseWidth, 3*cfg.NumPoints, false),
	}
}

// Predict runs one forward pass. The input must be exactly cfg.MaxLen codes
// in [0, VocabSize). The output length depends only on cfg.NumPoints, never
// on the content of encoded.
func (p *Predictor) Predict(encoded []int) ([]Point, error) {

	if len(encoded) != p.cfg.MaxLen {
		return nil, fmt.Errorf("encoded sequence has %d positions, predictor expects %d", len(encoded), p.cfg.MaxLen)
	}
	for i, code := range encoded {
		if code < 0 || code >= p.cfg.VocabSize {
			return nil, fmt.Errorf("residue code %d at position %d is outside [0, %d)", code, i, p.cfg.VocabSize)
		}
	}

	x := p.embed.Forward(encoded)
	x = p.bn1.Forward(p.conv1.Forward(x))
	x = p.bn2.Forward(p.conv2.Forward(x))
	x = p.lstm1.Forward(x)
	x = concatFeatures(x, DotProductAttention(x))
	x = p.lstm2.Forward(x)

	v := GlobalAveragePooling(x)
	v = p.dense1.Forward(v)
	v = p.dense2.Forward(v)

	points := make([]Point, p.cfg.NumPoints)
	for i := range points {
		points[i] = Point{X: v[3*i], Y: v[3*i+1], Z: v[3*i+2]}
	}

	return points, nil
}

// Config returns the shape configuration the predictor was built with.
func (p *Predictor) Config() Config {
	return p.cfg
}
